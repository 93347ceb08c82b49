package errors

// Error codes used throughout the record decoders. Callers that need to
// distinguish error classes (as opposed to just logging them) should use
// errors.Is(err, errors.ErrFraming) and friends rather than matching on
// message text.
const (
	// ErrFraming covers malformed record framing: a missing separator,
	// an unexpected byte, a missing terminator, or a length mismatch.
	ErrFraming Code = "Framing"

	// ErrRange covers indices that fall outside the bit width they're
	// addressing, e.g. a HITS index >= m, or an R8 run that overshoots
	// the record.
	ErrRange Code = "Range"

	// ErrArithmetic covers 64-bit decimal overflow while parsing an
	// unsigned integer literal.
	ErrArithmetic Code = "Arithmetic"

	// ErrOutOfRange covers calling ReadBit past the end of a record or
	// past the end of the stream.
	ErrOutOfRange Code = "OutOfRange"

	// ErrConfiguration covers invalid Factory arguments: an unsupported
	// format tag, or non-zero detection/observable widths on a format
	// that doesn't support sections.
	ErrConfiguration Code = "Configuration"

	// ErrShape covers the bulk reader discovering that a shot held more
	// bits than the caller-supplied record width.
	ErrShape Code = "Shape"

	// ErrTimeout covers a decode being stopped by a canceled or expired
	// context, e.g. the dump command's configured timeout elapsing.
	ErrTimeout Code = "Timeout"
)
