package record

// Reader is the polymorphic contract shared by all five format decoders.
// Each format's concrete type satisfies this interface; the factory and
// the bulk reader only ever talk to a Reader.
type Reader interface {
	// StartRecord begins a new record. It returns false iff the stream is
	// cleanly at end-of-stream before any byte of a new record was read;
	// any end-of-stream reached mid-record is reported as an error
	// instead.
	StartRecord() (bool, error)

	// NextRecord discards any bits remaining in the current record and
	// starts the next one. Equivalent to reading ReadBit until
	// IsEndOfRecord then calling StartRecord, but formats that can do
	// better (skipping unread data) are free to.
	NextRecord() (bool, error)

	// ReadBit returns the next bit of the current record. Calling it once
	// the record (or the stream) has ended returns an ErrOutOfRange error.
	ReadBit() (bool, error)

	// ReadBitsIntoBytes fills out, bit 0 of out[0] first, until out is
	// full, the record ends, or the result type of the next bit would
	// differ from the result type of the first bit written. It returns
	// the number of bits written.
	ReadBitsIntoBytes(out []byte) (int, error)

	// IsEndOfRecord reports whether the record's full width has been
	// consumed. For formats whose payload has its own end-of-payload
	// marker (a newline, a run-length terminator byte), a mismatch
	// between that marker and the expected bit width is reported as an
	// error rather than folded silently into the boolean.
	IsEndOfRecord() (bool, error)

	// CurrentResultType reports which section (M, D, or L) the next
	// ReadBit call would return a bit from.
	CurrentResultType() ResultType
}

// readBitsIntoBytesDefault implements the shared bit-at-a-time
// ReadBitsIntoBytes algorithm purely in terms of ReadBit, IsEndOfRecord,
// and CurrentResultType. Formats without a cheaper bulk path (F01, HITS,
// DETS) use this directly; B8 falls back to it while part of an input byte
// is still buffered; R8 runs its own bit-by-bit loop and does not call it.
func readBitsIntoBytesDefault(r Reader, out []byte) (int, error) {
	end, err := r.IsEndOfRecord()
	if err != nil {
		return 0, err
	}
	if end {
		return 0, nil
	}
	resultType := r.CurrentResultType()
	n := 0
	for i := range out {
		out[i] = 0
		for k := uint(0); k < 8; k++ {
			bit, err := r.ReadBit()
			if err != nil {
				return n, err
			}
			if bit {
				out[i] |= 1 << k
			}
			n++

			end, err := r.IsEndOfRecord()
			if err != nil {
				return n, err
			}
			if end || r.CurrentResultType() != resultType {
				return n, nil
			}
		}
	}
	return n, nil
}
