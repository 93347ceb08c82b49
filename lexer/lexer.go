// Package lexer provides the two scanning primitives shared by every
// measurement-record format decoder: consuming a literal keyword (or
// cleanly hitting end-of-stream), and accumulating an unsigned decimal
// literal. Both are grounded on the read/unread idiom of the teacher
// repo's PQL scanner (package pql), adapted from a rune scanner to a plain
// byte scanner since none of these formats are multi-byte-aware.
package lexer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Greg8128/Stim/errors"
)

// EOF is the cursor value used in place of a byte when the underlying
// ByteSource is cleanly exhausted.
const EOF = -1

// ByteSource is a sequential, read-only byte stream. It has no seek and no
// unget; every decoder carries its own one-byte look-ahead explicitly
// (as a plain int, with EOF as the sentinel) instead of relying on a
// stdlib peek facility.
type ByteSource interface {
	ReadByte() (byte, error)
}

// NewByteSource adapts an io.Reader into a ByteSource, via bufio if r
// doesn't already support ReadByte directly.
func NewByteSource(r io.Reader) ByteSource {
	if bs, ok := r.(ByteSource); ok {
		return bs
	}
	return bufio.NewReader(r)
}

// ReadCursor reads one byte from src, widened to an int, or EOF if the
// stream has been cleanly exhausted.
func ReadCursor(src ByteSource) (int, error) {
	b, err := src.ReadByte()
	if err == io.EOF {
		return EOF, nil
	}
	if err != nil {
		return EOF, err
	}
	return int(b), nil
}

// MatchKeywordOrEnd peeks one byte. If the stream is at end-of-stream, it
// reports hitEnd=true. Otherwise it requires the keyword to match
// literally, byte for byte, and returns the byte immediately following the
// keyword as cursor.
func MatchKeywordOrEnd(src ByteSource, keyword string) (hitEnd bool, cursor int, err error) {
	c, err := ReadCursor(src)
	if err != nil {
		return false, EOF, err
	}
	if c == EOF {
		return true, EOF, nil
	}
	for i := 0; i < len(keyword); i++ {
		if byte(c) != keyword[i] {
			return false, EOF, errors.New(errors.ErrFraming, fmt.Sprintf("failed to find expected string %q", keyword))
		}
		c, err = ReadCursor(src)
		if err != nil {
			return false, EOF, err
		}
	}
	return false, c, nil
}

// ParseUnsignedDecimal accumulates ASCII digits from src into a 64-bit
// unsigned value. If consumeCursor is false, it first reads one byte into
// cursor, letting callers reuse a byte their own logic already consumed.
// It stops at the first non-digit byte (or end-of-stream), leaving that
// byte in cursor (EOF if the stream ended). Overflow — detected as a
// decrease in the accumulator immediately after a multiply-add — is a
// fatal error.
func ParseUnsignedDecimal(src ByteSource, cursor int, consumeCursor bool) (ok bool, value uint64, next int, err error) {
	if !consumeCursor {
		cursor, err = ReadCursor(src)
		if err != nil {
			return false, 0, EOF, err
		}
	}
	if !isDigit(cursor) {
		return false, 0, cursor, nil
	}
	for isDigit(cursor) {
		prev := value
		value = value*10 + uint64(cursor-'0')
		if value < prev {
			return false, 0, EOF, errors.New(errors.ErrArithmetic, "integer value read from input was too big")
		}
		cursor, err = ReadCursor(src)
		if err != nil {
			return false, 0, EOF, err
		}
	}
	return true, value, cursor, nil
}

func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}
