package record

import (
	"fmt"

	"github.com/Greg8128/Stim/errors"
	"github.com/Greg8128/Stim/lexer"
)

// FormatHits decodes the comma-separated set-bit-index encoding. A hit
// listed twice cancels itself out (XOR toggle), matching the writer's own
// "flip, don't set" convention for this format.
type FormatHits struct {
	src      lexer.ByteSource
	m        uint64
	buffer   []bool
	position uint64
}

// NewFormatHits returns a Reader for the HITS encoding. d and l must be
// zero.
func NewFormatHits(src lexer.ByteSource, m, d, l uint64) (*FormatHits, error) {
	if d != 0 || l != 0 {
		return nil, errors.New(errors.ErrConfiguration, "HITS format does not support detection or observable bits")
	}
	return &FormatHits{src: src, m: m, buffer: make([]bool, m), position: m}, nil
}

func (f *FormatHits) StartRecord() (bool, error) {
	c, err := lexer.ReadCursor(f.src)
	if err != nil {
		return false, err
	}
	if c == lexer.EOF {
		return false, nil
	}
	for i := range f.buffer {
		f.buffer[i] = false
	}
	f.position = 0

	isFirst := true
	for c != '\n' {
		ok, value, next, err := lexer.ParseUnsignedDecimal(f.src, c, isFirst)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, errors.New(errors.ErrFraming, "expected an integer at the start of the line or right after a comma in hits format")
		}
		c = next
		if c != ',' && c != '\n' {
			return false, errors.New(errors.ErrFraming, fmt.Sprintf("hits format requires integers to be followed by a comma or a newline, got %q", rune(c)))
		}
		if value >= f.m {
			return false, errors.New(errors.ErrRange, fmt.Sprintf("bits per record is %d but got hit index %d", f.m, value))
		}
		f.buffer[value] = !f.buffer[value]
		isFirst = false
	}
	return true, nil
}

func (f *FormatHits) ReadBit() (bool, error) {
	if f.position >= f.m {
		return false, errors.New(errors.ErrOutOfRange, "attempted to read a bit past the end of the hits record")
	}
	bit := f.buffer[f.position]
	f.position++
	return bit, nil
}

func (f *FormatHits) NextRecord() (bool, error) {
	return f.StartRecord()
}

func (f *FormatHits) IsEndOfRecord() (bool, error) {
	return f.position >= f.m, nil
}

func (f *FormatHits) CurrentResultType() ResultType { return ResultM }

func (f *FormatHits) ReadBitsIntoBytes(out []byte) (int, error) {
	return readBitsIntoBytesDefault(f, out)
}
