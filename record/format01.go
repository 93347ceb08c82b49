package record

import (
	"github.com/Greg8128/Stim/errors"
	"github.com/Greg8128/Stim/lexer"
)

// Format01 decodes the ASCII "0"/"1" per bit, newline-terminated encoding.
type Format01 struct {
	src      lexer.ByteSource
	m        uint64
	cursor   int
	position uint64
}

// NewFormat01 returns a Reader for the 01 encoding. d and l are accepted
// for constructor-signature symmetry with the other formats but must be
// zero; 01 has no detection or observable sections.
func NewFormat01(src lexer.ByteSource, m, d, l uint64) (*Format01, error) {
	if d != 0 || l != 0 {
		return nil, errors.New(errors.ErrConfiguration, "01 format does not support detection or observable bits")
	}
	return &Format01{src: src, m: m, cursor: lexer.EOF, position: m}, nil
}

func (f *Format01) StartRecord() (bool, error) {
	c, err := lexer.ReadCursor(f.src)
	if err != nil {
		return false, err
	}
	f.cursor = c
	f.position = 0
	return f.cursor != lexer.EOF, nil
}

func (f *Format01) ReadBit() (bool, error) {
	if f.cursor == lexer.EOF || f.cursor == '\n' || f.position >= f.m {
		return false, errors.New(errors.ErrOutOfRange, "attempted to read a bit past the end of the 01 record")
	}
	if f.cursor != '0' && f.cursor != '1' {
		return false, errors.New(errors.ErrFraming, "expected '0' or '1' because input format was specified as '01'")
	}
	bit := f.cursor == '1'
	c, err := lexer.ReadCursor(f.src)
	if err != nil {
		return false, err
	}
	f.cursor = c
	f.position++
	return bit, nil
}

func (f *Format01) NextRecord() (bool, error) {
	var consumed uint64
	for f.cursor != lexer.EOF && f.cursor != '\n' {
		consumed++
		if consumed > f.m {
			return false, errors.New(errors.ErrFraming, "01 record exceeded its declared length while searching for the end of line")
		}
		c, err := lexer.ReadCursor(f.src)
		if err != nil {
			return false, err
		}
		f.cursor = c
	}
	return f.StartRecord()
}

func (f *Format01) IsEndOfRecord() (bool, error) {
	payloadEnded := f.cursor == lexer.EOF || f.cursor == '\n'
	expectedEnd := f.position >= f.m
	if payloadEnded && !expectedEnd {
		return false, errors.New(errors.ErrFraming, "01 record ended before its declared length")
	}
	if !payloadEnded && expectedEnd {
		return false, errors.New(errors.ErrFraming, "01 record did not end where its declared length said it would")
	}
	return payloadEnded, nil
}

func (f *Format01) CurrentResultType() ResultType { return ResultM }

func (f *Format01) ReadBitsIntoBytes(out []byte) (int, error) {
	return readBitsIntoBytesDefault(f, out)
}
