package record

import (
	"fmt"

	"github.com/Greg8128/Stim/errors"
	"github.com/Greg8128/Stim/lexer"
)

// FormatDets decodes the tagged "shot M0 D1 L0" line encoding, the only
// format with separate measurement, detection, and observable sections.
type FormatDets struct {
	src      lexer.ByteSource
	m, d, l  uint64
	buffer   []bool
	position uint64
}

// NewFormatDets returns a Reader for the DETS encoding.
func NewFormatDets(src lexer.ByteSource, m, d, l uint64) (*FormatDets, error) {
	return &FormatDets{src: src, m: m, d: d, l: l, buffer: make([]bool, m+d+l), position: m + d + l}, nil
}

func (f *FormatDets) StartRecord() (bool, error) {
	hitEnd, c, err := lexer.MatchKeywordOrEnd(f.src, "shot")
	if err != nil {
		return false, err
	}
	if hitEnd {
		return false, nil
	}
	for i := range f.buffer {
		f.buffer[i] = false
	}
	f.position = 0

	for {
		hadSpacing := c == ' '
		for c == ' ' {
			c, err = lexer.ReadCursor(f.src)
			if err != nil {
				return false, err
			}
		}
		if c == '\n' || c == lexer.EOF {
			break
		}
		if !hadSpacing {
			return false, errors.New(errors.ErrFraming, "DETS values must be separated by spaces")
		}

		var offset, size uint64
		switch byte(c) {
		case 'M':
			offset, size = 0, f.m
		case 'D':
			offset, size = f.m, f.d
		case 'L':
			offset, size = f.m+f.d, f.l
		default:
			return false, errors.New(errors.ErrFraming, fmt.Sprintf("unrecognized DETS prefix %q", rune(c)))
		}

		ok, number, next, err := lexer.ParseUnsignedDecimal(f.src, c, false)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, errors.New(errors.ErrFraming, "DETS prefix was not followed by an integer")
		}
		if number >= size {
			return false, errors.New(errors.ErrRange, fmt.Sprintf("DETS index %d is out of range for a section of width %d", number, size))
		}
		f.buffer[offset+number] = !f.buffer[offset+number]
		c = next
	}
	return true, nil
}

func (f *FormatDets) ReadBit() (bool, error) {
	if f.position >= f.m+f.d+f.l {
		return false, errors.New(errors.ErrOutOfRange, "attempted to read a bit past the end of the DETS record")
	}
	bit := f.buffer[f.position]
	f.position++
	return bit, nil
}

func (f *FormatDets) NextRecord() (bool, error) {
	return f.StartRecord()
}

func (f *FormatDets) IsEndOfRecord() (bool, error) {
	return f.position >= f.m+f.d+f.l, nil
}

// CurrentResultType follows the M-then-D-then-L section order, but skips
// any section whose declared width is zero, falling back through D to M
// if every section after the current position happens to be empty.
func (f *FormatDets) CurrentResultType() ResultType {
	if f.position < f.m && f.m > 0 {
		return ResultM
	}
	if f.position < f.m+f.d && f.d > 0 {
		return ResultD
	}
	if f.l > 0 {
		return ResultL
	}
	if f.d > 0 {
		return ResultD
	}
	return ResultM
}

func (f *FormatDets) ReadBitsIntoBytes(out []byte) (int, error) {
	return readBitsIntoBytesDefault(f, out)
}
