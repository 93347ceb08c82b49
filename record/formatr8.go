package record

import (
	"github.com/Greg8128/Stim/errors"
	"github.com/Greg8128/Stim/lexer"
)

// FormatR8 decodes the run-length zero-count encoding: each record is a
// sequence of zero-counts (continued across 0xFF bytes), each run
// implicitly followed by a single 1 bit, with the final run's trailing 1
// either kept (if it lands exactly on the record's last bit, followed by a
// 0x00 terminator byte) or discarded (if the run lands one bit past the
// record, meaning the record actually ended in a 0 and there was nothing
// left to flip).
type FormatR8 struct {
	src lexer.ByteSource
	m   uint64

	position         uint64
	buffered0s       uint64
	buffered1s       uint64
	haveSeenTerminal bool
}

// NewFormatR8 returns a Reader for the R8 encoding. d and l must be zero.
func NewFormatR8(src lexer.ByteSource, m, d, l uint64) (*FormatR8, error) {
	if d != 0 || l != 0 {
		return nil, errors.New(errors.ErrConfiguration, "R8 format does not support detection or observable bits")
	}
	return &FormatR8{src: src, m: m}, nil
}

func (f *FormatR8) StartRecord() (bool, error) {
	f.position = 0
	f.buffered0s = 0
	f.buffered1s = 0
	f.haveSeenTerminal = false
	return f.maybeBufferData()
}

func (f *FormatR8) IsEndOfRecord() (bool, error) {
	return f.position == f.m && f.haveSeenTerminal, nil
}

// maybeBufferData consumes zero-count bytes (continuing across 0xFF) and
// then accounts for the implicit trailing 1 bit, deciding whether that 1
// is real data or the record's clean ending. Preconditions: buffered0s and
// buffered1s are both already zero.
func (f *FormatR8) maybeBufferData() (bool, error) {
	end, _ := f.IsEndOfRecord()
	if end {
		return false, errors.New(errors.ErrOutOfRange, "attempted to read past the end of an R8 record")
	}

	for {
		c, err := lexer.ReadCursor(f.src)
		if err != nil {
			return false, err
		}
		if c == lexer.EOF {
			if f.buffered0s == 0 && f.position == 0 {
				return false, nil
			}
			if f.buffered0s == 0 {
				return false, errors.New(errors.ErrFraming, "R8 data ended before the end of the record")
			}
			return false, errors.New(errors.ErrFraming, "R8 data ended on a continuation byte (0xFF), which is not allowed")
		}
		f.buffered0s += uint64(c)
		if c != 0xFF {
			break
		}
	}
	f.buffered1s = 1

	total := f.position + f.buffered0s + f.buffered1s
	switch {
	case total == f.m:
		t, err := lexer.ReadCursor(f.src)
		if err != nil {
			return false, err
		}
		if t == lexer.EOF {
			return false, errors.New(errors.ErrFraming, "R8 data ended without the expected 0x00 terminator byte after the final bit")
		}
		if t != 0 {
			return false, errors.New(errors.ErrFraming, "R8 data had more bytes after what should have been the final bit's terminator")
		}
		f.haveSeenTerminal = true
	case total == f.m+1:
		f.haveSeenTerminal = true
		f.buffered1s = 0
	case total > f.m+1:
		return false, errors.New(errors.ErrRange, "R8 data encoded a run that jumps past the expected end of the record")
	}
	return true, nil
}

func (f *FormatR8) ReadBit() (bool, error) {
	if f.buffered0s == 0 && f.buffered1s == 0 {
		ok, err := f.maybeBufferData()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, errors.New(errors.ErrOutOfRange, "attempted to read a bit past the end of the R8 record")
		}
	}
	switch {
	case f.buffered0s > 0:
		f.buffered0s--
		f.position++
		return false, nil
	case f.buffered1s > 0:
		f.buffered1s--
		f.position++
		return true, nil
	default:
		return false, errors.New(errors.ErrOutOfRange, "attempted to read a bit past the end of the R8 record")
	}
}

func (f *FormatR8) NextRecord() (bool, error) {
	for {
		end, err := f.IsEndOfRecord()
		if err != nil {
			return false, err
		}
		if end {
			break
		}
		if _, err := f.ReadBit(); err != nil {
			return false, err
		}
	}
	return f.StartRecord()
}

func (f *FormatR8) CurrentResultType() ResultType { return ResultM }

// ReadBitsIntoBytes overrides the bit-at-a-time default so that long runs
// of buffered zeros can be skipped a whole byte at a time.
func (f *FormatR8) ReadBitsIntoBytes(out []byte) (int, error) {
	n := 0
	for i := range out {
		out[i] = 0
		if f.buffered0s >= 8 {
			f.buffered0s -= 8
			f.position += 8
			n += 8
			continue
		}
		for k := uint(0); k < 8; k++ {
			end, err := f.IsEndOfRecord()
			if err != nil {
				return n, err
			}
			if end {
				return n, nil
			}
			bit, err := f.ReadBit()
			if err != nil {
				return n, err
			}
			if bit {
				out[i] |= 1 << k
			}
			n++
		}
	}
	return n, nil
}
