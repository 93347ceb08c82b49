package record

import (
	"io"

	"github.com/Greg8128/Stim/errors"
	"github.com/Greg8128/Stim/lexer"
)

// FormatB8 decodes the packed, little-endian-within-byte B8 encoding.
type FormatB8 struct {
	src lexer.ByteSource
	m   uint64

	position      uint64
	payload       int
	bitsAvailable uint8
}

// NewFormatB8 returns a Reader for the B8 encoding. d and l must be zero.
func NewFormatB8(src lexer.ByteSource, m, d, l uint64) (*FormatB8, error) {
	if d != 0 || l != 0 {
		return nil, errors.New(errors.ErrConfiguration, "B8 format does not support detection or observable bits")
	}
	return &FormatB8{src: src, m: m, position: m}, nil
}

func (f *FormatB8) maybeUpdatePayload() error {
	if f.bitsAvailable > 0 {
		return nil
	}
	c, err := lexer.ReadCursor(f.src)
	if err != nil {
		return err
	}
	f.payload = c
	if f.payload != lexer.EOF {
		f.bitsAvailable = 8
	}
	return nil
}

func (f *FormatB8) StartRecord() (bool, error) {
	f.position = 0
	f.bitsAvailable = 0
	f.payload = 0
	if err := f.maybeUpdatePayload(); err != nil {
		return false, err
	}
	return f.payload != lexer.EOF, nil
}

func (f *FormatB8) ReadBit() (bool, error) {
	if f.position >= f.m {
		return false, errors.New(errors.ErrOutOfRange, "attempted to read a bit past the end of the B8 record")
	}
	if err := f.maybeUpdatePayload(); err != nil {
		return false, err
	}
	if f.payload == lexer.EOF {
		return false, errors.New(errors.ErrOutOfRange, "attempted to read a bit past the end of the stream")
	}
	bit := f.payload&1 != 0
	f.payload >>= 1
	f.bitsAvailable--
	f.position++
	return bit, nil
}

func (f *FormatB8) NextRecord() (bool, error) {
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

func (f *FormatB8) IsEndOfRecord() (bool, error) {
	return f.position >= f.m, nil
}

func (f *FormatB8) CurrentResultType() ResultType { return ResultM }

// ReadBitsIntoBytes overrides the bit-at-a-time default with whole-byte
// block reads whenever the current byte boundary is aligned, mirroring
// the block fread the original takes when bits_available == 0.
func (f *FormatB8) ReadBitsIntoBytes(out []byte) (int, error) {
	if f.position >= f.m || len(out) == 0 {
		return 0, nil
	}
	if f.bitsAvailable > 0 {
		return readBitsIntoBytesDefault(f, out)
	}

	want := f.m - f.position
	maxBits := uint64(8 * len(out))
	if want > maxBits {
		want = maxBits
	}
	wantBytes := int((want + 7) / 8)

	read := 0
	for read < wantBytes {
		b, err := f.src.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, err
		}
		out[read] = b
		read++
	}

	gotBits := uint64(8 * read)
	if want < gotBits {
		gotBits = want
	}
	f.position += gotBits
	return int(gotBits), nil
}
