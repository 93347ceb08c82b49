package record

import (
	"fmt"

	"github.com/Greg8128/Stim/errors"
	"github.com/Greg8128/Stim/lexer"
)

// NewFactory constructs the Reader matching format over src, validating
// (m, d, l) the way the original measurement-record reader's own factory
// does: only DETS may carry detection or observable bits, and PTB64 is
// recognized by name only to be rejected, since it requires random access
// this streaming contract can't provide.
func NewFactory(src lexer.ByteSource, format Format, m, d, l uint64) (Reader, error) {
	if format == FPTB64 {
		return nil, errors.New(errors.ErrConfiguration, "PTB64 format is not supported by the streaming record reader")
	}
	if format != FDETS {
		if d != 0 {
			return nil, errors.New(errors.ErrConfiguration, fmt.Sprintf("only DETS format supports detection event records, got format %v", format))
		}
		if l != 0 {
			return nil, errors.New(errors.ErrConfiguration, fmt.Sprintf("only DETS format supports logical observable records, got format %v", format))
		}
	}

	switch format {
	case F01:
		return NewFormat01(src, m, d, l)
	case FB8:
		return NewFormatB8(src, m, d, l)
	case FHITS:
		return NewFormatHits(src, m, d, l)
	case FR8:
		return NewFormatR8(src, m, d, l)
	case FDETS:
		return NewFormatDets(src, m, d, l)
	default:
		return nil, errors.New(errors.ErrConfiguration, fmt.Sprintf("sample format %v is not recognized", format))
	}
}
