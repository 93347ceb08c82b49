package record

import (
	"context"

	"github.com/Greg8128/Stim/errors"
	"github.com/Greg8128/Stim/logger"
	"github.com/Greg8128/Stim/simdtable"
)

// ReadRecordsInto drains successive records from r into out, one shot per
// row (or, if majorIndexIsShotIndex is false, one shot per column). At
// most maxShots records are read, further capped by out's own row count
// (or column count, in the transposed case). It returns the number of
// shots actually read; fewer than that capped count means r ran out of
// records.
//
// ctx is checked once per shot; a canceled or expired ctx stops the read
// after the in-progress shot finishes and returns an errors.ErrTimeout
// error carrying ctx.Err()'s message (ctx.Err() itself is not wrapped),
// rather than aborting mid-shot and leaving a partially decoded row in out.
//
// The column-major path decodes into a row-major scratch table exactly as
// the row-major path would, then transposes once into out — the shape of
// out never changes how individual records get decoded.
func ReadRecordsInto(ctx context.Context, r Reader, out *simdtable.Table, majorIndexIsShotIndex bool, maxShots int, log logger.Logger) (int, error) {
	if log == nil {
		log = logger.NopLogger
	}

	if !majorIndexIsShotIndex {
		scratch := simdtable.NewTable(out.Cols(), out.Rows())
		n, err := ReadRecordsInto(ctx, r, scratch, true, maxShots, log)
		if err != nil {
			return n, err
		}
		scratch.TransposeInto(out)
		return n, nil
	}

	if maxShots > out.Rows() {
		maxShots = out.Rows()
	}

	shot := 0
	for shot < maxShots {
		if err := ctx.Err(); err != nil {
			return shot, errors.New(errors.ErrTimeout, err.Error())
		}

		started, err := r.StartRecord()
		if err != nil {
			return shot, err
		}
		if !started {
			break
		}

		row := out.RowBytes(shot)
		for i := range row {
			row[i] = 0
		}

		// Driven bit by bit rather than through ReadBitsIntoBytes: that
		// call is allowed to stop mid-byte (a DETS section boundary), and
		// resuming a byte-oriented write at a non-byte-aligned bit offset
		// isn't worth the complexity here. ReadBitsIntoBytes itself is
		// called directly only by the B8 tests.
		col := 0
		for {
			end, err := r.IsEndOfRecord()
			if err != nil {
				return shot, err
			}
			if end {
				break
			}
			if col >= out.NumColsPadded() {
				return shot, errors.New(errors.ErrShape, "shot held more bits than the supplied record width")
			}
			bit, err := r.ReadBit()
			if err != nil {
				return shot, err
			}
			if bit {
				out.Set(shot, col, true)
			}
			col++
		}

		log.Debugf("decoded shot %d", shot)
		shot++
	}
	return shot, nil
}
