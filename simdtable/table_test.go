package simdtable_test

import (
	"testing"

	"github.com/Greg8128/Stim/simdtable"
	"github.com/stretchr/testify/assert"
)

func TestTableSetGet(t *testing.T) {
	tbl := simdtable.NewTable(3, 10)
	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, 10, tbl.Cols())
	assert.Equal(t, 64, tbl.NumColsPadded())

	tbl.Set(1, 3, true)
	tbl.Set(1, 9, true)
	for col := 0; col < 10; col++ {
		want := col == 3 || col == 9
		assert.Equal(t, want, tbl.Get(1, col), "col %d", col)
	}
	assert.False(t, tbl.Get(0, 3))
	assert.False(t, tbl.Get(2, 3))
}

func TestTableRowBytes(t *testing.T) {
	tbl := simdtable.NewTable(2, 10)
	tbl.Set(0, 0, true)
	tbl.Set(0, 8, true)
	row := tbl.RowBytes(0)
	assert.Equal(t, byte(1), row[0]&1)
	assert.Equal(t, byte(1), row[1]&1)
	assert.Equal(t, byte(0), row[0]&2)
}

func TestTableTransposeInto(t *testing.T) {
	src := simdtable.NewTable(2, 3)
	src.Set(0, 0, true)
	src.Set(0, 2, true)
	src.Set(1, 1, true)

	dst := simdtable.NewTable(3, 2)
	src.TransposeInto(dst)

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, src.Get(i, j), dst.Get(j, i), "i=%d j=%d", i, j)
		}
	}
}

func TestTableTransposeIntoPanicsOnShapeMismatch(t *testing.T) {
	src := simdtable.NewTable(2, 3)
	dst := simdtable.NewTable(2, 3)
	assert.Panics(t, func() {
		src.TransposeInto(dst)
	})
}
