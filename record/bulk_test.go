package record_test

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/Greg8128/Stim/errors"
	"github.com/Greg8128/Stim/logger"
	"github.com/Greg8128/Stim/record"
	"github.com/Greg8128/Stim/simdtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecordsIntoShotMajor(t *testing.T) {
	src := bufio.NewReader(strings.NewReader("010\n101\n111\n"))
	r, err := record.NewFormat01(src, 3, 0, 0)
	require.NoError(t, err)

	table := simdtable.NewTable(10, 3)
	n, err := record.ReadRecordsInto(context.Background(), r, table, true, 10, logger.NewLogfLogger(t))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	want := [][]bool{
		{false, true, false},
		{true, false, true},
		{true, true, true},
	}
	for shot, bits := range want {
		for col, wantBit := range bits {
			assert.Equal(t, wantBit, table.Get(shot, col), "shot %d col %d", shot, col)
		}
	}
}

func TestReadRecordsIntoStopsAtMaxShots(t *testing.T) {
	src := bufio.NewReader(strings.NewReader("01\n10\n11\n"))
	r, err := record.NewFormat01(src, 2, 0, 0)
	require.NoError(t, err)

	table := simdtable.NewTable(2, 2)
	n, err := record.ReadRecordsInto(context.Background(), r, table, true, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestReadRecordsIntoColumnMajorTransposes(t *testing.T) {
	// Three shots of 2 bits each: 01, 10, 11.
	src := bufio.NewReader(strings.NewReader("01\n10\n11\n"))
	r, err := record.NewFormat01(src, 2, 0, 0)
	require.NoError(t, err)

	// Column-major: table is laid out (cols x shots), so Rows()==2, Cols()==3.
	table := simdtable.NewTable(2, 3)
	n, err := record.ReadRecordsInto(context.Background(), r, table, false, 3, nil)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	want := [][]bool{
		{false, true, true},
		{true, false, true},
	}
	for bitIdx, shots := range want {
		for shot, wantBit := range shots {
			assert.Equal(t, wantBit, table.Get(bitIdx, shot), "bit %d shot %d", bitIdx, shot)
		}
	}
}

func TestReadRecordsIntoLeavesPaddingZeroed(t *testing.T) {
	src := bufio.NewReader(strings.NewReader("01\n"))
	r, err := record.NewFormat01(src, 2, 0, 0)
	require.NoError(t, err)

	table := simdtable.NewTable(1, 2)
	n, err := record.ReadRecordsInto(context.Background(), r, table, true, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	for col := 2; col < table.NumColsPadded(); col++ {
		assert.False(t, table.Get(0, col))
	}
}

func TestReadRecordsIntoStopsOnCanceledContext(t *testing.T) {
	src := bufio.NewReader(strings.NewReader("01\n10\n11\n"))
	r, err := record.NewFormat01(src, 2, 0, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	table := simdtable.NewTable(3, 2)
	n, err := record.ReadRecordsInto(ctx, r, table, true, 3, nil)
	assert.Equal(t, 0, n)
	assert.True(t, errors.Is(err, errors.ErrTimeout))
}
