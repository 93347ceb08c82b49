package record_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/Greg8128/Stim/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat01ThreeShots(t *testing.T) {
	src := bufio.NewReader(strings.NewReader("010\n101\n111\n"))
	r, err := record.NewFormat01(src, 3, 0, 0)
	require.NoError(t, err)

	want := [][]bool{
		{false, true, false},
		{true, false, true},
		{true, true, true},
	}
	for _, shot := range want {
		started, err := r.StartRecord()
		require.NoError(t, err)
		require.True(t, started)
		for _, wantBit := range shot {
			end, err := r.IsEndOfRecord()
			require.NoError(t, err)
			require.False(t, end)
			bit, err := r.ReadBit()
			require.NoError(t, err)
			assert.Equal(t, wantBit, bit)
		}
		end, err := r.IsEndOfRecord()
		require.NoError(t, err)
		assert.True(t, end)
	}

	started, err := r.NextRecord()
	require.NoError(t, err)
	assert.False(t, started)
}

func TestFormat01RejectsDAndL(t *testing.T) {
	_, err := record.NewFormat01(bufio.NewReader(strings.NewReader("")), 3, 1, 0)
	assert.Error(t, err)
	_, err = record.NewFormat01(bufio.NewReader(strings.NewReader("")), 3, 0, 1)
	assert.Error(t, err)
}

func TestFormat01BadByte(t *testing.T) {
	src := bufio.NewReader(strings.NewReader("0x1\n"))
	r, err := record.NewFormat01(src, 3, 0, 0)
	require.NoError(t, err)
	started, err := r.StartRecord()
	require.NoError(t, err)
	require.True(t, started)

	_, err = r.ReadBit()
	require.NoError(t, err)
	_, err = r.ReadBit()
	assert.Error(t, err)
}

func TestFormat01NextRecordRejectsOverlongLine(t *testing.T) {
	src := bufio.NewReader(strings.NewReader("0000000\nabc\n"))
	r, err := record.NewFormat01(src, 3, 0, 0)
	require.NoError(t, err)

	started, err := r.StartRecord()
	require.NoError(t, err)
	require.True(t, started)

	_, err = r.NextRecord()
	assert.Error(t, err)
}

func TestFormat01LengthMismatch(t *testing.T) {
	src := bufio.NewReader(strings.NewReader("01\n"))
	r, err := record.NewFormat01(src, 3, 0, 0)
	require.NoError(t, err)
	started, err := r.StartRecord()
	require.NoError(t, err)
	require.True(t, started)

	_, err = r.ReadBit()
	require.NoError(t, err)
	_, err = r.ReadBit()
	require.NoError(t, err)

	_, err = r.IsEndOfRecord()
	assert.Error(t, err)
}
