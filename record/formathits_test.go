package record_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/Greg8128/Stim/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHitsCancellation(t *testing.T) {
	// m=8, hits "1,3,1" -> bit 1 toggled twice (cancels), bit 3 set.
	src := bufio.NewReader(strings.NewReader("1,3,1\n\n"))
	r, err := record.NewFormatHits(src, 8, 0, 0)
	require.NoError(t, err)

	started, err := r.StartRecord()
	require.NoError(t, err)
	require.True(t, started)

	want := []bool{false, false, false, true, false, false, false, false}
	for i, wantBit := range want {
		bit, err := r.ReadBit()
		require.NoError(t, err)
		assert.Equal(t, wantBit, bit, "bit %d", i)
	}

	started, err = r.NextRecord()
	require.NoError(t, err)
	require.True(t, started)
	for i := 0; i < 8; i++ {
		bit, err := r.ReadBit()
		require.NoError(t, err)
		assert.False(t, bit)
	}

	started, err = r.NextRecord()
	require.NoError(t, err)
	assert.False(t, started)
}

func TestFormatHitsOutOfRange(t *testing.T) {
	src := bufio.NewReader(strings.NewReader("9\n"))
	r, err := record.NewFormatHits(src, 8, 0, 0)
	require.NoError(t, err)

	_, err = r.StartRecord()
	assert.Error(t, err)
}

func TestFormatHitsBadSeparator(t *testing.T) {
	src := bufio.NewReader(strings.NewReader("1;3\n"))
	r, err := record.NewFormatHits(src, 8, 0, 0)
	require.NoError(t, err)

	_, err = r.StartRecord()
	assert.Error(t, err)
}
