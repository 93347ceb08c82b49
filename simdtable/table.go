// Package simdtable provides Table, the row-major bit matrix that the
// bulk record reader drains shots into. Rows are padded to whole 64-bit
// words, the same word width the teacher repo's roaring bitmap containers
// pack bits into and run popcount/trailing-zero over.
package simdtable

import "unsafe"

// wordBits is the SIMD word width rows are padded to. Real stim aligns to
// the widest vector register available on the host; this implementation
// aligns to a plain machine word, which is the width roaring's containers
// and its popcount primitives already operate on.
const wordBits = 64

// Table is a row-major matrix of bits, each row padded up to a whole
// number of 64-bit words so RowBytes can hand back a slice directly over
// the backing storage with no copy.
type Table struct {
	rows, cols  int
	wordsPerRow int
	words       []uint64
}

// NewTable returns a zeroed Table with the given logical shape. cols may
// be zero; wordsPerRow is always at least 1 so RowBytes never panics on an
// empty row.
func NewTable(rows, cols int) *Table {
	wordsPerRow := (cols + wordBits - 1) / wordBits
	if wordsPerRow == 0 {
		wordsPerRow = 1
	}
	return &Table{
		rows:        rows,
		cols:        cols,
		wordsPerRow: wordsPerRow,
		words:       make([]uint64, rows*wordsPerRow),
	}
}

// Rows returns the number of rows the table was allocated with.
func (t *Table) Rows() int { return t.rows }

// Cols returns the logical (unpadded) row width in bits.
func (t *Table) Cols() int { return t.cols }

// NumColsPadded returns the row width in bits after padding to a whole
// number of SIMD words; it is always >= Cols().
func (t *Table) NumColsPadded() int { return t.wordsPerRow * wordBits }

// RowBytes returns the padded byte span backing row i. Bits beyond Cols()
// up to NumColsPadded() are present but meaningless to the caller unless
// explicitly written. The returned slice aliases the table's storage.
func (t *Table) RowBytes(row int) []byte {
	start := row * t.wordsPerRow
	return wordsToBytes(t.words[start : start+t.wordsPerRow])
}

// Set assigns the bit at (row, col).
func (t *Table) Set(row, col int, v bool) {
	w, b := t.locate(row, col)
	if v {
		t.words[w] |= uint64(1) << b
	} else {
		t.words[w] &^= uint64(1) << b
	}
}

// Get reads the bit at (row, col).
func (t *Table) Get(row, col int) bool {
	w, b := t.locate(row, col)
	return t.words[w]&(uint64(1)<<b) != 0
}

func (t *Table) locate(row, col int) (word int, bit uint) {
	return row*t.wordsPerRow + col/wordBits, uint(col % wordBits)
}

// TransposeInto transposes t into dst bit by bit: dst[j][i] = t[i][j] for
// every i < t.Rows(), j < t.Cols(). dst must already be shaped
// dst.Rows() == t.Cols(), dst.Cols() == t.Rows() — a shape mismatch is a
// caller bug, not a runtime condition, so it panics rather than returning
// an error.
//
// This walks Get/Set per bit rather than moving whole words, because a
// transpose scatters each source row across a different destination word
// per column; there's no run of bits in t that lands contiguously in dst.
func (t *Table) TransposeInto(dst *Table) {
	if dst.rows != t.cols || dst.cols != t.rows {
		panic("simdtable: TransposeInto shape mismatch")
	}
	for i := 0; i < t.rows; i++ {
		for j := 0; j < t.cols; j++ {
			dst.Set(j, i, t.Get(i, j))
		}
	}
}

// wordsToBytes reinterprets a []uint64 as a []byte of the same backing
// storage, little-endian word order. This assumes a little-endian host,
// which is the same assumption the formats themselves make about B8's
// packed bytes.
func wordsToBytes(words []uint64) []byte {
	if len(words) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), len(words)*8)
}
