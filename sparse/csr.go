// Package sparse provides the compressed sparse row matrix the dataset loader
// assembles into, plus the few operations the loader needs: row-wise append,
// vertical stacking of chunks, row gathering by a permutation, and building a
// binary matrix from bitmap rows.
package sparse

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// CSR is a sparse matrix in compressed sparse row form. Row i occupies
// Indices[Indptr[i]:Indptr[i+1]] and Data[Indptr[i]:Indptr[i+1]], with
// column indices ascending within a row.
type CSR struct {
	Rows    int       `json:"rows"`
	Cols    int       `json:"cols"`
	Indptr  []int     `json:"indptr"`
	Indices []int32   `json:"indices"`
	Data    []float64 `json:"data"`
}

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int {
	return len(m.Data)
}

// Row returns the column indices and values of row i. The returned slices
// alias the matrix; callers must not modify them.
func (m *CSR) Row(i int) ([]int32, []float64) {
	lo, hi := m.Indptr[i], m.Indptr[i+1]
	return m.Indices[lo:hi], m.Data[lo:hi]
}

// At returns the entry at (i, j), zero if not stored.
func (m *CSR) At(i int, j int32) float64 {
	idx, vals := m.Row(i)
	for k, c := range idx {
		if c == j {
			return vals[k]
		}
		if c > j {
			break
		}
	}
	return 0
}

// SelectRows returns a new matrix whose row i is row p[i] of m. Used both for
// permutation alignment and for shuffling; p need not be a full permutation,
// any row index list works.
func (m *CSR) SelectRows(p []int) *CSR {
	out := &CSR{
		Rows:   len(p),
		Cols:   m.Cols,
		Indptr: make([]int, len(p)+1),
	}

	nnz := 0
	for _, r := range p {
		nnz += m.Indptr[r+1] - m.Indptr[r]
	}
	out.Indices = make([]int32, 0, nnz)
	out.Data = make([]float64, 0, nnz)

	for i, r := range p {
		idx, vals := m.Row(r)
		out.Indices = append(out.Indices, idx...)
		out.Data = append(out.Data, vals...)
		out.Indptr[i+1] = out.Indptr[i] + len(idx)
	}
	return out
}

// Vstack concatenates the given matrices vertically, in argument order.
func Vstack(ms ...*CSR) (*CSR, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("sparse: vstack of zero matrices")
	}

	cols := ms[0].Cols
	rows, nnz := 0, 0
	for _, m := range ms {
		if m.Cols != cols {
			return nil, fmt.Errorf("sparse: vstack column mismatch: %d vs %d", cols, m.Cols)
		}
		rows += m.Rows
		nnz += m.NNZ()
	}

	out := &CSR{
		Rows:    rows,
		Cols:    cols,
		Indptr:  make([]int, 1, rows+1),
		Indices: make([]int32, 0, nnz),
		Data:    make([]float64, 0, nnz),
	}
	for _, m := range ms {
		base := out.Indptr[len(out.Indptr)-1]
		for i := 1; i <= m.Rows; i++ {
			out.Indptr = append(out.Indptr, base+m.Indptr[i])
		}
		out.Indices = append(out.Indices, m.Indices...)
		out.Data = append(out.Data, m.Data...)
	}
	return out, nil
}

// FromBitmapRows builds a binary matrix from one bitmap per row: every set
// bit becomes a stored 1.0 in that row's column. Bits at or beyond cols are
// rejected.
func FromBitmapRows(rows []*roaring.Bitmap, cols int) (*CSR, error) {
	out := &CSR{
		Rows:   len(rows),
		Cols:   cols,
		Indptr: make([]int, len(rows)+1),
	}

	nnz := uint64(0)
	for _, bm := range rows {
		nnz += bm.GetCardinality()
	}
	out.Indices = make([]int32, 0, nnz)
	out.Data = make([]float64, 0, nnz)

	for i, bm := range rows {
		it := bm.Iterator()
		for it.HasNext() {
			c := it.Next()
			if int(c) >= cols {
				return nil, fmt.Errorf("sparse: column %d out of range for %d columns", c, cols)
			}
			out.Indices = append(out.Indices, int32(c))
			out.Data = append(out.Data, 1)
		}
		out.Indptr[i+1] = len(out.Data)
	}
	return out, nil
}

// Builder assembles a CSR matrix row by row.
type Builder struct {
	cols    int
	indptr  []int
	indices []int32
	data    []float64
}

// NewBuilder creates a Builder for matrices with the given column count.
func NewBuilder(cols int) *Builder {
	return &Builder{cols: cols, indptr: []int{0}}
}

// AppendRow appends one row. indices must be ascending and in range; values
// must be the same length as indices.
func (b *Builder) AppendRow(indices []int32, values []float64) error {
	if len(indices) != len(values) {
		return fmt.Errorf("sparse: %d indices but %d values", len(indices), len(values))
	}
	for k, c := range indices {
		if c < 0 || int(c) >= b.cols {
			return fmt.Errorf("sparse: column %d out of range for %d columns", c, b.cols)
		}
		if k > 0 && c <= indices[k-1] {
			return fmt.Errorf("sparse: column indices not strictly ascending at %d", c)
		}
	}
	b.indices = append(b.indices, indices...)
	b.data = append(b.data, values...)
	b.indptr = append(b.indptr, len(b.data))
	return nil
}

// Rows returns the number of rows appended so far.
func (b *Builder) Rows() int {
	return len(b.indptr) - 1
}

// Build returns the assembled matrix. The builder must not be reused.
func (b *Builder) Build() *CSR {
	return &CSR{
		Rows:    len(b.indptr) - 1,
		Cols:    b.cols,
		Indptr:  b.indptr,
		Indices: b.indices,
		Data:    b.data,
	}
}
