package sparse

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/require"
)

func buildCSR(t *testing.T, cols int, rows [][2][]float64) *CSR {
	t.Helper()
	b := NewBuilder(cols)
	for _, r := range rows {
		idx := make([]int32, len(r[0]))
		for i, v := range r[0] {
			idx[i] = int32(v)
		}
		require.NoError(t, b.AppendRow(idx, r[1]))
	}
	return b.Build()
}

func TestBuilder_Basic(t *testing.T) {
	m := buildCSR(t, 4, [][2][]float64{
		{{0, 2}, {1.5, 2.5}},
		{{}, {}},
		{{3}, {9}},
	})

	require.Equal(t, 3, m.Rows)
	require.Equal(t, 4, m.Cols)
	require.Equal(t, 3, m.NNZ())
	require.Equal(t, []int{0, 2, 2, 3}, m.Indptr)

	require.Equal(t, 1.5, m.At(0, 0))
	require.Equal(t, 2.5, m.At(0, 2))
	require.Equal(t, 0.0, m.At(0, 1))
	require.Equal(t, 9.0, m.At(2, 3))
}

func TestBuilder_Rejects(t *testing.T) {
	b := NewBuilder(3)
	require.Error(t, b.AppendRow([]int32{0, 1}, []float64{1}))
	require.Error(t, b.AppendRow([]int32{3}, []float64{1}))
	require.Error(t, b.AppendRow([]int32{1, 1}, []float64{1, 2}))
	require.Error(t, b.AppendRow([]int32{2, 0}, []float64{1, 2}))
}

func TestSelectRows(t *testing.T) {
	m := buildCSR(t, 3, [][2][]float64{
		{{0}, {1}},
		{{1}, {2}},
		{{2}, {3}},
	})

	g := m.SelectRows([]int{2, 0, 1})
	require.Equal(t, 3, g.Rows)
	require.Equal(t, 3.0, g.At(0, 2))
	require.Equal(t, 1.0, g.At(1, 0))
	require.Equal(t, 2.0, g.At(2, 1))

	// Source matrix untouched.
	require.Equal(t, 1.0, m.At(0, 0))
}

func TestVstack(t *testing.T) {
	a := buildCSR(t, 2, [][2][]float64{
		{{0}, {1}},
	})
	b := buildCSR(t, 2, [][2][]float64{
		{{1}, {2}},
		{{0, 1}, {3, 4}},
	})

	m, err := Vstack(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows)
	require.Equal(t, 2, m.Cols)
	require.Equal(t, []int{0, 1, 2, 4}, m.Indptr)
	require.Equal(t, 1.0, m.At(0, 0))
	require.Equal(t, 2.0, m.At(1, 1))
	require.Equal(t, 4.0, m.At(2, 1))
}

func TestVstack_ColumnMismatch(t *testing.T) {
	a := buildCSR(t, 2, [][2][]float64{{{0}, {1}}})
	b := buildCSR(t, 3, [][2][]float64{{{0}, {1}}})

	_, err := Vstack(a, b)
	require.Error(t, err)

	_, err = Vstack()
	require.Error(t, err)
}

func TestFromBitmapRows(t *testing.T) {
	r0 := roaring.BitmapOf(0, 1)
	r1 := roaring.BitmapOf(0)

	m, err := FromBitmapRows([]*roaring.Bitmap{r0, r1}, 2)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows)
	require.Equal(t, 2, m.Cols)
	require.Equal(t, 1.0, m.At(0, 0))
	require.Equal(t, 1.0, m.At(0, 1))
	require.Equal(t, 1.0, m.At(1, 0))
	require.Equal(t, 0.0, m.At(1, 1))
}

func TestFromBitmapRows_OutOfRange(t *testing.T) {
	_, err := FromBitmapRows([]*roaring.Bitmap{roaring.BitmapOf(5)}, 2)
	require.Error(t, err)
}
