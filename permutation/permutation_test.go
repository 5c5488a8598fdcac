package permutation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInverse_Scatter(t *testing.T) {
	p := []int{2, 0, 3, 1}
	s := Inverse(p)
	require.Equal(t, []int{1, 3, 0, 2}, s)

	for i := range p {
		require.Equal(t, i, s[p[i]])
	}
}

func TestInverse_Involution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 1; n <= 64; n++ {
		p := rng.Perm(n)
		require.Equal(t, p, Inverse(Inverse(p)), "n=%d", n)
	}
}

func TestFind_Scenario(t *testing.T) {
	a := []int32{3, 1, 2}
	b := []int32{1, 2, 3}

	r := Find(a, b)
	require.Equal(t, []int{1, 2, 0}, r)

	for i := range b {
		require.Equal(t, b[i], a[r[i]])
	}
}

func TestFind_Identity(t *testing.T) {
	a := []int32{42, 7, 19, 3, 11}
	require.Equal(t, Identity(len(a)), Find(a, a))
}

func TestFind_RandomPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(200)

		// Distinct values, then two independent orderings of them.
		vals := make([]int32, n)
		for i := range vals {
			vals[i] = int32(i*3 + 100)
		}
		a := Apply(vals, rng.Perm(n))
		b := Apply(vals, rng.Perm(n))

		r := Find(a, b)
		require.Equal(t, b, Apply(a, r))
	}
}

func TestFindStrict_MatchesFind(t *testing.T) {
	a := []int32{9, 4, 6, 1}
	b := []int32{1, 6, 9, 4}

	r, err := FindStrict(a, b)
	require.NoError(t, err)
	require.Equal(t, Find(a, b), r)
}

func TestFindStrict_Inconsistent(t *testing.T) {
	tests := []struct {
		name string
		a, b []int32
	}{
		{"length mismatch", []int32{1, 2, 3}, []int32{1, 2}},
		{"disjoint values", []int32{1, 2, 3}, []int32{4, 5, 6}},
		{"one value differs", []int32{1, 2, 3}, []int32{3, 2, 4}},
		{"duplicates", []int32{1, 2, 2}, []int32{2, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FindStrict(tt.a, tt.b)
			require.ErrorIs(t, err, ErrInconsistent)
		})
	}
}

func TestApply(t *testing.T) {
	src := []string{"a", "b", "c"}
	require.Equal(t, []string{"c", "a", "b"}, Apply(src, []int{2, 0, 1}))
}
