// Package permutation reconciles two independently derived orderings of the
// same document identifier set.
//
// The RCV1 vector files and the topic assignment file list the same documents
// in different orders. Neither order is sorted, so rows of one matrix cannot
// be matched to rows of the other by position. Find computes the index
// permutation that reindexes data laid out in one order into the other,
// purely via sort ranks: equal rank in the two sorted sequences implies equal
// underlying identifier.
package permutation

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInconsistent is returned by FindStrict when the two sequences are not
// permutations of the same duplicate-free value set.
var ErrInconsistent = errors.New("sequences are not orderings of the same identifier set")

// Inverse returns the inverse s of permutation p, such that s[p[i]] = i for
// every i. p must contain each index in [0, len(p)) exactly once; out-of-range
// entries panic, duplicate entries produce a non-permutation silently.
func Inverse(p []int) []int {
	s := make([]int, len(p))
	for i, v := range p {
		s[v] = i
	}
	return s
}

// Find returns the permutation r from a to b: a[r[i]] == b[i] for every i.
// Equivalently, data whose rows are ordered like a can be gathered by r to
// match the order of b.
//
// Both sequences must be permutations of the same duplicate-free value set.
// This is not checked; a violation yields a silently wrong result. Use
// FindStrict when the inputs come from independent files.
func Find(a, b []int32) []int {
	t := argsort(a)
	u := argsort(b)
	u_ := Inverse(u)

	// u_[i] is the rank of b[i]; t[rank] is the position in a holding the
	// value of that rank.
	r := make([]int, len(b))
	for i := range r {
		r[i] = t[u_[i]]
	}
	return r
}

// FindStrict is Find with the precondition enforced: it verifies that a and b
// are the same length and contain the same duplicate-free value set, and
// returns ErrInconsistent otherwise.
func FindStrict(a, b []int32) ([]int, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: lengths %d and %d", ErrInconsistent, len(a), len(b))
	}

	t := argsort(a)
	u := argsort(b)
	for i := range t {
		if a[t[i]] != b[u[i]] {
			return nil, fmt.Errorf("%w: rank %d holds %d and %d", ErrInconsistent, i, a[t[i]], b[u[i]])
		}
		if i > 0 && a[t[i]] == a[t[i-1]] {
			return nil, fmt.Errorf("%w: duplicate identifier %d", ErrInconsistent, a[t[i]])
		}
	}

	u_ := Inverse(u)
	r := make([]int, len(b))
	for i := range r {
		r[i] = t[u_[i]]
	}
	return r, nil
}

// Apply gathers src by p: out[i] = src[p[i]]. It is the slice counterpart of
// the row gather used for matrices.
func Apply[T any](src []T, p []int) []T {
	out := make([]T, len(p))
	for i, v := range p {
		out[i] = src[v]
	}
	return out
}

// Identity returns the identity permutation of length n.
func Identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// argsort returns the indices that would sort v ascending.
func argsort(v []int32) []int {
	idx := Identity(len(v))
	sort.Slice(idx, func(i, j int) bool { return v[idx[i]] < v[idx[j]] })
	return idx
}
