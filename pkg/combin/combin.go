// Package combin enumerates k-element subsets of [0,n)
package combin

import "iter"

// Count returns the binomial coefficient C(n, k)
// Returns 0 when k is outside [0,n].
func Count(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}

	if k > n-k {
		k = n - k
	}

	result := 1
	for i := 1; i <= k; i++ {
		// exact at every step: the running value is C(n-k+i, i)
		result = result * (n - k + i) / i
	}

	return result
}

// Combinations yields every k-subset of [0,n) in lexicographic order
// The sequence is lazy and may be ranged over more than once. The yielded
// slice is reused between iterations; copy it to keep it.
// k == 0 yields a single empty subset and k outside [0,n] yields nothing.
func Combinations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 0 || n < 0 || k > n {
			return
		}

		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}

		for {
			if !yield(idx) {
				return
			}

			// find the rightmost index that can still move right
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}

			if i < 0 {
				return
			}

			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// Select copies the items at idx into dst and returns it
// dst is resized as needed so callers can reuse one buffer across iterations.
func Select[T any](dst []T, items []T, idx []int) []T {
	dst = dst[:0]
	for _, i := range idx {
		dst = append(dst, items[i])
	}

	return dst
}
