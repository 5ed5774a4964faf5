package extend

import "cmp"

// Gallop returns the longest suffix of the ascending slice s whose first
// element is >= v. It probes at doubling distances until it overshoots,
// then halves back down to the last element < v, using O(log k)
// comparisons where k is the number of skipped elements.
func Gallop[T cmp.Ordered](s []T, v T) []T {
	if len(s) == 0 || s[0] >= v {
		return s
	}

	// Invariant: s[0] < v.
	step := 1
	for step < len(s) && s[step] < v {
		s = s[step:]
		step <<= 1
	}

	step >>= 1
	for step > 0 {
		if step < len(s) && s[step] < v {
			s = s[step:]
		}
		step >>= 1
	}

	return s[1:]
}
