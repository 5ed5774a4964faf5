package extend

import "cmp"

// IntersectSorted keeps the values of list that occur in the ascending
// slice edges, preserving list's order and reusing its backing array.
// list must be ascending for the result to be exact.
func IntersectSorted[T cmp.Ordered](list, edges []T) []T {
	return intersect(list, edges, DefaultGallopRatio)
}

func intersect[T cmp.Ordered](list, edges []T, ratio int) []T {
	if len(list) < len(edges)/ratio {
		return intersectGallop(list, edges)
	}
	return intersectMerge(list, edges)
}

// intersectGallop advances the edge cursor with Gallop; the cursor never
// moves backwards across the pass.
func intersectGallop[T cmp.Ordered](list, edges []T) []T {
	w := 0
	for _, v := range list {
		edges = Gallop(edges, v)
		if len(edges) > 0 && edges[0] == v {
			list[w] = v
			w++
		}
	}
	clear(list[w:])
	return list[:w]
}

// intersectMerge is a plain forward merge, cheaper than galloping when
// both sides have similar length.
func intersectMerge[T cmp.Ordered](list, edges []T) []T {
	w := 0
	for _, v := range list {
		for len(edges) > 0 && edges[0] < v {
			edges = edges[1:]
		}
		if len(edges) > 0 && edges[0] == v {
			list[w] = v
			w++
		}
	}
	clear(list[w:])
	return list[:w]
}
