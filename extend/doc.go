// Package extend adapts relations into prefix extenders for
// worst-case-optimal (leapfrog triejoin style) join evaluation.
//
// A join driver binds variables one at a time. For the current prefix it
// asks every relation touching the next variable for a Count, lets the
// relation with the smallest count Propose candidates, and then has every
// other relation Intersect the candidate list in place.
//
//	follows := extend.New(g, func(p [2]uint32) uint64 { return uint64(p[0]) })
//	likes := extend.New(h, func(p [2]uint32) uint64 { return uint64(p[1]) })
//
//	var cands []uint32
//	if follows.Count(p) <= likes.Count(p) {
//	    follows.Propose(p, &cands)
//	    likes.Intersect(p, &cands)
//	} else {
//	    likes.Propose(p, &cands)
//	    follows.Intersect(p, &cands)
//	}
//
// Extenders hold no mutable state. They can be shared across goroutines as
// long as each call uses its own candidate list.
package extend
