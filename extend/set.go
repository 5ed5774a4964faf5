package extend

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// SetExtender is a unary relation over uint32 values backed by a Roaring
// bitmap. The prefix is ignored, which lets a driver treat a value filter
// (e.g. "nodes with label X") as one more relation on the variable.
type SetExtender[P any] struct {
	set *roaring.Bitmap
}

var _ PrefixExtender[uint64, uint32] = (*SetExtender[uint64])(nil)

// NewSetExtender copies set; later changes to set are not observed.
func NewSetExtender[P any](set *roaring.Bitmap) *SetExtender[P] {
	frozen := set.Clone()
	frozen.RunOptimize()
	return &SetExtender[P]{set: frozen}
}

// Count implements PrefixExtender.
func (s *SetExtender[P]) Count(P) uint64 {
	return s.set.GetCardinality()
}

// Propose implements PrefixExtender. Values are ascending.
func (s *SetExtender[P]) Propose(_ P, list *[]uint32) {
	out := (*list)[:0]
	it := s.set.Iterator()
	for it.HasNext() {
		out = append(out, it.Next())
	}
	*list = out
}

// Intersect implements PrefixExtender.
func (s *SetExtender[P]) Intersect(_ P, list *[]uint32) {
	in := *list
	w := 0
	for _, v := range in {
		if s.set.Contains(v) {
			in[w] = v
			w++
		}
	}
	clear(in[w:])
	*list = in[:w]
}
