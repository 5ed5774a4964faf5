package staticgraph

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/staticgraph/internal/conv"
)

// ValidationLevel selects how thoroughly CSR invariants are checked.
type ValidationLevel int

const (
	// ValidateNone trusts the input entirely.
	ValidateNone ValidationLevel = iota
	// ValidateOffsets checks that offsets are non-decreasing and that the
	// sentinel equals the number of targets. O(N).
	ValidateOffsets
	// ValidateFull additionally checks that every node's targets are
	// ascending. O(N + E), parallelized across node chunks.
	ValidateFull
)

// validateChunk is the number of nodes a single ValidateFull task covers.
const validateChunk = 1 << 14

// String returns the name of the level.
func (l ValidationLevel) String() string {
	switch l {
	case ValidateNone:
		return "none"
	case ValidateOffsets:
		return "offsets"
	case ValidateFull:
		return "full"
	default:
		return fmt.Sprintf("ValidationLevel(%d)", int(l))
	}
}

func validate[T cmp.Ordered](ctx context.Context, offsets []uint64, targets []T, level ValidationLevel, workers int) error {
	if level <= ValidateNone {
		return nil
	}
	if err := validateOffsets(offsets, len(targets)); err != nil {
		return err
	}
	if level < ValidateFull {
		return nil
	}
	return validateSorted(ctx, offsets, targets, workers)
}

func validateOffsets(offsets []uint64, numTargets int) error {
	if len(offsets) == 0 {
		if numTargets != 0 {
			return fmt.Errorf("%w: no offsets but %d targets", ErrInvalidOffsets, numTargets)
		}
		return nil
	}

	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return fmt.Errorf("%w: offsets[%d]=%d < offsets[%d]=%d", ErrInvalidOffsets, i, offsets[i], i-1, offsets[i-1])
		}
	}

	want, err := conv.IntToUint64(numTargets)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOffsets, err)
	}
	if sentinel := offsets[len(offsets)-1]; sentinel != want {
		return fmt.Errorf("%w: sentinel %d != %d targets", ErrInvalidOffsets, sentinel, numTargets)
	}
	return nil
}

// validateSorted requires offsets to have passed validateOffsets.
func validateSorted[T cmp.Ordered](ctx context.Context, offsets []uint64, targets []T, workers int) error {
	nodes := len(offsets) - 1
	if nodes <= 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := 0; lo < nodes; lo += validateChunk {
		hi := min(lo+validateChunk, nodes)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				if !slices.IsSorted(targets[offsets[i]:offsets[i+1]]) {
					return fmt.Errorf("%w: node %d", ErrUnsortedEdges, i)
				}
			}
			return nil
		})
	}

	return g.Wait()
}
