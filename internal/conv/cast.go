package conv

import (
	"fmt"
	"math"
)

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// Int64ToInt converts int64 to int safely.
// File sizes arrive as int64 and are used as slice lengths.
func Int64ToInt(v int64) (int, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (negative)", v)
	}
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}
