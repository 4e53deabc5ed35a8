package conv

import (
	"fmt"
	"math"
)

// Uint64ToUint32 converts uint64 to uint32 safely.
func Uint64ToUint32(v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// IntToInt64 converts a non-negative int to int64.
func IntToInt64(v int) (int64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int64 (negative)", v)
	}
	return int64(v), nil
}

// MulInt multiplies two non-negative ints, reporting overflow.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("negative operand: %d * %d", a, b)
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, fmt.Errorf("integer overflow: %d * %d exceeds max int", a, b)
	}
	return a * b, nil
}

// Product returns the number of elements described by dims.
// An empty dims describes a scalar and yields 1.
func Product(dims []int) (int, error) {
	n := 1
	for i, d := range dims {
		if d < 0 {
			return 0, fmt.Errorf("dimension %d is negative: %d", i, d)
		}
		var err error
		if n, err = MulInt(n, d); err != nil {
			return 0, err
		}
	}
	return n, nil
}
