// Package safe provides numeric conversions that reject values outside the target range.
package safe

import (
	"fmt"
	"math"
)

type signed interface {
	~int | ~int32 | ~int64
}

// Uint32 converts a signed integer to uint32, failing on negatives and overflow.
func Uint32[T signed](v T) (uint32, error) {
	if v < 0 || int64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Uint64 converts a signed integer to uint64, failing on negatives.
func Uint64[T signed](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}
