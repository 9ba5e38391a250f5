// Package safe provides integer conversions with range checks.
package safe

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a value does not fit the target type.
var ErrOutOfRange = errors.New("value out of range")

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint32 converts v to uint32.
func Uint32[T Integer](v T) (uint32, error) {
	u, err := unsigned(v, math.MaxUint32, "uint32")
	return uint32(u), err
}

func unsigned[T Integer](v T, limit uint64, target string) (uint64, error) {
	if v < 0 || uint64(v) > limit {
		return 0, fmt.Errorf("%w: %d does not fit %s", ErrOutOfRange, v, target)
	}
	return uint64(v), nil
}
