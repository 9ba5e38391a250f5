package scale

import (
	"fmt"
)

// Buffer is a byte sequence already wrapped for decoding, as returned by record RPCs.
type Buffer struct {
	data []byte
}

// NewBuffer wraps data without copying it.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the wrapped bytes.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// InputBytes converts an accepted decoder input into raw bytes.
func InputBytes(input any) ([]byte, error) {
	switch in := input.(type) {
	case nil:
		return nil, nil
	case []byte:
		return in, nil
	case *Buffer:
		return in.Bytes(), nil
	case []int:
		return BytesFromInts(in)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedInput, input)
	}
}

// BytesFromInts converts a sequence of small integers to bytes, one byte per element.
func BytesFromInts(values []int) ([]byte, error) {
	out := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 0xff {
			return nil, fmt.Errorf("%w: element %d is %d", ErrInvalidByteValue, i, v)
		}
		out[i] = byte(v)
	}
	return out, nil
}
