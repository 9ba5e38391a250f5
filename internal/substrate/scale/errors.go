package scale

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput means the buffer is shorter than the type requires or carries invalid data.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnknownType means a type name is neither registered nor a primitive.
	ErrUnknownType = errors.New("unknown type")
	// ErrUnknownVariant means an enum discriminant is outside the declared value list.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrInvalidByteValue means an integer input element does not fit in one byte.
	ErrInvalidByteValue = errors.New("invalid byte value")
	// ErrUnsupportedInput means the decoder input is not one of the accepted forms.
	ErrUnsupportedInput = errors.New("unsupported input")
	// ErrValueMismatch means a value does not have the shape of the type it is encoded as.
	ErrValueMismatch = errors.New("value does not match type")
	// ErrInvalidDefinition means a type definition is structurally invalid.
	ErrInvalidDefinition = errors.New("invalid type definition")
)

// DecodeError describes where decoding of a type failed.
type DecodeError struct {
	Type   string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s at offset %d: %v", e.Type, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
