// Package scale decodes SCALE-encoded on-chain records against an explicit type registry.
package scale

import (
	"math/big"
)

// Value is a node of a decoded value tree. Leaves are integers, booleans and byte
// sequences; interior nodes are structs, enums, vectors and options.
type Value interface {
	isValue()
}

type (
	// U8 is an unsigned 8-bit integer leaf.
	U8 uint8
	// U16 is an unsigned 16-bit integer leaf.
	U16 uint16
	// U32 is an unsigned 32-bit integer leaf.
	U32 uint32
	// U64 is an unsigned 64-bit integer leaf.
	U64 uint64
	// Bool is a boolean leaf.
	Bool bool
	// Bytes is a length-prefixed byte sequence leaf (Vec<u8>).
	Bytes []byte
	// AccountID is a raw 32-byte account identifier leaf.
	AccountID [32]byte
	// Vec is an ordered list of values of the same type.
	Vec []Value
	// Struct is an ordered field map.
	Struct []Field
)

// U128 is an unsigned 128-bit integer leaf.
type U128 struct {
	Int *big.Int
}

// NewU128 wraps v as a U128 leaf.
func NewU128(v *big.Int) U128 {
	return U128{Int: new(big.Int).Set(v)}
}

// NewU128FromUint64 builds a U128 leaf from a uint64.
func NewU128FromUint64(v uint64) U128 {
	return U128{Int: new(big.Int).SetUint64(v)}
}

// Field is a named struct member.
type Field struct {
	Name  string
	Value Value
}

// Enum is a decoded enum discriminant together with its variant name.
type Enum struct {
	Index   uint8
	Variant string
}

// Option is an optional value; a nil Some means None.
type Option struct {
	Some Value
}

// IsNone reports whether the option holds no value.
func (o Option) IsNone() bool {
	return o.Some == nil
}

// Get returns the value of the named field.
func (s Struct) Get(name string) (Value, bool) {
	for _, f := range s {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Names returns field names in declaration order.
func (s Struct) Names() []string {
	names := make([]string, 0, len(s))
	for _, f := range s {
		names = append(names, f.Name)
	}
	return names
}

func (U8) isValue()        {}
func (U16) isValue()       {}
func (U32) isValue()       {}
func (U64) isValue()       {}
func (U128) isValue()      {}
func (Bool) isValue()      {}
func (Bytes) isValue()     {}
func (AccountID) isValue() {}
func (Vec) isValue()       {}
func (Struct) isValue()    {}
func (Enum) isValue()      {}
func (Option) isValue()    {}
