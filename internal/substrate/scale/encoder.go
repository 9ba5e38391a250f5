package scale

import (
	"bytes"
	"fmt"
	"math/big"

	gsrpcscale "github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Encode serializes v as typeString. It is the inverse of DecodeType.
func (r *Registry) Encode(v Value, typeString string) ([]byte, error) {
	t, err := r.resolve(typeString)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	e := encoder{scale: gsrpcscale.NewEncoder(&buf)}
	if err := e.encode(t, v); err != nil {
		return nil, fmt.Errorf("encode %s: %w", typeString, err)
	}
	return buf.Bytes(), nil
}

type encoder struct {
	scale *gsrpcscale.Encoder
}

func mismatch(t *node, v Value) error {
	return fmt.Errorf("%w: %T as %s", ErrValueMismatch, v, t.name)
}

func (e encoder) encode(t *node, v Value) error {
	switch t.kind {
	case kindU8, kindU16, kindU32, kindU64, kindU128:
		n, err := uintOf(t, v)
		if err != nil {
			return err
		}
		return e.scale.Write(leBytes(n, t.width()))
	case kindBool:
		b, ok := v.(Bool)
		if !ok {
			return mismatch(t, v)
		}
		if b {
			return e.scale.PushByte(1)
		}
		return e.scale.PushByte(0)
	case kindBytes:
		b, ok := v.(Bytes)
		if !ok {
			return mismatch(t, v)
		}
		if err := e.scale.EncodeUintCompact(*new(big.Int).SetInt64(int64(len(b)))); err != nil {
			return err
		}
		return e.write(b)
	case kindAccountID:
		id, ok := v.(AccountID)
		if !ok {
			return mismatch(t, v)
		}
		return e.scale.Write(id[:])
	case kindCompact:
		n, err := uintOf(t.elem, v)
		if err != nil {
			return err
		}
		return e.scale.EncodeUintCompact(*n)
	case kindVec:
		items, ok := v.(Vec)
		if !ok {
			return mismatch(t, v)
		}
		if err := e.scale.EncodeUintCompact(*new(big.Int).SetInt64(int64(len(items)))); err != nil {
			return err
		}
		for _, item := range items {
			if err := e.encode(t.elem, item); err != nil {
				return err
			}
		}
		return nil
	case kindOption:
		o, ok := v.(Option)
		if !ok {
			return mismatch(t, v)
		}
		if o.IsNone() {
			return e.scale.PushByte(0)
		}
		if err := e.scale.PushByte(1); err != nil {
			return err
		}
		return e.encode(t.elem, o.Some)
	case kindStruct:
		s, ok := v.(Struct)
		if !ok {
			return mismatch(t, v)
		}
		for _, f := range t.fields {
			fv, ok := s.Get(f.name)
			if !ok {
				return fmt.Errorf("%w: %s missing field %q", ErrValueMismatch, t.name, f.name)
			}
			if err := e.encode(f.typ, fv); err != nil {
				return err
			}
		}
		return nil
	case kindEnum:
		en, ok := v.(Enum)
		if !ok {
			return mismatch(t, v)
		}
		for i, name := range t.variants {
			if name == en.Variant {
				return e.scale.PushByte(byte(i))
			}
		}
		return fmt.Errorf("%w: %s has no variant %q", ErrUnknownVariant, t.name, en.Variant)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, t.name)
	}
}

func (e encoder) write(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return e.scale.Write(b)
}

// uintOf accepts any unsigned leaf that fits the target width.
func uintOf(t *node, v Value) (*big.Int, error) {
	var n *big.Int
	switch x := v.(type) {
	case U8:
		n = new(big.Int).SetUint64(uint64(x))
	case U16:
		n = new(big.Int).SetUint64(uint64(x))
	case U32:
		n = new(big.Int).SetUint64(uint64(x))
	case U64:
		n = new(big.Int).SetUint64(uint64(x))
	case U128:
		if x.Int == nil {
			return nil, mismatch(t, v)
		}
		n = new(big.Int).Set(x.Int)
	default:
		return nil, mismatch(t, v)
	}
	if n.Sign() < 0 || n.BitLen() > t.width()*8 {
		return nil, fmt.Errorf("%w: %s overflows %s", ErrValueMismatch, n, t.name)
	}
	return n, nil
}

func leBytes(n *big.Int, width int) []byte {
	out := make([]byte, width)
	be := n.Bytes()
	for i := range be {
		out[len(be)-1-i] = be[i]
	}
	return out
}
