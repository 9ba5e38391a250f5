package scale

import (
	"bytes"
	"fmt"
	"math/big"

	gsrpcscale "github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Decode decodes input as typeName, optionally wrapped as Option<…> and then Vec<…>.
// Accepted inputs are []byte, *Buffer and []int.
func (r *Registry) Decode(input any, typeName string, isVec, isOption bool) (Value, error) {
	typeString := typeName
	if isOption {
		typeString = "Option<" + typeString + ">"
	}
	if isVec {
		typeString = "Vec<" + typeString + ">"
	}

	data, err := InputBytes(input)
	if err != nil {
		return nil, &DecodeError{Type: typeString, Err: err}
	}
	return r.DecodeType(data, typeString)
}

// DecodeType decodes data against an arbitrary type string. The whole buffer must be consumed.
func (r *Registry) DecodeType(data []byte, typeString string) (Value, error) {
	t, err := r.resolve(typeString)
	if err != nil {
		return nil, &DecodeError{Type: typeString, Err: err}
	}

	d := newDecoder(data)
	v, err := d.decode(t)
	if err != nil {
		return nil, err
	}
	if left := d.remaining(); left != 0 {
		return nil, d.fail(t, fmt.Errorf("%w: %d trailing bytes", ErrMalformedInput, left))
	}
	return v, nil
}

// decoder walks the buffer left to right and never backtracks.
type decoder struct {
	reader *bytes.Reader
	scale  *gsrpcscale.Decoder
	size   int
}

func newDecoder(data []byte) *decoder {
	reader := bytes.NewReader(data)
	return &decoder{
		reader: reader,
		scale:  gsrpcscale.NewDecoder(reader),
		size:   len(data),
	}
}

func (d *decoder) remaining() int {
	return d.reader.Len()
}

func (d *decoder) offset() int {
	return d.size - d.reader.Len()
}

func (d *decoder) fail(t *node, err error) error {
	return &DecodeError{Type: t.name, Offset: d.offset(), Err: err}
}

func (d *decoder) read(t *node, n int) ([]byte, error) {
	if n > d.remaining() {
		return nil, d.fail(t, fmt.Errorf("%w: need %d bytes, %d left", ErrMalformedInput, n, d.remaining()))
	}
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if err := d.scale.Read(buf); err != nil {
		return nil, d.fail(t, fmt.Errorf("%w: %v", ErrMalformedInput, err))
	}
	return buf, nil
}

func (d *decoder) readByte(t *node) (byte, error) {
	if d.remaining() < 1 {
		return 0, d.fail(t, fmt.Errorf("%w: need 1 byte, 0 left", ErrMalformedInput))
	}
	b, err := d.scale.ReadOneByte()
	if err != nil {
		return 0, d.fail(t, fmt.Errorf("%w: %v", ErrMalformedInput, err))
	}
	return b, nil
}

// length reads a compact length prefix and checks it against the bytes left, which is
// sound because every registered type occupies at least one byte.
func (d *decoder) length(t *node) (int, error) {
	if d.remaining() < 1 {
		return 0, d.fail(t, fmt.Errorf("%w: missing length prefix", ErrMalformedInput))
	}
	n, err := d.scale.DecodeUintCompact()
	if err != nil {
		return 0, d.fail(t, fmt.Errorf("%w: length prefix: %v", ErrMalformedInput, err))
	}
	if !n.IsUint64() || n.Uint64() > uint64(d.remaining()) {
		return 0, d.fail(t, fmt.Errorf("%w: length %s exceeds %d remaining bytes", ErrMalformedInput, n, d.remaining()))
	}
	return int(n.Uint64()), nil
}

func (d *decoder) decode(t *node) (Value, error) {
	switch t.kind {
	case kindU8, kindU16, kindU32, kindU64, kindU128:
		b, err := d.read(t, t.width())
		if err != nil {
			return nil, err
		}
		return uintValue(t, leUint(b)), nil
	case kindBool:
		b, err := d.readByte(t)
		if err != nil {
			return nil, err
		}
		if b > 1 {
			return nil, d.fail(t, fmt.Errorf("%w: bool byte %#x", ErrMalformedInput, b))
		}
		return Bool(b == 1), nil
	case kindBytes:
		n, err := d.length(t)
		if err != nil {
			return nil, err
		}
		b, err := d.read(t, n)
		if err != nil {
			return nil, err
		}
		return Bytes(b), nil
	case kindAccountID:
		b, err := d.read(t, len(AccountID{}))
		if err != nil {
			return nil, err
		}
		var id AccountID
		copy(id[:], b)
		return id, nil
	case kindCompact:
		return d.decodeCompact(t)
	case kindVec:
		n, err := d.length(t)
		if err != nil {
			return nil, err
		}
		items := make(Vec, 0, n)
		for i := 0; i < n; i++ {
			v, err := d.decode(t.elem)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case kindOption:
		tag, err := d.readByte(t)
		if err != nil {
			return nil, err
		}
		switch tag {
		case 0:
			return Option{}, nil
		case 1:
			v, err := d.decode(t.elem)
			if err != nil {
				return nil, err
			}
			return Option{Some: v}, nil
		default:
			return nil, d.fail(t, fmt.Errorf("%w: option tag %#x", ErrMalformedInput, tag))
		}
	case kindStruct:
		fields := make(Struct, 0, len(t.fields))
		for _, f := range t.fields {
			v, err := d.decode(f.typ)
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Name: f.name, Value: v})
		}
		return fields, nil
	case kindEnum:
		idx, err := d.readByte(t)
		if err != nil {
			return nil, err
		}
		if int(idx) >= len(t.variants) {
			return nil, d.fail(t, fmt.Errorf("%w: discriminant %d, %d variants", ErrUnknownVariant, idx, len(t.variants)))
		}
		return Enum{Index: idx, Variant: t.variants[idx]}, nil
	default:
		return nil, d.fail(t, fmt.Errorf("%w: %q", ErrUnknownType, t.name))
	}
}

func (d *decoder) decodeCompact(t *node) (Value, error) {
	if d.remaining() < 1 {
		return nil, d.fail(t, fmt.Errorf("%w: need 1 byte, 0 left", ErrMalformedInput))
	}
	n, err := d.scale.DecodeUintCompact()
	if err != nil {
		return nil, d.fail(t, fmt.Errorf("%w: %v", ErrMalformedInput, err))
	}
	if n.BitLen() > t.elem.width()*8 {
		return nil, d.fail(t, fmt.Errorf("%w: compact %s overflows %s", ErrMalformedInput, n, t.elem.name))
	}
	return uintValue(t.elem, n), nil
}

// leUint interprets b as a little-endian unsigned integer.
func leUint(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be)
}

func uintValue(t *node, n *big.Int) Value {
	switch t.kind {
	case kindU8:
		return U8(n.Uint64())
	case kindU16:
		return U16(n.Uint64())
	case kindU32:
		return U32(n.Uint64())
	case kindU64:
		return U64(n.Uint64())
	default:
		return U128{Int: n}
	}
}
