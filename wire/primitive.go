package wire

import (
	"fmt"
	"math"

	"github.com/go-frame/framecodec"
	"github.com/go-frame/framecodec/bs"
)

type primKind uint8

const (
	primInt primKind = iota
	primFloat
)

// primitiveCodec implements every fixed-width [framecodec.Primitive] tag:
// the signed/unsigned integers and the IEEE-754 floats, in either
// endianness. Decoded integers are always int64 and decoded floats are
// always float64, per the canonical numeric representation documented on
// [framecodec.Primitive].
type primitiveCodec struct {
	width     int
	bigEndian bool
	class     primKind
	signed    bool
}

func compilePrimitive(tag framecodec.Primitive) (*primitiveCodec, error) {
	switch tag {
	case framecodec.Byte:
		return &primitiveCodec{width: 1, bigEndian: true, class: primInt, signed: true}, nil
	case framecodec.Int16:
		return &primitiveCodec{width: 2, bigEndian: true, class: primInt, signed: true}, nil
	case framecodec.UInt16:
		return &primitiveCodec{width: 2, bigEndian: true, class: primInt, signed: false}, nil
	case framecodec.Int32:
		return &primitiveCodec{width: 4, bigEndian: true, class: primInt, signed: true}, nil
	case framecodec.UInt32:
		return &primitiveCodec{width: 4, bigEndian: true, class: primInt, signed: false}, nil
	case framecodec.Int64:
		return &primitiveCodec{width: 8, bigEndian: true, class: primInt, signed: true}, nil
	case framecodec.UInt64:
		return &primitiveCodec{width: 8, bigEndian: true, class: primInt, signed: false}, nil
	case framecodec.Float32:
		return &primitiveCodec{width: 4, bigEndian: true, class: primFloat}, nil
	case framecodec.Float64:
		return &primitiveCodec{width: 8, bigEndian: true, class: primFloat}, nil
	case framecodec.Int16LE:
		return &primitiveCodec{width: 2, bigEndian: false, class: primInt, signed: true}, nil
	case framecodec.UInt16LE:
		return &primitiveCodec{width: 2, bigEndian: false, class: primInt, signed: false}, nil
	case framecodec.Int32LE:
		return &primitiveCodec{width: 4, bigEndian: false, class: primInt, signed: true}, nil
	case framecodec.UInt32LE:
		return &primitiveCodec{width: 4, bigEndian: false, class: primInt, signed: false}, nil
	case framecodec.Int64LE:
		return &primitiveCodec{width: 8, bigEndian: false, class: primInt, signed: true}, nil
	case framecodec.UInt64LE:
		return &primitiveCodec{width: 8, bigEndian: false, class: primInt, signed: false}, nil
	case framecodec.Float32LE:
		return &primitiveCodec{width: 4, bigEndian: false, class: primFloat}, nil
	case framecodec.Float64LE:
		return &primitiveCodec{width: 8, bigEndian: false, class: primFloat}, nil
	default:
		return nil, fmt.Errorf("wire: unknown primitive tag %v", tag)
	}
}

func (c *primitiveCodec) Sizeof() (int, bool) { return c.width, true }

func (c *primitiveCodec) kind() Kind { return KindPrimitive }

func (c *primitiveCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	if seq.Len() < c.width {
		return framecodec.Need(c, seq), nil
	}
	head, err := seq.Take(c.width)
	if err != nil {
		return framecodec.ReadResult{}, err
	}
	rem, err := seq.Drop(c.width)
	if err != nil {
		return framecodec.ReadResult{}, err
	}
	u := readUint(head.Contiguous(), c.bigEndian)
	var val any
	switch c.class {
	case primInt:
		if c.signed {
			val = signExtend(u, c.width)
		} else {
			val = int64(u)
		}
	case primFloat:
		if c.width == 4 {
			val = float64(math.Float32frombits(uint32(u)))
		} else {
			val = math.Float64frombits(u)
		}
	}
	return framecodec.Done(val, rem), nil
}

func (c *primitiveCodec) Write(v any) ([][]byte, error) {
	buf := make([]byte, c.width)
	switch c.class {
	case primInt:
		n, ok := framecodec.CoerceInt64(v)
		if !ok {
			return nil, framecodec.ShapeMismatch("expected an integer, got %T", v)
		}
		if err := checkIntRange(n, c.width, c.signed); err != nil {
			return nil, err
		}
		writeUint(buf, uint64(n), c.bigEndian)
	case primFloat:
		f, ok := framecodec.CoerceFloat64(v)
		if !ok {
			return nil, framecodec.ShapeMismatch("expected a float, got %T", v)
		}
		var bits uint64
		if c.width == 4 {
			bits = uint64(math.Float32bits(float32(f)))
		} else {
			bits = math.Float64bits(f)
		}
		writeUint(buf, bits, c.bigEndian)
	}
	return [][]byte{buf}, nil
}
