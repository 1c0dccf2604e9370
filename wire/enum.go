package wire

import (
	"github.com/go-frame/framecodec"
	"github.com/go-frame/framecodec/bs"
)

// enumCodec implements [framecodec.Enum]: a bijection between string tags
// and a 16-bit signed wire value, stored as a plain [framecodec.Int16].
type enumCodec struct {
	storage *primitiveCodec
	e       framecodec.Enum
}

func compileEnum(e framecodec.Enum) (framecodec.Codec, error) {
	storage, err := compilePrimitive(framecodec.Int16)
	if err != nil {
		return nil, err
	}
	return &enumCodec{storage: storage, e: e}, nil
}

func (c *enumCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	return composeCallback(c.storage, func(v any, rem bs.Sequence) (framecodec.ReadResult, error) {
		n, _ := framecodec.CoerceInt64(v)
		tag, ok := c.e.Tag(int16(n))
		if !ok {
			return framecodec.ReadResult{}, &framecodec.UnknownEnumValueError{Value: int16(n)}
		}
		return framecodec.Done(tag, rem), nil
	}).Read(seq)
}

func (c *enumCodec) Write(v any) ([][]byte, error) {
	tag, ok := v.(string)
	if !ok {
		return nil, framecodec.ShapeMismatch("enum expects a string tag, got %T", v)
	}
	n, ok := c.e.Value(tag)
	if !ok {
		return nil, &framecodec.UnknownEnumTagError{Tag: tag}
	}
	return c.storage.Write(int64(n))
}

func (c *enumCodec) Sizeof() (int, bool) { return c.storage.Sizeof() }

func (c *enumCodec) kind() Kind { return KindEnum }
