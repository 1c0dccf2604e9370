package wire

import (
	"github.com/go-frame/framecodec"
	"github.com/go-frame/framecodec/bs"
)

// prefixCodec implements [framecodec.PrefixSpec]: a header Frame whose
// decoded value is converted to/from an int length via ToInt/FromInt. Its
// decoded Go value is always a plain int (not int64), since it exists to
// drive slice/repeat counts and block lengths directly.
type prefixCodec struct {
	header  framecodec.Codec
	toInt   func(any) (int, error)
	fromInt func(int) any
}

func compilePrefixFrame(spec framecodec.PrefixSpec) (*prefixCodec, error) {
	header, err := CompileFrame(spec.Header)
	if err != nil {
		return nil, err
	}
	return &prefixCodec{header: header, toInt: spec.ToInt, fromInt: spec.FromInt}, nil
}

func (c *prefixCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	return composeCallback(c.header, func(hv any, rem bs.Sequence) (framecodec.ReadResult, error) {
		n, err := c.toInt(hv)
		if err != nil {
			return framecodec.ReadResult{}, err
		}
		return framecodec.Done(n, rem), nil
	}).Read(seq)
}

func (c *prefixCodec) Write(v any) ([][]byte, error) {
	n, ok := v.(int)
	if !ok {
		n64, ok2 := framecodec.CoerceInt64(v)
		if !ok2 {
			return nil, framecodec.ShapeMismatch("prefix expects an int length, got %T", v)
		}
		n = int(n64)
	}
	return c.header.Write(c.fromInt(n))
}

func (c *prefixCodec) Sizeof() (int, bool) { return c.header.Sizeof() }

func (c *prefixCodec) kind() Kind { return KindPrefix }

// headerCodec implements [framecodec.HeaderSpec]: the body Frame is chosen
// by HeaderToBody once the header value is decoded, and compiled on the
// fly. Because the body's shape can vary with the header's value, Sizeof is
// conservatively unknown.
type headerCodec struct {
	header       framecodec.Codec
	headerToBody func(any) (framecodec.Frame, error)
	bodyToHeader func(any) (any, error)
}

func compileHeader(spec framecodec.HeaderSpec) (*headerCodec, error) {
	header, err := CompileFrame(spec.Header)
	if err != nil {
		return nil, err
	}
	return &headerCodec{header: header, headerToBody: spec.HeaderToBody, bodyToHeader: spec.BodyToHeader}, nil
}

func (c *headerCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	return composeCallback(c.header, func(hv any, rem bs.Sequence) (framecodec.ReadResult, error) {
		bodyFrame, err := c.headerToBody(hv)
		if err != nil {
			return framecodec.ReadResult{}, err
		}
		bodyCodec, err := CompileFrame(bodyFrame)
		if err != nil {
			return framecodec.ReadResult{}, err
		}
		return bodyCodec.Read(rem)
	}).Read(seq)
}

func (c *headerCodec) Write(v any) ([][]byte, error) {
	hv, err := c.bodyToHeader(v)
	if err != nil {
		return nil, err
	}
	bodyFrame, err := c.headerToBody(hv)
	if err != nil {
		return nil, err
	}
	bodyCodec, err := CompileFrame(bodyFrame)
	if err != nil {
		return nil, err
	}
	return concatWrites([]framecodec.Codec{c.header, bodyCodec}, []any{hv, v})
}

// Sizeof is unknown in general: the body's shape depends on the header
// value, so there is no single size that applies to every value this codec
// could write.
func (c *headerCodec) Sizeof() (int, bool) { return 0, false }

func (c *headerCodec) kind() Kind { return KindHeader }
