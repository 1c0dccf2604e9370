package wire

import (
	"strconv"

	"github.com/go-frame/framecodec"
	"github.com/go-frame/framecodec/bs"
	"github.com/go-frame/framecodec/charset"
)

func compileString(spec framecodec.StringSpec) (framecodec.Codec, error) {
	enc, err := charset.Lookup(spec.Charset)
	if err != nil {
		return nil, err
	}
	base := &stringCodec{enc: enc, valueKind: spec.ValueKind}
	switch {
	case spec.HasLength:
		return &finiteStringCodec{base: base, length: spec.Length}, nil
	case len(spec.Delimiters) > 0:
		return &delimitedStringCodec{base: base, delims: spec.Delimiters}, nil
	default:
		return base, nil
	}
}

// stringCodec is the unbounded variant: it consumes every byte available to
// it and decodes/encodes through enc, interpreting the result as text, a
// decimal integer, or a decimal float according to kind. It only makes
// sense nested inside a wrapper that hands it a closed block (a
// finite/delimited frame, or itself wrapped in finiteStringCodec /
// delimitedStringCodec), since on its own it never suspends to wait for
// more bytes — "unbounded" means "until the enclosing block ends", not
// "streamed indefinitely".
type stringCodec struct {
	enc       charset.Codec
	valueKind framecodec.StringValueKind
}

func (c *stringCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	text, err := c.enc.Decode(seq.Contiguous())
	if err != nil {
		return framecodec.ReadResult{}, err
	}
	val, err := c.parse(text)
	if err != nil {
		return framecodec.ReadResult{}, err
	}
	empty, err := seq.Drop(seq.Len())
	if err != nil {
		return framecodec.ReadResult{}, err
	}
	return framecodec.Done(val, empty), nil
}

func (c *stringCodec) parse(text string) (any, error) {
	switch c.valueKind {
	case framecodec.IntegerValue:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, framecodec.ShapeMismatch("invalid string-integer %q: %v", text, err)
		}
		return n, nil
	case framecodec.FloatValue:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, framecodec.ShapeMismatch("invalid string-float %q: %v", text, err)
		}
		return f, nil
	default:
		return text, nil
	}
}

func (c *stringCodec) format(v any) (string, error) {
	switch c.valueKind {
	case framecodec.IntegerValue:
		n, ok := framecodec.CoerceInt64(v)
		if !ok {
			return "", framecodec.ShapeMismatch("string-integer expects an integer, got %T", v)
		}
		return strconv.FormatInt(n, 10), nil
	case framecodec.FloatValue:
		f, ok := framecodec.CoerceFloat64(v)
		if !ok {
			return "", framecodec.ShapeMismatch("string-float expects a float, got %T", v)
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	default:
		s, ok := v.(string)
		if !ok {
			return "", framecodec.ShapeMismatch("string expects a string, got %T", v)
		}
		return s, nil
	}
}

func (c *stringCodec) Write(v any) ([][]byte, error) {
	text, err := c.format(v)
	if err != nil {
		return nil, err
	}
	b, err := c.enc.Encode(text)
	if err != nil {
		return nil, err
	}
	return [][]byte{b}, nil
}

func (c *stringCodec) Sizeof() (int, bool) { return 0, false }

func (c *stringCodec) kind() Kind { return KindString }

// finiteStringCodec reads/writes exactly length (charset-encoded) bytes.
type finiteStringCodec struct {
	base   *stringCodec
	length int
}

func (c *finiteStringCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	if seq.Len() < c.length {
		return framecodec.Need(c, seq), nil
	}
	block, err := seq.Take(c.length)
	if err != nil {
		return framecodec.ReadResult{}, err
	}
	rest, err := seq.Drop(c.length)
	if err != nil {
		return framecodec.ReadResult{}, err
	}
	res, err := c.base.Read(block)
	if err != nil {
		return framecodec.ReadResult{}, err
	}
	return framecodec.Done(res.Value(), rest), nil
}

func (c *finiteStringCodec) Write(v any) ([][]byte, error) {
	bufs, err := c.base.Write(v)
	if err != nil {
		return nil, err
	}
	got := 0
	for _, b := range bufs {
		got += len(b)
	}
	if got != c.length {
		return nil, &framecodec.BodyOverrunError{Allotted: c.length, Consumed: got}
	}
	return bufs, nil
}

func (c *finiteStringCodec) Sizeof() (int, bool) { return c.length, true }

func (c *finiteStringCodec) kind() Kind { return KindString }

// delimitedStringCodec scans for a delimiter and decodes the text before it.
type delimitedStringCodec struct {
	base   *stringCodec
	delims [][]byte
}

func (c *delimitedStringCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	return scanThenFinish(bs.NewScanner(c.delims), c.delims, seq, func(block, rest bs.Sequence, _ int) (framecodec.ReadResult, error) {
		res, err := c.base.Read(block)
		if err != nil {
			return framecodec.ReadResult{}, err
		}
		return framecodec.Done(res.Value(), rest), nil
	})
}

func (c *delimitedStringCodec) Write(v any) ([][]byte, error) {
	bufs, err := c.base.Write(v)
	if err != nil {
		return nil, err
	}
	return append(bufs, append([]byte(nil), c.delims[0]...)), nil
}

func (c *delimitedStringCodec) Sizeof() (int, bool) { return 0, false }

func (c *delimitedStringCodec) kind() Kind { return KindString }
