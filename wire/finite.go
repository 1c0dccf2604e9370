package wire

import (
	"fmt"

	"github.com/go-frame/framecodec"
	"github.com/go-frame/framecodec/bs"
)

// readFullyWithin runs codec against block, a closed Sequence no further
// bytes will ever be appended to, and requires it to consume block exactly:
// a suspended or short/over read both become a BodyOverrunError, matching
// "the frame errors if body doesn't fully consume the allotted bytes".
func readFullyWithin(codec framecodec.Codec, block bs.Sequence) (any, error) {
	res, err := codec.Read(block)
	if err != nil {
		return nil, err
	}
	if !res.IsDone() || res.Remainder().Len() != 0 {
		consumed := block.Len()
		if res.IsDone() {
			consumed -= res.Remainder().Len()
		}
		return nil, &framecodec.BodyOverrunError{Allotted: block.Len(), Consumed: consumed}
	}
	return res.Value(), nil
}

func compileFiniteFrame(spec framecodec.FiniteFrameSpec) (framecodec.Codec, error) {
	body, err := CompileFrame(spec.Body)
	if err != nil {
		return nil, err
	}
	if n, ok := spec.Length.(int); ok {
		return &finiteFrameFixedCodec{length: n, body: body}, nil
	}
	lengthCodec, err := CompileFrame(spec.Length)
	if err != nil {
		return nil, err
	}
	pc, ok := lengthCodec.(*prefixCodec)
	if !ok {
		return nil, fmt.Errorf("wire: finite frame length must be an int or a framecodec.Prefix frame, got %T", lengthCodec)
	}
	return &finiteFramePrefixedCodec{prefix: pc, body: body}, nil
}

type finiteFrameFixedCodec struct {
	length int
	body   framecodec.Codec
}

func (c *finiteFrameFixedCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
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
	val, err := readFullyWithin(c.body, block)
	if err != nil {
		return framecodec.ReadResult{}, err
	}
	return framecodec.Done(val, rest), nil
}

func (c *finiteFrameFixedCodec) Write(v any) ([][]byte, error) {
	bufs, err := c.body.Write(v)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, b := range bufs {
		total += len(b)
	}
	if total != c.length {
		return nil, &framecodec.BodyOverrunError{Allotted: c.length, Consumed: total}
	}
	return bufs, nil
}

func (c *finiteFrameFixedCodec) Sizeof() (int, bool) { return c.length, true }

func (c *finiteFrameFixedCodec) kind() Kind { return KindFiniteFrame }

// finiteFrameBlockWait is the suspension state between deciding the body's
// length (from a decoded prefix) and having enough bytes on hand to slice
// that body out.
type finiteFrameBlockWait struct {
	readOnlyCodec
	body   framecodec.Codec
	length int
}

func (c *finiteFrameBlockWait) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
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
	val, err := readFullyWithin(c.body, block)
	if err != nil {
		return framecodec.ReadResult{}, err
	}
	return framecodec.Done(val, rest), nil
}

type finiteFramePrefixedCodec struct {
	prefix *prefixCodec
	body   framecodec.Codec
}

func (c *finiteFramePrefixedCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	return composeCallback(c.prefix, func(nv any, rem bs.Sequence) (framecodec.ReadResult, error) {
		return (&finiteFrameBlockWait{body: c.body, length: nv.(int)}).Read(rem)
	}).Read(seq)
}

func (c *finiteFramePrefixedCodec) Write(v any) ([][]byte, error) {
	bodyBufs, err := c.body.Write(v)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, b := range bodyBufs {
		total += len(b)
	}
	prefixBufs, err := c.prefix.Write(total)
	if err != nil {
		return nil, err
	}
	if pw, ok := c.prefix.Sizeof(); ok {
		buf := make([]byte, 0, pw+total)
		for _, b := range prefixBufs {
			buf = append(buf, b...)
		}
		for _, b := range bodyBufs {
			buf = append(buf, b...)
		}
		return [][]byte{buf}, nil
	}
	return append(prefixBufs, bodyBufs...), nil
}

func (c *finiteFramePrefixedCodec) Sizeof() (int, bool) { return 0, false }

func (c *finiteFramePrefixedCodec) kind() Kind { return KindFiniteFrame }

// delimitedFrameCodec implements [framecodec.DelimitedFrameSpec]: the body's
// extent is found by scanning for a delimiter, and the body codec must
// fully consume it.
type delimitedFrameCodec struct {
	body   framecodec.Codec
	delims [][]byte
}

func (c *delimitedFrameCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	return scanThenFinish(bs.NewScanner(c.delims), c.delims, seq, func(block, rest bs.Sequence, _ int) (framecodec.ReadResult, error) {
		val, err := readFullyWithin(c.body, block)
		if err != nil {
			return framecodec.ReadResult{}, err
		}
		return framecodec.Done(val, rest), nil
	})
}

func (c *delimitedFrameCodec) Write(v any) ([][]byte, error) {
	bufs, err := c.body.Write(v)
	if err != nil {
		return nil, err
	}
	return append(bufs, append([]byte(nil), c.delims[0]...)), nil
}

func (c *delimitedFrameCodec) Sizeof() (int, bool) { return 0, false }

func (c *delimitedFrameCodec) kind() Kind { return KindDelimitedFrame }
