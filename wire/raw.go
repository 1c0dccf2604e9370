package wire

import (
	"fmt"

	"github.com/go-frame/framecodec"
	"github.com/go-frame/framecodec/bs"
)

func compileRawFrame(spec framecodec.RawFrameSpec) (framecodec.Codec, error) {
	if n, ok := spec.Length.(int); ok {
		return &rawFrameFixedCodec{length: n}, nil
	}
	lengthCodec, err := CompileFrame(spec.Length)
	if err != nil {
		return nil, err
	}
	pc, ok := lengthCodec.(*prefixCodec)
	if !ok {
		return nil, fmt.Errorf("wire: raw frame length must be an int or a framecodec.Prefix frame, got %T", lengthCodec)
	}
	return &rawFramePrefixedCodec{prefix: pc}, nil
}

// rawFrameFixedCodec decodes to an uninterpreted [bs.Sequence] rather than a
// materialized []byte, so a sub-frame can be carried or forwarded without
// paying for a copy.
type rawFrameFixedCodec struct{ length int }

func (c *rawFrameFixedCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
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
	return framecodec.Done(block, rest), nil
}

func (c *rawFrameFixedCodec) Write(v any) ([][]byte, error) {
	seq, ok := v.(bs.Sequence)
	if !ok {
		return nil, framecodec.ShapeMismatch("raw frame expects a bs.Sequence, got %T", v)
	}
	if seq.Len() != c.length {
		return nil, &framecodec.BodyOverrunError{Allotted: c.length, Consumed: seq.Len()}
	}
	return [][]byte{seq.Contiguous()}, nil
}

func (c *rawFrameFixedCodec) Sizeof() (int, bool) { return c.length, true }

func (c *rawFrameFixedCodec) kind() Kind { return KindRawFrame }

type rawFrameWait struct {
	readOnlyCodec
	length int
}

func (c *rawFrameWait) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	return (&rawFrameFixedCodec{length: c.length}).Read(seq)
}

type rawFramePrefixedCodec struct{ prefix *prefixCodec }

func (c *rawFramePrefixedCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	return composeCallback(c.prefix, func(nv any, rem bs.Sequence) (framecodec.ReadResult, error) {
		return (&rawFrameWait{length: nv.(int)}).Read(rem)
	}).Read(seq)
}

func (c *rawFramePrefixedCodec) Write(v any) ([][]byte, error) {
	seq, ok := v.(bs.Sequence)
	if !ok {
		return nil, framecodec.ShapeMismatch("raw frame expects a bs.Sequence, got %T", v)
	}
	prefixBufs, err := c.prefix.Write(seq.Len())
	if err != nil {
		return nil, err
	}
	return append(prefixBufs, seq.Contiguous()), nil
}

func (c *rawFramePrefixedCodec) Sizeof() (int, bool) { return 0, false }

func (c *rawFramePrefixedCodec) kind() Kind { return KindRawFrame }
