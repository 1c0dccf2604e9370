package wire

import (
	"fmt"

	"github.com/go-frame/framecodec"
	"github.com/go-frame/framecodec/bs"
)

func compileRepeated(spec framecodec.RepeatedSpec) (framecodec.Codec, error) {
	elem, err := CompileFrame(spec.Elem)
	if err != nil {
		return nil, err
	}
	if spec.Delimiters != nil {
		return &delimitedRepeatedCodec{elem: elem, delims: spec.Delimiters}, nil
	}
	prefix, err := CompileFrame(spec.Prefix)
	if err != nil {
		return nil, err
	}
	pc, ok := prefix.(*prefixCodec)
	if !ok {
		return nil, fmt.Errorf("wire: repeated's prefix must be built with framecodec.Prefix, got %T", prefix)
	}
	return &prefixedRepeatedCodec{elem: elem, prefix: pc}, nil
}

// prefixedRepeatedCodec implements length-prefixed repetition: decode the
// count with prefix, then decode exactly that many elements. The element
// loop is driven by elementsCodec, a standalone state machine so the
// in-flight element count and accumulated values survive a suspend/resume
// across Read calls without needing to re-decode the prefix.
type prefixedRepeatedCodec struct {
	elem   framecodec.Codec
	prefix *prefixCodec
}

func (c *prefixedRepeatedCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	return composeCallback(c.prefix, func(nv any, rem bs.Sequence) (framecodec.ReadResult, error) {
		n := nv.(int)
		return (&elementsCodec{elem: c.elem, remaining: n}).Read(rem)
	}).Read(seq)
}

func (c *prefixedRepeatedCodec) Write(v any) ([][]byte, error) {
	vals, err := toSlice(v)
	if err != nil {
		return nil, err
	}
	prefixBufs, err := c.prefix.Write(len(vals))
	if err != nil {
		return nil, err
	}
	var elemBufs [][]byte
	for _, val := range vals {
		b, err := c.elem.Write(val)
		if err != nil {
			return nil, err
		}
		elemBufs = append(elemBufs, b...)
	}
	if pw, ok := c.prefix.Sizeof(); ok {
		if ew, ok := c.elem.Sizeof(); ok {
			buf := make([]byte, 0, pw+ew*len(vals))
			for _, b := range prefixBufs {
				buf = append(buf, b...)
			}
			for _, b := range elemBufs {
				buf = append(buf, b...)
			}
			return [][]byte{buf}, nil
		}
	}
	return append(prefixBufs, elemBufs...), nil
}

// Sizeof is unknown: the number of elements (and hence the total size) is
// data-dependent, known only once a concrete value is being written.
func (c *prefixedRepeatedCodec) Sizeof() (int, bool) { return 0, false }

func (c *prefixedRepeatedCodec) kind() Kind { return KindRepeated }

// elementsCodec decodes exactly `remaining` more elements with elem,
// prepending the values already collected in acc. When elem's width is
// statically known, it checks the total byte requirement up front so a
// short buffer suspends without attempting (and discarding the state of) a
// partial element read.
type elementsCodec struct {
	readOnlyCodec
	elem      framecodec.Codec
	partial   framecodec.Codec // resumable state of a suspended element, or nil
	remaining int
	acc       []any
}

func (c *elementsCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	if w, ok := c.elem.Sizeof(); ok && c.partial == nil {
		if seq.Len() < w*c.remaining {
			return framecodec.Need(c, seq), nil
		}
	}
	if c.remaining == 0 {
		vals := append([]any{}, c.acc...)
		return framecodec.Done(vals, seq), nil
	}
	cur := c.elem
	if c.partial != nil {
		cur = c.partial
	}
	res, err := cur.Read(seq)
	if err != nil {
		return framecodec.ReadResult{}, err
	}
	if !res.IsDone() {
		return framecodec.Need(&elementsCodec{elem: c.elem, partial: res.Resumable(), remaining: c.remaining, acc: c.acc}, res.Remainder()), nil
	}
	next := &elementsCodec{elem: c.elem, remaining: c.remaining - 1, acc: append(c.acc, res.Value())}
	return next.Read(res.Remainder())
}

// delimitedRepeatedCodec implements delimiter-terminated repetition:
// elements are decoded from a body whose extent is found by scanning ahead
// for one of delims, then that closed body is fully consumed element by
// element (an element read that doesn't complete within it is an error:
// framecodec.BodyOverrunError).
type delimitedRepeatedCodec struct {
	elem   framecodec.Codec
	delims [][]byte
}

func (c *delimitedRepeatedCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	return scanThenFinish(bs.NewScanner(c.delims), c.delims, seq, func(block, rest bs.Sequence, _ int) (framecodec.ReadResult, error) {
		vals, err := readDelimitedBody(c.elem, block)
		if err != nil {
			return framecodec.ReadResult{}, err
		}
		return framecodec.Done(vals, rest), nil
	})
}

func (c *delimitedRepeatedCodec) Write(v any) ([][]byte, error) {
	vals, err := toSlice(v)
	if err != nil {
		return nil, err
	}
	var bufs [][]byte
	for _, val := range vals {
		b, err := c.elem.Write(val)
		if err != nil {
			return nil, err
		}
		bufs = append(bufs, b...)
	}
	bufs = append(bufs, append([]byte{}, c.delims[0]...))
	return bufs, nil
}

func (c *delimitedRepeatedCodec) Sizeof() (int, bool) { return 0, false }

func (c *delimitedRepeatedCodec) kind() Kind { return KindRepeated }

// readDelimitedBody decodes elements with elem from block, a closed
// Sequence no further bytes will ever be appended to, until block is fully
// consumed. An element read that suspends (a Need) inside a closed body can
// never be satisfied, so it is reported as a BodyOverrunError instead.
func readDelimitedBody(elem framecodec.Codec, block bs.Sequence) ([]any, error) {
	vals := []any{}
	cur := block
	for cur.Len() > 0 {
		res, err := elem.Read(cur)
		if err != nil {
			return nil, err
		}
		if !res.IsDone() {
			return nil, &framecodec.BodyOverrunError{Allotted: block.Len(), Consumed: block.Len() - cur.Len()}
		}
		vals = append(vals, res.Value())
		cur = res.Remainder()
	}
	return vals, nil
}
