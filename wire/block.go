package wire

import (
	"github.com/go-frame/framecodec"
	"github.com/go-frame/framecodec/bs"
)

// finiteBlockCodec implements [framecodec.FiniteBlockSpec]: exactly n raw
// bytes, decoding to a freshly materialized []byte.
type finiteBlockCodec struct{ length int }

func (c *finiteBlockCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	if seq.Len() < c.length {
		return framecodec.Need(c, seq), nil
	}
	head, err := seq.Take(c.length)
	if err != nil {
		return framecodec.ReadResult{}, err
	}
	rem, err := seq.Drop(c.length)
	if err != nil {
		return framecodec.ReadResult{}, err
	}
	return framecodec.Done(append([]byte(nil), head.Contiguous()...), rem), nil
}

func (c *finiteBlockCodec) Write(v any) ([][]byte, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, framecodec.ShapeMismatch("finite block expects []byte, got %T", v)
	}
	if len(b) != c.length {
		return nil, &framecodec.BodyOverrunError{Allotted: c.length, Consumed: len(b)}
	}
	return [][]byte{b}, nil
}

func (c *finiteBlockCodec) Sizeof() (int, bool) { return c.length, true }

func (c *finiteBlockCodec) kind() Kind { return KindFiniteBlock }

// delimitedBlockCodec implements [framecodec.DelimitedBlockSpec]: scans for
// the first of several delimiters, decoding to a []byte that either
// excludes (Strip) or includes the matched delimiter. Write always appends
// the first configured delimiter; the Strip flag only affects decoding, so
// Write's input contract is always "the content without a delimiter".
type delimitedBlockCodec struct {
	delims [][]byte
	strip  bool
}

func (c *delimitedBlockCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	return scanThenFinish(bs.NewScanner(c.delims), c.delims, seq, func(block, rest bs.Sequence, which int) (framecodec.ReadResult, error) {
		if c.strip {
			return framecodec.Done(append([]byte(nil), block.Contiguous()...), rest), nil
		}
		full := block.Append(c.delims[which])
		return framecodec.Done(append([]byte(nil), full.Contiguous()...), rest), nil
	})
}

func (c *delimitedBlockCodec) Write(v any) ([][]byte, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, framecodec.ShapeMismatch("delimited block expects []byte, got %T", v)
	}
	return [][]byte{b, append([]byte(nil), c.delims[0]...)}, nil
}

func (c *delimitedBlockCodec) Sizeof() (int, bool) { return 0, false }

func (c *delimitedBlockCodec) kind() Kind { return KindDelimitedBlock }
