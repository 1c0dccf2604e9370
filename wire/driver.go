package wire

import (
	"iter"

	"github.com/go-frame/framecodec"
	"github.com/go-frame/framecodec/bs"
)

// Encode writes v with c into a single contiguous []byte, concatenating
// every buffer c.Write returns. See [ToBufSeq] to avoid the copy this
// entails when the caller can consume separate buffers directly.
func Encode(c framecodec.Codec, v any) ([]byte, error) {
	bufs, err := c.Write(v)
	if err != nil {
		return nil, err
	}
	return flatten(bufs), nil
}

// EncodeAll writes every value in vs with c, one after another, into a
// single contiguous []byte.
func EncodeAll(c framecodec.Codec, vs []any) ([]byte, error) {
	var out []byte
	for _, v := range vs {
		bufs, err := c.Write(v)
		if err != nil {
			return nil, err
		}
		for _, b := range bufs {
			out = append(out, b...)
		}
	}
	return out, nil
}

// Decode decodes exactly one value from b using c. It is an error
// ([framecodec.ErrResidualBytes]) for bytes to remain after the value, and
// an error ([framecodec.ErrTruncated]) for the decode to still be
// suspended once every byte of b has been supplied — Decode always hands c
// its entire input up front, so a suspended result here can only mean b
// ended mid-value, never "need more, which just hasn't arrived yet".
func Decode(c framecodec.Codec, b []byte) (any, error) {
	res, err := c.Read(bs.Of(b))
	if err != nil {
		return nil, err
	}
	if !res.IsDone() {
		return nil, framecodec.ErrTruncated
	}
	if res.Remainder().Len() != 0 {
		return nil, framecodec.ErrResidualBytes
	}
	return res.Value(), nil
}

// DecodeAll repeatedly decodes values from b using c until every byte has
// been consumed, returning the decoded values in order. It is an error for
// the final value's decode to end mid-value ([framecodec.ErrTruncated]).
// DecodeAll keeps decoding until the remainder is empty, so bytes left after
// the last complete value are read as the start of another value; if they do
// not form one, the result is ErrTruncated. DecodeAll never returns
// ErrResidualBytes.
func DecodeAll(c framecodec.Codec, b []byte) ([]any, error) {
	var vals []any
	seq := bs.Of(b)
	for seq.Len() > 0 {
		res, err := c.Read(seq)
		if err != nil {
			return nil, err
		}
		if !res.IsDone() {
			return nil, framecodec.ErrTruncated
		}
		vals = append(vals, res.Value())
		seq = res.Remainder()
	}
	return vals, nil
}

// Contiguous forces seq into a single contiguous []byte, copying only if
// seq spans more than one underlying chunk.
func Contiguous(seq bs.Sequence) []byte { return seq.Contiguous() }

// ToByteBuffer writes v with c and returns the result as a single
// contiguous []byte, identical to [Encode]. It exists as the spec's named
// "driver function" distinct from Encode for callers that think in terms of
// "give me one buffer" rather than "encode this value".
func ToByteBuffer(c framecodec.Codec, v any) ([]byte, error) { return Encode(c, v) }

// ToBufSeq writes v with c and returns the result as an iterator over the
// individual buffers Write produced, without concatenating them — useful
// for writing directly to an io.Writer or net.Conn via writev-style
// scatter output without an intermediate copy.
func ToBufSeq(c framecodec.Codec, v any) (iter.Seq[[]byte], error) {
	bufs, err := c.Write(v)
	if err != nil {
		return nil, err
	}
	return func(yield func([]byte) bool) {
		for _, b := range bufs {
			if !yield(b) {
				return
			}
		}
	}, nil
}

func flatten(bufs [][]byte) []byte {
	total := 0
	for _, b := range bufs {
		total += len(b)
	}
	out := make([]byte, 0, total)
	for _, b := range bufs {
		out = append(out, b...)
	}
	return out
}
