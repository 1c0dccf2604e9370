// Package wire implements the compiled codec layer of framecodec: turning a
// declarative [github.com/go-frame/framecodec.Frame] into a concrete
// [github.com/go-frame/framecodec.Codec] tree via [CompileFrame], and driving
// that tree with [Encode], [Decode] and their streaming/batch counterparts.
//
// This package plays the role the teacher library's ber package plays
// against its asn1 package: asn1 (here, framecodec) defines the type
// system, ber (here, wire) implements the encoding rules and the
// marshal/unmarshal entry points against it.
package wire

import (
	"github.com/go-frame/framecodec"
	"github.com/go-frame/framecodec/bs"
)

// composeCallback returns a Codec whose Read invokes codec.Read, and on a
// Done result invokes fn(value, remainder), which itself returns the
// ReadResult that continues the overall decode. On a suspended result, the
// callback is re-attached to the resumable Codec so it fires once that
// Codec eventually completes. This is the single primitive every sequencing
// combinator (tuple, map, header, prefix, repeated) is built from.
func composeCallback(codec framecodec.Codec, fn func(value any, remainder bs.Sequence) (framecodec.ReadResult, error)) framecodec.Codec {
	return &callbackCodec{inner: codec, fn: fn}
}

type callbackCodec struct {
	inner framecodec.Codec
	fn    func(any, bs.Sequence) (framecodec.ReadResult, error)
}

func (c *callbackCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	res, err := c.inner.Read(seq)
	if err != nil {
		return framecodec.ReadResult{}, err
	}
	if res.IsDone() {
		return c.fn(res.Value(), res.Remainder())
	}
	return framecodec.Need(composeCallback(res.Resumable(), c.fn), res.Remainder()), nil
}

func (c *callbackCodec) Write(v any) ([][]byte, error) { return c.inner.Write(v) }

// Sizeof is conservatively unknown: the callback may transform the decoded
// value arbitrarily, so nothing about c.inner's size tells us anything
// about what a full round through fn would produce on write. Combinators
// that know better (e.g. a tuple, which never changes cardinality) compute
// their own Sizeof instead of delegating to a callbackCodec.
func (c *callbackCodec) Sizeof() (int, bool) { return 0, false }

// readOnlyCodec is embedded by intermediate state codecs (the Resumable
// returned inside a Need) that only make sense mid-decode and can never be
// the target of a Write.
type readOnlyCodec struct{}

func (r readOnlyCodec) Write(any) ([][]byte, error) {
	return nil, errDecodeOnlyResumable
}

func (r readOnlyCodec) Sizeof() (int, bool) { return 0, false }

var errDecodeOnlyResumable = writeOnlyResumableError{}

type writeOnlyResumableError struct{}

func (writeOnlyResumableError) Error() string {
	return "wire: this codec is a decode-only resumption state and cannot be written"
}
