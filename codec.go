// Package framecodec implements a declarative binary-framing library.
// Users compose small codec descriptions ([Frame] values) from primitives
// (integers, floats, strings, enumerations), sequences, headers, and
// finite/delimited blocks, and compile them into a [Codec]: a value that
// both encodes in-memory values to a sequence of byte buffers and decodes a
// stream of byte buffers back into values.
//
// Decoding is resumable: when a Codec's [Codec.Read] method is given too
// few bytes to produce a value, it returns a [ReadResult] carrying a new
// Codec (see [Need]) that continues the decode once more bytes are
// concatenated onto the returned remainder. This mirrors how a streaming
// TLV reader lets a caller retry a header read after a transient error,
// except here suspension is ordinary data rather than an error to retry
// past: every Codec is a value, and suspending a decode means handing the
// caller a new Codec value, never a stack frame to resume.
//
// The compiled codec implementations live in github.com/go-frame/framecodec/wire;
// this package defines the user-facing [Frame] algebra and the [Codec]
// capability contract codecs in that package implement. CompileFrame and the
// driver functions (Encode, Decode, and friends) are also in package wire.
package framecodec

import "github.com/go-frame/framecodec/bs"

// Codec is a compiled, immutable, concurrency-safe binary codec. A Codec is
// built once (via wire.CompileFrame) and can be reused across arbitrarily many
// concurrent encodes and decodes; the only mutable, single-decode-owned
// state is the resumable Codec returned inside a non-final [ReadResult].
type Codec interface {
	// Read attempts to decode a value from the front of seq. If seq holds
	// enough bytes, Read returns a final ReadResult (see [Done]) together
	// with the unconsumed remainder. If seq is too short, Read returns a
	// suspended ReadResult (see [Need]) whose Resumable Codec continues the
	// decode once the caller appends more bytes to the returned remainder.
	//
	// Any error returned is fatal for the current decode: insufficient
	// bytes is never reported as an error, only as a suspended ReadResult.
	Read(seq bs.Sequence) (ReadResult, error)

	// Write encodes v into a sequence of buffers. The returned slices must
	// not be retained or mutated by the caller beyond immediate use; some
	// Codec implementations return views into a single shared allocation
	// (see [Codec.Sizeof]).
	Write(v any) ([][]byte, error)

	// Sizeof reports the exact byte length of every encoding this Codec can
	// produce, if that length is fixed regardless of the value being
	// encoded. The second return value is false if the length depends on
	// the value (e.g. a string or a repeated sequence).
	Sizeof() (n int, ok bool)
}

// ReadResult is the result of a single [Codec.Read] call: either a decoded
// value with its remainder (see [Done]), or a suspended decode together
// with the Codec that continues it (see [Need]).
type ReadResult struct {
	done      bool
	value     any
	remainder bs.Sequence
	resumable Codec
}

// Done builds a ReadResult reporting that value was fully decoded, with
// remainder holding the unconsumed tail of the input.
func Done(value any, remainder bs.Sequence) ReadResult {
	return ReadResult{done: true, value: value, remainder: remainder}
}

// Need builds a ReadResult reporting that the input was insufficient to
// produce a value. resumable is a Codec that continues the suspended decode
// once fed the concatenation of remainder and whatever bytes arrive next:
//
//	result, err := c.Read(seq)
//	for !result.IsDone() && err == nil {
//		next := <-chunks
//		result, err = result.Resumable().Read(result.Remainder().Append(next))
//	}
//
// resumable may carry accumulated partial state, such as the elements of a
// sequence combinator that have already been decoded.
func Need(resumable Codec, remainder bs.Sequence) ReadResult {
	return ReadResult{done: false, resumable: resumable, remainder: remainder}
}

// IsDone reports whether r represents a fully decoded value.
func (r ReadResult) IsDone() bool { return r.done }

// Value returns the decoded value. It panics if r is not done.
func (r ReadResult) Value() any {
	if !r.done {
		panic("framecodec: Value called on a suspended ReadResult")
	}
	return r.value
}

// Remainder returns the unconsumed tail of the input that was fed to Read.
// For a done result this is what's left over after the value; for a
// suspended result this is the prefix the caller must re-supply (along with
// new bytes) to Resumable.Read.
func (r ReadResult) Remainder() bs.Sequence { return r.remainder }

// Resumable returns the Codec that continues a suspended decode. It panics
// if r is done.
func (r ReadResult) Resumable() Codec {
	if r.done {
		panic("framecodec: Resumable called on a done ReadResult")
	}
	return r.resumable
}
