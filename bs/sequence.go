// Package bs implements an immutable byte-sequence (BS) type: a logical
// concatenation of buffer slices supporting O(1) take/drop without copying.
// It underpins the streaming decode engine in [github.com/go-frame/framecodec/wire]:
// every Need suspension in that package carries a Sequence value as its
// remainder, and resuming a decode is simply appending the next chunk to a
// Sequence and trying again.
package bs

import (
	"errors"
	"iter"
)

// ErrShort indicates that a Sequence held fewer bytes than requested by a
// Take or Drop operation.
var ErrShort = errors.New("bs: sequence shorter than requested length")

// Sequence is an ordered, immutable logical view over zero or more
// underlying buffer slices. A Sequence value never mutates the slices it
// references; Take, Drop and Dup all return new Sequence values that
// alias the same backing arrays. Only Contiguous ever copies, and it
// copies at most once.
//
// The zero Sequence is empty and ready to use.
type Sequence struct {
	chunks []chunk
	length int
}

type chunk struct {
	b []byte
}

// Of builds a Sequence from the given buffers, in order. Empty buffers are
// dropped; the caller's slices are retained (not copied), so callers must
// not mutate them after passing them to Of.
func Of(bufs ...[]byte) Sequence {
	var s Sequence
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		s.chunks = append(s.chunks, chunk{b})
		s.length += len(b)
	}
	return s
}

// Len returns the total number of bytes in s.
func (s Sequence) Len() int { return s.length }

// Empty reports whether s holds no bytes.
func (s Sequence) Empty() bool { return s.length == 0 }

// Take returns a Sequence of exactly n bytes from the front of s. If s
// holds fewer than n bytes, Take returns ErrShort and the zero Sequence.
func (s Sequence) Take(n int) (Sequence, error) {
	if n < 0 {
		panic("bs: negative length")
	}
	if n > s.length {
		return Sequence{}, ErrShort
	}
	if n == 0 {
		return Sequence{}, nil
	}
	out := Sequence{length: n}
	remaining := n
	for _, c := range s.chunks {
		if remaining == 0 {
			break
		}
		if len(c.b) <= remaining {
			out.chunks = append(out.chunks, c)
			remaining -= len(c.b)
		} else {
			out.chunks = append(out.chunks, chunk{c.b[:remaining]})
			remaining = 0
		}
	}
	return out, nil
}

// Drop returns the tail of s after its first n bytes. If s holds fewer than
// n bytes, Drop returns ErrShort and the zero Sequence.
func (s Sequence) Drop(n int) (Sequence, error) {
	if n < 0 {
		panic("bs: negative length")
	}
	if n > s.length {
		return Sequence{}, ErrShort
	}
	if n == 0 {
		return s, nil
	}
	out := Sequence{length: s.length - n}
	remaining := n
	for i, c := range s.chunks {
		if remaining == 0 {
			out.chunks = append(out.chunks, s.chunks[i:]...)
			break
		}
		if len(c.b) <= remaining {
			remaining -= len(c.b)
			continue
		}
		out.chunks = append(out.chunks, chunk{c.b[remaining:]})
		out.chunks = append(out.chunks, s.chunks[i+1:]...)
		break
	}
	return out, nil
}

// Dup returns a Sequence that aliases the same underlying slices as s but
// owns an independent logical position. Because Sequence is itself an
// immutable value (Take/Drop never mutate their receiver), Dup is simply a
// copy of the value; it exists so callers have an explicit name for the
// "give me a second, independent cursor into this data" operation described
// by the byte-sequence contract.
func (s Sequence) Dup() Sequence { return s }

// Append returns a Sequence representing s followed by the given buffers.
// It is the operation used to extend a resumable decode's remainder with a
// newly-arrived chunk. The receiver s is left unmodified; its chunk list is
// never appended to in place, so two Sequences built by appending different
// chunks to the same s never alias each other's tail.
func (s Sequence) Append(bufs ...[]byte) Sequence {
	out := Sequence{
		chunks: append(make([]chunk, 0, len(s.chunks)+len(bufs)), s.chunks...),
		length: s.length,
	}
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		out.chunks = append(out.chunks, chunk{b})
		out.length += len(b)
	}
	return out
}

// Contiguous materializes s into a single buffer. If s already consists of
// at most one chunk, the existing slice is returned without copying;
// otherwise exactly one copy is made.
func (s Sequence) Contiguous() []byte {
	switch len(s.chunks) {
	case 0:
		return nil
	case 1:
		return s.chunks[0].b
	default:
		out := make([]byte, 0, s.length)
		for _, c := range s.chunks {
			out = append(out, c.b...)
		}
		return out
	}
}

// At returns the byte at logical offset i within s. It panics if i is out
// of range.
func (s Sequence) At(i int) byte {
	if i < 0 || i >= s.length {
		panic("bs: index out of range")
	}
	for _, c := range s.chunks {
		if i < len(c.b) {
			return c.b[i]
		}
		i -= len(c.b)
	}
	panic("unreachable")
}

// All iterates over the bytes of s in order.
func (s Sequence) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, c := range s.chunks {
			for _, b := range c.b {
				if !yield(b) {
					return
				}
			}
		}
	}
}
