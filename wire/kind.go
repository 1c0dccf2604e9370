package wire

import "github.com/go-frame/framecodec"

// Kind classifies a compiled Codec's shape: the small closed variant of
// codec families this package produces, plus KindUser as an open extension
// point for Codecs supplied directly as a Frame (see [framecodec.Frame]'s
// "already-compiled" case) that this package did not itself build.
type Kind uint8

const (
	KindPrimitive Kind = iota
	KindLiteral
	KindString
	KindTuple
	KindMap
	KindEnum
	KindHeader
	KindPrefix
	KindRepeated
	KindFiniteBlock
	KindDelimitedBlock
	KindFiniteFrame
	KindDelimitedFrame
	KindRawFrame
	KindUser
)

//go:generate stringer -type=Kind

// kinder is implemented by every Codec this package constructs via
// CompileFrame, so Inspect can report which combinator produced it.
type kinder interface{ kind() Kind }

// Inspect reports the [Kind] of a compiled Codec: which combinator in this
// package produced it, or [KindUser] if c was supplied directly as an
// already-compiled Frame.
func Inspect(c framecodec.Codec) Kind {
	if k, ok := c.(kinder); ok {
		return k.kind()
	}
	return KindUser
}
