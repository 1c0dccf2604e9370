package framecodec

import (
	"errors"
	"fmt"
)

// requireKeyedLiterals can be embedded in a struct to require keyed literals
// in composite literals constructing it, following the same convention the
// teacher library uses on its own error types so adding a field later
// cannot silently break callers using positional literals.
type requireKeyedLiterals struct{}

// ErrResidualBytes is returned by wire.Decode when a value was fully decoded
// but bytes remained in the input afterward.
var ErrResidualBytes = errors.New("framecodec: residual bytes after decoded value")

// ErrTruncated is returned by wire.Decode and wire.DecodeAll when the input ends
// while a decode is still suspended (a [Need] was returned and no further
// bytes are available). This is deliberately a different error from
// [ErrResidualBytes]: one means "too much input", the other "not enough".
var ErrTruncated = errors.New("framecodec: input ended with an incomplete value")

// LiteralMismatchError reports that the value passed to a literal frame's
// Write didn't match the literal. A literal reads zero bytes and always
// decodes to its constant, so decoding never raises this error.
type LiteralMismatchError struct {
	requireKeyedLiterals
	Want, Got any
}

func (e *LiteralMismatchError) Error() string {
	return fmt.Sprintf("framecodec: literal mismatch: want %#v, got %#v", e.Want, e.Got)
}

// UnknownEnumValueError reports that a decoded wire integer did not
// correspond to any tag of an [Enum].
type UnknownEnumValueError struct {
	requireKeyedLiterals
	Value int16
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("framecodec: unknown enum value %d", e.Value)
}

// UnknownEnumTagError reports that a tag passed to Write did not appear in
// an [Enum]'s tag set.
type UnknownEnumTagError struct {
	requireKeyedLiterals
	Tag string
}

func (e *UnknownEnumTagError) Error() string {
	return fmt.Sprintf("framecodec: unknown enum tag %q", e.Tag)
}

// BodyOverrunError reports that a finite or delimited block's body codec
// did not fully consume (or exceeded) the bytes allotted to it.
type BodyOverrunError struct {
	requireKeyedLiterals
	Allotted, Consumed int
}

func (e *BodyOverrunError) Error() string {
	if e.Consumed > e.Allotted {
		return fmt.Sprintf("framecodec: body codec consumed %d bytes, exceeding its %d-byte allotment", e.Consumed, e.Allotted)
	}
	return fmt.Sprintf("framecodec: body codec consumed only %d of its %d-byte allotment", e.Consumed, e.Allotted)
}

// ShapeMismatchError reports that a tuple or map value's cardinality, or a
// primitive value's Go type, was incompatible with the codec encoding it.
type ShapeMismatchError struct {
	requireKeyedLiterals
	Reason string
}

func (e *ShapeMismatchError) Error() string { return "framecodec: shape mismatch: " + e.Reason }

func shapeMismatch(format string, args ...any) error {
	return &ShapeMismatchError{Reason: fmt.Sprintf(format, args...)}
}

// ShapeMismatch builds a [ShapeMismatchError], for use by other packages in
// this module (wire) that compile and drive Frames but live outside
// this package.
func ShapeMismatch(format string, args ...any) error {
	return shapeMismatch(format, args...)
}

// CharsetError reports that a [String], [StringInteger] or [StringFloat]
// frame named a charset the charset package does not recognize. It is
// raised at wire.CompileFrame time, not at encode/decode time, since the
// charset name is static once the Frame is built.
type CharsetError struct {
	requireKeyedLiterals
	Name string
}

func (e *CharsetError) Error() string { return fmt.Sprintf("framecodec: unknown charset %q", e.Name) }
