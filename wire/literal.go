package wire

import (
	"reflect"

	"github.com/go-frame/framecodec"
	"github.com/go-frame/framecodec/bs"
)

// literalCodec implements [framecodec.Literal] and the implicit literals
// (bare strings, numbers, bools): a zero-byte codec that always decodes to
// its constant value, and asserts equality with it on write.
type literalCodec struct{ value any }

func (c literalCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	return framecodec.Done(c.value, seq), nil
}

func (c literalCodec) Write(v any) ([][]byte, error) {
	if !valuesEqual(v, c.value) {
		return nil, &framecodec.LiteralMismatchError{Want: c.value, Got: v}
	}
	return nil, nil
}

func (c literalCodec) Sizeof() (int, bool) { return 0, true }

func (c literalCodec) kind() Kind { return KindLiteral }

// valuesEqual compares a and b, treating any pair of Go numeric types that
// CoerceInt64/CoerceFloat64 both accept as equal by value rather than by Go
// type, since a literal written as `5` must match a decoded int64(5).
func valuesEqual(a, b any) bool {
	if ai, ok := framecodec.CoerceInt64(a); ok {
		if bi, ok := framecodec.CoerceInt64(b); ok {
			return ai == bi
		}
	}
	if af, ok := framecodec.CoerceFloat64(a); ok {
		if bf, ok := framecodec.CoerceFloat64(b); ok {
			return af == bf
		}
	}
	return reflect.DeepEqual(a, b)
}
