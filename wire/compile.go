package wire

import (
	"fmt"
	"sync"

	"github.com/go-frame/framecodec"
)

// CompileFrame turns a declarative [framecodec.Frame] into a concrete
// [framecodec.Codec], applying the compile rules from the specification in
// order:
//
//  1. a Frame that already implements Codec is returned unchanged
//     (CompileFrame is idempotent: compiling an already-compiled Codec is a
//     no-op, never double-wrapping it);
//  2. a [framecodec.Primitive] tag compiles to the matching fixed-width
//     codec;
//  3. a []any ([]framecodec.Frame) compiles to a fixed-shape tuple, each
//     element compiled independently;
//  4. a [framecodec.OrderedMap] or map[string]any (a string-keyed natural
//     map of Frames) compiles to a keyed sequence;
//  5. a [framecodec.Literal], or a bare string, bool or built-in numeric
//     value, compiles to a zero-byte literal codec.
//
// A Frame of any other type is an error.
//
// Combinator values returned by [framecodec.String], [framecodec.Header],
// [framecodec.Prefix], [framecodec.Repeated], [framecodec.FiniteFrame],
// [framecodec.FiniteBlock], [framecodec.DelimitedBlock],
// [framecodec.DelimitedFrame], [framecodec.RawFrame] and
// [framecodec.Enum] are recognized by their own Go types ahead of the
// generic literal fallback.
func CompileFrame(f framecodec.Frame) (framecodec.Codec, error) {
	switch v := f.(type) {
	case framecodec.Codec:
		return v, nil
	case framecodec.Primitive:
		return compilePrimitive(v)
	case []any:
		return compileTuple(v)
	case framecodec.OrderedMap:
		return compileOrderedMap(v)
	case map[string]any:
		return compileNaturalMap(v)
	case framecodec.Enum:
		return compileEnum(v)
	case framecodec.StringSpec:
		return compileString(v)
	case framecodec.HeaderSpec:
		return compileHeader(v)
	case framecodec.PrefixSpec:
		return compilePrefixFrame(v)
	case framecodec.RepeatedSpec:
		return compileRepeated(v)
	case framecodec.FiniteFrameSpec:
		return compileFiniteFrame(v)
	case framecodec.FiniteBlockSpec:
		return &finiteBlockCodec{length: v.Length}, nil
	case framecodec.DelimitedBlockSpec:
		return &delimitedBlockCodec{delims: v.Delimiters, strip: v.Strip}, nil
	case framecodec.DelimitedFrameSpec:
		body, err := CompileFrame(v.Body)
		if err != nil {
			return nil, err
		}
		return &delimitedFrameCodec{body: body, delims: v.Delimiters}, nil
	case framecodec.RawFrameSpec:
		return compileRawFrame(v)
	case framecodec.Literal:
		return literalCodec{value: v.Value}, nil
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return literalCodec{value: v}, nil
	default:
		return nil, fmt.Errorf("wire: cannot compile frame of type %T", f)
	}
}

var (
	registryMu sync.RWMutex
	registry   = map[string]framecodec.Codec{}
)

// DefCodec compiles f and registers the result under name, the "optional
// syntactic sugar" of binding a name to a compiled codec so other frames
// (or calling code) can refer to it by name instead of threading the Frame
// value around. It returns the compiled Codec so callers can also use it
// directly.
func DefCodec(name string, f framecodec.Frame) (framecodec.Codec, error) {
	c, err := CompileFrame(f)
	if err != nil {
		return nil, err
	}
	registryMu.Lock()
	registry[name] = c
	registryMu.Unlock()
	return c, nil
}

// Lookup returns the codec registered under name by [DefCodec], and whether
// one was found.
func Lookup(name string) (framecodec.Codec, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[name]
	return c, ok
}
