package framecodec

import "iter"

// Frame is a recursive, user-level declarative description of a binary
// layout. A Frame is one of:
//
//   - a [Primitive] tag such as [Int32] or [Float64LE];
//   - a []Frame, describing a fixed-shape ordered tuple;
//   - an [OrderedMap], describing a keyed sequence with declaration-order
//     byte layout;
//   - a map[string]Frame, a convenience "natural map" (see [OrderedMap]
//     on natural-map ordering);
//   - a [Literal], a zero-byte constant;
//   - any other comparable Go value (string, integer, float, bool), treated
//     as an implicit [Literal];
//   - a value returned by one of the combinator constructors in this
//     package ([String], [StringInteger], [StringFloat], [Enum], [Header],
//     [Prefix], [Repeated], [FiniteFrame], [FiniteBlock], [DelimitedBlock],
//     [DelimitedFrame], [RawFrame]);
//   - an already-compiled [Codec], returned unchanged by wire.CompileFrame.
//
// Frame is an alias for any; the named combinator return types are what
// give the algebra its structure.
type Frame = any

// Primitive identifies one of the fixed-width primitive codecs from the
// wire layout table. Decoded integer values are always represented in Go
// as int64 regardless of wire width, and decoded floating-point values are
// always float64; [Codec.Write] accepts any Go integer type for an integer
// tag (with width and signedness validation appropriate to the tag) and a
// float32 or float64 for a floating-point tag. This
// keeps the combinator algebra working with two canonical numeric Go types
// instead of a full int8/16/32/64 (and unsigned) zoo, the same way the
// teacher library documents that "all Go integer types... correspond to
// the ASN.1 INTEGER type."
type Primitive uint8

// The primitive tags from the wire layout table in the specification's
// external interfaces section. Multi-byte integers and floats default to
// big-endian; the LE-suffixed variants use little-endian.
const (
	Byte Primitive = iota
	Int16
	UInt16
	Int32
	UInt32
	Int64
	UInt64
	Float32
	Float64
	Int16LE
	UInt16LE
	Int32LE
	UInt32LE
	Int64LE
	UInt64LE
	Float32LE
	Float64LE
)

//go:generate stringer -type=Primitive

// Literal marks a Frame node as a constant: a zero-byte codec that reads as
// Value and asserts equality with Value on write.
type Literal struct {
	Value any
}

// Lit wraps v as a [Literal] frame. Using Lit is optional for the concrete
// types CompileFrame already treats as implicit literals (strings, the
// built-in numeric types, and bool), but it disambiguates intent and is
// required for any other comparable type.
func Lit(v any) Literal { return Literal{Value: v} }

// Map is the decoded value produced by an [OrderedMap] or natural-map
// codec. Unlike a Go map, Map preserves the key order it was decoded (or
// constructed) with.
type Map struct {
	keys   []string
	values []any
}

// NewMap builds a Map from alternating key, value arguments, e.g.
// NewMap("a", 1, "b", 2.0).
func NewMap(kv ...any) Map {
	if len(kv)%2 != 0 {
		panic("framecodec: NewMap requires an even number of arguments")
	}
	m := Map{keys: make([]string, 0, len(kv)/2), values: make([]any, 0, len(kv)/2)}
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic("framecodec: NewMap keys must be strings")
		}
		m.keys = append(m.keys, key)
		m.values = append(m.values, kv[i+1])
	}
	return m
}

// Get returns the value stored under key, and whether it was present.
func (m Map) Get(key string) (any, bool) {
	for i, k := range m.keys {
		if k == key {
			return m.values[i], true
		}
	}
	return nil, false
}

// Len returns the number of entries in m.
func (m Map) Len() int { return len(m.keys) }

// Keys iterates over m's keys in their declared/decoded order.
func (m Map) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, k := range m.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// OrderedMap is a Frame describing a keyed sequence whose encoded byte
// layout follows declaration order, and whose decoded value (a [Map])
// preserves that order. It is the only portable way to describe a
// multi-field keyed frame: a plain map[string]Frame is also accepted by
// [CompileFrame] as a convenience "natural map", but since Go deliberately
// randomizes map iteration order, a natural map is compiled using its
// keys' sort order rather than any notion of "declaration order" — fine
// for self-describing formats, but callers who need a specific wire layout
// must use OrderedMap.
type OrderedMap struct {
	keys   []string
	frames []Frame
}

// NewOrderedMap builds an OrderedMap from alternating key, Frame arguments,
// e.g. NewOrderedMap("a", Int32, "b", Float64).
func NewOrderedMap(kv ...any) OrderedMap {
	if len(kv)%2 != 0 {
		panic("framecodec: NewOrderedMap requires an even number of arguments")
	}
	m := OrderedMap{keys: make([]string, 0, len(kv)/2), frames: make([]Frame, 0, len(kv)/2)}
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic("framecodec: NewOrderedMap keys must be strings")
		}
		m.keys = append(m.keys, key)
		m.frames = append(m.frames, kv[i+1])
	}
	return m
}

// Keys iterates over m's declared keys in order.
func (m OrderedMap) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, k := range m.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Entries iterates over m's declared key/Frame pairs in order. Compilers
// (wire.CompileFrame) use this to build the ordered list of child codecs.
func (m OrderedMap) Entries() iter.Seq2[string, Frame] {
	return func(yield func(string, Frame) bool) {
		for i, k := range m.keys {
			if !yield(k, m.frames[i]) {
				return
			}
		}
	}
}

// Len returns the number of fields in m.
func (m OrderedMap) Len() int { return len(m.keys) }

// Enum is a Frame describing a bijection between a small set of symbolic
// tags and 16-bit signed integers.
type Enum struct {
	fwd map[string]int16
	rev map[int16]string
}

// NewEnum builds an Enum with the default dense assignment: tags[i] maps
// to int16(i).
func NewEnum(tags ...string) Enum {
	e := Enum{fwd: make(map[string]int16, len(tags)), rev: make(map[int16]string, len(tags))}
	for i, t := range tags {
		e.fwd[t] = int16(i)
		e.rev[int16(i)] = t
	}
	return e
}

// NewEnumValues builds an Enum with an explicit tag-to-value assignment.
// Unlike [OrderedMap], the iteration order of values does not affect the
// wire format (the wire format is just the chosen integer), so an ordinary
// Go map is a perfectly stable constructor here.
func NewEnumValues(values map[string]int16) Enum {
	e := Enum{fwd: make(map[string]int16, len(values)), rev: make(map[int16]string, len(values))}
	for t, v := range values {
		e.fwd[t] = v
		e.rev[v] = t
	}
	return e
}

// Value returns the wire value assigned to tag, and whether tag is known.
func (e Enum) Value(tag string) (int16, bool) { v, ok := e.fwd[tag]; return v, ok }

// Tag returns the tag assigned to the wire value v, and whether v is known.
func (e Enum) Tag(v int16) (string, bool) { t, ok := e.rev[v]; return t, ok }
