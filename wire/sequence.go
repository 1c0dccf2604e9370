package wire

import (
	"reflect"
	"sort"

	"github.com/go-frame/framecodec"
	"github.com/go-frame/framecodec/bs"
)

// readChain decodes codecs in order, threading the accumulated values
// through composeCallback, and calls finish once every codec is Done. This
// is the shared field-by-field engine behind tuples, maps, and any other
// fixed-shape sequence.
func readChain(codecs []framecodec.Codec, acc []any, finish func([]any, bs.Sequence) (framecodec.ReadResult, error)) framecodec.Codec {
	if len(codecs) == 0 {
		return terminalCodec{acc: acc, finish: finish}
	}
	return composeCallback(codecs[0], func(v any, rem bs.Sequence) (framecodec.ReadResult, error) {
		next := make([]any, len(acc), len(acc)+1)
		copy(next, acc)
		next = append(next, v)
		return readChain(codecs[1:], next, finish).Read(rem)
	})
}

// terminalCodec is the zero-width continuation readChain reaches once every
// child codec has produced a value: its Read always completes immediately,
// handing the accumulated values to finish.
type terminalCodec struct {
	readOnlyCodec
	acc    []any
	finish func([]any, bs.Sequence) (framecodec.ReadResult, error)
}

func (t terminalCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) { return t.finish(t.acc, seq) }

// tupleCodec implements a fixed-shape ordered tuple ([]Frame compiled
// elementwise): decodes to a []any of len(children), encodes from one.
type tupleCodec struct{ children []framecodec.Codec }

func compileTuple(frames []framecodec.Frame) (framecodec.Codec, error) {
	children := make([]framecodec.Codec, len(frames))
	for i, f := range frames {
		c, err := CompileFrame(f)
		if err != nil {
			return nil, err
		}
		children[i] = c
	}
	return &tupleCodec{children: children}, nil
}

func (c *tupleCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	return readChain(c.children, nil, func(vals []any, rem bs.Sequence) (framecodec.ReadResult, error) {
		return framecodec.Done(vals, rem), nil
	}).Read(seq)
}

func (c *tupleCodec) Write(v any) ([][]byte, error) {
	vals, err := toSlice(v)
	if err != nil {
		return nil, err
	}
	if len(vals) != len(c.children) {
		return nil, framecodec.ShapeMismatch("tuple expects %d elements, got %d", len(c.children), len(vals))
	}
	return concatWrites(c.children, vals)
}

func (c *tupleCodec) Sizeof() (int, bool) {
	total := 0
	for _, child := range c.children {
		n, ok := child.Sizeof()
		if !ok {
			return 0, false
		}
		total += n
	}
	return total, true
}

func (c *tupleCodec) kind() Kind { return KindTuple }

// mapCodec implements an OrderedMap or natural map[string]Frame compiled
// elementwise: decodes to a [framecodec.Map], encodes from one (or from a
// map[string]any / map[string]Frame-shaped value via reflection).
type mapCodec struct {
	keys     []string
	children []framecodec.Codec
}

func compileOrderedMap(m framecodec.OrderedMap) (framecodec.Codec, error) {
	var keys []string
	var children []framecodec.Codec
	for k, f := range m.Entries() {
		c, err := CompileFrame(f)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
		children = append(children, c)
	}
	return &mapCodec{keys: keys, children: children}, nil
}

// compileNaturalMap compiles a bare map[string]Frame. Go randomizes map
// iteration order, so the wire layout uses the sorted key order instead of
// any notion of insertion order, per the "natural map" decision in the
// package docs: deterministic across runs, but not user-controlled the way
// an OrderedMap's order is.
func compileNaturalMap(m map[string]framecodec.Frame) (framecodec.Codec, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	children := make([]framecodec.Codec, len(keys))
	for i, k := range keys {
		c, err := CompileFrame(m[k])
		if err != nil {
			return nil, err
		}
		children[i] = c
	}
	return &mapCodec{keys: keys, children: children}, nil
}

func (c *mapCodec) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	return readChain(c.children, nil, func(vals []any, rem bs.Sequence) (framecodec.ReadResult, error) {
		return framecodec.Done(framecodec.NewMap(interleave(c.keys, vals)...), rem), nil
	}).Read(seq)
}

func (c *mapCodec) Write(v any) ([][]byte, error) {
	vals := make([]any, len(c.keys))
	switch m := v.(type) {
	case framecodec.Map:
		for i, k := range c.keys {
			val, ok := m.Get(k)
			if !ok {
				return nil, framecodec.ShapeMismatch("map value is missing field %q", k)
			}
			vals[i] = val
		}
	case map[string]any:
		for i, k := range c.keys {
			val, ok := m[k]
			if !ok {
				return nil, framecodec.ShapeMismatch("map value is missing field %q", k)
			}
			vals[i] = val
		}
	default:
		return nil, framecodec.ShapeMismatch("map codec expects a framecodec.Map or map[string]any, got %T", v)
	}
	return concatWrites(c.children, vals)
}

func (c *mapCodec) Sizeof() (int, bool) {
	total := 0
	for _, child := range c.children {
		n, ok := child.Sizeof()
		if !ok {
			return 0, false
		}
		total += n
	}
	return total, true
}

func (c *mapCodec) kind() Kind { return KindMap }

func interleave(keys []string, vals []any) []any {
	kv := make([]any, 0, 2*len(keys))
	for i, k := range keys {
		kv = append(kv, k, vals[i])
	}
	return kv
}

// toSlice coerces v to a []any, accepting a literal []any or any other Go
// slice/array type via reflection (so a tuple or repeated element can be
// written from, e.g., a []int).
func toSlice(v any) ([]any, error) {
	if vs, ok := v.([]any); ok {
		return vs, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, framecodec.ShapeMismatch("expected a slice or array, got %T", v)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// concatWrites writes each value with its corresponding codec in order and
// concatenates the resulting buffers. When every codec's size is statically
// known, the buffers are written into one pre-sized allocation instead of
// being left as separate chunks, the same optimization the teacher
// documents for combining a TLV header with its value.
func concatWrites(codecs []framecodec.Codec, vals []any) ([][]byte, error) {
	allBufs := make([][][]byte, len(codecs))
	total := 0
	sizeKnown := true
	for i, c := range codecs {
		bufs, err := c.Write(vals[i])
		if err != nil {
			return nil, err
		}
		allBufs[i] = bufs
		if n, ok := c.Sizeof(); ok {
			total += n
		} else {
			sizeKnown = false
		}
	}
	if !sizeKnown {
		var out [][]byte
		for _, bufs := range allBufs {
			out = append(out, bufs...)
		}
		return out, nil
	}
	buf := make([]byte, 0, total)
	for _, bufs := range allBufs {
		for _, b := range bufs {
			buf = append(buf, b...)
		}
	}
	return [][]byte{buf}, nil
}
