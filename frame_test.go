package framecodec_test

import (
	"slices"
	"testing"

	"github.com/go-frame/framecodec"
)

func TestMapGetAndKeys(t *testing.T) {
	m := framecodec.NewMap("a", int64(1), "b", "two", "c", 3.0)
	if v, ok := m.Get("b"); !ok || v != "two" {
		t.Fatalf("Get(b) = %v, %v", v, ok)
	}
	if _, ok := m.Get("missing"); ok {
		t.Fatal("expected Get(missing) to report not found")
	}
	if m.Len() != 3 {
		t.Fatalf("Len() = %d", m.Len())
	}
	var keys []string
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	if !slices.Equal(keys, []string{"a", "b", "c"}) {
		t.Fatalf("Keys() order = %v", keys)
	}
}

func TestNewMapOddArgsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected NewMap to panic on an odd argument count")
		}
	}()
	framecodec.NewMap("a", 1, "b")
}

func TestNewMapNonStringKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected NewMap to panic on a non-string key")
		}
	}()
	framecodec.NewMap(1, "a")
}

func TestOrderedMapEntriesPreservesDeclarationOrder(t *testing.T) {
	om := framecodec.NewOrderedMap("z", framecodec.Int32, "a", framecodec.Byte, "m", framecodec.Float64)
	var keys []string
	for k, f := range om.Entries() {
		keys = append(keys, k)
		if f == nil {
			t.Fatalf("nil frame for key %q", k)
		}
	}
	if !slices.Equal(keys, []string{"z", "a", "m"}) {
		t.Fatalf("Entries() order = %v, want declaration order", keys)
	}
	if om.Len() != 3 {
		t.Fatalf("Len() = %d", om.Len())
	}
}

func TestEnumDefaultAssignment(t *testing.T) {
	e := framecodec.NewEnum("red", "green", "blue")
	v, ok := e.Value("green")
	if !ok || v != 1 {
		t.Fatalf("Value(green) = %d, %v", v, ok)
	}
	tag, ok := e.Tag(2)
	if !ok || tag != "blue" {
		t.Fatalf("Tag(2) = %q, %v", tag, ok)
	}
	if _, ok := e.Value("purple"); ok {
		t.Fatal("expected Value(purple) to report unknown")
	}
}

func TestEnumExplicitAssignment(t *testing.T) {
	e := framecodec.NewEnumValues(map[string]int16{"ok": 200, "notFound": 404})
	v, ok := e.Value("notFound")
	if !ok || v != 404 {
		t.Fatalf("Value(notFound) = %d, %v", v, ok)
	}
	tag, ok := e.Tag(200)
	if !ok || tag != "ok" {
		t.Fatalf("Tag(200) = %q, %v", tag, ok)
	}
}

func TestCoerceInt64(t *testing.T) {
	cases := []any{int(1), int8(2), int16(3), int32(4), int64(5), uint(6), uint8(7), uint16(8), uint32(9), uint64(10)}
	for i, v := range cases {
		n, ok := framecodec.CoerceInt64(v)
		if !ok || n != int64(i+1) {
			t.Fatalf("CoerceInt64(%#v) = %d, %v", v, n, ok)
		}
	}
	if _, ok := framecodec.CoerceInt64("not a number"); ok {
		t.Fatal("expected CoerceInt64 to reject a string")
	}
}

func TestCoerceFloat64(t *testing.T) {
	if f, ok := framecodec.CoerceFloat64(float32(1.5)); !ok || f != 1.5 {
		t.Fatalf("CoerceFloat64(float32) = %v, %v", f, ok)
	}
	if f, ok := framecodec.CoerceFloat64(2.5); !ok || f != 2.5 {
		t.Fatalf("CoerceFloat64(float64) = %v, %v", f, ok)
	}
	if _, ok := framecodec.CoerceFloat64(int64(1)); ok {
		t.Fatal("expected CoerceFloat64 to reject an int64")
	}
}

func TestLit(t *testing.T) {
	l := framecodec.Lit("const")
	if l.Value != "const" {
		t.Fatalf("Lit(const).Value = %v", l.Value)
	}
}
