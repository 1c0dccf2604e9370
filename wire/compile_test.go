package wire_test

import (
	"testing"

	"github.com/go-frame/framecodec"
	"github.com/go-frame/framecodec/bs"
	"github.com/go-frame/framecodec/wire"
)

// decodeByteByByte feeds b into c one byte at a time, exercising the
// resumable Need/Resumable protocol the way a streaming reader would.
func decodeByteByByte(t *testing.T, c framecodec.Codec, b []byte) (any, bs.Sequence) {
	t.Helper()
	cur := c
	seq := bs.Sequence{}
	for i := 0; i < len(b); i++ {
		seq = seq.Append([]byte{b[i]})
		res, err := cur.Read(seq)
		if err != nil {
			t.Fatalf("Read at byte %d: %v", i, err)
		}
		if res.IsDone() {
			return res.Value(), res.Remainder()
		}
		cur = res.Resumable()
		seq = res.Remainder()
	}
	t.Fatalf("decode did not complete after %d bytes", len(b))
	return nil, bs.Sequence{}
}

func mustCompile(t *testing.T, f framecodec.Frame) framecodec.Codec {
	t.Helper()
	c, err := wire.CompileFrame(f)
	if err != nil {
		t.Fatalf("CompileFrame: %v", err)
	}
	return c
}

func TestPrimitiveRoundTrip(t *testing.T) {
	c := mustCompile(t, framecodec.Int32)
	b, err := wire.Encode(c, int64(-12345))
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 4 {
		t.Fatalf("want 4 bytes, got %d", len(b))
	}
	v, err := wire.Decode(c, b)
	if err != nil {
		t.Fatal(err)
	}
	if v.(int64) != -12345 {
		t.Fatalf("want -12345, got %v", v)
	}
}

func TestPrimitiveLittleEndianRoundTrip(t *testing.T) {
	c := mustCompile(t, framecodec.UInt32LE)
	b, err := wire.Encode(c, uint32(0x01020304))
	if err != nil {
		t.Fatal(err)
	}
	if b[0] != 0x04 || b[3] != 0x01 {
		t.Fatalf("unexpected little-endian bytes: %x", b)
	}
	v, err := wire.Decode(c, b)
	if err != nil {
		t.Fatal(err)
	}
	if v.(int64) != 0x01020304 {
		t.Fatalf("got %v", v)
	}
}

func TestPrimitiveByteByByte(t *testing.T) {
	c := mustCompile(t, framecodec.Int64)
	b, err := wire.Encode(c, int64(123456789))
	if err != nil {
		t.Fatal(err)
	}
	v, rem := decodeByteByByte(t, c, b)
	if v.(int64) != 123456789 {
		t.Fatalf("got %v", v)
	}
	if rem.Len() != 0 {
		t.Fatalf("expected empty remainder, got %d bytes", rem.Len())
	}
}

func TestFloatRoundTrip(t *testing.T) {
	c := mustCompile(t, framecodec.Float64)
	b, err := wire.Encode(c, 3.14159)
	if err != nil {
		t.Fatal(err)
	}
	v, err := wire.Decode(c, b)
	if err != nil {
		t.Fatal(err)
	}
	if v.(float64) != 3.14159 {
		t.Fatalf("got %v", v)
	}
}

func TestIntRangeCheck(t *testing.T) {
	c := mustCompile(t, framecodec.Byte)
	if _, err := wire.Encode(c, int64(300)); err == nil {
		t.Fatal("expected a range error for 300 in a Byte field")
	}
}

func TestTupleRoundTrip(t *testing.T) {
	c := mustCompile(t, []any{framecodec.Int32, framecodec.Float64, framecodec.Byte})
	b, err := wire.Encode(c, []any{int64(42), 2.5, int64(7)})
	if err != nil {
		t.Fatal(err)
	}
	v, err := wire.Decode(c, b)
	if err != nil {
		t.Fatal(err)
	}
	vals := v.([]any)
	if vals[0].(int64) != 42 || vals[1].(float64) != 2.5 || vals[2].(int64) != 7 {
		t.Fatalf("got %v", vals)
	}
}

func TestTupleWithLiteral(t *testing.T) {
	c := mustCompile(t, []any{framecodec.Lit("a"), framecodec.Byte, framecodec.Float64, framecodec.Lit("b")})
	b, err := wire.Encode(c, []any{"a", int64(1), 2.0, "b"})
	if err != nil {
		t.Fatal(err)
	}
	v, err := wire.Decode(c, b)
	if err != nil {
		t.Fatal(err)
	}
	vals := v.([]any)
	if vals[0] != "a" || vals[3] != "b" {
		t.Fatalf("got %v", vals)
	}
	if _, err := wire.Encode(c, []any{"x", int64(1), 2.0, "b"}); err == nil {
		t.Fatal("expected a literal mismatch error")
	}
}

func TestOrderedMapRoundTrip(t *testing.T) {
	c := mustCompile(t, framecodec.NewOrderedMap("a", framecodec.Int32, "b", framecodec.Float64))
	val := framecodec.NewMap("a", int64(1), "b", 2.5)
	b, err := wire.Encode(c, val)
	if err != nil {
		t.Fatal(err)
	}
	v, err := wire.Decode(c, b)
	if err != nil {
		t.Fatal(err)
	}
	m := v.(framecodec.Map)
	got, _ := m.Get("a")
	if got.(int64) != 1 {
		t.Fatalf("got %v", m)
	}
}

func TestNaturalMapUsesSortedKeyOrder(t *testing.T) {
	c := mustCompile(t, map[string]any{"z": framecodec.Byte, "a": framecodec.Byte})
	b, err := wire.Encode(c, map[string]any{"z": int64(9), "a": int64(1)})
	if err != nil {
		t.Fatal(err)
	}
	// sorted order is a, z -> first byte is a's value
	if b[0] != 1 || b[1] != 9 {
		t.Fatalf("expected sorted-key layout [1 9], got %v", b)
	}
}

func TestEnumRoundTrip(t *testing.T) {
	e := framecodec.NewEnum("red", "green", "blue")
	c := mustCompile(t, e)
	b, err := wire.Encode(c, "green")
	if err != nil {
		t.Fatal(err)
	}
	v, err := wire.Decode(c, b)
	if err != nil {
		t.Fatal(err)
	}
	if v.(string) != "green" {
		t.Fatalf("got %v", v)
	}
	if _, err := wire.Encode(c, "purple"); err == nil {
		t.Fatal("expected unknown enum tag error")
	}
}

func TestPrefixDefault(t *testing.T) {
	c := mustCompile(t, framecodec.Repeated(framecodec.Byte))
	vals := []any{int64(1), int64(2), int64(3)}
	b, err := wire.Encode(c, vals)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 4+3 {
		t.Fatalf("want 7 bytes (int32 prefix + 3), got %d", len(b))
	}
	v, err := wire.Decode(c, b)
	if err != nil {
		t.Fatal(err)
	}
	got := v.([]any)
	if len(got) != 3 || got[1].(int64) != 2 {
		t.Fatalf("got %v", got)
	}
}

func TestRepeatedByteByByte(t *testing.T) {
	c := mustCompile(t, framecodec.Repeated(framecodec.Int16))
	b, err := wire.Encode(c, []any{int64(10), int64(20), int64(30)})
	if err != nil {
		t.Fatal(err)
	}
	v, rem := decodeByteByByte(t, c, b)
	got := v.([]any)
	if len(got) != 3 || got[2].(int64) != 30 {
		t.Fatalf("got %v", got)
	}
	if rem.Len() != 0 {
		t.Fatalf("expected empty remainder")
	}
}

func TestRepeatedDelimited(t *testing.T) {
	elem := framecodec.String("ascii", framecodec.WithDelimiters([]byte("\n")))
	c := mustCompile(t, framecodec.Repeated(elem, framecodec.WithRepeatDelimiters([]byte{0})))
	b, err := wire.Encode(c, []any{"foo", "bar", "baz"})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "foo\nbar\nbaz\n\x00" {
		t.Fatalf("got %q", b)
	}
	v, err := wire.Decode(c, b)
	if err != nil {
		t.Fatal(err)
	}
	got := v.([]any)
	if len(got) != 3 || got[1] != "bar" {
		t.Fatalf("got %v", got)
	}
}

func TestFiniteFrameFixedLength(t *testing.T) {
	c := mustCompile(t, framecodec.FiniteFrame(4, framecodec.Byte))
	if _, err := wire.Encode(c, int64(5)); err == nil {
		t.Fatal("expected a body-overrun error: a 1-byte body cannot fill a 4-byte frame")
	}
}

func TestFiniteFramePrefixed(t *testing.T) {
	c := mustCompile(t, framecodec.FiniteFrame(
		framecodec.Prefix(framecodec.Int32, nil, nil),
		framecodec.String("ascii"),
	))
	b, err := wire.Encode(c, "hello")
	if err != nil {
		t.Fatal(err)
	}
	v, err := wire.Decode(c, b)
	if err != nil {
		t.Fatal(err)
	}
	if v.(string) != "hello" {
		t.Fatalf("got %v", v)
	}
}

func TestDelimitedFrame(t *testing.T) {
	c := mustCompile(t, framecodec.DelimitedFrame([][]byte{{0}}, framecodec.String("ascii")))
	b, err := wire.Encode(c, "hi there")
	if err != nil {
		t.Fatal(err)
	}
	v, err := wire.Decode(c, b)
	if err != nil {
		t.Fatal(err)
	}
	if v.(string) != "hi there" {
		t.Fatalf("got %v", v)
	}
}

func TestDelimitedBlockStrip(t *testing.T) {
	c := mustCompile(t, framecodec.DelimitedBlock([][]byte{[]byte("\r\n")}, true))
	b, err := wire.Encode(c, []byte("payload"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "payload\r\n" {
		t.Fatalf("got %q", b)
	}
	v, err := wire.Decode(c, b)
	if err != nil {
		t.Fatal(err)
	}
	if string(v.([]byte)) != "payload" {
		t.Fatalf("got %q", v)
	}
}

func TestStringIntegerAndFloat(t *testing.T) {
	ci := mustCompile(t, framecodec.StringInteger("ascii", framecodec.WithDelimiters([]byte(","))))
	b, err := wire.Encode(ci, int64(1234))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "1234," {
		t.Fatalf("got %q", b)
	}
	v, err := wire.Decode(ci, b)
	if err != nil {
		t.Fatal(err)
	}
	if v.(int64) != 1234 {
		t.Fatalf("got %v", v)
	}

	cf := mustCompile(t, framecodec.StringFloat("ascii", framecodec.WithLength(4)))
	b, err = wire.Encode(cf, 1.25)
	if err != nil {
		t.Fatal(err)
	}
	v, err = wire.Decode(cf, b)
	if err != nil {
		t.Fatal(err)
	}
	if v.(float64) != 1.25 {
		t.Fatalf("got %v", v)
	}
}

// TestHeaderDependentBody exercises a header frame whose body layout varies
// with the decoded header value: a zero header byte means the body is a
// 16-bit integer, any other header byte means a 32-bit integer.
func TestHeaderDependentBody(t *testing.T) {
	f := framecodec.Header(
		framecodec.Byte,
		func(h any) (framecodec.Frame, error) {
			n, _ := framecodec.CoerceInt64(h)
			if n == 0 {
				return framecodec.Int16, nil
			}
			return framecodec.Int32, nil
		},
		func(body any) (any, error) {
			n, _ := framecodec.CoerceInt64(body)
			if n >= -32768 && n <= 32767 {
				return int64(0), nil
			}
			return int64(1), nil
		},
	)
	c := mustCompile(t, f)
	b, err := wire.Encode(c, int64(99))
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 3 {
		t.Fatalf("want header(1)+int16(2)=3 bytes, got %d", len(b))
	}
	v, err := wire.Decode(c, b)
	if err != nil {
		t.Fatal(err)
	}
	if v.(int64) != 99 {
		t.Fatalf("got %v", v)
	}

	b, err = wire.Encode(c, int64(1<<20))
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 5 {
		t.Fatalf("want header(1)+int32(4)=5 bytes, got %d", len(b))
	}
	v, err = wire.Decode(c, b)
	if err != nil {
		t.Fatal(err)
	}
	if v.(int64) != 1<<20 {
		t.Fatalf("got %v", v)
	}
}

func TestCompileFrameIsIdempotent(t *testing.T) {
	c1 := mustCompile(t, framecodec.Int32)
	c2 := mustCompile(t, c1)
	if c1 != c2 {
		t.Fatal("expected CompileFrame on an already-compiled Codec to return it unchanged")
	}
}

func TestResidualBytesError(t *testing.T) {
	c := mustCompile(t, framecodec.Byte)
	if _, err := wire.Decode(c, []byte{1, 2}); err != framecodec.ErrResidualBytes {
		t.Fatalf("expected ErrResidualBytes, got %v", err)
	}
}

func TestTruncatedError(t *testing.T) {
	c := mustCompile(t, framecodec.Int32)
	if _, err := wire.Decode(c, []byte{1, 2}); err != framecodec.ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestDecodeAll(t *testing.T) {
	c := mustCompile(t, framecodec.Byte)
	vals, err := wire.DecodeAll(c, []byte{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(vals) != 3 {
		t.Fatalf("got %v", vals)
	}
}

func TestDefCodecAndLookup(t *testing.T) {
	if _, err := wire.DefCodec("test-point", []any{framecodec.Int32, framecodec.Int32}); err != nil {
		t.Fatal(err)
	}
	c, ok := wire.Lookup("test-point")
	if !ok {
		t.Fatal("expected test-point to be registered")
	}
	if _, ok := c.Sizeof(); !ok {
		t.Fatal("expected a fixed-size tuple codec")
	}
}

func TestInspectKind(t *testing.T) {
	c := mustCompile(t, framecodec.Int32)
	if wire.Inspect(c) != wire.KindPrimitive {
		t.Fatalf("got %v", wire.Inspect(c))
	}
	tup := mustCompile(t, []any{framecodec.Int32})
	if wire.Inspect(tup) != wire.KindTuple {
		t.Fatalf("got %v", wire.Inspect(tup))
	}
}

func TestRawFrame(t *testing.T) {
	c := mustCompile(t, framecodec.RawFrame(3))
	b, err := wire.Encode(c, bs.Of([]byte{1, 2, 3}))
	if err != nil {
		t.Fatal(err)
	}
	v, err := wire.Decode(c, b)
	if err != nil {
		t.Fatal(err)
	}
	seq := v.(bs.Sequence)
	if seq.Len() != 3 {
		t.Fatalf("got len %d", seq.Len())
	}
}
