package bs

import "testing"

func TestScannerWholeBuffer(t *testing.T) {
	sc := NewScanner([][]byte{[]byte("\n")})
	seq := Of([]byte("foo\nbar"))
	at, which, ok := sc.Scan(seq)
	if !ok || at != 3 || which != 0 {
		t.Fatalf("Scan = %d, %d, %v; want 3, 0, true", at, which, ok)
	}
}

func TestScannerSplitAcrossChunks(t *testing.T) {
	// Delimiter "\r\n" straddles a chunk boundary.
	sc := NewScanner([][]byte{[]byte("\r\n")})
	seq := Of([]byte("abc\r"), []byte("\ndef"))
	at, _, ok := sc.Scan(seq)
	if !ok || at != 3 {
		t.Fatalf("Scan = %d, %v; want 3, true", at, ok)
	}
}

func TestScannerResumesWithoutRescanning(t *testing.T) {
	sc := NewScanner([][]byte{[]byte("XY")})
	seq := Of([]byte("aaaaX"))
	if _, _, ok := sc.Scan(seq); ok {
		t.Fatalf("Scan found a match too early")
	}
	// safe should now exclude everything except the last byte (maxLen-1 == 1).
	if sc.safe != 4 {
		t.Fatalf("safe = %d, want 4", sc.safe)
	}
	seq = seq.Append([]byte("Ybbb"))
	at, which, ok := sc.Scan(seq)
	if !ok || at != 4 || which != 0 {
		t.Fatalf("Scan = %d, %d, %v; want 4, 0, true", at, which, ok)
	}
}

func TestScannerFirstInListWinsOnTie(t *testing.T) {
	sc := NewScanner([][]byte{[]byte("ab"), []byte("a")})
	seq := Of([]byte("xxab"))
	at, which, ok := sc.Scan(seq)
	if !ok || at != 2 || which != 0 {
		t.Fatalf("Scan = %d, %d, %v; want 2, 0, true (first delimiter in list wins)", at, which, ok)
	}
}

func TestScannerByteByByte(t *testing.T) {
	sc := NewScanner([][]byte{[]byte("::")})
	full := []byte("hello::world")
	var seq Sequence
	var at int
	var ok bool
	for i := 0; i < len(full) && !ok; i++ {
		seq = seq.Append([]byte{full[i]})
		at, _, ok = sc.Scan(seq)
	}
	if !ok || at != 5 {
		t.Fatalf("byte-by-byte scan: at=%d ok=%v, want 5, true", at, ok)
	}
}
