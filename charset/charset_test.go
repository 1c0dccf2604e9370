package charset_test

import (
	"errors"
	"testing"

	"github.com/go-frame/framecodec"
	"github.com/go-frame/framecodec/charset"
)

func TestLookupKnownNames(t *testing.T) {
	names := []string{"ascii", "us-ascii", "utf-8", "utf8", "latin1", "iso-8859-1", "utf-16be", "utf-16le"}
	for _, name := range names {
		if _, err := charset.Lookup(name); err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
}

func TestLookupUnknownName(t *testing.T) {
	_, err := charset.Lookup("ebcdic")
	if err == nil {
		t.Fatal("expected an error for an unknown charset name")
	}
	var ce *framecodec.CharsetError
	if !errors.As(err, &ce) {
		t.Fatalf("expected a *framecodec.CharsetError, got %T: %v", err, err)
	}
	if ce.Name != "ebcdic" {
		t.Fatalf("got Name=%q", ce.Name)
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	c, err := charset.Lookup("ascii")
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Encode("hello world")
	if err != nil {
		t.Fatal(err)
	}
	s, err := c.Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if s != "hello world" {
		t.Fatalf("got %q", s)
	}
}

func TestASCIIRejectsNonASCII(t *testing.T) {
	c, err := charset.Lookup("ascii")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Encode("café"); err == nil {
		t.Fatal("expected an error encoding a non-ASCII rune")
	}
	if _, err := c.Decode([]byte{0xff}); err == nil {
		t.Fatal("expected an error decoding a non-ASCII byte")
	}
}

func TestUTF8RoundTrip(t *testing.T) {
	c, err := charset.Lookup("utf-8")
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Encode("héllo wörld 日本語")
	if err != nil {
		t.Fatal(err)
	}
	s, err := c.Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if s != "héllo wörld 日本語" {
		t.Fatalf("got %q", s)
	}
}

func TestLatin1RoundTrip(t *testing.T) {
	c, err := charset.Lookup("latin1")
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Encode("café")
	if err != nil {
		t.Fatal(err)
	}
	s, err := c.Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if s != "café" {
		t.Fatalf("got %q", s)
	}
}

func TestUTF16RoundTrip(t *testing.T) {
	for _, name := range []string{"utf-16be", "utf-16le"} {
		c, err := charset.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		b, err := c.Encode("hello")
		if err != nil {
			t.Fatal(err)
		}
		if len(b) != 10 {
			t.Fatalf("%s: expected 10 bytes (2 per rune), got %d", name, len(b))
		}
		s, err := c.Decode(b)
		if err != nil {
			t.Fatal(err)
		}
		if s != "hello" {
			t.Fatalf("%s: got %q", name, s)
		}
	}
}
