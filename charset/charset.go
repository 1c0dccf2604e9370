// Package charset resolves the charset names used by
// [github.com/go-frame/framecodec.String] and its string-number variants to
// concrete byte/text encodings, backed by golang.org/x/text/encoding. It is
// a thin registry, not a general text-processing package: the wire package
// looks a charset name up once, at CompileFrame time, and keeps the
// resulting Codec for the lifetime of the compiled frame.
package charset

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Codec converts between a charset's raw bytes and a Go string.
type Codec interface {
	Decode(b []byte) (string, error)
	Encode(s string) ([]byte, error)
}

type textCodec struct{ enc encoding.Encoding }

func (c textCodec) Decode(b []byte) (string, error) {
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("charset: decode: %w", err)
	}
	return string(out), nil
}

func (c textCodec) Encode(s string) ([]byte, error) {
	out, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("charset: encode: %w", err)
	}
	return out, nil
}

// asciiCodec is a pass-through codec for 7-bit ASCII, the most common
// charset tag in practice and the one most of this module's tests use. x/text's charmap table only goes up to ISO-8859 family
// encodings, so ASCII is handled directly rather than through encoding.Encoding.
type asciiCodec struct{}

func (asciiCodec) Decode(b []byte) (string, error) {
	for _, c := range b {
		if c > 0x7f {
			return "", fmt.Errorf("charset: byte 0x%02x is not valid ASCII", c)
		}
	}
	return string(b), nil
}

func (asciiCodec) Encode(s string) ([]byte, error) {
	for _, r := range s {
		if r > 0x7f {
			return nil, fmt.Errorf("charset: rune %q is not valid ASCII", r)
		}
	}
	return []byte(s), nil
}

var registry = map[string]Codec{
	"ascii":      asciiCodec{},
	"us-ascii":   asciiCodec{},
	"utf-8":      textCodec{encoding.Nop},
	"utf8":       textCodec{encoding.Nop},
	"latin1":     textCodec{charmap.ISO8859_1},
	"iso-8859-1": textCodec{charmap.ISO8859_1},
	"utf-16be":   textCodec{unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
	"utf-16le":   textCodec{unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
}

// Lookup resolves a charset name (case-sensitive, matching the tags above)
// to its Codec. It returns a *framecodec.CharsetError-shaped error (via the
// errUnknown helper) for any other name.
func Lookup(name string) (Codec, error) {
	c, ok := registry[name]
	if !ok {
		return nil, errUnknown(name)
	}
	return c, nil
}
