package framecodec

// StringValueKind selects how a [StringSpec] frame interprets its decoded
// bytes: as text, or by additionally parsing the text as a number.
type StringValueKind uint8

const (
	// TextValue decodes to a Go string.
	TextValue StringValueKind = iota
	// IntegerValue decodes the charset-decoded text as a base-10 integer
	// (string-integer in the spec's external interface list).
	IntegerValue
	// FloatValue decodes the charset-decoded text as a base-10 float
	// (string-float in the spec's external interface list).
	FloatValue
)

// StringSpec is the Frame produced by [String], [StringInteger] and
// [StringFloat]: a charset-tagged byte/string codec that is either
// finite-length, delimiter-terminated, or (if neither option is given)
// unbounded — consuming the entire remaining input, which is only valid
// when this Frame itself appears inside a [FiniteFrame] or [DelimitedFrame]
// wrapper.
type StringSpec struct {
	Charset    string
	HasLength  bool
	Length     int
	Delimiters [][]byte
	ValueKind  StringValueKind
}

// StringOption configures a [StringSpec].
type StringOption func(*StringSpec)

// WithLength makes the string frame read exactly n bytes.
func WithLength(n int) StringOption {
	return func(s *StringSpec) { s.HasLength = true; s.Length = n }
}

// WithDelimiters makes the string frame scan for the first occurrence of
// any of the given delimiters and consume (but not include) it.
func WithDelimiters(delims ...[]byte) StringOption {
	return func(s *StringSpec) { s.Delimiters = delims }
}

// String describes a charset-tagged string frame. See [StringSpec].
func String(charset string, opts ...StringOption) Frame {
	s := StringSpec{Charset: charset, ValueKind: TextValue}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// StringInteger describes a decimal integer encoded as charset-tagged text,
// e.g. the ASCII text "1234".
func StringInteger(charset string, opts ...StringOption) Frame {
	s := StringSpec{Charset: charset, ValueKind: IntegerValue}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// StringFloat describes a decimal floating-point number encoded as
// charset-tagged text.
func StringFloat(charset string, opts ...StringOption) Frame {
	s := StringSpec{Charset: charset, ValueKind: FloatValue}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// HeaderSpec is the Frame produced by [Header]: a content-dependent
// follow-on codec, where the body's Frame is selected by the decoded
// header value.
type HeaderSpec struct {
	Header       Frame
	HeaderToBody func(header any) (Frame, error)
	BodyToHeader func(body any) (header any, err error)
}

// Header describes a frame whose body layout depends on a decoded header
// value: h is decoded first, then headerToBody(headerValue) selects the Frame used to decode the body. On
// write, bodyToHeader derives the header value from the body value.
func Header(h Frame, headerToBody func(any) (Frame, error), bodyToHeader func(any) (any, error)) Frame {
	return HeaderSpec{Header: h, HeaderToBody: headerToBody, BodyToHeader: bodyToHeader}
}

// PrefixSpec is the Frame produced by [Prefix]: a [HeaderSpec] specialized
// so the "header" is an integer length.
type PrefixSpec struct {
	Header  Frame
	ToInt   func(any) (int, error)
	FromInt func(int) any
}

// Prefix describes an integer-length header. If toInt or fromInt are nil,
// identity conversions are used: the header Frame's decoded value must
// already be (or coerce to, via [CoerceInt64]) an int, and on write the
// int length is passed to the header Frame's Write as an int64. This is the
// "a primitive prefix (prefix :int32) uses identity conversions" case from
// the specification.
func Prefix(h Frame, toInt func(any) (int, error), fromInt func(int) any) Frame {
	if toInt == nil {
		toInt = identityToInt
	}
	if fromInt == nil {
		fromInt = identityFromInt
	}
	return PrefixSpec{Header: h, ToInt: toInt, FromInt: fromInt}
}

func identityToInt(v any) (int, error) {
	n, ok := CoerceInt64(v)
	if !ok {
		return 0, shapeMismatch("prefix header value %#v is not an integer", v)
	}
	return int(n), nil
}

func identityFromInt(n int) any { return int64(n) }

// DefaultPrefix is the default sequence-length prefix used by [Repeated]
// when no WithPrefix option is given: a big-endian int32, per the
// specification's "Default sequence prefix is int32 big-endian."
var DefaultPrefix Frame = Prefix(Int32, nil, nil)

// RepeatedSpec is the Frame produced by [Repeated].
type RepeatedSpec struct {
	Elem       Frame
	Prefix     Frame   // length-prefixed repetition when set
	Delimiters [][]byte // delimiter-terminated repetition when set
}

// RepeatedOption configures a [RepeatedSpec].
type RepeatedOption func(*RepeatedSpec)

// WithPrefix makes the repetition length-prefixed, using prefix (typically
// built with [Prefix]) to encode/decode the element count.
func WithPrefix(prefix Frame) RepeatedOption {
	return func(r *RepeatedSpec) { r.Prefix = prefix; r.Delimiters = nil }
}

// WithRepeatDelimiters makes the repetition delimiter-terminated: elements
// are decoded until one of delims is encountered.
func WithRepeatDelimiters(delims ...[]byte) RepeatedOption {
	return func(r *RepeatedSpec) { r.Delimiters = delims; r.Prefix = nil }
}

// Repeated describes a homogeneous sequence of elem, either length-prefixed
// (the default, using [DefaultPrefix]) or delimiter-terminated.
func Repeated(elem Frame, opts ...RepeatedOption) Frame {
	r := RepeatedSpec{Elem: elem, Prefix: DefaultPrefix}
	for _, o := range opts {
		o(&r)
	}
	return r
}

// FiniteFrameSpec is the Frame produced by [FiniteFrame]: body is read from
// exactly the number of bytes indicated by Length, which body must fully
// consume.
type FiniteFrameSpec struct {
	// Length is either a plain int (a fixed constant) or a [Prefix] Frame
	// whose decoded value gives the byte length.
	Length any
	Body   Frame
}

// FiniteFrame describes body being read from a block whose length is given
// by lengthOrPrefix: either a plain int constant, or a [Prefix] Frame
// decoded immediately before the body.
func FiniteFrame(lengthOrPrefix any, body Frame) Frame {
	return FiniteFrameSpec{Length: lengthOrPrefix, Body: body}
}

// FiniteBlockSpec is the Frame produced by [FiniteBlock].
type FiniteBlockSpec struct{ Length int }

// FiniteBlock describes a frame that reads exactly n raw bytes, decoding to
// a []byte.
func FiniteBlock(n int) Frame { return FiniteBlockSpec{Length: n} }

// DelimitedBlockSpec is the Frame produced by [DelimitedBlock].
type DelimitedBlockSpec struct {
	Delimiters [][]byte
	Strip      bool
}

// DelimitedBlock describes a frame that scans for the first occurrence of
// any delimiter in delimiters, decoding to a []byte. If strip is true, the
// decoded bytes exclude the matched delimiter and the delimiter is still
// consumed from the input; if false, the decoded bytes include it.
func DelimitedBlock(delimiters [][]byte, strip bool) Frame {
	return DelimitedBlockSpec{Delimiters: delimiters, Strip: strip}
}

// DelimitedFrameSpec is the Frame produced by [DelimitedFrame].
type DelimitedFrameSpec struct {
	Delimiters [][]byte
	Body       Frame
}

// DelimitedFrame describes body being read from a block whose length is
// determined by scanning for the first occurrence of any delimiter in
// delimiters; body must fully consume the scanned block.
func DelimitedFrame(delimiters [][]byte, body Frame) Frame {
	return DelimitedFrameSpec{Delimiters: delimiters, Body: body}
}

// RawFrameSpec is the Frame produced by [RawFrame].
type RawFrameSpec struct{ Length any }

// RawFrame describes a frame like [FiniteFrame] but whose decoded value is
// an uninterpreted [bs.Sequence] of the given length (a plain int constant
// or a [Prefix] Frame) rather than a materialized []byte. It is an escape
// hatch for embedding this library's output inside another protocol, or
// deferring interpretation of a sub-frame without paying for a copy.
func RawFrame(lengthOrPrefix any) Frame { return RawFrameSpec{Length: lengthOrPrefix} }
