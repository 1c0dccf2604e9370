package framecodec

// CoerceInt64 converts v to an int64 if v holds one of Go's built-in integer
// types. It is used by the primitive integer codecs (and by the default
// conversions [Prefix] uses for plain primitive headers) to accept any
// natural Go integer type while keeping the decoded representation
// canonical ([Primitive] codecs always decode to int64).
func CoerceInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}

// CoerceFloat64 converts v to a float64 if v holds a Go float32 or float64.
func CoerceFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
