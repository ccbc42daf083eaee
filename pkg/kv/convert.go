package kv

import (
	"errors"
	"strconv"
	"strings"
)

// AsString returns the raw value, or "" when absent.
func (n *Node) AsString() string {
	v, _ := n.Value()
	return v
}

// AsByte converts the value to a signed 8-bit integer, defaulting to 0.
func (n *Node) AsByte() int8 { return n.AsByteOr(0) }

// AsByteOr converts the value to a signed 8-bit integer, or returns def.
func (n *Node) AsByteOr(def int8) int8 {
	i, ok := n.parseInt(8)
	if !ok {
		return def
	}
	return int8(i)
}

// AsShort converts the value to a 16-bit integer, defaulting to 0.
func (n *Node) AsShort() int16 { return n.AsShortOr(0) }

// AsShortOr converts the value to a 16-bit integer, or returns def.
func (n *Node) AsShortOr(def int16) int16 {
	i, ok := n.parseInt(16)
	if !ok {
		return def
	}
	return int16(i)
}

// AsInteger converts the value to a 32-bit integer, defaulting to 0.
func (n *Node) AsInteger() int32 { return n.AsIntegerOr(0) }

// AsIntegerOr converts the value to a 32-bit integer, or returns def.
func (n *Node) AsIntegerOr(def int32) int32 {
	i, ok := n.parseInt(32)
	if !ok {
		return def
	}
	return int32(i)
}

// AsLong converts the value to a 64-bit integer, defaulting to 0.
func (n *Node) AsLong() int64 { return n.AsLongOr(0) }

// AsLongOr converts the value to a 64-bit integer, or returns def.
func (n *Node) AsLongOr(def int64) int64 {
	i, ok := n.parseInt(64)
	if !ok {
		return def
	}
	return i
}

// AsFloat converts the value to a 32-bit float, defaulting to 0.
func (n *Node) AsFloat() float32 { return n.AsFloatOr(0) }

// AsFloatOr converts the value to a 32-bit float, or returns def. Surrounding
// whitespace and a trailing f/F/d/D type suffix are accepted. Magnitudes
// outside float32 range saturate to ±Inf (or 0 on underflow).
func (n *Node) AsFloatOr(def float32) float32 {
	v, ok := n.Value()
	if !ok {
		return def
	}
	v = trimFloatSuffix(strings.TrimSpace(v))
	f, err := strconv.ParseFloat(v, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return def
	}
	return float32(f)
}

// AsBoolean converts the value to a bool, defaulting to false.
func (n *Node) AsBoolean() bool { return n.AsBooleanOr(false) }

// AsBooleanOr reports a non-zero integer value as true. Values that are not
// integers fall back to the literals "true"/"false" in any case; anything
// else returns def.
func (n *Node) AsBooleanOr(def bool) bool {
	if i, ok := n.parseInt(32); ok {
		return i != 0
	}
	v, ok := n.Value()
	if !ok {
		return def
	}
	switch {
	case strings.EqualFold(v, "true"):
		return true
	case strings.EqualFold(v, "false"):
		return false
	default:
		return def
	}
}

func (n *Node) parseInt(bits int) (int64, bool) {
	v, ok := n.Value()
	if !ok {
		return 0, false
	}
	i, err := strconv.ParseInt(v, 10, bits)
	if err != nil {
		return 0, false
	}
	return i, true
}

// trimFloatSuffix drops a single f/F/d/D suffix that follows a digit or dot,
// leaving "Inf" and friends alone.
func trimFloatSuffix(s string) string {
	if len(s) < 2 {
		return s
	}
	switch s[len(s)-1] {
	case 'f', 'F', 'd', 'D':
		prev := s[len(s)-2]
		if (prev >= '0' && prev <= '9') || prev == '.' {
			return s[:len(s)-1]
		}
	}
	return s
}
