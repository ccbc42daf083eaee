package types

import "fmt"

// Tag is the one-byte discriminator preceding every entry of the binary form.
// The numbering is stable; 9 and values from 11 upwards are unassigned.
type Tag uint8

const (
	TagNone       Tag = 0 // container marker
	TagString     Tag = 1
	TagInt32      Tag = 2
	TagFloat32    Tag = 3
	TagPointer    Tag = 4
	TagWideString Tag = 5
	TagColor      Tag = 6
	TagUint64     Tag = 7
	TagEnd        Tag = 8
	TagInt64      Tag = 10
)

// ParseTag maps a raw byte to its Tag. ok is false for reserved codes.
func ParseTag(b byte) (Tag, bool) {
	switch t := Tag(b); t {
	case TagNone, TagString, TagInt32, TagFloat32, TagPointer,
		TagWideString, TagColor, TagUint64, TagEnd, TagInt64:
		return t, true
	default:
		return 0, false
	}
}

// String implements the Stringer interface for Tag.
func (t Tag) String() string {
	switch t {
	case TagNone:
		return "NONE"
	case TagString:
		return "STRING"
	case TagInt32:
		return "INT32"
	case TagFloat32:
		return "FLOAT32"
	case TagPointer:
		return "POINTER"
	case TagWideString:
		return "WIDESTRING"
	case TagColor:
		return "COLOR"
	case TagUint64:
		return "UINT64"
	case TagEnd:
		return "END"
	case TagInt64:
		return "INT64"
	default:
		return fmt.Sprintf("UNKNOWN_TAG_%d", uint8(t))
	}
}
