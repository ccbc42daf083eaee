package kvbin

import (
	"errors"
	"io"
	"strconv"

	"github.com/joshuapare/vdfkit/internal/buf"
	"github.com/joshuapare/vdfkit/internal/logger"
	"github.com/joshuapare/vdfkit/pkg/kv"
	"github.com/joshuapare/vdfkit/pkg/types"
)

// Decode reads one binary tree from r into dst. dst's children are dropped
// before reading. The first top-level entry populates dst itself; further
// top-level entries before the closing END are decoded and discarded.
//
// On error dst may hold a partial tree and must not be used.
func Decode(r io.Reader, dst *kv.Node, limits types.Limits) error {
	if r == nil {
		return types.InvalidArgument("kvbin.Decode", "reader is nil")
	}
	if !dst.IsValid() {
		return types.InvalidArgument("kvbin.Decode", "destination is nil or invalid")
	}

	dst.ClearChildren()
	d := &decoder{r: buf.NewReader(r), limits: limits}
	return d.entries(dst, nil, 0)
}

type decoder struct {
	r      *buf.Reader
	limits types.Limits
}

// entries reads sibling entries until END. Each entry is decoded into
// current and then appended to parent; a fresh node takes its place for the
// next sibling. With no parent (top level) only the first entry survives.
func (d *decoder) entries(current, parent *kv.Node, depth int) error {
	if d.limits.DepthExceeded(depth) {
		return types.FormatError(types.ErrLimit, "kvbin: nesting deeper than %d at offset %d", d.limits.MaxDepth, d.r.Offset())
	}

	for first := true; ; first = false {
		off := d.r.Offset()
		raw, err := d.r.ReadByte()
		if err != nil {
			return d.readErr(err, "reading type tag")
		}
		tag, ok := types.ParseTag(raw)
		if !ok {
			return types.FormatError(types.ErrUnknownTag, "kvbin: tag %d at offset %d", raw, off)
		}
		if tag == types.TagEnd {
			return nil
		}

		name, err := d.r.ReadCString(d.limits.MaxStringLen)
		if err != nil {
			return d.readErr(err, "reading entry name")
		}
		current.SetName(name)

		if err := d.body(tag, current, depth, off); err != nil {
			return err
		}

		switch {
		case parent != nil:
			if err := parent.AppendChild(current); err != nil {
				return err
			}
		case !first:
			logger.Debug("kvbin: discarding extra top-level entry", "name", name, "offset", off)
		}
		current = kv.NewEmpty()
	}
}

// body decodes the payload that follows an entry name. Legacy numeric tags
// are stored as decimal strings:
//
//	INT32, COLOR, POINTER  unsigned 32-bit ("4294967295", not "-1")
//	UINT64                 unsigned 64-bit ("18446744073709551615", not "-1")
//	INT64                  signed 64-bit
//	FLOAT32                shortest round-trip form ("1", "1.5", "1e+10")
//
// Writers that formatted these as signed integers or with a trailing ".0"
// produce different text for the same bits; AsLong, AsInteger and AsFloat
// accept every form.
func (d *decoder) body(tag types.Tag, current *kv.Node, depth int, off int64) error {
	switch tag {
	case types.TagNone:
		return d.entries(kv.NewEmpty(), current, depth+1)

	case types.TagString:
		v, err := d.r.ReadCString(d.limits.MaxStringLen)
		if err != nil {
			return d.readErr(err, "reading string value")
		}
		current.SetValue(v)

	case types.TagInt32, types.TagColor, types.TagPointer:
		v, err := d.r.ReadU32LE()
		if err != nil {
			return d.readErr(err, "reading 32-bit value")
		}
		current.SetValue(strconv.FormatUint(uint64(v), 10))

	case types.TagUint64:
		v, err := d.r.ReadU64LE()
		if err != nil {
			return d.readErr(err, "reading 64-bit value")
		}
		current.SetValue(strconv.FormatUint(v, 10))

	case types.TagInt64:
		v, err := d.r.ReadI64LE()
		if err != nil {
			return d.readErr(err, "reading 64-bit value")
		}
		current.SetValue(strconv.FormatInt(v, 10))

	case types.TagFloat32:
		v, err := d.r.ReadF32LE()
		if err != nil {
			return d.readErr(err, "reading float value")
		}
		current.SetValue(strconv.FormatFloat(float64(v), 'g', -1, 32))

	case types.TagWideString:
		logger.Debug("kvbin: wide string entry is unsupported", "name", current.Name(), "offset", off)
		return types.FormatError(types.ErrWideString, "kvbin: entry %q at offset %d", current.Name(), off)

	default:
		return types.FormatError(types.ErrUnknownTag, "kvbin: unexpected %s at offset %d", tag, off)
	}
	return nil
}

func (d *decoder) readErr(err error, what string) error {
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return types.FormatError(types.ErrTruncated, "kvbin: %s at offset %d", what, d.r.Offset())
	case errors.Is(err, buf.ErrStringTooLong):
		return types.FormatError(types.ErrLimit, "kvbin: %s at offset %d: longer than %d bytes", what, d.r.Offset(), d.limits.MaxStringLen)
	default:
		return types.IOError(err, "kvbin: %s", what)
	}
}
