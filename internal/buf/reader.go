package buf

import (
	"bufio"
	"errors"
	"io"
)

// ErrStringTooLong is returned when a null-terminated string exceeds the
// caller's maximum length.
var ErrStringTooLong = errors.New("buf: string exceeds maximum length")

// Reader decodes little-endian primitives and null-terminated strings from a
// stream while tracking the byte offset for error messages.
type Reader struct {
	br      *bufio.Reader
	off     int64
	scratch [8]byte
}

// NewReader wraps r. An existing *bufio.Reader is used as-is.
func NewReader(r io.Reader) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{br: br}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 { return r.off }

// ReadByte reads one byte. io.EOF is returned unchanged at end of input.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.br.ReadByte()
	if err != nil {
		return 0, err
	}
	r.off++
	return b, nil
}

// ReadCString reads bytes up to and excluding a 0x00 terminator. max <= 0
// disables the length check. End of input before the terminator yields
// io.ErrUnexpectedEOF.
func (r *Reader) ReadCString(maxLen int) (string, error) {
	var out []byte
	for {
		chunk, err := r.br.ReadSlice(0)
		r.off += int64(len(chunk))
		switch {
		case err == nil:
			chunk = chunk[:len(chunk)-1]
			if out == nil {
				if maxLen > 0 && len(chunk) > maxLen {
					return "", ErrStringTooLong
				}
				return string(chunk), nil
			}
			out = append(out, chunk...)
			if maxLen > 0 && len(out) > maxLen {
				return "", ErrStringTooLong
			}
			return string(out), nil
		case errors.Is(err, bufio.ErrBufferFull):
			out = append(out, chunk...)
			if maxLen > 0 && len(out) > maxLen {
				return "", ErrStringTooLong
			}
		case errors.Is(err, io.EOF):
			return "", io.ErrUnexpectedEOF
		default:
			return "", err
		}
	}
}

// ReadU32LE reads a little-endian uint32.
func (r *Reader) ReadU32LE() (uint32, error) {
	if err := r.fill(4); err != nil {
		return 0, err
	}
	return U32LE(r.scratch[:4]), nil
}

// ReadU64LE reads a little-endian uint64.
func (r *Reader) ReadU64LE() (uint64, error) {
	if err := r.fill(8); err != nil {
		return 0, err
	}
	return U64LE(r.scratch[:8]), nil
}

// ReadI64LE reads a little-endian two's-complement int64.
func (r *Reader) ReadI64LE() (int64, error) {
	if err := r.fill(8); err != nil {
		return 0, err
	}
	return I64LE(r.scratch[:8]), nil
}

// ReadF32LE reads a little-endian IEEE-754 float32.
func (r *Reader) ReadF32LE() (float32, error) {
	if err := r.fill(4); err != nil {
		return 0, err
	}
	return F32LE(r.scratch[:4]), nil
}

func (r *Reader) fill(n int) error {
	got, err := io.ReadFull(r.br, r.scratch[:n])
	r.off += int64(got)
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
