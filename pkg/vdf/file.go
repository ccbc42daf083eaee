package vdf

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/vdfkit/internal/atomicfile"
	"github.com/joshuapare/vdfkit/internal/compress"
	"github.com/joshuapare/vdfkit/internal/logger"
	"github.com/joshuapare/vdfkit/internal/mmfile"
	"github.com/joshuapare/vdfkit/pkg/kv"
	"github.com/joshuapare/vdfkit/pkg/types"
)

// binaryTagLimit is one past the highest tag byte a binary document can start
// with. Text documents never start with a byte below it.
const binaryTagLimit = 0x09

// IsBinary reports whether payload looks like the binary encoding. The
// payload must already be decompressed.
func IsBinary(payload []byte) bool {
	return len(payload) > 0 && payload[0] < binaryTagLimit
}

// Decode loads a tree from data, stripping any compression container and
// choosing the binary or text decoder by the first payload byte.
func Decode(data []byte, opts types.LoadOptions) (*kv.Node, error) {
	payload, kind, err := compress.Unwrap(data)
	if err != nil {
		return nil, err
	}
	if kind != types.CompressionNone {
		logger.Debug("vdf: unwrapped container", "compression", string(kind), "in", len(data), "out", len(payload))
	}
	if IsBinary(payload) {
		return ReadBinary(bytes.NewReader(payload), opts)
	}
	return ReadText(bytes.NewReader(payload), opts)
}

// LoadFile maps the file at path and decodes it with Decode.
func LoadFile(path string, opts types.LoadOptions) (*kv.Node, error) {
	f, err := mmfile.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := Decode(f.Bytes(), opts)
	if err != nil {
		return nil, fmt.Errorf("vdf: load %s: %w", path, err)
	}
	return root, nil
}

// LoadTextFile loads a text document from path, or returns nil on any
// failure.
func LoadTextFile(path string) *kv.Node {
	root, err := loadAs(path, false)
	if err != nil {
		logger.Debug("vdf: text load failed", "path", path, "error", err)
		return nil
	}
	return root
}

// TryLoadBinaryFile loads a binary document from path, or returns nil on any
// failure.
func TryLoadBinaryFile(path string) *kv.Node {
	root, err := loadAs(path, true)
	if err != nil {
		logger.Debug("vdf: binary load failed", "path", path, "error", err)
		return nil
	}
	return root
}

func loadAs(path string, binary bool) (*kv.Node, error) {
	f, err := mmfile.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	payload, _, err := compress.Unwrap(f.Bytes())
	if err != nil {
		return nil, err
	}
	if binary {
		return ReadBinary(bytes.NewReader(payload), types.LoadOptions{})
	}
	return ReadText(bytes.NewReader(payload), types.LoadOptions{})
}

// SaveFile encodes n with Encode and atomically replaces path with the
// result.
func SaveFile(path string, n *kv.Node, opts types.SaveOptions) error {
	data, err := Encode(n, opts)
	if err != nil {
		return err
	}
	if err := atomicfile.WriteFile(path, data, opts.Sync); err != nil {
		return fmt.Errorf("vdf: save %s: %w", path, err)
	}
	return nil
}
