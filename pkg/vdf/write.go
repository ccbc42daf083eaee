package vdf

import (
	"bytes"
	"io"

	"github.com/joshuapare/vdfkit/internal/compress"
	"github.com/joshuapare/vdfkit/internal/kvbin"
	"github.com/joshuapare/vdfkit/internal/kvtext"
	"github.com/joshuapare/vdfkit/pkg/kv"
	"github.com/joshuapare/vdfkit/pkg/types"
)

// WriteText writes n to w as an indented text document.
func WriteText(w io.Writer, n *kv.Node) error {
	return kvtext.Emit(w, n)
}

// WriteBinary writes n to w in the binary encoding.
func WriteBinary(w io.Writer, n *kv.Node) error {
	return kvbin.Encode(w, n)
}

// Save writes n to w in the binary encoding when binary is true and as text
// otherwise.
func Save(w io.Writer, n *kv.Node, binary bool) error {
	if binary {
		return WriteBinary(w, n)
	}
	return WriteText(w, n)
}

// Encode serializes n into memory, wrapped in the container named by
// opts.Compression. opts.Sync is ignored.
func Encode(n *kv.Node, opts types.SaveOptions) ([]byte, error) {
	codec, err := compress.Get(opts.Compression)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := Save(&buf, n, opts.Binary); err != nil {
		return nil, err
	}
	return codec.Compress(buf.Bytes())
}
