package kvbin

import (
	"bufio"
	"io"

	"github.com/joshuapare/vdfkit/pkg/kv"
	"github.com/joshuapare/vdfkit/pkg/types"
)

// Encode writes n and its subtree in binary form, followed by the END byte
// that closes the implicit top-level container. Only NONE and STRING entries
// are produced; a leaf with no value is written as an empty string.
func Encode(w io.Writer, n *kv.Node) error {
	if w == nil {
		return types.InvalidArgument("kvbin.Encode", "writer is nil")
	}
	if !n.IsValid() {
		return types.InvalidArgument("kvbin.Encode", "node is nil or invalid")
	}

	bw := bufio.NewWriter(w)
	writeEntry(bw, n)
	_ = bw.WriteByte(byte(types.TagEnd))

	// bufio.Writer errors are sticky, so Flush reports the first failure.
	if err := bw.Flush(); err != nil {
		return types.IOError(err, "kvbin: write")
	}
	return nil
}

func writeEntry(bw *bufio.Writer, n *kv.Node) {
	if n.IsContainer() {
		_ = bw.WriteByte(byte(types.TagNone))
		writeCString(bw, n.Name())
		for i := 0; i < n.Len(); i++ {
			writeEntry(bw, n.ChildAt(i))
		}
		_ = bw.WriteByte(byte(types.TagEnd))
		return
	}

	_ = bw.WriteByte(byte(types.TagString))
	writeCString(bw, n.Name())
	writeCString(bw, n.AsString())
}

func writeCString(bw *bufio.Writer, s string) {
	_, _ = bw.WriteString(s)
	_ = bw.WriteByte(0)
}
