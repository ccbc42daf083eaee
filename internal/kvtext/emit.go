package kvtext

import (
	"bufio"
	"io"
	"strings"

	"github.com/joshuapare/vdfkit/pkg/kv"
	"github.com/joshuapare/vdfkit/pkg/types"
)

// Emit writes n as an indented, brace-delimited UTF-8 document. n is always
// written as a block. A child without a value is written as a nested block
// even when it has no children, so an empty block and a value-less leaf look
// the same on the wire.
func Emit(w io.Writer, n *kv.Node) error {
	if w == nil {
		return types.InvalidArgument("kvtext.Emit", "writer is nil")
	}
	if !n.IsValid() {
		return types.InvalidArgument("kvtext.Emit", "node is nil or invalid")
	}

	bw := bufio.NewWriter(w)
	emitBlock(bw, n, 0)
	if err := bw.Flush(); err != nil {
		return types.IOError(err, "kvtext: write")
	}
	return nil
}

// bufio.Writer errors are sticky, so Flush reports the first failure.
func emitBlock(bw *bufio.Writer, n *kv.Node, level int) {
	indent := strings.Repeat(Indent, level)

	_, _ = bw.WriteString(indent)
	_, _ = bw.WriteString(quote(n.Name()))
	_, _ = bw.WriteString(LF)
	_, _ = bw.WriteString(indent)
	_, _ = bw.WriteString(OpenBrace + LF)

	for i := 0; i < n.Len(); i++ {
		child := n.ChildAt(i)
		value, ok := child.Value()
		if !ok {
			emitBlock(bw, child, level+1)
			continue
		}
		_, _ = bw.WriteString(indent + Indent)
		_, _ = bw.WriteString(quote(child.Name()))
		_, _ = bw.WriteString(KeyValueSeparator)
		_, _ = bw.WriteString(quote(escapeValue(value)))
		_, _ = bw.WriteString(LF)
	}

	_, _ = bw.WriteString(indent)
	_, _ = bw.WriteString(CloseBrace + LF)
}
