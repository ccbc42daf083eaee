package kvtext

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/vdfkit/pkg/kv"
	"github.com/joshuapare/vdfkit/pkg/types"
)

func sampleTree(t *testing.T) *kv.Node {
	t.Helper()
	root := kv.New("root")
	require.NoError(t, root.AppendChild(kv.NewValue("a", "1")))
	b := kv.New("b")
	require.NoError(t, b.AppendChild(kv.NewValue("c", `hello "world"`)))
	require.NoError(t, root.AppendChild(b))
	return root
}

func TestEmit_Layout(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Emit(&out, sampleTree(t)))

	want := "\"root\"\n" +
		"{\n" +
		"\t\"a\"\t\t\"1\"\n" +
		"\t\"b\"\n" +
		"\t{\n" +
		"\t\t\"c\"\t\t\"hello \\\"world\\\"\"\n" +
		"\t}\n" +
		"}\n"
	assert.Equal(t, want, out.String())
}

func TestEmit_EscapesValues(t *testing.T) {
	root := kv.New("r")
	require.NoError(t, root.AppendChild(kv.NewValue("v", "line1\nline2\t\\end")))

	var out bytes.Buffer
	require.NoError(t, Emit(&out, root))
	assert.Contains(t, out.String(), `"line1\nline2\t\\end"`)
}

func TestEmit_RoundTrip(t *testing.T) {
	root := kv.New("settings")
	values := []string{"", "plain", "a\\b", "\\n", "tab\there", "\"quoted\"", "crlf\r\n", `\"`}
	for i, v := range values {
		require.NoError(t, root.AppendChild(kv.NewValue(string(rune('a'+i)), v)))
	}
	nested := kv.New("nested")
	require.NoError(t, nested.AppendChild(kv.NewValue("leaf", "x")))
	require.NoError(t, root.AppendChild(nested))

	var out bytes.Buffer
	require.NoError(t, Emit(&out, root))

	back := kv.NewEmpty()
	require.NoError(t, Read(&out, back, types.LoadOptions{}))
	assert.True(t, kv.Equal(root, back), "text:\n%s", out.String())
}

func TestEmit_NameWithQuote(t *testing.T) {
	root := kv.New(`odd "name"`)
	require.NoError(t, root.AppendChild(kv.NewValue(`k"ey`, "v")))

	var out bytes.Buffer
	require.NoError(t, Emit(&out, root))

	back := kv.NewEmpty()
	require.NoError(t, Read(&out, back, types.LoadOptions{}))
	assert.Equal(t, `odd "name"`, back.Name())
	assert.Equal(t, "v", back.Get(`k"ey`).AsString())
}

// A value-less leaf is written as an empty block, so reading it back gives a
// value-less node, while the binary form stores it as an empty string.
func TestEmit_ValuelessLeafBecomesEmptyBlock(t *testing.T) {
	root := kv.New("r")
	require.NoError(t, root.AppendChild(kv.New("nothing")))

	var out bytes.Buffer
	require.NoError(t, Emit(&out, root))
	assert.Equal(t, "\"r\"\n{\n\t\"nothing\"\n\t{\n\t}\n}\n", out.String())

	back := kv.NewEmpty()
	require.NoError(t, Read(strings.NewReader(out.String()), back, types.LoadOptions{}))
	assert.False(t, back.Get("nothing").HasValue())
	assert.True(t, kv.Equal(root, back))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEmit_Errors(t *testing.T) {
	err := Emit(failWriter{}, sampleTree(t))
	assert.True(t, types.IsKind(err, types.ErrKindIO))

	assert.ErrorIs(t, Emit(nil, sampleTree(t)), types.ErrNilArgument)
	assert.ErrorIs(t, Emit(&bytes.Buffer{}, nil), types.ErrNilArgument)
	assert.ErrorIs(t, Emit(&bytes.Buffer{}, kv.Invalid()), types.ErrNilArgument)
}
