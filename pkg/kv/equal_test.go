package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree(t *testing.T) *Node {
	t.Helper()
	root := New("root")
	require.NoError(t, root.AppendChild(NewValue("a", "1")))
	b := New("b")
	require.NoError(t, b.AppendChild(NewValue("c", `hello "world"`)))
	require.NoError(t, root.AppendChild(b))
	return root
}

func TestEqualAndFingerprint(t *testing.T) {
	x := sampleTree(t)
	y := sampleTree(t)

	assert.True(t, Equal(x, y))
	assert.Equal(t, x.Fingerprint(), y.Fingerprint())

	y.Get("b").Get("c").SetValue("changed")
	assert.False(t, Equal(x, y))
	assert.NotEqual(t, x.Fingerprint(), y.Fingerprint())
}

func TestEqual_ValuePresenceMatters(t *testing.T) {
	absent := New("k")
	empty := NewValue("k", "")

	assert.False(t, Equal(absent, empty))
	assert.NotEqual(t, absent.Fingerprint(), empty.Fingerprint())
	assert.False(t, Equal(absent, nil))
	assert.True(t, Equal(nil, nil))
}

func TestEqual_OrderMatters(t *testing.T) {
	x := New("r")
	require.NoError(t, x.AppendChild(NewValue("a", "1")))
	require.NoError(t, x.AppendChild(NewValue("b", "2")))
	y := New("r")
	require.NoError(t, y.AppendChild(NewValue("b", "2")))
	require.NoError(t, y.AppendChild(NewValue("a", "1")))

	assert.False(t, Equal(x, y))
	assert.NotEqual(t, x.Fingerprint(), y.Fingerprint())
}

func TestWalk(t *testing.T) {
	root := sampleTree(t)

	var names []string
	var depths []int
	root.Walk(func(n *Node, depth int) bool {
		names = append(names, n.Name())
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []string{"root", "a", "b", "c"}, names)
	assert.Equal(t, []int{0, 1, 1, 2}, depths)

	names = names[:0]
	root.Walk(func(n *Node, depth int) bool {
		names = append(names, n.Name())
		return n.Name() != "b"
	})
	assert.Equal(t, []string{"root", "a", "b"}, names)
}
