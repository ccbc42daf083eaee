package kv

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b have identical names, value presence, values
// and children in the same order.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.IsValid() != b.IsValid() {
		return false
	}
	if a.name != b.name || a.hasValue != b.hasValue || a.value != b.value {
		return false
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

// Fingerprint hashes the subtree rooted at n with xxhash. Trees that are
// Equal always share a fingerprint.
func (n *Node) Fingerprint() uint64 {
	d := xxhash.New()
	var scratch [8]byte
	writeLen := func(v int) {
		binary.LittleEndian.PutUint64(scratch[:], uint64(v))
		_, _ = d.Write(scratch[:])
	}
	n.Walk(func(node *Node, depth int) bool {
		writeLen(depth)
		writeLen(len(node.name))
		_, _ = d.WriteString(node.name)
		if node.hasValue {
			writeLen(len(node.value) + 1)
			_, _ = d.WriteString(node.value)
		} else {
			writeLen(0)
		}
		writeLen(len(node.children))
		return true
	})
	return d.Sum64()
}

// WalkFunc is called for every visited node. Returning false skips the
// node's children.
type WalkFunc func(n *Node, depth int) bool

// Walk visits n and its descendants in pre-order. The root has depth 0.
func (n *Node) Walk(fn WalkFunc) {
	if n == nil {
		return
	}
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn WalkFunc) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.children {
		walk(c, depth+1, fn)
	}
}
