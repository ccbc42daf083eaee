package kv

import (
	"fmt"
	"slices"
	"strings"

	"github.com/joshuapare/vdfkit/pkg/types"
)

// Node is a KeyValues tree node. A node with children is a container and
// carries no value; a node without children is a leaf whose value may be
// absent.
//
// Nodes are not safe for concurrent mutation.
type Node struct {
	name     string
	value    string
	hasValue bool
	children []*Node
	invalid  bool
}

// invalid is the lookup-failed sentinel. Every mutator ignores it.
var invalid = &Node{invalid: true}

// Invalid returns the shared sentinel that Get hands back when no child
// matches. It is never part of a tree and cannot be modified.
func Invalid() *Node { return invalid }

// NewEmpty creates an unnamed node with no value.
func NewEmpty() *Node {
	return &Node{}
}

// New creates a named node with no value.
func New(name string) *Node {
	return &Node{name: name}
}

// NewValue creates a named leaf holding value.
func NewValue(name, value string) *Node {
	return &Node{name: name, value: value, hasValue: true}
}

// IsValid reports whether n is a real node rather than the Invalid sentinel.
func (n *Node) IsValid() bool {
	return n != nil && !n.invalid
}

// Name returns the node's name ("" when unset).
func (n *Node) Name() string {
	if n == nil {
		return ""
	}
	return n.name
}

// SetName renames the node.
func (n *Node) SetName(name string) {
	if !n.IsValid() {
		return
	}
	n.name = name
}

// Value returns the raw value and whether one is present.
func (n *Node) Value() (string, bool) {
	if n == nil {
		return "", false
	}
	return n.value, n.hasValue
}

// HasValue reports whether a value is present.
func (n *Node) HasValue() bool {
	return n != nil && n.hasValue
}

// SetValue stores value on the node.
func (n *Node) SetValue(value string) {
	if !n.IsValid() {
		return
	}
	n.value = value
	n.hasValue = true
}

// ClearValue removes the value, leaving it absent.
func (n *Node) ClearValue() {
	if !n.IsValid() {
		return
	}
	n.value = ""
	n.hasValue = false
}

// Len returns the number of children.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// ChildAt returns the i-th child. It panics if i is out of range, like a
// slice index.
func (n *Node) ChildAt(i int) *Node {
	return n.children[i]
}

// Children returns a copy of the child list in insertion order.
func (n *Node) Children() []*Node {
	if n == nil || len(n.children) == 0 {
		return nil
	}
	return slices.Clone(n.children)
}

// IsContainer reports whether the node has children.
func (n *Node) IsContainer() bool {
	return n.Len() > 0
}

// Get returns the first child whose name matches key case-insensitively, or
// the Invalid sentinel when there is none.
func (n *Node) Get(key string) *Node {
	if child, ok := n.Lookup(key); ok {
		return child
	}
	return invalid
}

// Lookup returns the first child whose name matches key case-insensitively.
func (n *Node) Lookup(key string) (*Node, bool) {
	if idx := n.indexOf(key); idx >= 0 {
		return n.children[idx], true
	}
	return nil, false
}

// Path follows keys through nested Get calls. The Invalid sentinel is returned
// as soon as one step misses.
func (n *Node) Path(keys ...string) *Node {
	cur := n
	for _, k := range keys {
		cur = cur.Get(k)
		if !cur.IsValid() {
			return invalid
		}
	}
	return cur
}

// Set replaces the first child named key (case-insensitively) with child,
// renaming child to key. The replacement is appended at the end rather than
// taking the removed child's position.
func (n *Node) Set(key string, child *Node) error {
	if !n.IsValid() {
		return types.InvalidArgument("kv.Set", "receiver is not a valid node")
	}
	if !child.IsValid() {
		return types.InvalidArgument("kv.Set", "child is nil or invalid")
	}
	if child == n {
		return types.InvalidArgument("kv.Set", "node cannot be its own child")
	}
	if idx := n.indexOf(key); idx >= 0 {
		n.children = slices.Delete(n.children, idx, idx+1)
	}
	child.name = key
	n.children = append(n.children, child)
	return nil
}

// AppendChild adds child at the end without any name uniqueness check.
func (n *Node) AppendChild(child *Node) error {
	if !n.IsValid() {
		return types.InvalidArgument("kv.AppendChild", "receiver is not a valid node")
	}
	if !child.IsValid() {
		return types.InvalidArgument("kv.AppendChild", "child is nil or invalid")
	}
	if child == n {
		return types.InvalidArgument("kv.AppendChild", "node cannot be its own child")
	}
	n.children = append(n.children, child)
	return nil
}

// Remove deletes the first child named key and reports whether one was found.
func (n *Node) Remove(key string) bool {
	if !n.IsValid() {
		return false
	}
	idx := n.indexOf(key)
	if idx < 0 {
		return false
	}
	n.children = slices.Delete(n.children, idx, idx+1)
	return true
}

// ClearChildren drops every child.
func (n *Node) ClearChildren() {
	if !n.IsValid() {
		return
	}
	n.children = nil
}

func (n *Node) indexOf(key string) int {
	if n == nil {
		return -1
	}
	for i, c := range n.children {
		if strings.EqualFold(c.name, key) {
			return i
		}
	}
	return -1
}

// String formats the node as "name = value".
func (n *Node) String() string {
	v, _ := n.Value()
	return fmt.Sprintf("%s = %s", n.Name(), v)
}
