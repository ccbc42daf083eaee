package kv

import "fmt"

// EnumEntry pairs an enumeration constant with its name.
type EnumEntry[T any] struct {
	Name  string
	Value T
}

// EnumDomain is an ordered list of name/value pairs describing a closed
// enumeration. The first entry with a matching name wins.
type EnumDomain[T any] []EnumEntry[T]

// EnumDomainOf builds a domain from values, naming each by its String method.
func EnumDomainOf[T fmt.Stringer](values ...T) EnumDomain[T] {
	d := make(EnumDomain[T], 0, len(values))
	for _, v := range values {
		d = append(d, EnumEntry[T]{Name: v.String(), Value: v})
	}
	return d
}

// Lookup finds the constant whose name equals name exactly (case-sensitive).
func (d EnumDomain[T]) Lookup(name string) (T, bool) {
	for _, e := range d {
		if e.Name == name {
			return e.Value, true
		}
	}
	var zero T
	return zero, false
}

// AsEnum resolves n's value by exact name within domain, or returns def when
// the value is absent or matches no entry.
func AsEnum[T any](n *Node, domain EnumDomain[T], def T) T {
	v, ok := n.Value()
	if !ok {
		return def
	}
	if e, found := domain.Lookup(v); found {
		return e
	}
	return def
}
