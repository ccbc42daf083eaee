// Package kv provides the in-memory KeyValues tree.
//
// A tree is built from Node values. Containers hold an ordered list of named
// children; leaves hold an optional string value. Child names are matched
// case-insensitively and Set replaces an existing sibling of the same name.
// Loaders use AppendChild and may therefore produce duplicate sibling names,
// in which case Get returns the first one.
//
// # Lookups
//
// Get never fails: a miss returns the Invalid sentinel, whose accessors
// report defaults and whose mutators do nothing. Lookup is the two-value
// form for callers that prefer an explicit found flag.
//
//	port := root.Path("server", "listen").AsIntegerOr(8080)
//	if n, ok := root.Lookup("debug"); ok && n.AsBoolean() {
//		...
//	}
//
// # Typed values
//
// Values are always stored as strings. The As* accessors parse on demand and
// return the caller's default for absent or malformed values. AsEnum resolves
// a value against a caller-supplied EnumDomain.
//
// Encoding and decoding live in package vdf.
package kv
