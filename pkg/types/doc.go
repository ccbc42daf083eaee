// Package types defines the shared vocabulary of vdfkit: the typed error
// categories, the binary Type Tag enumeration, decoding limits, and the
// load/save option structs.
//
// Design goals:
//   - Typed errors with stable categories (format/io/invalid argument/unsupported).
//   - Specific failure causes exposed as sentinels usable with errors.Is.
//   - Never panic on malformed input.
//
// This package has no dependencies beyond the standard library.
package types
