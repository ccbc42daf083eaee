/*
Package vdf reads and writes KeyValues trees (the Valve Data Format) in both
their text and binary encodings.

# Quick Start

Parse a text document:

	root, err := vdf.LoadString(`"config" { "port" "27015" }`)
	if err != nil {
	    log.Fatal(err)
	}
	port := root.Get("port").AsIntegerOr(27015)

Load any file, text or binary, optionally compressed:

	root, err := vdf.LoadFile("appinfo.vdf", types.LoadOptions{})

Save a tree in the binary encoding with zstd compression:

	err := vdf.SaveFile("out.vdf", root, types.SaveOptions{
	    Binary:      true,
	    Compression: types.CompressionZstd,
	    Sync:        true,
	})

# Streams and Files

Stream functions (ReadText, ReadBinary, WriteText, WriteBinary, Save) never
close the reader or writer they are given. File functions open, map and close
files themselves. LoadTextFile and TryLoadBinaryFile return nil on any failure;
use LoadFile when the cause matters.

# Format Detection

Decode and LoadFile first strip a gzip, zstd, lz4 or s2 container when one is
present, then pick the binary decoder when the payload starts with a type tag
byte below 0x09, and the text loader otherwise. Text never starts with such a
byte; UTF-16 text starts with a byte-order mark.

# Error Handling

Errors carry a category reachable with types.IsKind and a specific cause
reachable with errors.Is:

	root, err := vdf.LoadFile(path, types.LoadOptions{})
	if errors.Is(err, types.ErrUnknownTag) {
	    // binary input with a tag this library does not know
	}
	if types.IsKind(err, types.ErrKindIO) {
	    // file system problem
	}

No partial tree is ever returned alongside an error.
*/
package vdf
