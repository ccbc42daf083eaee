// Package compress wraps encoded trees in self-identifying compressed
// containers.
//
// Every supported container starts with a fixed magic number, so Detect can
// pick the right codec when a file is loaded:
//
//	gzip  1f 8b
//	zstd  28 b5 2f fd
//	lz4   04 22 4d 18            (LZ4 frame format)
//	s2    ff 06 00 00 53 32 73 54 77 4f  (S2 stream identifier)
//
// Input without a known magic is treated as uncompressed. Decompressed output
// is capped at MaxDecompressedSize.
package compress
