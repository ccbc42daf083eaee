package compress

import (
	"bytes"

	"github.com/joshuapare/vdfkit/pkg/types"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
	s2Magic   = []byte("\xff\x06\x00\x00S2sTwO")
)

// Detect reports the container that data starts with.
func Detect(data []byte) types.Compression {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return types.CompressionZstd
	case bytes.HasPrefix(data, lz4Magic):
		return types.CompressionLZ4
	case bytes.HasPrefix(data, s2Magic):
		return types.CompressionS2
	case bytes.HasPrefix(data, gzipMagic):
		return types.CompressionGzip
	default:
		return types.CompressionNone
	}
}
