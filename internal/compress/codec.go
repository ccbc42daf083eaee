package compress

import (
	"bytes"
	"errors"
	"io"

	"github.com/joshuapare/vdfkit/pkg/types"
)

// MaxDecompressedSize bounds the output of every Decompress call.
const MaxDecompressedSize = 256 << 20 // 256MB

// ErrTooLarge is returned when a container expands past MaxDecompressedSize.
var ErrTooLarge = errors.New("compress: decompressed size exceeds limit")

// Codec compresses and decompresses whole buffers.
//
// Implementations are safe for concurrent use.
type Codec interface {
	// Compress returns a complete container holding data.
	Compress(data []byte) ([]byte, error)

	// Decompress returns the payload of a container produced by Compress.
	Decompress(data []byte) ([]byte, error)
}

var builtinCodecs = map[types.Compression]Codec{
	types.CompressionNone: NoOpCodec{},
	types.CompressionGzip: GzipCodec{},
	types.CompressionZstd: ZstdCodec{},
	types.CompressionS2:   S2Codec{},
	types.CompressionLZ4:  LZ4Codec{},
}

// Get returns the built-in Codec for c.
func Get(c types.Compression) (Codec, error) {
	if codec, ok := builtinCodecs[c]; ok {
		return codec, nil
	}
	return nil, types.Unsupported("compress: unsupported compression %q", string(c))
}

// Parse maps a user-facing name to a Compression. "none" and "" both mean no
// container.
func Parse(name string) (types.Compression, error) {
	if name == "none" {
		return types.CompressionNone, nil
	}
	c := types.Compression(name)
	if _, ok := builtinCodecs[c]; !ok {
		return "", types.Unsupported("compress: unsupported compression %q", name)
	}
	return c, nil
}

// Unwrap detects the container around data and returns its payload along
// with the detected kind. Data without a known magic is returned unchanged.
func Unwrap(data []byte) ([]byte, types.Compression, error) {
	kind := Detect(data)
	if kind == types.CompressionNone {
		return data, kind, nil
	}
	out, err := builtinCodecs[kind].Decompress(data)
	if err != nil {
		return nil, kind, err
	}
	return out, kind, nil
}

// readAllLimited drains r, failing once more than MaxDecompressedSize bytes
// arrive.
func readAllLimited(r io.Reader, name string) ([]byte, error) {
	var out bytes.Buffer
	n, err := io.Copy(&out, io.LimitReader(r, MaxDecompressedSize+1))
	if err != nil {
		return nil, decodeError(name, err)
	}
	if n > MaxDecompressedSize {
		return nil, types.FormatError(ErrTooLarge, "compress: %s payload larger than %d bytes", name, MaxDecompressedSize)
	}
	return out.Bytes(), nil
}

func decodeError(name string, err error) error {
	return types.FormatError(err, "compress: %s decompression failed", name)
}
