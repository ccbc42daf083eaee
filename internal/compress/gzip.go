package compress

import (
	"bytes"

	"github.com/klauspost/compress/gzip"

	"github.com/joshuapare/vdfkit/pkg/types"
)

// GzipCodec writes standard gzip members readable by any gzip tool.
type GzipCodec struct{}

var _ Codec = GzipCodec{}

// Compress compresses data at the default level.
func (GzipCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, types.IOError(err, "compress: gzip write")
	}
	if err := zw.Close(); err != nil {
		return nil, types.IOError(err, "compress: gzip close")
	}
	return buf.Bytes(), nil
}

// Decompress reads every gzip member in data.
func (GzipCodec) Decompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, decodeError("gzip", err)
	}
	defer zr.Close()
	return readAllLimited(zr, "gzip")
}
