package compress

import (
	"bytes"

	"github.com/pierrec/lz4/v4"

	"github.com/joshuapare/vdfkit/pkg/types"
)

// LZ4Codec uses the LZ4 frame format, which carries a magic number and a
// content checksum. The raw block format has neither.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if err := w.Apply(lz4.ChecksumOption(true), lz4.ConcurrencyOption(1)); err != nil {
		return nil, types.IOError(err, "compress: lz4 options")
	}
	if _, err := w.Write(data); err != nil {
		return nil, types.IOError(err, "compress: lz4 write")
	}
	if err := w.Close(); err != nil {
		return nil, types.IOError(err, "compress: lz4 close")
	}
	return buf.Bytes(), nil
}

func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	return readAllLimited(lz4.NewReader(bytes.NewReader(data)), "lz4")
}
