package compress

import (
	"bytes"

	"github.com/klauspost/compress/s2"

	"github.com/joshuapare/vdfkit/pkg/types"
)

// S2Codec uses the S2 stream format. Unlike the block format it starts with a
// stream identifier, which makes it detectable.
type S2Codec struct{}

var _ Codec = S2Codec{}

func (S2Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := s2.NewWriter(&buf, s2.WriterConcurrency(1))
	if _, err := w.Write(data); err != nil {
		return nil, types.IOError(err, "compress: s2 write")
	}
	if err := w.Close(); err != nil {
		return nil, types.IOError(err, "compress: s2 close")
	}
	return buf.Bytes(), nil
}

func (S2Codec) Decompress(data []byte) ([]byte, error) {
	return readAllLimited(s2.NewReader(bytes.NewReader(data)), "s2")
}
