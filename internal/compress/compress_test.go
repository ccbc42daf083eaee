package compress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/vdfkit/pkg/types"
)

var payload = []byte(strings.Repeat("\"root\"\n{\n\t\"key\"\t\t\"value\"\n}\n", 200))

func TestCodecs_RoundTrip(t *testing.T) {
	kinds := []types.Compression{
		types.CompressionNone,
		types.CompressionGzip,
		types.CompressionZstd,
		types.CompressionS2,
		types.CompressionLZ4,
	}
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			codec, err := Get(kind)
			require.NoError(t, err)

			packed, err := codec.Compress(payload)
			require.NoError(t, err)
			assert.Equal(t, kind, Detect(packed))
			if kind != types.CompressionNone {
				assert.Less(t, len(packed), len(payload))
			}

			out, err := codec.Decompress(packed)
			require.NoError(t, err)
			assert.Equal(t, payload, out)

			unwrapped, detected, err := Unwrap(packed)
			require.NoError(t, err)
			assert.Equal(t, kind, detected)
			assert.Equal(t, payload, unwrapped)
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, kind := range []types.Compression{types.CompressionGzip, types.CompressionZstd} {
		t.Run(string(kind), func(t *testing.T) {
			codec, err := Get(kind)
			require.NoError(t, err)
			packed, err := codec.Compress(nil)
			require.NoError(t, err)
			out, err := codec.Decompress(packed)
			require.NoError(t, err)
			assert.Empty(t, out)
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want types.Compression
	}{
		{"empty", nil, types.CompressionNone},
		{"text", []byte(`"root" {}`), types.CompressionNone},
		{"binary tree", []byte{0x00, 'r', 0x00, 0x08, 0x08}, types.CompressionNone},
		{"gzip", []byte{0x1f, 0x8b, 0x08}, types.CompressionGzip},
		{"zstd", []byte{0x28, 0xb5, 0x2f, 0xfd, 0x00}, types.CompressionZstd},
		{"lz4", []byte{0x04, 0x22, 0x4d, 0x18}, types.CompressionLZ4},
		{"s2", []byte("\xff\x06\x00\x00S2sTwO..."), types.CompressionS2},
		{"truncated zstd magic", []byte{0x28, 0xb5}, types.CompressionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.data))
		})
	}
}

func TestUnwrap_Corrupt(t *testing.T) {
	for _, kind := range []types.Compression{types.CompressionGzip, types.CompressionZstd, types.CompressionS2, types.CompressionLZ4} {
		t.Run(string(kind), func(t *testing.T) {
			codec, _ := Get(kind)
			packed, err := codec.Compress(payload)
			require.NoError(t, err)

			corrupt := append([]byte(nil), packed[:len(packed)/2]...)
			_, detected, err := Unwrap(corrupt)
			assert.Equal(t, kind, detected)
			require.Error(t, err)
			assert.True(t, types.IsKind(err, types.ErrKindFormat))
		})
	}
}

func TestGetAndParse(t *testing.T) {
	_, err := Get("brotli")
	assert.True(t, types.IsKind(err, types.ErrKindUnsupported))

	c, err := Parse("none")
	require.NoError(t, err)
	assert.Equal(t, types.CompressionNone, c)

	c, err = Parse("zstd")
	require.NoError(t, err)
	assert.Equal(t, types.CompressionZstd, c)

	_, err = Parse("rar")
	assert.True(t, types.IsKind(err, types.ErrKindUnsupported))
}

func TestConcurrentZstd(t *testing.T) {
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			packed, err := ZstdCodec{}.Compress(payload)
			if err != nil {
				done <- err
				return
			}
			out, err := ZstdCodec{}.Decompress(packed)
			if err == nil && !bytes.Equal(out, payload) {
				err = assert.AnError
			}
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}
}
