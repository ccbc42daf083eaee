package types

// Compression names a container format wrapped around a saved tree.
type Compression string

const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
	CompressionS2   Compression = "s2"
	CompressionLZ4  Compression = "lz4"
)

const (
	// EncodingUTF8 is the identifier for UTF-8 text input (the default).
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE is the identifier for UTF-16 little-endian text input.
	EncodingUTF16LE = "UTF-16LE"

	// EncodingWindows1252 is the identifier for Windows-1252 text input.
	EncodingWindows1252 = "WINDOWS-1252"
)

// LoadOptions controls decoding.
type LoadOptions struct {
	// Limits bounds nesting and token sizes. Zero value means DefaultLimits().
	Limits *Limits

	// InputEncoding names the text encoding when no byte-order mark is present.
	// Supported values: "UTF-8" (default), "UTF-16LE", "WINDOWS-1252".
	// Ignored for binary input.
	InputEncoding string
}

// EffectiveLimits returns the configured limits or DefaultLimits().
func (o LoadOptions) EffectiveLimits() Limits {
	if o.Limits == nil {
		return DefaultLimits()
	}
	return *o.Limits
}

// SaveOptions controls encoding to files.
type SaveOptions struct {
	// Binary selects the binary form instead of text.
	Binary bool

	// Compression wraps the output in a container. Default: none.
	Compression Compression

	// Sync flushes file data to stable storage before the rename that
	// publishes it.
	Sync bool
}
