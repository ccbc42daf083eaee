package types

const (
	// DefaultMaxDepth is the practical nesting limit for decoded trees.
	DefaultMaxDepth = 512

	// DeepMaxDepth allows very deep trees for special cases.
	DeepMaxDepth = 4096

	// ShallowMaxDepth is a conservative limit for untrusted input.
	ShallowMaxDepth = 64

	// DefaultMaxTokenLen matches the bare-token ceiling of the reference
	// tokenizer (1023 characters).
	DefaultMaxTokenLen = 1023

	// DefaultMaxStringLen bounds a single null-terminated string (16 MB).
	DefaultMaxStringLen = 16 << 20

	// ShallowMaxStringLen bounds strings for untrusted input (64 KB).
	ShallowMaxStringLen = 64 << 10
)

// Limits bounds the resources a single load may consume. A zero field means
// "no limit" for that dimension.
type Limits struct {
	// MaxDepth is the maximum container nesting depth.
	MaxDepth int

	// MaxTokenLen is the maximum length of a bare (unquoted) text token.
	MaxTokenLen int

	// MaxStringLen is the maximum byte length of a binary null-terminated string.
	MaxStringLen int
}

// DefaultLimits returns limits suitable for trusted configuration files.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:     DefaultMaxDepth,
		MaxTokenLen:  DefaultMaxTokenLen,
		MaxStringLen: DefaultMaxStringLen,
	}
}

// RelaxedLimits allows deeper trees; the bare token ceiling is unchanged.
func RelaxedLimits() Limits {
	return Limits{
		MaxDepth:     DeepMaxDepth,
		MaxTokenLen:  DefaultMaxTokenLen,
		MaxStringLen: 0,
	}
}

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() Limits {
	return Limits{
		MaxDepth:     ShallowMaxDepth,
		MaxTokenLen:  DefaultMaxTokenLen,
		MaxStringLen: ShallowMaxStringLen,
	}
}

// DepthExceeded reports whether depth is beyond MaxDepth.
func (l Limits) DepthExceeded(depth int) bool {
	return l.MaxDepth > 0 && depth > l.MaxDepth
}
