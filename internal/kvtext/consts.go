package kvtext

const (
	// ============================================================================
	// Structural Tokens
	// ============================================================================

	// OpenBrace starts a container body
	OpenBrace = "{"

	// CloseBrace ends a container body
	CloseBrace = "}"

	// ============================================================================
	// Quote and Escape Characters
	// ============================================================================

	// Quote wraps names and values
	Quote = "\""

	// Backslash introduces an escape sequence
	Backslash = "\\"

	// EscapedQuote is the escaped double-quote sequence
	EscapedQuote = "\\\""

	// ============================================================================
	// Layout
	// ============================================================================

	// Indent is written once per nesting level
	Indent = "\t"

	// KeyValueSeparator sits between a quoted name and its quoted value
	KeyValueSeparator = "\t\t"

	// LF terminates every emitted line
	LF = "\n"

	// ============================================================================
	// Tokenizer
	// ============================================================================

	// CommentStart begins a comment running to the end of the line. One
	// slash is enough; "//" is the common spelling.
	CommentStart = '/'

	// ConditionalOpen and ConditionalClose delimit platform conditionals such
	// as [$WIN32].
	ConditionalOpen  = '['
	ConditionalClose = ']'

	// ScannerBufferSize is the read buffer used by the lexer
	ScannerBufferSize = 64 * 1024 // 64KB
)

// escape pairs a raw character with the key that follows a backslash.
type escape struct {
	raw string
	key byte
}

// escapedMapping lists the characters written as backslash sequences inside
// quoted values. Backslash comes first so that escaping is injective.
var escapedMapping = []escape{
	{raw: "\\", key: '\\'},
	{raw: "\n", key: 'n'},
	{raw: "\r", key: 'r'},
	{raw: "\t", key: 't'},
}
