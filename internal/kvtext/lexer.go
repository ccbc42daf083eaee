package kvtext

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/joshuapare/vdfkit/pkg/types"
)

// Token is one lexical item of the text form.
type Token struct {
	Text        string
	Quoted      bool // token was enclosed in double quotes
	Conditional bool // bare token containing a [...] conditional
	Line        int  // 1-based line where the token starts
}

// Tokenizer yields tokens to the loader. ok is false at end of input.
type Tokenizer interface {
	Next() (tok Token, ok bool, err error)
}

// Lexer is the Tokenizer for the KeyValues text form.
type Lexer struct {
	r           *bufio.Reader
	line        int
	maxTokenLen int
}

// NewLexer reads UTF-8 text from r. maxTokenLen bounds bare tokens in runes;
// zero or less means unbounded.
func NewLexer(r io.Reader, maxTokenLen int) *Lexer {
	return &Lexer{
		r:           bufio.NewReaderSize(r, ScannerBufferSize),
		line:        1,
		maxTokenLen: maxTokenLen,
	}
}

// Line returns the current 1-based line number.
func (l *Lexer) Line() int { return l.line }

// Next returns the next token, skipping whitespace and comments.
func (l *Lexer) Next() (Token, bool, error) {
	for {
		if err := l.skipSpace(); err != nil {
			return l.endOrErr(err)
		}
		c, err := l.peek()
		if err != nil {
			return l.endOrErr(err)
		}
		if c != CommentStart {
			break
		}
		if err := l.skipLine(); err != nil {
			return l.endOrErr(err)
		}
	}

	c, err := l.peek()
	if err != nil {
		return l.endOrErr(err)
	}
	start := l.line

	switch c {
	case '"':
		text, err := l.quoted()
		if err != nil {
			return Token{}, false, err
		}
		return Token{Text: text, Quoted: true, Line: start}, true, nil
	case '{', '}':
		_, _ = l.read()
		return Token{Text: string(c), Line: start}, true, nil
	}

	text, cond, err := l.bare()
	if err != nil {
		return Token{}, false, err
	}
	return Token{Text: text, Conditional: cond, Line: start}, true, nil
}

// quoted reads a double-quoted token. The raw body is scanned for the
// closing quote, honouring backslash escapes, and then unescaped.
func (l *Lexer) quoted() (string, error) {
	start := l.line
	_, _ = l.read() // opening quote

	var raw strings.Builder
	escaped := false
	for {
		c, err := l.read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", types.FormatError(types.ErrTruncated, "kvtext: line %d: unterminated quoted string", start)
			}
			return "", types.IOError(err, "kvtext: read")
		}
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			return unescape(raw.String()), nil
		}
		raw.WriteRune(c)
	}
}

// bare reads an unquoted token up to whitespace, a quote or a brace. A '['
// followed later by ']' marks the token as a conditional.
func (l *Lexer) bare() (string, bool, error) {
	var b strings.Builder
	count := 0
	condStart, cond := false, false
	for {
		c, err := l.peek()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", false, types.IOError(err, "kvtext: read")
		}
		if c == '"' || c == '{' || c == '}' || unicode.IsSpace(c) {
			break
		}
		if c == ConditionalOpen {
			condStart = true
		}
		if c == ConditionalClose && condStart {
			cond = true
		}
		if l.maxTokenLen > 0 && count >= l.maxTokenLen {
			return "", false, types.FormatError(types.ErrTokenOverflow, "kvtext: line %d: bare token longer than %d characters", l.line, l.maxTokenLen)
		}
		b.WriteRune(c)
		count++
		_, _ = l.read()
	}
	return b.String(), cond, nil
}

func (l *Lexer) skipSpace() error {
	for {
		c, err := l.peek()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(c) {
			return nil
		}
		_, _ = l.read()
	}
}

func (l *Lexer) skipLine() error {
	for {
		c, err := l.read()
		if err != nil {
			return err
		}
		if c == '\n' {
			return nil
		}
	}
}

func (l *Lexer) peek() (rune, error) {
	c, _, err := l.r.ReadRune()
	if err != nil {
		return 0, err
	}
	_ = l.r.UnreadRune()
	return c, nil
}

func (l *Lexer) read() (rune, error) {
	c, _, err := l.r.ReadRune()
	if err != nil {
		return 0, err
	}
	if c == '\n' {
		l.line++
	}
	return c, nil
}

func (l *Lexer) endOrErr(err error) (Token, bool, error) {
	if errors.Is(err, io.EOF) {
		return Token{}, false, nil
	}
	return Token{}, false, types.IOError(err, "kvtext: read")
}

var _ Tokenizer = (*Lexer)(nil)

