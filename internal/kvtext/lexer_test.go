package kvtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/vdfkit/pkg/types"
)

func collect(t *testing.T, input string) []Token {
	t.Helper()
	lex := NewLexer(strings.NewReader(input), types.DefaultMaxTokenLen)
	var toks []Token
	for {
		tok, ok, err := lex.Next()
		require.NoError(t, err)
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestLexer_Tokens(t *testing.T) {
	input := "\"root\"\n{\n\t\"a\"\t\t\"1\"\n\tbare value\n\t\"esc\"\t\"tab\\there \\\"q\\\" back\\\\slash \\x\"\n}\n"
	toks := collect(t, input)

	require.Len(t, toks, 9)
	assert.Equal(t, Token{Text: "root", Quoted: true, Line: 1}, toks[0])
	assert.Equal(t, Token{Text: "{", Line: 2}, toks[1])
	assert.Equal(t, Token{Text: "a", Quoted: true, Line: 3}, toks[2])
	assert.Equal(t, Token{Text: "1", Quoted: true, Line: 3}, toks[3])
	assert.Equal(t, Token{Text: "bare", Line: 4}, toks[4])
	assert.Equal(t, Token{Text: "value", Line: 4}, toks[5])
	assert.Equal(t, "esc", toks[6].Text)
	assert.Equal(t, "tab\there \"q\" back\\slash x", toks[7].Text)
	assert.Equal(t, 5, toks[7].Line)
	assert.Equal(t, Token{Text: "}", Line: 6}, toks[8])
}

func TestLexer_BracesSplitBareTokens(t *testing.T) {
	toks := collect(t, "key{inner}\"q\"tail")
	var texts []string
	for _, tok := range toks {
		texts = append(texts, tok.Text)
	}
	assert.Equal(t, []string{"key", "{", "inner", "}", "q", "tail"}, texts)
}

func TestLexer_QuotedBracesAreData(t *testing.T) {
	toks := collect(t, `"{" "}"`)
	require.Len(t, toks, 2)
	assert.True(t, toks[0].Quoted)
	assert.Equal(t, "{", toks[0].Text)
	assert.Equal(t, "}", toks[1].Text)
}

func TestLexer_Comments(t *testing.T) {
	toks := collect(t, "// header comment\n\"a\" / single slash comment\n\"b\" // trailing\npath/with/slash")
	var texts []string
	for _, tok := range toks {
		texts = append(texts, tok.Text)
	}
	assert.Equal(t, []string{"a", "b", "path/with/slash"}, texts)
}

func TestLexer_Conditionals(t *testing.T) {
	toks := collect(t, `[$WIN32] [$X360||$PS3] [unterminated plain]x`)
	require.Len(t, toks, 4)
	assert.True(t, toks[0].Conditional)
	assert.Equal(t, "[$WIN32]", toks[0].Text)
	assert.True(t, toks[1].Conditional)
	assert.False(t, toks[2].Conditional, "no closing bracket")
	assert.False(t, toks[3].Conditional, "closing bracket without an opening one")
}

func TestLexer_EmptyQuoted(t *testing.T) {
	toks := collect(t, `"" ""`)
	require.Len(t, toks, 2)
	assert.Equal(t, "", toks[0].Text)
	assert.True(t, toks[0].Quoted)
}

func TestLexer_Errors(t *testing.T) {
	lex := NewLexer(strings.NewReader(`"never closed`), 0)
	_, _, err := lex.Next()
	assert.ErrorIs(t, err, types.ErrTruncated)
	assert.True(t, types.IsKind(err, types.ErrKindFormat))

	lex = NewLexer(strings.NewReader(strings.Repeat("x", 11)), 10)
	_, _, err = lex.Next()
	assert.ErrorIs(t, err, types.ErrTokenOverflow)

	lex = NewLexer(strings.NewReader(strings.Repeat("x", 10)), 10)
	tok, ok, err := lex.Next()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, tok.Text, 10)

	lex = NewLexer(strings.NewReader(`"`+strings.Repeat("x", 5000)+`"`), 10)
	tok, _, err = lex.Next()
	require.NoError(t, err, "quoted tokens are not bounded")
	assert.Len(t, tok.Text, 5000)
}

func TestLexer_EndOfInput(t *testing.T) {
	for _, input := range []string{"", "   \n\t", "// only a comment", "/"} {
		lex := NewLexer(strings.NewReader(input), 0)
		_, ok, err := lex.Next()
		require.NoError(t, err, "input %q", input)
		assert.False(t, ok, "input %q", input)
	}
}
