package kvtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"newline", "a\nb", `a\nb`},
		{"carriage return", "a\rb", `a\rb`},
		{"tab", "a\tb", `a\tb`},
		{"backslash", `a\b`, `a\\b`},
		{"backslash before n", `\n`, `\\n`},
		{"quote untouched", `say "hi"`, `say "hi"`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeValue(tt.in))
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `""`, quote(""))
	assert.Equal(t, `"a\"b"`, quote(`a"b`))
	assert.Equal(t, `"a\b"`, quote(`a\b`), "names only get quote escaping")
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, "plain", unescape("plain"))
	assert.Equal(t, "a\nb\rc\td\\e\"f", unescape(`a\nb\rc\td\\e\"f`))
	assert.Equal(t, "x", unescape(`\x`), "unknown escapes stand for the character")
	assert.Equal(t, `end\`, unescape(`end\`), "trailing lone backslash is kept")
	assert.Equal(t, "é", unescape(`\é`))
}

// alphabet drives the exhaustive round-trip check below.
var alphabet = []string{"a", "\\", "n", "\n", "\r", "t", "\t", "\""}

func allStrings(maxLen int) []string {
	out := []string{""}
	prev := []string{""}
	for l := 1; l <= maxLen; l++ {
		var next []string
		for _, p := range prev {
			for _, c := range alphabet {
				next = append(next, p+c)
			}
		}
		out = append(out, next...)
		prev = next
	}
	return out
}

func TestEscape_RoundTripAndInjective(t *testing.T) {
	seen := make(map[string]string)
	for _, s := range allStrings(4) {
		q := quote(escapeValue(s))
		body := q[1 : len(q)-1]
		assert.Equal(t, s, unescape(body), "round trip of %q", s)
		if other, dup := seen[q]; dup {
			t.Fatalf("%q and %q both encode to %s", other, s, q)
		}
		seen[q] = s
	}
}
