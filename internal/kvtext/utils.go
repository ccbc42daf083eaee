package kvtext

import "strings"

// escapeValue replaces every raw character of escapedMapping with a backslash
// and its key. Quotes are handled by quote.
func escapeValue(s string) string {
	if !strings.ContainsAny(s, "\\\n\r\t") {
		return s
	}
	for _, e := range escapedMapping {
		s = strings.ReplaceAll(s, e.raw, Backslash+string(e.key))
	}
	return s
}

// quote backslash-escapes embedded double quotes and wraps s in quotes.
func quote(s string) string {
	return Quote + strings.ReplaceAll(s, Quote, EscapedQuote) + Quote
}

// unescapeKey maps the character after a backslash back to the raw
// character. Unknown keys, including the quote, stand for themselves.
func unescapeKey(c rune) rune {
	if c < 0x80 {
		for _, e := range escapedMapping {
			if byte(c) == e.key {
				return rune(e.raw[0])
			}
		}
	}
	return c
}

// unescape reverses quote(escapeValue(s)) for the body between the quotes.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s // Fast path: no backslashes = no escapes
	}
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, c := range s {
		if escaped {
			b.WriteRune(unescapeKey(c))
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(c)
	}
	if escaped {
		b.WriteByte('\\')
	}
	return b.String()
}
