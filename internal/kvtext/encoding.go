package kvtext

import (
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/vdfkit/pkg/types"
)

// decodeInput wraps r so the lexer always sees UTF-8. A UTF-8 or UTF-16
// byte-order mark wins over enc; without one, enc selects the decoder.
func decodeInput(r io.Reader, enc string) (io.Reader, error) {
	var fallback encoding.Encoding
	switch strings.ToUpper(enc) {
	case "", types.EncodingUTF8:
		fallback = unicode.UTF8
	case types.EncodingUTF16LE:
		fallback = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case types.EncodingWindows1252, "CP1252":
		fallback = charmap.Windows1252
	default:
		return nil, types.Unsupported("kvtext: unsupported input encoding %q", enc)
	}
	return transform.NewReader(r, unicode.BOMOverride(fallback.NewDecoder())), nil
}
