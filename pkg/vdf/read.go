package vdf

import (
	"io"
	"strings"

	"github.com/joshuapare/vdfkit/internal/kvbin"
	"github.com/joshuapare/vdfkit/internal/kvtext"
	"github.com/joshuapare/vdfkit/pkg/kv"
	"github.com/joshuapare/vdfkit/pkg/types"
)

// ReadText loads a text document from r. The first top-level block becomes
// the returned node; later blocks are ignored.
func ReadText(r io.Reader, opts types.LoadOptions) (*kv.Node, error) {
	root := kv.NewEmpty()
	if err := kvtext.Read(r, root, opts); err != nil {
		return nil, err
	}
	return root, nil
}

// LoadString loads a text document held in s with default options.
//
// Example:
//
//	root, err := vdf.LoadString(`"root" { "a" "1" }`)
func LoadString(s string) (*kv.Node, error) {
	return ReadText(strings.NewReader(s), types.LoadOptions{})
}

// ReadBinary decodes a binary stream from r. Legacy numeric tags are
// converted to their decimal string form.
func ReadBinary(r io.Reader, opts types.LoadOptions) (*kv.Node, error) {
	root := kv.NewEmpty()
	if err := kvbin.Decode(r, root, opts.EffectiveLimits()); err != nil {
		return nil, err
	}
	return root, nil
}
