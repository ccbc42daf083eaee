package kvtext

import (
	"io"

	"github.com/joshuapare/vdfkit/internal/logger"
	"github.com/joshuapare/vdfkit/pkg/kv"
	"github.com/joshuapare/vdfkit/pkg/types"
)

// Read decodes the text form from r into dst using opts' input encoding and
// limits.
func Read(r io.Reader, dst *kv.Node, opts types.LoadOptions) error {
	if r == nil {
		return types.InvalidArgument("kvtext.Read", "reader is nil")
	}
	in, err := decodeInput(r, opts.InputEncoding)
	if err != nil {
		return err
	}
	limits := opts.EffectiveLimits()
	return Load(NewLexer(in, limits.MaxTokenLen), dst, limits)
}

// Load rebuilds a tree from tok into dst. Each top-level block is a name,
// an optional conditional, and a braced body. The first block populates dst;
// later blocks are parsed and discarded. An empty document leaves dst
// unnamed and empty.
func Load(tok Tokenizer, dst *kv.Node, limits types.Limits) error {
	if tok == nil {
		return types.InvalidArgument("kvtext.Load", "tokenizer is nil")
	}
	if !dst.IsValid() {
		return types.InvalidArgument("kvtext.Load", "destination is nil or invalid")
	}
	dst.ClearChildren()

	current := dst
	for {
		name, ok, err := tok.Next()
		if err != nil {
			return err
		}
		if !ok || name.Text == "" {
			return nil
		}
		if current == nil {
			current = kv.New(name.Text)
		} else {
			current.SetName(name.Text)
		}

		open, ok, err := tok.Next()
		if err != nil {
			return err
		}
		if ok && open.Conditional {
			if open, ok, err = tok.Next(); err != nil {
				return err
			}
		}
		if !ok || open.Quoted || open.Text != OpenBrace {
			return types.FormatError(types.ErrMissingBrace, "kvtext: line %d: expected { after %q", name.Line, name.Text)
		}

		if err := loadChildren(tok, current, limits, 1); err != nil {
			return err
		}
		if current != dst {
			logger.Debug("kvtext: discarding extra top-level block", "name", current.Name(), "line", name.Line)
		}
		current = nil
	}
}

// loadChildren reads key/value pairs into parent until an unquoted closing
// brace.
func loadChildren(tok Tokenizer, parent *kv.Node, limits types.Limits, depth int) error {
	if limits.DepthExceeded(depth) {
		return types.FormatError(types.ErrLimit, "kvtext: nesting deeper than %d", limits.MaxDepth)
	}

	for {
		key, ok, err := tok.Next()
		if err != nil {
			return err
		}
		if !ok {
			return types.FormatError(types.ErrEmptyToken, "kvtext: got EOF instead of a key name inside %q", parent.Name())
		}
		if key.Text == "" {
			return types.FormatError(types.ErrEmptyToken, "kvtext: line %d: empty key name inside %q", key.Line, parent.Name())
		}
		if !key.Quoted && key.Text == CloseBrace {
			return nil
		}

		child := kv.New(key.Text)
		if err := parent.AppendChild(child); err != nil {
			return err
		}

		value, ok, err := tok.Next()
		if err != nil {
			return err
		}
		switch {
		case !ok:
			return types.FormatError(types.ErrTruncated, "kvtext: line %d: got EOF instead of a value for %q", key.Line, key.Text)
		case !value.Quoted && value.Text == CloseBrace:
			return types.FormatError(types.ErrUnbalanced, "kvtext: line %d: got } as the value of %q", value.Line, key.Text)
		case !value.Quoted && value.Text == OpenBrace:
			if err := loadChildren(tok, child, limits, depth+1); err != nil {
				return err
			}
		case value.Conditional:
			return types.FormatError(types.ErrConditional, "kvtext: line %d: conditional %q used as the value of %q", value.Line, value.Text, key.Text)
		default:
			child.SetValue(value.Text)
		}
	}
}
