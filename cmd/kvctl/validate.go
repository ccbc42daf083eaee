package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/vdfkit/pkg/kv"
	"github.com/joshuapare/vdfkit/pkg/types"
)

var validateLimits string

func init() {
	cmd := newValidateCmd()
	cmd.Flags().StringVar(&validateLimits, "limits", "default", "Limits preset to use (default, strict, relaxed)")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a file parses within limits",
		Long: `The validate command loads a document against a limits preset and reports
its size and depth.

Limits presets:
  default - 512 levels, 1023-character bare tokens, 16MB strings
  strict  - 64 levels, 64KB strings
  relaxed - 4096 levels

Example:
  kvctl validate config.vdf
  kvctl validate untrusted.bin --limits strict --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

// treeStats summarises a loaded tree.
type treeStats struct {
	Nodes      int `json:"nodes"`
	Leaves     int `json:"leaves"`
	Containers int `json:"containers"`
	MaxDepth   int `json:"max_depth"`
}

func collectStats(root *kv.Node) treeStats {
	var s treeStats
	root.Walk(func(n *kv.Node, depth int) bool {
		s.Nodes++
		if n.Len() > 0 {
			s.Containers++
		} else {
			s.Leaves++
		}
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		return true
	})
	return s
}

func runValidate(args []string) error {
	path := args[0]

	var limits types.Limits
	switch validateLimits {
	case "default":
		limits = types.DefaultLimits()
	case "strict":
		limits = types.StrictLimits()
	case "relaxed":
		limits = types.RelaxedLimits()
	default:
		return fmt.Errorf("unknown limits preset: %s (must be default, strict, or relaxed)", validateLimits)
	}

	printVerbose("Validating %s with %s limits\n", path, validateLimits)
	root, err := loadTree(path, types.LoadOptions{Limits: &limits})

	result := map[string]interface{}{
		"file":   path,
		"limits": validateLimits,
		"valid":  err == nil,
	}
	var stats treeStats
	if err != nil {
		result["error"] = err.Error()
		result["kind"] = errorKind(err)
	} else {
		stats = collectStats(root)
		result["stats"] = stats
	}

	if jsonOut {
		if jerr := printJSON(result); jerr != nil {
			return jerr
		}
		return err
	}

	if err != nil {
		printInfo("✗ %s is invalid\n  %v\n", path, err)
		return err
	}
	printInfo("✓ %s is valid\n", path)
	printInfo("  nodes: %d (containers: %d, leaves: %d)\n", stats.Nodes, stats.Containers, stats.Leaves)
	printInfo("  max depth: %d\n", stats.MaxDepth)
	return nil
}

func errorKind(err error) string {
	var e *types.Error
	if errors.As(err, &e) {
		return e.Kind.String()
	}
	return "unknown"
}
