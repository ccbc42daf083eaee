package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/vdfkit/pkg/kv"
)

var (
	dumpMaxDepth int
	dumpPath     string
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpMaxDepth, "depth", 0, "Maximum depth to print (0 = unlimited)")
	cmd.Flags().StringVar(&dumpPath, "path", "", "Slash-separated path of the subtree to print")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print a tree with indentation",
		Long: `The dump command prints every node of a KeyValues document, one per
line, indented by depth. Use "-" to read from standard input.

Example:
  kvctl dump appinfo.vdf
  kvctl dump config.vdf --path "settings/video" --depth 1
  kvctl dump config.vdf --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

// jsonNode is the JSON shape of a tree node.
type jsonNode struct {
	Name     string      `json:"name"`
	Value    *string     `json:"value,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

func toJSONNode(n *kv.Node, depth, maxDepth int) *jsonNode {
	out := &jsonNode{Name: n.Name()}
	if v, ok := n.Value(); ok {
		out.Value = &v
	}
	if maxDepth > 0 && depth >= maxDepth {
		return out
	}
	for _, c := range n.Children() {
		out.Children = append(out.Children, toJSONNode(c, depth+1, maxDepth))
	}
	return out
}

func runDump(args []string) error {
	root, err := loadTree(args[0], loadOptions())
	if err != nil {
		return fmt.Errorf("failed to load: %w", err)
	}

	node, err := resolvePath(root, dumpPath)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(toJSONNode(node, 0, dumpMaxDepth))
	}
	if quiet {
		return nil
	}
	writeDump(os.Stdout, node, dumpMaxDepth)
	return nil
}

var (
	nameColor  = color.New(color.FgCyan).SprintFunc()
	valueColor = color.New(color.FgGreen).SprintFunc()
	emptyColor = color.New(color.FgHiBlack).SprintFunc()
)

// writeDump prints n and its descendants down to maxDepth levels below n.
func writeDump(w io.Writer, n *kv.Node, maxDepth int) {
	n.Walk(func(c *kv.Node, depth int) bool {
		indent := strings.Repeat("  ", depth)
		switch v, ok := c.Value(); {
		case ok:
			fmt.Fprintf(w, "%s%s = %s\n", indent, nameColor(c.Name()), valueColor(fmt.Sprintf("%q", v)))
		case c.Len() == 0:
			fmt.Fprintf(w, "%s%s %s\n", indent, nameColor(c.Name()), emptyColor("{}"))
		default:
			fmt.Fprintf(w, "%s%s (%d)\n", indent, nameColor(c.Name()), c.Len())
		}
		return maxDepth <= 0 || depth < maxDepth
	})
}

// resolvePath follows a slash-separated path from root. An empty path is
// root itself.
func resolvePath(root *kv.Node, path string) (*kv.Node, error) {
	path = strings.Trim(path, "/")
	if path == "" {
		return root, nil
	}
	node := root.Path(strings.Split(path, "/")...)
	if !node.IsValid() {
		return nil, fmt.Errorf("path not found: %s", path)
	}
	return node, nil
}
