package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var getAs string

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVar(&getAs, "as", "string", "Convert the value (string, byte, short, int, long, float, bool)")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a path",
		Long: `The get command prints the value of the node at a slash-separated path.
Lookups are case-insensitive. A value that does not parse as the requested
type prints the type's zero value.

Example:
  kvctl get config.vdf "server/port" --as int
  kvctl get config.vdf "server/enabled" --as bool --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	root, err := loadTree(args[0], loadOptions())
	if err != nil {
		return fmt.Errorf("failed to load: %w", err)
	}
	path := args[1]
	node, err := resolvePath(root, path)
	if err != nil {
		return err
	}
	if !node.HasValue() {
		return fmt.Errorf("%s has no value", path)
	}

	var value any
	switch strings.ToLower(getAs) {
	case "string", "":
		value = node.AsString()
	case "byte":
		value = node.AsByte()
	case "short":
		value = node.AsShort()
	case "int", "integer":
		value = node.AsInteger()
	case "long":
		value = node.AsLong()
	case "float":
		value = node.AsFloat()
	case "bool", "boolean":
		value = node.AsBoolean()
	default:
		return fmt.Errorf("unknown type: %s (must be string, byte, short, int, long, float or bool)", getAs)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":  path,
			"name":  node.Name(),
			"value": value,
		})
	}
	printInfo("%v\n", value)
	return nil
}
