package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "hash <file>...",
		Short: "Print a structural fingerprint of each tree",
		Long: `The hash command prints a 64-bit xxhash fingerprint of each document's
tree. The fingerprint ignores the encoding and any compression, so a text
file and its binary conversion hash the same.

Example:
  kvctl hash config.vdf config.bin`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(args)
		},
	})
}

func runHash(args []string) error {
	type result struct {
		File        string `json:"file"`
		Fingerprint string `json:"fingerprint"`
	}
	results := make([]result, 0, len(args))
	for _, path := range args {
		root, err := loadTree(path, loadOptions())
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		results = append(results, result{File: path, Fingerprint: fmt.Sprintf("%016x", root.Fingerprint())})
	}

	if jsonOut {
		return printJSON(results)
	}
	for _, r := range results {
		printInfo("%s  %s\n", r.Fingerprint, r.File)
	}
	return nil
}
