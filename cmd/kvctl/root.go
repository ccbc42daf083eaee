package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/vdfkit/internal/logger"
	"github.com/joshuapare/vdfkit/pkg/kv"
	"github.com/joshuapare/vdfkit/pkg/types"
	"github.com/joshuapare/vdfkit/pkg/vdf"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool

	// cfg holds the environment defaults; flags override it.
	cfg = &Config{}
)

var rootCmd = &cobra.Command{
	Use:   "kvctl",
	Short: "Inspect and convert KeyValues (VDF) files",
	Long: `kvctl reads KeyValues documents in the text or binary encoding,
optionally wrapped in a gzip, zstd, lz4 or s2 container, and can print,
query, hash, validate and convert them.

Environment defaults are listed by "kvctl env".`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// setup loads the environment, then configures logging and colour.
func setup(cmd *cobra.Command, _ []string) error {
	if err := loadConfig(cfg); err != nil {
		return err
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	logger.Init(logger.Options{
		Enabled: verbose || cfg.LogLevel != "",
		Writer:  cmd.ErrOrStderr(),
		Format:  logger.Format(cfg.LogFormat),
		Level:   level,
	})

	if noColor || cfg.NoColor {
		color.NoColor = true
	}
	return nil
}

func execute() {
	if err := runRoot(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRoot executes the command tree with args and logs a failing command.
func runRoot(args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("kvctl: command failed", "args", args, "error", err)
	}
	return err
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// loadOptions builds decoder options from the environment defaults.
func loadOptions() types.LoadOptions {
	limits := types.DefaultLimits()
	if cfg.MaxDepth > 0 {
		limits.MaxDepth = cfg.MaxDepth
	}
	return types.LoadOptions{Limits: &limits}
}

// loadTree reads a file of any supported encoding, or stdin when path is "-".
func loadTree(path string, opts types.LoadOptions) (*kv.Node, error) {
	printVerbose("Loading: %s\n", path)
	if path == "-" {
		data, err := readStdin()
		if err != nil {
			return nil, err
		}
		return vdf.Decode(data, opts)
	}
	return vdf.LoadFile(path, opts)
}

// readStdin drains standard input; kept separate so tests can swap it.
var readStdin = func() ([]byte, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}
