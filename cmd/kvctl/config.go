package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go-simpler.org/env"
)

// Config is the environment configuration of kvctl.
type Config struct {
	LogLevel  string `env:"KVCTL_LOG_LEVEL" usage:"log level (debug, info, warn, error); logging is off when unset"`
	LogFormat string `env:"KVCTL_LOG_FORMAT" default:"text" usage:"log format (text or json)"`
	Compress  string `env:"KVCTL_COMPRESS" default:"none" usage:"default container for convert (none, gzip, zstd, s2, lz4)"`
	MaxDepth  int    `env:"KVCTL_MAX_DEPTH" default:"512" usage:"maximum nesting depth accepted when loading"`
	NoColor   bool   `env:"KVCTL_NO_COLOR" default:"false" usage:"disable colored output"`
}

func loadConfig(c *Config) error {
	*c = Config{}
	if err := env.Load(c, nil); err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "env",
		Short: "List the environment variables that configure kvctl",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvUsage(cmd.OutOrStdout())
		},
	})
}

func printEnvUsage(w io.Writer) error {
	fmt.Fprintf(w, "environment variables that configure kvctl\n\n")
	env.Usage(&Config{}, w, nil)
	return nil
}
