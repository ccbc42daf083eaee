package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
// When unset they are filled from the module build info.
var (
	version = "v0.0.0-dev"
	commit  = ""
	date    = ""
)

// buildInfo describes the running kvctl binary.
type buildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func currentBuild() buildInfo {
	b := buildInfo{
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	if v := info.Main.Version; v != "" && v != "(devel)" && version == "v0.0.0-dev" {
		b.Version = v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "" {
				b.Commit = s.Value
			}
		case "vcs.time":
			if b.Date == "" {
				b.Date = s.Value
			}
		case "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}
	return b
}

func writeVersion(w io.Writer, b buildInfo) {
	fmt.Fprintf(w, "kvctl %s (%s, %s)\n", b.Version, b.GoVersion, b.Platform)
	if b.Commit != "" {
		suffix := ""
		if b.Modified {
			suffix = " (modified)"
		}
		fmt.Fprintf(w, "  commit: %s%s\n", b.Commit, suffix)
	}
	if b.Date != "" {
		fmt.Fprintf(w, "  built: %s\n", b.Date)
	}
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := currentBuild()
			if jsonOut {
				return printJSON(b)
			}
			writeVersion(cmd.OutOrStdout(), b)
			return nil
		},
	})
}
