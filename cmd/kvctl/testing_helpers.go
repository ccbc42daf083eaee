package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/vdfkit/pkg/types"
	"github.com/joshuapare/vdfkit/pkg/vdf"
)

const fixtureText = `"config"
{
	"name"		"test server"
	"port"		"27015"
	"enabled"	"1"
	"video"
	{
		"width"		"1920"
		"scale"		"1.5"
	}
}
`

// writeFixture writes fixtureText to dir in the requested form and returns
// its path.
func writeFixture(t *testing.T, dir, name string, opts types.SaveOptions) string {
	t.Helper()
	root, err := vdf.LoadString(fixtureText)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, vdf.SaveFile(path, root, opts))
	return path
}

// resetFlags restores every global flag to its default.
func resetFlags() {
	verbose, quiet, jsonOut, noColor = false, false, false, false
	cfg = &Config{}
	color.NoColor = true
	dumpMaxDepth, dumpPath = 0, ""
	getAs = "string"
	convertTo, convertCompress, convertSync = "text", "", false
	validateLimits = "default"
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}
