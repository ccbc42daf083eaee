//go:build linux || freebsd

package atomicfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync flushes file data without forcing a metadata-only update.
func fdatasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
