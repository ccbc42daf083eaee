//go:build !linux && !freebsd && !darwin && !windows

package atomicfile

import "os"

func fdatasync(f *os.File) error {
	return f.Sync()
}
