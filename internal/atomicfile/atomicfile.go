// Package atomicfile replaces files so readers see either the old or the new
// contents, never a partial write.
package atomicfile

import (
	"os"
	"path/filepath"

	"github.com/joshuapare/vdfkit/internal/logger"
	"github.com/joshuapare/vdfkit/pkg/types"
)

// DefaultPerm is used when the target does not exist yet.
const DefaultPerm os.FileMode = 0o644

// WriteFile writes data to a temporary file next to path and renames it over
// path. With sync set the data is flushed to stable storage before the
// rename. An existing target keeps its permission bits.
func WriteFile(path string, data []byte, sync bool) (err error) {
	perm := DefaultPerm
	if info, statErr := os.Stat(path); statErr == nil {
		if !info.Mode().IsRegular() {
			return types.Unsupported("atomicfile: %s is not a regular file", path)
		}
		perm = info.Mode().Perm()
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return types.IOError(err, "atomicfile: create temp for %s", path)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			if rmErr := os.Remove(tmpName); rmErr != nil && !os.IsNotExist(rmErr) {
				logger.Warn("atomicfile: leftover temp file", "path", tmpName, "error", rmErr)
			}
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return types.IOError(err, "atomicfile: write %s", tmpName)
	}
	if err = tmp.Chmod(perm); err != nil {
		return types.IOError(err, "atomicfile: chmod %s", tmpName)
	}
	if sync {
		if err = fdatasync(tmp); err != nil {
			return types.IOError(err, "atomicfile: sync %s", tmpName)
		}
	}
	if err = tmp.Close(); err != nil {
		return types.IOError(err, "atomicfile: close %s", tmpName)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return types.IOError(err, "atomicfile: rename to %s", path)
	}
	logger.Debug("atomicfile: replaced", "path", path, "bytes", len(data), "sync", sync)
	return nil
}
