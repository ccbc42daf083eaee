//go:build !unix

package mmfile

import (
	"os"

	"github.com/joshuapare/vdfkit/pkg/types"
)

// Open reads the whole file; this platform has no mmap path.
func Open(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, types.IOError(err, "mmfile: stat %s", path)
	}
	if !info.Mode().IsRegular() {
		return nil, types.Unsupported("mmfile: %s is not a regular file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.IOError(err, "mmfile: read %s", path)
	}
	return &File{data: data}, nil
}
