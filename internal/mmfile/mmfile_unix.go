//go:build unix

package mmfile

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/vdfkit/pkg/types"
)

// Open maps the file at path read-only.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.IOError(err, "mmfile: open %s", path)
	}
	defer f.Close() // the mapping outlives the descriptor

	info, err := f.Stat()
	if err != nil {
		return nil, types.IOError(err, "mmfile: stat %s", path)
	}
	if !info.Mode().IsRegular() {
		return nil, types.Unsupported("mmfile: %s is not a regular file", path)
	}
	size := info.Size()
	if size == 0 {
		return &File{data: []byte{}}, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, types.Unsupported("mmfile: %s too large to map (%d bytes)", path, size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, types.IOError(err, "mmfile: mmap %s", path)
	}
	return &File{data: data, unmap: unix.Munmap}, nil
}
