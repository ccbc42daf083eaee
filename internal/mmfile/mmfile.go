// Package mmfile exposes a file's contents as a read-only byte slice, using a
// memory mapping where the platform supports it.
package mmfile

import "sync"

// File is a read-only view of a file. The slice returned by Bytes is only
// valid until Close.
type File struct {
	data  []byte
	unmap func([]byte) error
	once  sync.Once
	err   error
}

// Bytes returns the file contents.
func (f *File) Bytes() []byte {
	if f == nil {
		return nil
	}
	return f.data
}

// Len returns the size of the view in bytes.
func (f *File) Len() int { return len(f.Bytes()) }

// Close releases the mapping. Calling it more than once is a no-op.
func (f *File) Close() error {
	if f == nil {
		return nil
	}
	f.once.Do(func() {
		if f.unmap != nil && len(f.data) > 0 {
			f.err = f.unmap(f.data)
		}
		f.data = nil
	})
	return f.err
}
