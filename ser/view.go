package ser

import (
	"fmt"

	"golang.org/x/exp/mmap"
)

// View is a lazily-backed view over the full frame stream, implemented
// as a read-only memory mapping of the underlying file. Any frame can
// be served from the mapping without materializing the stream in
// memory. The view is valid until Close; using it afterwards fails with
// ErrClosed.
type View struct {
	file   *File
	r      *mmap.ReaderAt
	closed bool
}

// Map memory-maps the file read-only and returns a View over all
// frames. The caller must Close the view to release the mapping.
func (f *File) Map() (*View, error) {
	r, err := mmap.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("mapping file: %w", err)
	}
	return &View{file: f, r: r}, nil
}

// Len returns the number of frames in the view.
func (v *View) Len() int { return v.file.FrameCount() }

// Shape returns the dimensions of the full stream: frame count followed
// by the per-frame shape.
func (v *View) Shape() []int {
	return append([]int{v.file.FrameCount()}, v.file.Shape()...)
}

// Frame returns frame i served from the mapping. Byte-identical to
// File.Frame and Session.Frame for every index.
func (v *View) Frame(i int) (*Frame, error) {
	if v.closed {
		return nil, ErrClosed
	}
	if err := v.file.checkIndex(i); err != nil {
		return nil, err
	}

	g := v.file.geom
	buf := make([]byte, g.FrameBytes)
	if _, err := v.r.ReadAt(buf, g.FrameOffset(i)); err != nil {
		return nil, fmt.Errorf("reading frame %d from mapping: %w", i, err)
	}
	return &Frame{Index: i, data: buf, geom: g}, nil
}

// Close releases the mapping. Closing an already-closed view is a no-op.
func (v *View) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	return v.r.Close()
}
