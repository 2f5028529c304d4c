// Package geometry derives frame layout constants from a parsed SER header.
//
// The geometry of a SER stream is a pure function of the header: number
// of planes, sample storage width, frame size in pixels and bytes, and
// the byte offset of each frame. Nothing here performs I/O.
package geometry

import (
	"encoding/binary"
	"fmt"

	"github.com/robert-malhotra/go-ser/internal/header"
)

// Geometry holds the layout constants for one SER stream. It is
// computed once from the header and never changes.
type Geometry struct {
	// Width and Height are the frame dimensions in pixels.
	Width  int
	Height int

	// Planes is 3 for interleaved RGB/BGR data, otherwise 1.
	Planes int

	// BytesPerSample is 1 for 8-bit storage, 2 for 16-bit.
	BytesPerSample int

	// FramePixels is Width * Height * Planes.
	FramePixels int64

	// FrameBytes is FramePixels * BytesPerSample: the exact size of
	// one frame block in the file.
	FrameBytes int64

	// SampleOrder is the byte order of 16-bit pixel samples, governed
	// by the header's little-endian flag. Meaningless when
	// BytesPerSample is 1.
	SampleOrder binary.ByteOrder
}

// New computes the layout constants for h. The header invariants are
// re-checked defensively; a header that passed parsing cannot fail here.
func New(h *header.Header) (Geometry, error) {
	depth, err := h.StorageDepth()
	if err != nil {
		return Geometry{}, err
	}
	if !h.Color.Valid() {
		return Geometry{}, fmt.Errorf("%w: color_id %d", header.ErrUnsupportedColor, int32(h.Color))
	}
	if h.Width == 0 || h.Height == 0 {
		return Geometry{}, fmt.Errorf("%w: %dx%d", header.ErrInvalidDimensions, h.Width, h.Height)
	}

	var order binary.ByteOrder = binary.BigEndian
	if h.LittleEndian {
		order = binary.LittleEndian
	}

	g := Geometry{
		Width:          int(h.Width),
		Height:         int(h.Height),
		Planes:         h.Color.Planes(),
		BytesPerSample: depth / 8,
		SampleOrder:    order,
	}

	g.FramePixels = int64(g.Width) * int64(g.Height) * int64(g.Planes)
	g.FrameBytes = g.FramePixels * int64(g.BytesPerSample)
	return g, nil
}

// Shape returns the frame dimensions in row-major order:
// (height, width, planes) for multi-plane data, (height, width) otherwise.
func (g Geometry) Shape() []int {
	if g.Planes > 1 {
		return []int{g.Height, g.Width, g.Planes}
	}
	return []int{g.Height, g.Width}
}

// FrameOffset returns the absolute file offset of frame i.
func (g Geometry) FrameOffset(i int) int64 {
	return header.Size + int64(i)*g.FrameBytes
}

// DataEnd returns the file offset one past the last declared frame,
// which is where a timestamp trailer starts if present.
func (g Geometry) DataEnd(frameCount uint32) int64 {
	return header.Size + g.FrameBytes*int64(frameCount)
}
