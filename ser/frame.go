package ser

import (
	"fmt"

	"github.com/robert-malhotra/go-ser/internal/geometry"
)

// Frame holds the raw pixel data of one frame.
type Frame struct {
	// Index is the frame's position in the stream.
	Index int

	data []byte
	geom geometry.Geometry
}

// Bytes returns the raw frame data, exactly FrameBytes long, in file
// order. For 16-bit files the samples are in the file's declared sample
// byte order; use Samples16 for host-native values.
func (fr *Frame) Bytes() []byte { return fr.data }

// Shape returns the frame dimensions in row-major order:
// (height, width, planes) for multi-plane data, (height, width) otherwise.
func (fr *Frame) Shape() []int { return fr.geom.Shape() }

// Width returns the frame width in pixels.
func (fr *Frame) Width() int { return fr.geom.Width }

// Height returns the frame height in pixels.
func (fr *Frame) Height() int { return fr.geom.Height }

// Planes returns the number of channels in the frame.
func (fr *Frame) Planes() int { return fr.geom.Planes }

// BytesPerSample returns the storage width of one sample: 1 or 2.
func (fr *Frame) BytesPerSample() int { return fr.geom.BytesPerSample }

// Samples16 decodes the frame's 16-bit samples into host-native values,
// applying the file's declared sample byte order. Samples are in
// row-major order matching Shape. Fails for 8-bit files, whose samples
// are the raw bytes themselves.
func (fr *Frame) Samples16() ([]uint16, error) {
	if fr.geom.BytesPerSample != 2 {
		return nil, fmt.Errorf("frame %d stores 8-bit samples; use Bytes", fr.Index)
	}
	out := make([]uint16, len(fr.data)/2)
	for i := range out {
		out[i] = fr.geom.SampleOrder.Uint16(fr.data[2*i:])
	}
	return out, nil
}
