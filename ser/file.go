package ser

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/robert-malhotra/go-ser/internal/geometry"
	"github.com/robert-malhotra/go-ser/internal/header"
	"github.com/robert-malhotra/go-ser/internal/timestamp"
)

// HeaderSize is the fixed length of the SER header in bytes.
const HeaderSize = header.Size

// File represents an opened SER file. The descriptor, geometry, and
// timestamp table are decoded once by Open and immutable afterwards;
// File itself holds no open handle, so it needs no Close.
type File struct {
	path   string
	hdr    *header.Header
	geom   geometry.Geometry
	stamps []time.Time
}

// Open reads and validates the SER header at path, derives the frame
// geometry, and decodes the timestamp trailer if one is present. The
// file is closed again before Open returns.
func Open(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer fh.Close()

	st, err := fh.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}

	hdr, err := header.Read(fh)
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	geom, err := geometry.New(hdr)
	if err != nil {
		return nil, err
	}

	// Declared frame data must fit; trailing bytes beyond the frames
	// (and beyond a full timestamp table) are tolerated and ignored.
	if st.Size() < geom.DataEnd(hdr.FrameCount) {
		return nil, fmt.Errorf("%w: %d frames of %d bytes declared, %d bytes after header",
			ErrShortFile, hdr.FrameCount, geom.FrameBytes, st.Size()-header.Size)
	}

	stamps, err := timestamp.Load(fh, header.Size, geom.FrameBytes, hdr.FrameCount, st.Size())
	if err != nil {
		return nil, err
	}

	return &File{path: path, hdr: hdr, geom: geom, stamps: stamps}, nil
}

// Path returns the file path.
func (f *File) Path() string { return f.path }

// LuID returns the camera series identifier from the header.
// Informational only.
func (f *File) LuID() int32 { return f.hdr.LuID }

// Color returns the declared color mode.
func (f *File) Color() ColorMode { return f.hdr.Color }

// LittleEndian reports whether 16-bit pixel samples are little-endian.
// Header fields are little-endian regardless of this flag.
func (f *File) LittleEndian() bool { return f.hdr.LittleEndian }

// Width returns the frame width in pixels.
func (f *File) Width() int { return int(f.hdr.Width) }

// Height returns the frame height in pixels.
func (f *File) Height() int { return int(f.hdr.Height) }

// BitDepth returns the declared bits per plane as written by the
// recorder, which may be a sensor depth like 12. Storage width is
// BytesPerSample.
func (f *File) BitDepth() int { return int(f.hdr.BitDepth) }

// BytesPerSample returns the storage width of one sample: 1 or 2.
func (f *File) BytesPerSample() int { return f.geom.BytesPerSample }

// Planes returns the number of channels per frame (3 for RGB/BGR, else 1).
func (f *File) Planes() int { return f.geom.Planes }

// FrameCount returns the declared number of frames.
func (f *File) FrameCount() int { return int(f.hdr.FrameCount) }

// FramePixels returns width * height * planes.
func (f *File) FramePixels() int64 { return f.geom.FramePixels }

// FrameBytes returns the exact size of one frame block in bytes.
func (f *File) FrameBytes() int64 { return f.geom.FrameBytes }

// Shape returns the frame dimensions in row-major order:
// (height, width, planes) for multi-plane data, (height, width) otherwise.
func (f *File) Shape() []int { return f.geom.Shape() }

// SampleOrder returns the byte order governing 16-bit pixel samples.
func (f *File) SampleOrder() binary.ByteOrder { return f.geom.SampleOrder }

// Observer returns the observer metadata field.
func (f *File) Observer() string { return f.hdr.Observer }

// Instrument returns the instrument metadata field.
func (f *File) Instrument() string { return f.hdr.Instrument }

// Telescope returns the telescope metadata field.
func (f *File) Telescope() string { return f.hdr.Telescope }

// StartTime returns the stream start time from the header's local-time
// field.
func (f *File) StartTime() time.Time { return timestamp.Time(f.hdr.LocalTicks) }

// StartTimeUTC returns the stream start time from the header's UTC
// field.
func (f *File) StartTimeUTC() time.Time { return timestamp.Time(f.hdr.UTCTicks) }

// Timestamps returns the per-frame UTC timestamps from the trailer, one
// per frame, or an empty slice when the file carries no trailer.
func (f *File) Timestamps() []time.Time { return f.stamps }

// String renders a human-readable summary of the file.
func (f *File) String() string {
	var b strings.Builder
	shape := make([]string, 0, 3)
	for _, d := range f.Shape() {
		shape = append(shape, fmt.Sprint(d))
	}
	fmt.Fprintf(&b, "SER file: %s\n", f.path)
	fmt.Fprintf(&b, "Image data: %dx (%s) %d-bit %s\n",
		f.FrameCount(), strings.Join(shape, "x"), f.BitDepth(), f.Color())
	fmt.Fprintf(&b, "Date: %s (%s UTC)\n", f.StartTime().Format(time.RFC3339Nano),
		f.StartTimeUTC().Format(time.RFC3339Nano))
	fmt.Fprintf(&b, "Observer: %q\n", f.Observer())
	fmt.Fprintf(&b, "Instrument: %q\n", f.Instrument())
	fmt.Fprintf(&b, "Telescope: %q\n", f.Telescope())
	fmt.Fprintf(&b, "Frame timestamps: %d", len(f.stamps))
	return b.String()
}

// checkIndex validates a frame index against the declared range.
func (f *File) checkIndex(i int) error {
	if i < 0 || i >= int(f.hdr.FrameCount) {
		return fmt.Errorf("%w: frame %d of %d", ErrFrameRange, i, f.hdr.FrameCount)
	}
	return nil
}

// readFrame seeks to frame i and reads exactly one frame block. The
// explicit seek before every read keeps accesses order-independent on a
// shared handle.
func (f *File) readFrame(rs io.ReadSeeker, i int) (*Frame, error) {
	if _, err := rs.Seek(f.geom.FrameOffset(i), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to frame %d: %w", i, err)
	}
	buf := make([]byte, f.geom.FrameBytes)
	if _, err := io.ReadFull(rs, buf); err != nil {
		return nil, fmt.Errorf("reading frame %d: %w", i, err)
	}
	return &Frame{Index: i, data: buf, geom: f.geom}, nil
}

// Frame reads frame i in standalone mode: the file is opened, read, and
// closed within the call. Equivalent to reading through a Session or
// View; use those when reading many frames.
func (f *File) Frame(i int) (*Frame, error) {
	if err := f.checkIndex(i); err != nil {
		return nil, err
	}

	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer fh.Close()

	return f.readFrame(fh, i)
}
