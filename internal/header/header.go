package header

import (
	"errors"
	"fmt"
	"io"

	binpkg "github.com/robert-malhotra/go-ser/internal/binary"
)

// Signature is the 14-byte magic string at offset 0 of every SER file.
var Signature = []byte("LUCAM-RECORDER")

// Size is the fixed length of the SER header in bytes. Frame data
// starts immediately after it.
const Size = 178

// Errors
var (
	ErrNotSER            = errors.New("not a SER file")
	ErrUnsupportedColor  = errors.New("unsupported color mode")
	ErrUnsupportedDepth  = errors.New("unsupported bit depth")
	ErrInvalidDimensions = errors.New("invalid frame dimensions")
	ErrTruncated         = errors.New("truncated header")
)

// Header contains the decoded SER file header. It is created once at
// open time and never mutated afterwards.
type Header struct {
	// LuID is the camera series identifier. Informational only; the
	// format does not constrain its value.
	LuID int32

	// Color is the declared color mode of the frame data.
	Color ColorID

	// LittleEndian reports the byte order of 16-bit pixel samples.
	// It has no bearing on header fields, which are always
	// little-endian.
	LittleEndian bool

	// Width and Height are the frame dimensions in pixels.
	Width  uint32
	Height uint32

	// BitDepth is the declared bits per plane as written by the
	// recorder. It may be a sensor depth like 12; storage width is
	// derived via StorageDepth.
	BitDepth int32

	// FrameCount is the declared number of frames in the stream.
	FrameCount uint32

	// Observer, Instrument and Telescope are free-text metadata
	// fields, already stripped of field padding.
	Observer   string
	Instrument string
	Telescope  string

	// LocalTicks and UTCTicks are the stream start times in 100 ns
	// ticks since 0001-01-01T00:00:00 (proleptic Gregorian).
	LocalTicks int64
	UTCTicks   int64
}

// Read parses and validates the fixed header from the start of a SER
// byte source. It reads exactly Size bytes and retains no reference to r.
func Read(r io.ReaderAt) (*Header, error) {
	br := binpkg.NewReader(r)

	sig, err := br.ReadBytes(len(Signature))
	if err != nil {
		return nil, truncated(err)
	}
	if string(sig) != string(Signature) {
		return nil, fmt.Errorf("%w: signature %q", ErrNotSER, sig)
	}

	h := &Header{}

	if h.LuID, err = br.ReadInt32(); err != nil {
		return nil, truncated(err)
	}

	colorID, err := br.ReadInt32()
	if err != nil {
		return nil, truncated(err)
	}
	h.Color = ColorID(colorID)
	if !h.Color.Valid() {
		return nil, fmt.Errorf("%w: color_id %d", ErrUnsupportedColor, colorID)
	}

	endianFlag, err := br.ReadInt32()
	if err != nil {
		return nil, truncated(err)
	}
	h.LittleEndian = endianFlag != 0

	if h.Width, err = br.ReadUint32(); err != nil {
		return nil, truncated(err)
	}
	if h.Height, err = br.ReadUint32(); err != nil {
		return nil, truncated(err)
	}
	if h.Width == 0 || h.Height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, h.Width, h.Height)
	}

	if h.BitDepth, err = br.ReadInt32(); err != nil {
		return nil, truncated(err)
	}
	if _, err := h.StorageDepth(); err != nil {
		return nil, err
	}

	if h.FrameCount, err = br.ReadUint32(); err != nil {
		return nil, truncated(err)
	}

	if h.Observer, err = br.ReadString(40); err != nil {
		return nil, truncated(err)
	}
	if h.Instrument, err = br.ReadString(40); err != nil {
		return nil, truncated(err)
	}
	if h.Telescope, err = br.ReadString(40); err != nil {
		return nil, truncated(err)
	}

	if h.LocalTicks, err = br.ReadInt64(); err != nil {
		return nil, truncated(err)
	}
	if h.UTCTicks, err = br.ReadInt64(); err != nil {
		return nil, truncated(err)
	}

	return h, nil
}

// StorageDepth returns the byte-aligned storage width (8 or 16) for the
// declared bit depth. Declared depths of 1..8 store as 8-bit samples,
// 9..16 as 16-bit samples.
func (h *Header) StorageDepth() (int, error) {
	switch {
	case h.BitDepth >= 1 && h.BitDepth <= 8:
		return 8, nil
	case h.BitDepth >= 9 && h.BitDepth <= 16:
		return 16, nil
	default:
		return 0, fmt.Errorf("%w: %d bits per plane", ErrUnsupportedDepth, h.BitDepth)
	}
}

// truncated maps EOF-style read failures onto ErrTruncated; genuine I/O
// errors pass through unchanged.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	return err
}
