package ser

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixture describes a SER file to synthesize for a test. Zero values
// are filled in by defaults() so individual tests only state what they
// care about.
type fixture struct {
	signature  string
	luID       int32
	colorID    int32
	endianFlag int32
	width      int32
	height     int32
	bitDepth   int32
	frameCount int32
	observer   string
	instrument string
	telescope  string
	localTicks int64
	utcTicks   int64

	frames   []byte  // raw frame stream, frameCount blocks
	ticks    []int64 // optional trailer
	trailing []byte  // extra bytes after everything, for tolerance tests
}

func (fx fixture) defaults() fixture {
	if fx.signature == "" {
		fx.signature = "LUCAM-RECORDER"
	}
	if fx.width == 0 {
		fx.width = 4
	}
	if fx.height == 0 {
		fx.height = 3
	}
	if fx.bitDepth == 0 {
		fx.bitDepth = 8
	}
	return fx
}

func (fx fixture) encode() []byte {
	fx = fx.defaults()

	var buf bytes.Buffer
	writeText := func(s string, n int) {
		field := make([]byte, n)
		copy(field, s)
		buf.Write(field)
	}
	writeText(fx.signature, 14)
	binary.Write(&buf, binary.LittleEndian, fx.luID)
	binary.Write(&buf, binary.LittleEndian, fx.colorID)
	binary.Write(&buf, binary.LittleEndian, fx.endianFlag)
	binary.Write(&buf, binary.LittleEndian, fx.width)
	binary.Write(&buf, binary.LittleEndian, fx.height)
	binary.Write(&buf, binary.LittleEndian, fx.bitDepth)
	binary.Write(&buf, binary.LittleEndian, fx.frameCount)
	writeText(fx.observer, 40)
	writeText(fx.instrument, 40)
	writeText(fx.telescope, 40)
	binary.Write(&buf, binary.LittleEndian, fx.localTicks)
	binary.Write(&buf, binary.LittleEndian, fx.utcTicks)

	buf.Write(fx.frames)
	for _, tk := range fx.ticks {
		binary.Write(&buf, binary.LittleEndian, tk)
	}
	buf.Write(fx.trailing)
	return buf.Bytes()
}

// write materializes the fixture as a .ser file under t.TempDir().
func (fx fixture) write(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ser")
	require.NoError(t, os.WriteFile(path, fx.encode(), 0o644))
	return path
}

// seq returns n bytes counting up from start, for recognizable frame data.
func seq(start, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(start + i)
	}
	return b
}

// mono8Fixture is the canonical small file: MONO, 4x3, 8-bit, 2 frames
// of recognizable data, no trailer.
func mono8Fixture() fixture {
	return fixture{
		colorID:    int32(Mono),
		endianFlag: 1,
		width:      4,
		height:     3,
		bitDepth:   8,
		frameCount: 2,
		frames:     append(seq(0, 12), seq(100, 12)...),
	}
}
