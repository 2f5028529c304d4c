package timestamp

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"
)

const (
	testHeaderSize = 178
	testFrameBytes = 12
)

// buildStream assembles header padding, frame padding, and an optional
// tick trailer into one byte image.
func buildStream(frameCount int, ticks []int64) []byte {
	var buf bytes.Buffer
	buf.Write(make([]byte, testHeaderSize+testFrameBytes*frameCount))
	for _, tk := range ticks {
		binary.Write(&buf, binary.LittleEndian, tk)
	}
	return buf.Bytes()
}

func TestLoadPresent(t *testing.T) {
	ticks := []int64{630822816000000000, 630822816000000000 + 5*ticksPerSecond}
	data := buildStream(2, ticks)

	stamps, err := Load(bytes.NewReader(data), testHeaderSize, testFrameBytes, 2, int64(len(data)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(stamps) != 2 {
		t.Fatalf("expected 2 timestamps, got %d", len(stamps))
	}

	want0 := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	if !stamps[0].Equal(want0) {
		t.Errorf("expected %v, got %v", want0, stamps[0])
	}
	if d := stamps[1].Sub(stamps[0]); d != 5*time.Second {
		t.Errorf("expected 5s between frames, got %v", d)
	}
}

func TestLoadAbsentExactSize(t *testing.T) {
	data := buildStream(2, nil)

	stamps, err := Load(bytes.NewReader(data), testHeaderSize, testFrameBytes, 2, int64(len(data)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(stamps) != 0 {
		t.Errorf("expected no timestamps, got %d", len(stamps))
	}
}

func TestLoadAbsentPartialTrailer(t *testing.T) {
	// One tick short of a full table: treated as absent, not an error.
	data := buildStream(2, []int64{630822816000000000})

	stamps, err := Load(bytes.NewReader(data), testHeaderSize, testFrameBytes, 2, int64(len(data)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(stamps) != 0 {
		t.Errorf("expected no timestamps for partial trailer, got %d", len(stamps))
	}
}

func TestLoadZeroFrames(t *testing.T) {
	data := buildStream(0, nil)

	stamps, err := Load(bytes.NewReader(data), testHeaderSize, testFrameBytes, 0, int64(len(data)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if stamps != nil {
		t.Errorf("expected nil timestamps, got %v", stamps)
	}
}

func TestLoadNonMonotonicPassesThrough(t *testing.T) {
	ticks := []int64{630822816000000000, 621355968000000000}
	data := buildStream(2, ticks)

	stamps, err := Load(bytes.NewReader(data), testHeaderSize, testFrameBytes, 2, int64(len(data)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !stamps[1].Before(stamps[0]) {
		t.Errorf("non-monotonic ticks should decode as-is: %v then %v", stamps[0], stamps[1])
	}
}
