package timestamp

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Load reads the optional per-frame timestamp trailer. The trailer is
// present iff the file is large enough to hold frameCount 8-byte tick
// values immediately after the last frame; a shorter file simply has no
// timestamps, which is not an error. Tick values are passed through as
// computed times even if non-monotonic or out of range.
func Load(r io.ReaderAt, headerSize, frameBytes int64, frameCount uint32, fileSize int64) ([]time.Time, error) {
	if frameCount == 0 {
		return nil, nil
	}

	start := headerSize + frameBytes*int64(frameCount)
	tableBytes := 8 * int64(frameCount)
	if fileSize < start+tableBytes {
		return nil, nil
	}

	raw := make([]byte, tableBytes)
	if _, err := io.ReadFull(io.NewSectionReader(r, start, tableBytes), raw); err != nil {
		return nil, fmt.Errorf("reading timestamp table: %w", err)
	}

	stamps := make([]time.Time, frameCount)
	for i := range stamps {
		ticks := int64(binary.LittleEndian.Uint64(raw[8*i:]))
		stamps[i] = Time(ticks)
	}
	return stamps, nil
}
