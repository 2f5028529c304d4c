// Package timestamp decodes the SER tick-based time fields and the
// optional per-frame timestamp trailer.
//
// SER stores times as signed 64-bit counts of 100-nanosecond ticks
// since 0001-01-01T00:00:00 on the proleptic Gregorian calendar (the
// .NET DateTime.Ticks convention). The header carries two such values
// (local and UTC stream start) and a trailer after the frame data may
// carry one per frame.
package timestamp

import "time"

const (
	// ticksPerSecond is the number of 100 ns ticks in one second.
	ticksPerSecond = 10_000_000

	// unixEpochSeconds is the number of seconds between the tick
	// epoch (0001-01-01T00:00:00Z) and the Unix epoch.
	unixEpochSeconds = 62_135_596_800
)

// Time converts a tick count to an absolute UTC time. The conversion
// splits the count into whole seconds and a sub-second remainder before
// scaling, so any int64 tick value converts without intermediate
// overflow. Sub-second precision is preserved to the full 100 ns tick.
func Time(ticks int64) time.Time {
	sec := ticks / ticksPerSecond
	rem := ticks % ticksPerSecond
	if rem < 0 {
		sec--
		rem += ticksPerSecond
	}
	return time.Unix(sec-unixEpochSeconds, rem*100).UTC()
}
