// Package ser provides a pure Go reader for SER astronomical video files.
//
// A SER file is a raw, uncompressed video container: a fixed 178-byte
// header, followed by a stream of fixed-size frames, optionally followed
// by a trailer of per-frame timestamps. Frames hold raw per-plane pixel
// data only; there is no codec and no compression.
//
// # Opening Files
//
// [Open] reads and validates the header, derives the frame geometry, and
// decodes the timestamp trailer if present. The returned [File] holds no
// open handle; descriptor and geometry accessors are pure lookups.
//
//	f, err := ser.Open("jupiter.ser")
//	if err != nil {
//		return err
//	}
//	fmt.Println(f) // human-readable summary
//
// # Reading Frames
//
// Frames can be read three ways, all returning byte-identical data:
//
//   - [File.Frame] opens the file, reads one frame, and closes it again.
//     Convenient for one-off access.
//
//   - [File.NewSession] opens the file once for a sequence of reads and
//     guarantees release via [Session.Close]. Use this when reading many
//     frames.
//
//   - [File.Map] memory-maps the file read-only and serves any frame
//     from the mapping without materializing the stream. The [View] is
//     valid until [View.Close].
//
//	sess, err := f.NewSession()
//	if err != nil {
//		return err
//	}
//	defer sess.Close()
//	for i := 0; i < f.FrameCount(); i++ {
//		frame, err := sess.Frame(i)
//		...
//	}
//
// # Endianness
//
// Header fields are always little-endian. The header's endian flag
// governs only the byte order of 16-bit pixel samples; it is surfaced
// as [File.SampleOrder], and [Frame.Samples16] applies it when decoding
// raw bytes into host-native values. Keeping these two byte orders
// separate is a quirk of the format, not of this package.
//
// # Concurrency
//
// A File and its geometry are immutable after Open. Independent
// sessions and views over the same file may be used concurrently; a
// single Session shares one file handle and seek position, so
// concurrent use of one Session requires external locking around each
// Frame call.
package ser
