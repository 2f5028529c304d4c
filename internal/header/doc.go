// Package header handles parsing of the fixed SER file header.
//
// The header is the entry point for any SER file: a 178-byte block at
// offset 0 containing everything needed to locate and interpret the
// frame stream that follows.
//
// # File Signature
//
// SER files are identified by the 14-byte ASCII signature
// "LUCAM-RECORDER" at offset 0. There is no alternate signature
// location; a file whose first 14 bytes do not match is not a SER file.
//
// # Header Layout
//
// All multi-byte integer fields are little-endian. This is independent
// of the LittleEndian flag in the header, which governs only the byte
// order of 16-bit pixel samples in the frame data.
//
//	offset   len  field
//	     0    14  signature ("LUCAM-RECORDER")
//	    14     4  lu_id (int32, informational)
//	    18     4  color_id (int32)
//	    22     4  little_endian flag (int32, pixel samples only)
//	    26     4  width (int32)
//	    30     4  height (int32)
//	    34     4  bit depth per plane (int32)
//	    38     4  frame count (int32)
//	    42    40  observer (padded text)
//	    82    40  instrument (padded text)
//	   122    40  telescope (padded text)
//	   162     8  local start time (int64 ticks)
//	   170     8  UTC start time (int64 ticks)
//
// Text fields are fixed-width, right-padded with NUL or space bytes,
// and decoded as plain ASCII/Latin-1.
//
// # Bit Depth Normalization
//
// Some writers record the number of bits actually used by the sensor
// (e.g. 12) rather than the storage width. Depths 1..8 are stored as
// 8-bit samples and 9..16 as 16-bit samples; the declared value is
// retained on the Header for reporting. Anything outside 1..16 is
// rejected. The rounding rule for such depths follows common SER-reader
// practice; the format document does not spell it out.
package header
