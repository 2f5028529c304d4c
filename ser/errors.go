package ser

import (
	"errors"

	"github.com/robert-malhotra/go-ser/internal/header"
)

// Common errors. The header conditions are aliased from the parser so
// errors.Is works against either name.
var (
	ErrNotSER            = header.ErrNotSER
	ErrUnsupportedColor  = header.ErrUnsupportedColor
	ErrUnsupportedDepth  = header.ErrUnsupportedDepth
	ErrInvalidDimensions = header.ErrInvalidDimensions
	ErrTruncated         = header.ErrTruncated
	ErrShortFile         = errors.New("file shorter than declared frame data")
	ErrFrameRange        = errors.New("frame index out of range")
	ErrClosed            = errors.New("resource is closed")
)
