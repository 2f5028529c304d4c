package header

import "fmt"

// ColorID identifies the declared arrangement of color filter/channel
// data in the frame stream.
type ColorID int32

// Color modes defined by the SER format.
const (
	Mono      ColorID = 0
	BayerRGGB ColorID = 8
	BayerGRBG ColorID = 9
	BayerGBRG ColorID = 10
	BayerBGGR ColorID = 11
	BayerCYYM ColorID = 16
	BayerYCMY ColorID = 17
	BayerYMCY ColorID = 18
	BayerMYYC ColorID = 19
	RGB       ColorID = 100
	BGR       ColorID = 101
)

var colorNames = map[ColorID]string{
	Mono:      "MONO",
	BayerRGGB: "BAYER_RGGB",
	BayerGRBG: "BAYER_GRBG",
	BayerGBRG: "BAYER_GBRG",
	BayerBGGR: "BAYER_BGGR",
	BayerCYYM: "BAYER_CYYM",
	BayerYCMY: "BAYER_YCMY",
	BayerYMCY: "BAYER_YMCY",
	BayerMYYC: "BAYER_MYYC",
	RGB:       "RGB",
	BGR:       "BGR",
}

// String returns the format's name for the color mode.
func (c ColorID) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int32(c))
}

// Valid reports whether the ID maps to a supported color mode.
func (c ColorID) Valid() bool {
	_, ok := colorNames[c]
	return ok
}

// Planes returns the number of channels per frame: 3 for interleaved
// RGB/BGR data, 1 for monochrome and raw Bayer data.
func (c ColorID) Planes() int {
	if c == RGB || c == BGR {
		return 3
	}
	return 1
}
