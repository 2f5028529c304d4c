package ser

import "github.com/robert-malhotra/go-ser/internal/header"

// ColorMode is the declared arrangement of color filter/channel data.
type ColorMode = header.ColorID

// Color modes defined by the SER format.
const (
	Mono      = header.Mono
	BayerRGGB = header.BayerRGGB
	BayerGRBG = header.BayerGRBG
	BayerGBRG = header.BayerGBRG
	BayerBGGR = header.BayerBGGR
	BayerCYYM = header.BayerCYYM
	BayerYCMY = header.BayerYCMY
	BayerYMCY = header.BayerYMCY
	BayerMYYC = header.BayerMYYC
	RGB       = header.RGB
	BGR       = header.BGR
)
