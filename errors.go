package grayink

import "errors"

// Sentinel errors for the grayink package.
var (
	// ErrInvalidDimensions is returned by NewSurface when width or height
	// is not positive, or when width*height overflows int.
	ErrInvalidDimensions = errors.New("grayink: invalid surface dimensions")

	// ErrInvalidFormat is returned by DecodePGM when the input is not a
	// binary PGM (P5) raster with an 8-bit maximum value.
	ErrInvalidFormat = errors.New("grayink: invalid PGM data")
)
