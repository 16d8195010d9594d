package grayink

import (
	"image"
	"image/color"
	"math"
)

// Surface is a rectangular buffer of 8-bit coverage values, one byte per
// pixel, row-major with the origin at the top left. A value of 0 is fully
// transparent background and 255 is fully opaque ink.
//
// The dimensions are fixed at construction and the buffer is never
// reallocated. Surface is not safe for concurrent mutation.
type Surface struct {
	width  int
	height int
	pix    []uint8
}

// NewSurface creates a surface with all pixels set to 0.
// It returns ErrInvalidDimensions if width or height is not positive,
// or if width*height would overflow int.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return nil, ErrInvalidDimensions
	}
	return &Surface{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}, nil
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Pix returns the raw coverage data, row-major, one byte per pixel.
// The slice aliases the surface's own buffer; its length is always
// Width()*Height().
func (s *Surface) Pix() []uint8 {
	return s.pix
}

// Coverage returns the coverage value at (x, y).
// Out-of-bounds coordinates return 0.
func (s *Surface) Coverage(x, y int) uint8 {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.pix[y*s.width+x]
}

// SetCoverage sets the coverage value at (x, y), replacing the existing
// value without compositing. Out-of-bounds coordinates are silently
// ignored.
func (s *Surface) SetCoverage(x, y int, v uint8) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pix[y*s.width+x] = v
}

// Clear resets every pixel to 0.
func (s *Surface) Clear() {
	clear(s.pix)
}

// Blit composites the alpha mask onto the surface with the mask's top-left
// corner at (x, y). The offset may be negative or place the mask partially
// or fully outside the surface; only the overlapping region is touched.
// An empty overlap is a no-op, not an error.
//
// Each overlapping pixel is combined with CompositeOver, so repeated blits
// accumulate ink rather than overwriting it. The mask is read-only for the
// duration of the call and is not retained.
func (s *Surface) Blit(mask *image.Alpha, x, y int) {
	if mask == nil {
		return
	}
	cw := mask.Rect.Dx()
	ch := mask.Rect.Dy()

	// Clip the mask-local pixel range against the surface bounds.
	xMin := max(0, -x)
	xMax := min(cw, s.width-x)
	yMin := max(0, -y)
	yMax := min(ch, s.height-y)
	if xMax <= xMin || yMax <= yMin {
		return
	}

	for by := yMin; by < yMax; by++ {
		srcRow := mask.Pix[mask.PixOffset(mask.Rect.Min.X, mask.Rect.Min.Y+by):]
		dstRow := s.pix[(y+by)*s.width:]
		for bx := xMin; bx < xMax; bx++ {
			dstRow[x+bx] = CompositeOver(dstRow[x+bx], srcRow[bx])
		}
	}
}

// ToImage copies the surface into a new image.Gray.
func (s *Surface) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pix)
	return img
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return color.Gray{Y: s.Coverage(x, y)}
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.GrayModel
}
