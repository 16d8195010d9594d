package text

import (
	"image"
	"image/draw"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// RasterOptions holds rendering-quality options for glyph rasterization.
type RasterOptions struct {
	// Hinting is the requested hinting mode.
	Hinting Hinting

	// AntiAlias selects between smooth grayscale coverage and
	// thresholded monochrome output.
	AntiAlias AntiAlias
}

// DefaultRasterOptions returns the default rasterization options:
// no hinting, grayscale anti-aliasing.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{
		Hinting:   HintingNone,
		AntiAlias: AntiAliasGrayscale,
	}
}

// GlyphImage is a rasterized glyph: a coverage bitmap plus the placement
// information needed to composite it at a shaped glyph position.
type GlyphImage struct {
	// Mask is the alpha coverage bitmap of the glyph shape. Its Rect
	// equals Bounds, so the mask is already positioned relative to the
	// glyph origin.
	Mask *image.Alpha

	// Bounds is the pixel bounding box of the glyph relative to its
	// origin on the baseline. Min is the offset to add to the shaped
	// glyph position when compositing; Min.Y is negative for glyphs that
	// extend above the baseline.
	Bounds image.Rectangle

	// Advance is the horizontal advance width of the glyph in pixels.
	Advance float64
}

// RasterBounds returns the pixel bounding box a glyph would cover when
// rasterized at the given size, relative to the glyph origin.
// Glyphs with no ink (e.g. a space) return the empty rectangle; callers
// should skip those entirely.
func RasterBounds(parsed ParsedFont, gid GlyphID, ppem float64) image.Rectangle {
	xparsed, ok := parsed.(*ximageParsedFont)
	if !ok {
		return image.Rectangle{}
	}

	segments, err := xparsed.loadSegments(gid, ppem)
	if err != nil || len(segments) == 0 {
		return image.Rectangle{}
	}

	return pixelBounds(segments.Bounds())
}

// RasterizeGlyph renders a glyph to an alpha coverage mask.
//
// The glyph outline is loaded with the font backend and scan-converted
// with golang.org/x/image/vector. The returned mask's Rect is positioned
// relative to the glyph origin on the baseline, with y growing down.
//
// Returns nil if the glyph has an empty bounding box (invisible glyphs
// such as spaces), or if the parsed font does not use the default x/image
// backend. An empty result is the skip signal, not an error.
func RasterizeGlyph(parsed ParsedFont, gid GlyphID, ppem float64, opts RasterOptions) *GlyphImage {
	xparsed, ok := parsed.(*ximageParsedFont)
	if !ok {
		return nil
	}

	segments, err := xparsed.loadSegments(gid, ppem)
	if err != nil || len(segments) == 0 {
		return nil
	}

	bounds := pixelBounds(segments.Bounds())
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil
	}

	// The vector rasterizer works in the positive quadrant, so outline
	// coordinates are shifted by the bounding box origin.
	offX := fixed.I(bounds.Min.X)
	offY := fixed.I(bounds.Min.Y)

	r := vector.NewRasterizer(width, height)
	r.DrawOp = draw.Src
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			r.MoveTo(
				segCoord(seg.Args[0].X, offX), segCoord(seg.Args[0].Y, offY),
			)
		case sfnt.SegmentOpLineTo:
			r.LineTo(
				segCoord(seg.Args[0].X, offX), segCoord(seg.Args[0].Y, offY),
			)
		case sfnt.SegmentOpQuadTo:
			r.QuadTo(
				segCoord(seg.Args[0].X, offX), segCoord(seg.Args[0].Y, offY),
				segCoord(seg.Args[1].X, offX), segCoord(seg.Args[1].Y, offY),
			)
		case sfnt.SegmentOpCubeTo:
			r.CubeTo(
				segCoord(seg.Args[0].X, offX), segCoord(seg.Args[0].Y, offY),
				segCoord(seg.Args[1].X, offX), segCoord(seg.Args[1].Y, offY),
				segCoord(seg.Args[2].X, offX), segCoord(seg.Args[2].Y, offY),
			)
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	// The source is a uniform, so the sample point is irrelevant.
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	if opts.AntiAlias == AntiAliasNone {
		thresholdMask(mask)
	}

	// Translate the mask to its position relative to the glyph origin.
	mask.Rect = mask.Rect.Add(bounds.Min)

	return &GlyphImage{
		Mask:    mask,
		Bounds:  bounds,
		Advance: parsed.GlyphAdvance(gid, ppem),
	}
}

// pixelBounds converts a fixed-point outline bounding box to the smallest
// enclosing pixel rectangle.
func pixelBounds(b fixed.Rectangle26_6) image.Rectangle {
	return image.Rect(
		b.Min.X.Floor(), b.Min.Y.Floor(),
		b.Max.X.Ceil(), b.Max.Y.Ceil(),
	)
}

// segCoord converts one fixed-point outline coordinate to the rasterizer's
// local float32 space by removing the bounding box offset.
func segCoord(v, off fixed.Int26_6) float32 {
	return float32(v-off) / 64
}

// thresholdMask folds grayscale coverage to fully-on or fully-off pixels.
func thresholdMask(mask *image.Alpha) {
	for i, a := range mask.Pix {
		if a >= 0x80 {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}
}
