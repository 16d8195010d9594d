package grayink

import (
	"math"

	"github.com/grayink/grayink/text"
)

// PaintLayout composites a shaped glyph sequence onto the surface.
// (x, y) is the global origin: the baseline position of the first glyph.
// Each glyph is rasterized at the layout's rendering size and blitted at
// its shaped position plus the glyph-local raster origin.
//
// Glyphs with an empty bounding box (e.g. spaces) are skipped entirely;
// this is the expected path for invisible characters, not an error.
// Glyphs partially or fully outside the surface are clipped by Blit.
func (s *Surface) PaintLayout(face text.Face, layout text.Layout, x, y int) {
	if face == nil || len(layout.Glyphs) == 0 {
		return
	}

	parsed := face.Source().Parsed()
	if parsed == nil {
		return
	}

	log := Logger()
	opts := text.DefaultRasterOptions()

	for _, g := range layout.Glyphs {
		glyphX := x + int(math.Round(g.X))
		glyphY := y + int(math.Round(g.Y))

		img := text.RasterizeGlyph(parsed, g.GID, layout.Size, opts)
		if img == nil {
			log.Debug("glyph has empty raster bounds, skipping",
				"gid", g.GID, "x", glyphX, "y", glyphY)
			continue
		}

		log.Debug("painting glyph",
			"gid", g.GID, "bounds", img.Bounds, "x", glyphX, "y", glyphY)
		s.Blit(img.Mask, glyphX+img.Bounds.Min.X, glyphY+img.Bounds.Min.Y)
	}
}

// DrawString shapes str with the face and composites it onto the surface.
// (x, y) is the baseline origin of the first character. Shaping uses the
// global shaper; see text.SetShaper.
func (s *Surface) DrawString(str string, face text.Face, x, y int) {
	if str == "" || face == nil {
		return
	}

	layout := text.MakeLayout(text.TextStyle{Size: face.Size()}, face, str)
	s.PaintLayout(face, layout, x, y)
}
