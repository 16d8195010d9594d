package text

import "sync"

// Shaper converts a single-direction run of text into positioned glyphs.
// Implementations provide different levels of text shaping support:
//   - GoTextShaper (default): HarfBuzz-level shaping via go-text/typesetting,
//     with kerning, ligatures, and complex-script support
//   - BuiltinShaper: simple advance-based positioning from font metrics
type Shaper interface {
	// Shape converts text into positioned glyphs using the given face.
	// The text must be a single-direction run; size is the rendering size
	// in pixels per em. Positions start at the run origin.
	Shape(text string, face Face, size float64, dir Direction) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = NewGoTextShaper()
)

// SetShaper sets the global shaper used by Shape and MakeLayout.
// Pass nil to reset to the default GoTextShaper.
//
// Example usage with a custom shaper:
//
//	text.SetShaper(myShaper)
//	defer text.SetShaper(nil) // Reset to default
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = NewGoTextShaper()
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape is a convenience function that shapes a single-direction run with
// the global shaper.
func Shape(text string, face Face, size float64, dir Direction) []ShapedGlyph {
	return GetShaper().Shape(text, face, size, dir)
}

// MakeLayout shapes a string into an ordered sequence of positioned
// glyphs plus the rendering size to pass through to the rasterizer.
//
// The string is split into single-direction runs (see SplitRuns), each run
// is shaped with the global shaper, and the runs are concatenated with a
// running pen position. A zero style size falls back to the face size.
func MakeLayout(style TextStyle, face Face, s string) Layout {
	size := style.Size
	if size <= 0 && face != nil {
		size = face.Size()
	}
	if s == "" || face == nil {
		return Layout{Size: size}
	}

	var glyphs []ShapedGlyph
	var penX, penY float64

	for _, run := range SplitRuns(s, face.Direction()) {
		shaped := Shape(run.Text, face, size, run.Direction)
		for _, g := range shaped {
			// Glyph positions are relative to the run origin; the pen
			// carries the origin across runs.
			g.X += penX
			g.Y += penY
			glyphs = append(glyphs, g)
		}
		for _, g := range shaped {
			penX += g.XAdvance
			penY += g.YAdvance
		}
	}

	return Layout{Size: size, Glyphs: glyphs}
}
