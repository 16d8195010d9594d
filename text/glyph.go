package text

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint16

// ShapedGlyph represents a positioned glyph produced by text shaping.
// Positions and advances are in pixels relative to the text origin at the
// baseline of the first character.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the source rune index within the shaped run.
	// Multiple glyphs can belong to the same cluster (e.g. ligatures).
	Cluster int

	// X is the horizontal position relative to the text origin.
	X float64

	// Y is the vertical position relative to the baseline.
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64

	// YAdvance is the vertical advance (for vertical text).
	YAdvance float64
}

// TextStyle describes how a string should be shaped.
// A zero Size falls back to the face size in MakeLayout.
type TextStyle struct {
	// Size is the rendering size in pixels per em.
	Size float64
}

// Layout is an ordered sequence of positioned glyphs together with the
// rendering size they were shaped at. The size must be passed through to
// the rasterizer so glyph bitmaps match the shaped positions.
type Layout struct {
	// Size is the rendering size in pixels per em.
	Size float64

	// Glyphs are the positioned glyphs in paint order.
	Glyphs []ShapedGlyph
}
