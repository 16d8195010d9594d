package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
type ximageParsedFont struct {
	font *opentype.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && buf != "" {
		return buf
	}
	return ""
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFull); err == nil && buf != "" {
		return buf
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) GlyphID {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
// Advances are unhinted, matching the unhinted outlines used for
// rasterization.
func (f *ximageParsedFont) GlyphAdvance(gid GlyphID, ppem float64) float64 {
	var buf sfnt.Buffer

	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return 0
	}

	return fixedToFloat(advance)
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64) FontMetrics {
	var buf sfnt.Buffer

	metrics, err := f.font.Metrics(&buf, floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return FontMetrics{}
	}

	return FontMetrics{
		Ascent:    fixedToFloat(metrics.Ascent),
		Descent:   -fixedToFloat(metrics.Descent),
		LineGap:   fixedToFloat(metrics.Height) - fixedToFloat(metrics.Ascent) - fixedToFloat(metrics.Descent),
		XHeight:   fixedToFloat(metrics.XHeight),
		CapHeight: fixedToFloat(metrics.CapHeight),
	}
}

// loadSegments loads the outline of a glyph at the given size.
// The segments are in pixel units (26.6 fixed point) with the y axis
// growing down, relative to the glyph origin on the baseline.
func (f *ximageParsedFont) loadSegments(gid GlyphID, ppem float64) (sfnt.Segments, error) {
	var buf sfnt.Buffer
	return f.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), floatToFixed(ppem), nil)
}

// floatToFixed converts a float64 pixel value to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
