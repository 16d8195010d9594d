package text

// BuiltinShaper provides simple advance-based shaping from font metrics.
// It supports scripts that don't require complex text shaping: no
// ligature substitution, no kerning pairs, no contextual alternates.
// Right-to-left runs are emitted in visual order by reversing the runes.
//
// For ligatures, kerning, or complex scripts (Arabic, Indic languages),
// use the default GoTextShaper.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(text string, face Face, size float64, dir Direction) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	source := face.Source()
	if source == nil {
		return nil
	}
	parsed := source.Parsed()
	if parsed == nil {
		return nil
	}

	runes := []rune(text)
	if dir == DirectionRTL {
		reverseRunes(runes)
	}

	result := make([]ShapedGlyph, 0, len(runes))
	var x, y float64

	for cluster, r := range runes {
		gid := parsed.GlyphIndex(r)
		advance := parsed.GlyphAdvance(gid, size)

		g := ShapedGlyph{
			GID:     gid,
			Cluster: cluster,
			X:       x,
			Y:       y,
		}
		if dir.IsVertical() {
			g.YAdvance = advance
			y += advance
		} else {
			g.XAdvance = advance
			x += advance
		}
		result = append(result, g)
	}

	return result
}

// reverseRunes reverses the slice in place.
func reverseRunes(runes []rune) {
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
}
