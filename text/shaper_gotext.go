package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GoTextShaper provides HarfBuzz-level text shaping using
// go-text/typesetting. It supports advanced OpenType features including
// ligature substitution (fi, fl, ffi), kerning pairs (AV, To), contextual
// alternates, right-to-left text, and complex scripts.
//
// GoTextShaper is the default global shaper; see SetShaper to replace it.
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font
// objects (which are thread-safe) and creates lightweight font.Face
// instances per Shape call (font.Face is NOT safe for concurrent use).
// HarfbuzzShaper instances are pooled via sync.Pool since they also are
// not concurrent-safe.
type GoTextShaper struct {
	// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
	// internal mutable state and is not safe for concurrent use, but
	// reusing across sequential calls is efficient.
	shaperPool sync.Pool

	// mu protects the font cache.
	mu sync.RWMutex

	// fontCache maps FontSource pointers to parsed go-text Font objects.
	// font.Font is read-only and safe for concurrent use, unlike
	// font.Face. This avoids re-parsing the font data on every Shape call.
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a new GoTextShaper backed by
// go-text/typesetting's HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements the Shaper interface.
// It converts a single-direction run of text into positioned glyphs using
// HarfBuzz shaping via go-text/typesetting.
func (s *GoTextShaper) Shape(text string, face Face, size float64, dir Direction) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	source := face.Source()
	if source == nil {
		return nil
	}

	// Get or create the cached go-text Font for this source.
	goTextFont, err := s.getOrCreateFont(source)
	if err != nil {
		// Return nil on font parsing error. Users should validate their
		// fonts upfront via NewFontSource.
		return nil
	}

	// Create a lightweight font.Face for this shaping call.
	// font.Face is NOT safe for concurrent use, so each Shape call gets
	// its own instance; font.NewFace is cheap.
	goTextFace := font.NewFace(goTextFont)

	runes := []rune(text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(dir),
		Face:      goTextFace,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	// Get a HarfbuzzShaper from the pool (not concurrent-safe, so each
	// goroutine needs its own instance).
	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	return convertGlyphs(output.Glyphs, mapDirection(dir))
}

// getOrCreateFont returns a cached go-text font.Font for the given source,
// or parses the font data and caches the Font (not Face).
// font.Font is read-only and safe for concurrent use.
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	// Fast path: check cache with read lock.
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock.
	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	// Parse font data using go-text/typesetting.
	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	reader := bytes.NewReader(source.data)
	goTextFace, err := font.ParseTTF(reader)
	if err != nil {
		return nil, err
	}

	// Cache the Font (thread-safe), not the Face.
	s.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// ClearCache removes all cached parsed fonts.
// Call this if you no longer need previously loaded fonts and want to
// free memory.
func (s *GoTextShaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[*FontSource]*font.Font)
}

// RemoveSource removes the cached parsed font for a specific FontSource.
// This is useful when a FontSource is closed.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

// mapDirection converts our Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	switch d {
	case DirectionRTL:
		return di.DirectionRTL
	case DirectionTTB:
		return di.DirectionTTB
	case DirectionBTT:
		return di.DirectionBTT
	default:
		return di.DirectionLTR
	}
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Runs produced by SplitRuns are single-direction
// but may still mix scripts; for fully script-aware shaping, split runs
// by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts go-text output glyphs to our ShapedGlyph slice.
func convertGlyphs(glyphs []shaping.Glyph, dir di.Direction) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))

	var x, y float64

	for i, g := range glyphs {
		// XOffset and YOffset are fine-grained positioning adjustments
		// applied on top of the current pen position.
		xOff := fixedToFloat(g.XOffset)
		yOff := fixedToFloat(g.YOffset)

		result[i] = ShapedGlyph{
			GID:     GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph IDs fit in uint16
			Cluster: g.TextIndex(),
			X:       x + xOff,
			Y:       y + yOff,
		}

		// Advance the pen position.
		adv := fixedToFloat(g.Advance)
		if dir.IsVertical() {
			result[i].YAdvance = adv
			y += adv
		} else {
			result[i].XAdvance = adv
			x += adv
		}
	}

	return result
}
