package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestXimageParser_Parse(t *testing.T) {
	source := newTestSource(t)
	parsed := source.Parsed()

	if parsed.NumGlyphs() <= 0 {
		t.Errorf("NumGlyphs() = %d, want > 0", parsed.NumGlyphs())
	}
	if parsed.UnitsPerEm() <= 0 {
		t.Errorf("UnitsPerEm() = %d, want > 0", parsed.UnitsPerEm())
	}
	if gid := parsed.GlyphIndex('A'); gid == 0 {
		t.Error("GlyphIndex('A') = 0, want a real glyph")
	}
	if gid := parsed.GlyphIndex('\U0001F600'); gid != 0 {
		t.Errorf("GlyphIndex(emoji) = %d, want 0 (.notdef)", gid)
	}
}

func TestXimageParser_GlyphAdvance(t *testing.T) {
	source := newTestSource(t)
	parsed := source.Parsed()

	gid := parsed.GlyphIndex('m')
	small := parsed.GlyphAdvance(gid, 12)
	large := parsed.GlyphAdvance(gid, 48)
	if small <= 0 {
		t.Fatalf("GlyphAdvance at 12px = %v, want > 0", small)
	}
	if large <= small {
		t.Errorf("GlyphAdvance at 48px = %v, want > 12px advance %v", large, small)
	}
}

func TestXimageParser_Metrics(t *testing.T) {
	source := newTestSource(t)
	m := source.Parsed().Metrics(24)

	if m.Ascent <= 0 {
		t.Errorf("Ascent = %v, want > 0", m.Ascent)
	}
	if m.Descent >= 0 {
		t.Errorf("Descent = %v, want < 0 (below baseline)", m.Descent)
	}
	if h := m.Height(); h < m.Ascent-m.Descent {
		t.Errorf("Height() = %v, want >= ascent - descent = %v", h, m.Ascent-m.Descent)
	}
}

// recordingParser wraps the default parser to observe registry dispatch.
type recordingParser struct {
	calls int
}

func (p *recordingParser) Parse(data []byte) (ParsedFont, error) {
	p.calls++
	return (&ximageParser{}).Parse(data)
}

func TestRegisterParser(t *testing.T) {
	custom := &recordingParser{}
	RegisterParser("recording", custom)
	defer delete(parserRegistry, "recording")

	viaCustom, err := NewFontSource(goregular.TTF, WithParser("recording"))
	if err != nil {
		t.Fatalf("NewFontSource with custom parser: %v", err)
	}
	defer func() {
		_ = viaCustom.Close()
	}()

	if custom.calls != 1 {
		t.Errorf("custom parser called %d times, want 1", custom.calls)
	}
}
