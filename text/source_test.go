package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	if source.Name() == "" {
		t.Error("font name is empty")
	}
	if source.Parsed() == nil {
		t.Error("Parsed() returned nil")
	}
	if n := source.Parsed().NumGlyphs(); n <= 0 {
		t.Errorf("NumGlyphs() = %d, want > 0", n)
	}
	if u := source.Parsed().UnitsPerEm(); u <= 0 {
		t.Errorf("UnitsPerEm() = %d, want > 0", u)
	}
}

func TestNewFontSource_EmptyData(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil): err = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSource_GarbageData(t *testing.T) {
	if _, err := NewFontSource([]byte("this is not a font")); err == nil {
		t.Error("expected parse error for garbage data, got nil")
	}
}

func TestNewFontSource_CopiesData(t *testing.T) {
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)

	source, err := NewFontSource(data)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	// Clobbering the caller's slice must not affect the source.
	for i := range data {
		data[i] = 0
	}
	if source.Name() == "" {
		t.Error("font name lost after caller mutated the input slice")
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile: %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	if source.Name() == "" {
		t.Error("font name is empty")
	}
}

func TestNewFontSourceFromFile_Missing(t *testing.T) {
	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestFontSource_CopyCheck(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	copied := *source //nolint:govet // copying on purpose to trigger the check

	defer func() {
		if recover() == nil {
			t.Error("expected panic when using a copied FontSource")
		}
	}()
	_ = copied.Name()
}

func TestFontSource_NilFacePanics(t *testing.T) {
	var source *FontSource

	defer func() {
		if recover() == nil {
			t.Error("expected panic for Face on nil FontSource")
		}
	}()
	_ = source.Face(16)
}

// namelessFont hides the name table of a ParsedFont.
type namelessFont struct {
	ParsedFont
}

func (namelessFont) Name() string     { return "" }
func (namelessFont) FullName() string { return "" }

// namelessParser produces fonts whose name lookups come back empty.
type namelessParser struct{}

func (namelessParser) Parse(data []byte) (ParsedFont, error) {
	parsed, err := (&ximageParser{}).Parse(data)
	if err != nil {
		return nil, err
	}
	return namelessFont{parsed}, nil
}

func TestNewFontSource_NamePlaceholder(t *testing.T) {
	RegisterParser("nameless", namelessParser{})
	defer delete(parserRegistry, "nameless")

	source, err := NewFontSource(goregular.TTF, WithParser("nameless"))
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	if got := source.Name(); got != "Unknown Font" {
		t.Errorf("Name() = %q, want %q for a font with no name table", got, "Unknown Font")
	}
}

func TestWithParser_UnknownFallsBack(t *testing.T) {
	source, err := NewFontSource(goregular.TTF, WithParser("no-such-parser"))
	if err != nil {
		t.Fatalf("NewFontSource with unknown parser: %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	if source.Parsed() == nil {
		t.Error("fallback parser produced nil ParsedFont")
	}
}
