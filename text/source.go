package text

import (
	"fmt"
	"os"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use after creation.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	// Font data
	data   []byte
	parsed ParsedFont // Abstracted font interface (pluggable backend)

	// Metadata
	name string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// Options can be used to configure the parser backend.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parsed, err := getParser(config.parserName).Parse(data)
	if err != nil {
		return nil, err
	}

	// The caller keeps ownership of its slice; the source stores a copy.
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	name := parsed.Name()
	if name == "" {
		name = parsed.FullName()
	}
	if name == "" {
		name = "Unknown Font"
	}

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		name:   name,
	}
	s.addr = s // Self-reference for copy detection

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size (in pixels per em).
// Multiple faces can be created from the same FontSource.
//
// Face is a lightweight object; the FontSource continues to own the font
// data. Panics if s is nil (e.g. when the NewFontSourceFromFile error was
// ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) Face {
	if s == nil {
		panic("text: FontSource is nil (check the error from NewFontSourceFromFile)")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &sourceFace{
		source: s,
		size:   size,
		config: config,
	}
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font for advanced operations.
// This is primarily used by Face implementations and the rasterizer.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// Close releases resources associated with the FontSource.
// All faces created from this source become invalid after Close.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.data = nil
	s.parsed = nil

	return nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}
