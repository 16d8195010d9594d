// Package text provides font loading, glyph rasterization, and text
// shaping for grayink.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: Heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: Lightweight font instance at a specific size
//   - FontParser: Pluggable font parsing backend (default: golang.org/x/image)
//   - Shaper: Converts text runs into positioned glyphs
//     (default: HarfBuzz-level shaping via go-text/typesetting)
//   - RasterizeGlyph: Converts a glyph outline into an alpha coverage mask
//
// # Example usage
//
//	// Load font (do once, share across application)
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	// Create face at specific size (lightweight)
//	face := source.Face(32)
//
//	// Shape a string into positioned glyphs
//	layout := text.MakeLayout(text.TextStyle{Size: 32}, face, "hello world")
//
//	// Rasterize the glyphs one by one
//	for _, g := range layout.Glyphs {
//	    img := text.RasterizeGlyph(source.Parsed(), g.GID, layout.Size, text.DefaultRasterOptions())
//	    if img == nil {
//	        continue // invisible glyph, e.g. a space
//	    }
//	    // composite img.Mask at the glyph position
//	}
//
// # Pluggable parser backend
//
// Font parsing is abstracted through the FontParser interface. By default,
// golang.org/x/image/font/opentype is used. Custom parsers can be
// registered for alternative implementations:
//
//	text.RegisterParser("myparser", myCustomParser)
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
package text
