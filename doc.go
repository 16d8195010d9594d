// Package grayink renders text into an 8-bit grayscale coverage buffer.
//
// The core of the package is the Surface type: a mutable width×height
// buffer of coverage values (0 = background, 255 = full ink). Glyph masks
// produced by a rasterizer are alpha-composited onto the surface with
// Blit, which clips the source bitmap against the surface bounds and
// combines overlapping pixels with CompositeOver. The accumulated image is
// serialized with WritePGM as a binary PGM (P5) raster.
//
// Font loading, glyph rasterization, and text shaping live in the text
// subpackage. The typical pipeline looks like this:
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	face := source.Face(32)
//
//	surface, err := grayink.NewSurface(200, 50)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	surface.DrawString("hello world", face, 0, 40)
//
//	if err := surface.SavePGM("out.pgm"); err != nil {
//	    log.Fatal(err)
//	}
//
// A Surface is single-owner: blit calls must be issued sequentially. The
// package provides no interior locking; callers that want to paint
// concurrently must partition work by disjoint destination regions.
package grayink
