package grayink

import (
	"image"
	"io"
	"testing"
)

func BenchmarkCompositeOver(b *testing.B) {
	var acc uint8
	for i := 0; i < b.N; i++ {
		acc = CompositeOver(acc, uint8(i))
	}
	_ = acc
}

func BenchmarkBlit(b *testing.B) {
	s, _ := NewSurface(256, 256)
	mask := image.NewAlpha(image.Rect(0, 0, 32, 32))
	for i := range mask.Pix {
		mask.Pix[i] = uint8(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Blit(mask, i%224, (i*7)%224)
	}
}

func BenchmarkBlitClipped(b *testing.B) {
	s, _ := NewSurface(256, 256)
	mask := image.NewAlpha(image.Rect(0, 0, 64, 64))
	for i := range mask.Pix {
		mask.Pix[i] = 200
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Blit(mask, -32, -32)
	}
}

func BenchmarkWritePGM(b *testing.B) {
	s, _ := NewSurface(512, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.WritePGM(io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}
