package grayink

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWritePGM_ExactBytes(t *testing.T) {
	s, _ := NewSurface(3, 2)
	s.SetCoverage(0, 0, 10)
	s.SetCoverage(1, 0, 20)
	s.SetCoverage(2, 0, 30)
	s.SetCoverage(0, 1, 40)
	s.SetCoverage(1, 1, 50)
	s.SetCoverage(2, 1, 60)

	var buf bytes.Buffer
	if err := s.WritePGM(&buf); err != nil {
		t.Fatalf("WritePGM: %v", err)
	}

	want := append([]byte("P5\n3 2\n255\n"), 10, 20, 30, 40, 50, 60)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("WritePGM output:\n got %q\nwant %q", buf.Bytes(), want)
	}
}

// TestWritePGM_EmptySurface pins the end-to-end contract for an untouched
// 200x50 surface: exact header followed by 10000 zero bytes.
func TestWritePGM_EmptySurface(t *testing.T) {
	s, err := NewSurface(200, 50)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}

	var buf bytes.Buffer
	if err := s.WritePGM(&buf); err != nil {
		t.Fatalf("WritePGM: %v", err)
	}

	header := "P5\n200 50\n255\n"
	got := buf.Bytes()
	if !bytes.HasPrefix(got, []byte(header)) {
		t.Fatalf("header mismatch: got %q", got[:min(len(got), len(header))])
	}
	body := got[len(header):]
	if len(body) != 200*50 {
		t.Fatalf("body length: got %d, want %d", len(body), 200*50)
	}
	for i, v := range body {
		if v != 0 {
			t.Fatalf("body byte %d not zero: %d", i, v)
		}
	}
}

func TestPGM_RoundTrip(t *testing.T) {
	s, _ := NewSurface(7, 5)
	for i := range s.Pix() {
		s.Pix()[i] = uint8(i * 7)
	}

	var buf bytes.Buffer
	if err := s.WritePGM(&buf); err != nil {
		t.Fatalf("WritePGM: %v", err)
	}

	decoded, err := DecodePGM(&buf)
	if err != nil {
		t.Fatalf("DecodePGM: %v", err)
	}
	if decoded.Width() != 7 || decoded.Height() != 5 {
		t.Fatalf("dimensions: got %dx%d, want 7x5", decoded.Width(), decoded.Height())
	}
	if !bytes.Equal(decoded.Pix(), s.Pix()) {
		t.Error("decoded pixels differ from original")
	}
}

func TestDecodePGM_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong magic", "P6\n3 2\n255\n" + strings.Repeat("\x00", 18)},
		{"bad dimensions", "P5\n3\n255\n\x00\x00\x00"},
		{"non-numeric width", "P5\nx 2\n255\n\x00"},
		{"wrong maxval", "P5\n3 2\n65535\n" + strings.Repeat("\x00", 12)},
		{"truncated body", "P5\n3 2\n255\n\x00\x00"},
		{"zero width", "P5\n0 2\n255\n"},
		{"negative height", "P5\n3 -2\n255\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePGM(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidFormat) && !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("err = %v, want ErrInvalidFormat or ErrInvalidDimensions", err)
			}
		})
	}
}

// TestDecodePGM_HugeDimensions verifies that a tiny header claiming an
// enormous raster is rejected before any pixel buffer is allocated.
func TestDecodePGM_HugeDimensions(t *testing.T) {
	inputs := []string{
		"P5\n1000000000 1000000000\n255\n",
		"P5\n1 999999999999\n255\n",
		"P5\n999999999999 1\n255\n",
	}
	for _, input := range inputs {
		_, err := DecodePGM(strings.NewReader(input))
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("DecodePGM(%q): err = %v, want ErrInvalidFormat", input, err)
		}
	}
}

func TestSavePGM(t *testing.T) {
	s, _ := NewSurface(4, 4)
	s.SetCoverage(1, 1, 99)

	path := filepath.Join(t.TempDir(), "out.pgm")
	if err := s.SavePGM(path); err != nil {
		t.Fatalf("SavePGM: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	decoded, err := DecodePGM(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodePGM: %v", err)
	}
	if got := decoded.Coverage(1, 1); got != 99 {
		t.Errorf("pixel (1, 1) = %d, want 99", got)
	}
}

func TestSavePGM_BadPath(t *testing.T) {
	s, _ := NewSurface(2, 2)
	err := s.SavePGM(filepath.Join(t.TempDir(), "no", "such", "dir", "out.pgm"))
	if err == nil {
		t.Fatal("expected error for unwritable path, got nil")
	}
}
