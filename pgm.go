package grayink

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// pgmMagic is the format tag of a binary (raw) PGM raster.
const pgmMagic = "P5"

// maxDecodePixels caps the pixel count DecodePGM will allocate for, so a
// short malicious header cannot demand an arbitrarily large buffer.
// 1<<28 pixels is a 256 MiB surface, far beyond any text raster.
const maxDecodePixels = 1 << 28

// WritePGM writes the surface to w as a binary PGM (P5) image: the ASCII
// header "P5\n{width} {height}\n255\n" followed by width*height raw bytes
// in row-major order. No padding, no compression, no trailing data.
//
// Write errors are returned verbatim; no partial-write recovery is
// attempted, so w may have received a truncated image on failure.
func (s *Surface) WritePGM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n%d %d\n255\n", pgmMagic, s.width, s.height); err != nil {
		return err
	}
	_, err := w.Write(s.pix)
	return err
}

// SavePGM writes the surface to a PGM file at path.
// On write failure the file may be left truncated.
func (s *Surface) SavePGM(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	bw := bufio.NewWriter(f)
	if err := s.WritePGM(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// DecodePGM reads a binary PGM (P5) image, as produced by WritePGM, and
// returns it as a new Surface. The maximum sample value must be 255.
// Malformed headers and short pixel data return ErrInvalidFormat wrapped
// with detail; read errors are returned verbatim.
func DecodePGM(r io.Reader) (*Surface, error) {
	br := bufio.NewReader(r)

	magic, err := readHeaderLine(br)
	if err != nil {
		return nil, err
	}
	if magic != pgmMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrInvalidFormat, magic)
	}

	dims, err := readHeaderLine(br)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(dims)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: dimensions %q", ErrInvalidFormat, dims)
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: width %q", ErrInvalidFormat, fields[0])
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: height %q", ErrInvalidFormat, fields[1])
	}
	if width <= 0 || height <= 0 || width > maxDecodePixels/height {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidFormat, width, height)
	}

	maxval, err := readHeaderLine(br)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(maxval) != "255" {
		return nil, fmt.Errorf("%w: maximum value %q", ErrInvalidFormat, maxval)
	}

	s, err := NewSurface(width, height)
	if err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(br, s.pix); err != nil {
		return nil, fmt.Errorf("%w: %d-byte body: %v", ErrInvalidFormat, len(s.pix), err)
	}
	return s, nil
}

// readHeaderLine reads one newline-terminated ASCII header line.
func readHeaderLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("%w: truncated header: %v", ErrInvalidFormat, err)
	}
	return strings.TrimSuffix(line, "\n"), nil
}
