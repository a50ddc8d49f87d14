package renderer

import (
	"bufio"
	"fmt"
	"io"
)

// WritePPM encodes rows as a textual P3 portable pixmap (spec.md §6):
// header "P3", width, height, "255", then one "r g b" triple per pixel in
// row-major order. rows must be in scanline order, index 0 first.
func WritePPM(w io.Writer, width, height int, rows []Row) error {
	buf := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buf, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("renderer: write PPM header: %w", err)
	}

	for _, row := range rows {
		for _, px := range row.Pixels {
			if _, err := fmt.Fprintf(buf, "%d %d %d\n", px[0], px[1], px[2]); err != nil {
				return fmt.Errorf("renderer: write PPM pixel: %w", err)
			}
		}
	}

	return buf.Flush()
}
