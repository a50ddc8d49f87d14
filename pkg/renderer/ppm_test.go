package renderer

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestWritePPMHeaderAndPixelCount(t *testing.T) {
	rows := []Row{
		{Y: 0, Pixels: [][3]byte{{255, 0, 0}, {0, 255, 0}}},
		{Y: 1, Pixels: [][3]byte{{0, 0, 255}, {255, 255, 255}}},
	}

	var buf bytes.Buffer
	if err := WritePPM(&buf, 2, 2, rows); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if lines[0] != "P3" {
		t.Errorf("line 0 = %q, want P3", lines[0])
	}
	if lines[1] != "2 2" {
		t.Errorf("line 1 = %q, want \"2 2\"", lines[1])
	}
	if lines[2] != "255" {
		t.Errorf("line 2 = %q, want 255", lines[2])
	}
	if len(lines) != 7 {
		t.Fatalf("expected 3 header lines + 4 pixel lines = 7, got %d", len(lines))
	}
	if lines[3] != "255 0 0" {
		t.Errorf("first pixel = %q, want \"255 0 0\"", lines[3])
	}
}

func TestWritePPMRowMajorOrder(t *testing.T) {
	rows := []Row{
		{Y: 0, Pixels: [][3]byte{{1, 1, 1}, {2, 2, 2}}},
		{Y: 1, Pixels: [][3]byte{{3, 3, 3}, {4, 4, 4}}},
	}
	var buf bytes.Buffer
	WritePPM(&buf, 2, 2, rows)

	body := strings.Join(strings.Split(buf.String(), "\n")[3:], "\n")
	if !strings.HasPrefix(body, "1 1 1\n2 2 2\n3 3 3\n4 4 4") {
		t.Errorf("pixels not in row-major order:\n%s", body)
	}
}
