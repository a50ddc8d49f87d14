package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ilandmann/pathtracer/pkg/core"
)

// Mesh is the vertex array and flat triangle index array an OBJ file
// yields (spec.md §4.3/§6): triangle i uses Vertices[Indices[3i]],
// Vertices[Indices[3i+1]], Vertices[Indices[3i+2]].
type Mesh struct {
	Vertices []core.Vec3
	Indices  []int
}

// LoadOBJ parses the `v`/`f` subset of Wavefront OBJ from filename,
// scaling every vertex position by scale before insertion. Texture and
// normal indices, groups, smoothing groups, and materials are ignored;
// any other line is skipped (spec.md §6).
//
// A missing mesh file is not fatal: it is reported to logger and an
// empty mesh is returned, so a scene missing one model still renders
// everything else (spec.md §6, "Missing mesh file reports to a
// diagnostic stream and yields an empty mesh").
func LoadOBJ(filename string, scale float64, logger core.Logger) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		logger.Printf("loaders: mesh %s not found, skipping: %v", filename, err)
		return &Mesh{}, nil
	}
	defer file.Close()

	return parseOBJ(file, scale)
}

func parseOBJ(r io.Reader, scale float64) (*Mesh, error) {
	mesh := &Mesh{}
	scanner := bufio.NewScanner(r)

	for lineNum := 1; scanner.Scan(); lineNum++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:], scale)
			if err != nil {
				return nil, fmt.Errorf("loaders: mesh line %d: %w", lineNum, err)
			}
			mesh.Vertices = append(mesh.Vertices, v)
		case "f":
			idx, err := parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("loaders: mesh line %d: %w", lineNum, err)
			}
			mesh.Indices = append(mesh.Indices, idx...)
		default:
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: scan mesh: %w", err)
	}

	return mesh, nil
}

func parseVertex(fields []string, scale float64) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("vertex line needs 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(x*scale, y*scale, z*scale), nil
}

// parseFace reads a triangular face's positional indices only, dropping
// any "/vt/vn" suffixes, and converts from OBJ's 1-based indexing.
func parseFace(fields []string) ([]int, error) {
	if len(fields) != 3 {
		return nil, fmt.Errorf("only triangular faces are supported, got %d vertices", len(fields))
	}

	indices := make([]int, 3)
	for i, field := range fields {
		posField := strings.SplitN(field, "/", 2)[0]
		idx, err := strconv.Atoi(posField)
		if err != nil {
			return nil, fmt.Errorf("bad face index %q: %w", field, err)
		}
		indices[i] = idx - 1
	}
	return indices, nil
}
