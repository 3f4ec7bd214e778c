package models

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
)

// ErrMalformedOBJ is returned for OBJ statements that cannot be parsed.
var ErrMalformedOBJ = errors.New("malformed obj")

// LoadOBJ loads a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	return ParseOBJ(f, filepath.Base(path))
}

// objRef is one corner of an OBJ face: 0-based indices into the position,
// texcoord and normal lists, -1 when absent.
type objRef struct {
	p, t, n int
}

type objParser struct {
	positions []math3d.Vec3
	normals   []math3d.Vec3
	texcoords []math3d.Vec2

	mesh    *Mesh
	corners map[objRef]int
	hasN    bool
	hasT    bool
}

// ParseOBJ reads OBJ geometry from r. Polygons are fan-triangulated.
// Materials, groups and smoothing statements are ignored.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	p := &objParser{
		mesh:    NewMesh(name),
		corners: make(map[objRef]int),
		hasN:    true,
		hasT:    true,
	}

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		if err := p.parseLine(scanner.Text()); err != nil {
			return nil, fmt.Errorf("obj: line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obj: read: %w", err)
	}

	m := p.mesh
	m.HasNormals = p.hasN && len(m.Faces) > 0
	m.HasUVs = p.hasT && len(m.Faces) > 0
	m.CalculateBounds()
	return m, nil
}

func (p *objParser) parseLine(text string) error {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	ident, args := fields[0], fields[1:]
	switch ident {
	case "v", "vn":
		v, err := parseFloats(args, 3)
		if err != nil {
			return err
		}
		vec := math3d.V3(v[0], v[1], v[2])
		if ident == "v" {
			p.positions = append(p.positions, vec)
		} else {
			p.normals = append(p.normals, vec)
		}
	case "vt":
		v, err := parseFloats(args, 2)
		if err != nil {
			return err
		}
		p.texcoords = append(p.texcoords, math3d.V2(v[0], v[1]))
	case "f":
		return p.parseFace(args)
	}
	return nil
}

func (p *objParser) parseFace(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: face with %d vertices", ErrMalformedOBJ, len(args))
	}

	idx := make([]int, len(args))
	for i, s := range args {
		ref, err := p.parseRef(s)
		if err != nil {
			return err
		}
		idx[i] = p.vertex(ref)
	}

	for i := 1; i+1 < len(idx); i++ {
		p.mesh.Faces = append(p.mesh.Faces, Face{idx[0], idx[i], idx[i+1]})
	}
	return nil
}

// parseRef parses "v", "v/vt", "v//vn" or "v/vt/vn".
func (p *objParser) parseRef(s string) (objRef, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return objRef{}, fmt.Errorf("%w: face vertex %q", ErrMalformedOBJ, s)
	}

	ref := objRef{p: -1, t: -1, n: -1}
	var err error
	if ref.p, err = resolveIndex(parts[0], len(p.positions)); err != nil {
		return objRef{}, err
	}
	if ref.p < 0 {
		return objRef{}, fmt.Errorf("%w: face vertex %q has no position", ErrMalformedOBJ, s)
	}
	if len(parts) > 1 {
		if ref.t, err = resolveIndex(parts[1], len(p.texcoords)); err != nil {
			return objRef{}, err
		}
	}
	if len(parts) > 2 {
		if ref.n, err = resolveIndex(parts[2], len(p.normals)); err != nil {
			return objRef{}, err
		}
	}
	return ref, nil
}

// vertex returns the mesh vertex for ref, creating it on first use.
func (p *objParser) vertex(ref objRef) int {
	if i, ok := p.corners[ref]; ok {
		return i
	}

	v := MeshVertex{Position: p.positions[ref.p]}
	if ref.n >= 0 {
		v.Normal = p.normals[ref.n]
	} else {
		p.hasN = false
	}
	if ref.t >= 0 {
		v.UV = p.texcoords[ref.t]
	} else {
		p.hasT = false
	}

	i := len(p.mesh.Vertices)
	p.mesh.Vertices = append(p.mesh.Vertices, v)
	p.corners[ref] = i
	return i
}

// resolveIndex converts a 1-based (or negative, relative) OBJ index into a
// 0-based one. An empty string yields -1.
func resolveIndex(s string, count int) (int, error) {
	if s == "" {
		return -1, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q", ErrMalformedOBJ, s)
	}
	switch {
	case i > 0 && i <= count:
		return i - 1, nil
	case i < 0 && -i <= count:
		return count + i, nil
	}
	return 0, fmt.Errorf("%w: index %d out of range (have %d)", ErrMalformedOBJ, i, count)
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) < n {
		return nil, fmt.Errorf("%w: want %d components, got %d", ErrMalformedOBJ, n, len(args))
	}
	out := make([]float64, n)
	for i := range n {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedOBJ, args[i])
		}
		out[i] = f
	}
	return out, nil
}
