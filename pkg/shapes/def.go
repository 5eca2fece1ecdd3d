package shapes

import (
	"errors"
	"fmt"
	"os"

	"github.com/Faultbox/meshkit/pkg/math"
	"gopkg.in/yaml.v3"
)

// Shape definition errors.
var (
	// ErrUnknownKind is returned for a definition with an unrecognized kind.
	ErrUnknownKind = errors.New("shapes: unknown kind")

	// ErrPointCount is returned when a definition has the wrong number of points.
	ErrPointCount = errors.New("shapes: wrong point count")

	// ErrHalfSize is returned for a box with a negative extent.
	ErrHalfSize = errors.New("shapes: negative half size")
)

// Def is the YAML description of one shape.
//
//	- name: path
//	  kind: polyline
//	  points: [[0, 0, 0], [1, 0, 0], [1, 1, 0]]
type Def struct {
	Name     string       `yaml:"name"`
	Kind     Kind         `yaml:"kind"`
	Points   [][3]float32 `yaml:"points,omitempty"`
	HalfSize [3]float32   `yaml:"half_size,omitempty"`
}

// File is a YAML document listing shapes.
type File struct {
	Shapes []Def `yaml:"shapes"`
}

// Shape converts the definition into its shape.
func (d Def) Shape() (Shape, error) {
	switch d.Kind {
	case KindPolyline:
		return NewPolyline3d(d.points()...), nil
	case KindSegment:
		if len(d.Points) != 2 {
			return nil, fmt.Errorf("%w: segment %q has %d points, want 2", ErrPointCount, d.Name, len(d.Points))
		}
		p := d.points()
		return NewSegment3d(p[0], p[1]), nil
	case KindTriangle:
		if len(d.Points) != 3 {
			return nil, fmt.Errorf("%w: triangle %q has %d points, want 3", ErrPointCount, d.Name, len(d.Points))
		}
		p := d.points()
		return NewTriangle3d(p[0], p[1], p[2]), nil
	case KindCuboid:
		h := math.V3(d.HalfSize[0], d.HalfSize[1], d.HalfSize[2])
		if h.X < 0 || h.Y < 0 || h.Z < 0 {
			return nil, fmt.Errorf("%w: cuboid %q", ErrHalfSize, d.Name)
		}
		return Cuboid{HalfSize: h}, nil
	case KindWireframe:
		h := math.V3(d.HalfSize[0], d.HalfSize[1], d.HalfSize[2])
		if h.X < 0 || h.Y < 0 || h.Z < 0 {
			return nil, fmt.Errorf("%w: wireframe %q", ErrHalfSize, d.Name)
		}
		return Cuboid{HalfSize: h}.Wireframe(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}
}

func (d Def) points() []math.Vec3 {
	out := make([]math.Vec3, len(d.Points))
	for i, p := range d.Points {
		out[i] = math.V3(p[0], p[1], p[2])
	}
	return out
}

// ParseDefs decodes a shape file.
func ParseDefs(data []byte) ([]Def, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing shapes: %w", err)
	}
	return f.Shapes, nil
}

// LoadDefs reads and decodes a shape file.
func LoadDefs(path string) ([]Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	defs, err := ParseDefs(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}
