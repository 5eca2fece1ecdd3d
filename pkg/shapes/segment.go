package shapes

import (
	"slices"

	"github.com/Faultbox/meshkit/pkg/math"
	"github.com/Faultbox/meshkit/pkg/mesh"
)

// Segment3d is a line segment between two points.
type Segment3d struct {
	Vertices [2]math.Vec3
}

// NewSegment3d returns the segment from a to b.
func NewSegment3d(a, b math.Vec3) Segment3d {
	return Segment3d{Vertices: [2]math.Vec3{a, b}}
}

// Segment3dFromDirection returns a segment of the given length along dir,
// centered at the origin.
func Segment3dFromDirection(dir math.Vec3, length float32) Segment3d {
	half := dir.Normalize().Scale(length / 2)
	return NewSegment3d(half.Neg(), half)
}

// Kind implements Shape.
func (Segment3d) Kind() Kind { return KindSegment }

// Mesh emits both endpoints and the single index pair (0,1).
func (s Segment3d) Mesh(b mesh.Builder) {
	b.Lines(slices.Values([]uint32{0, 1}), slices.Values(s.Vertices[:]))
}

// ToMesh returns the line mesh of the segment.
func (s Segment3d) ToMesh() *mesh.Mesh {
	return mesh.FromMeshable(s)
}

// Length returns the distance between the endpoints.
func (s Segment3d) Length() float32 {
	return s.Vertices[0].Distance(s.Vertices[1])
}

// Center returns the midpoint.
func (s Segment3d) Center() math.Vec3 {
	return s.Vertices[0].Add(s.Vertices[1]).Scale(0.5)
}
