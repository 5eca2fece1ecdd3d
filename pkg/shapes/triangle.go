package shapes

import (
	"slices"

	"github.com/Faultbox/meshkit/pkg/math"
	"github.com/Faultbox/meshkit/pkg/mesh"
)

// Triangle3d is a single triangle. Counter-clockwise vertices face the viewer.
type Triangle3d struct {
	Vertices [3]math.Vec3
}

// NewTriangle3d returns the triangle a, b, c.
func NewTriangle3d(a, b, c math.Vec3) Triangle3d {
	return Triangle3d{Vertices: [3]math.Vec3{a, b, c}}
}

// Kind implements Shape.
func (Triangle3d) Kind() Kind { return KindTriangle }

// Normal returns the unit face normal, or zero for a degenerate triangle.
func (t Triangle3d) Normal() math.Vec3 {
	a, b, c := t.Vertices[0], t.Vertices[1], t.Vertices[2]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Mesh emits the three corners with a shared flat normal.
func (t Triangle3d) Mesh(b mesh.Builder) {
	n := t.Normal()
	b.Triangles(
		slices.Values([]uint32{0, 1, 2}),
		slices.Values([]mesh.Vertex{
			{Position: t.Vertices[0], Normal: n, UV: math.Vec2{X: 0, Y: 0}},
			{Position: t.Vertices[1], Normal: n, UV: math.Vec2{X: 1, Y: 0}},
			{Position: t.Vertices[2], Normal: n, UV: math.Vec2{X: 0.5, Y: 1}},
		}),
	)
}

// ToMesh returns the triangle mesh.
func (t Triangle3d) ToMesh() *mesh.Mesh {
	return mesh.FromMeshable(t)
}
