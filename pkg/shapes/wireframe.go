package shapes

import (
	"iter"
	"slices"

	"github.com/Faultbox/meshkit/pkg/math"
	"github.com/Faultbox/meshkit/pkg/mesh"
)

// Wireframe is the 12-edge outline of an axis-aligned box, used for bounds
// and selection overlays.
type Wireframe struct {
	Min, Max math.Vec3
}

// NewWireframe outlines the given bounds, expanded by padding on every side.
func NewWireframe(b mesh.Bounds, padding float32) Wireframe {
	pad := math.V3(padding, padding, padding)
	return Wireframe{Min: b.Min.Sub(pad), Max: b.Max.Add(pad)}
}

// Wireframe returns the edge outline of the cuboid.
func (c Cuboid) Wireframe() Wireframe {
	return Wireframe{Min: c.HalfSize.Neg(), Max: c.HalfSize}
}

// Kind implements Shape.
func (Wireframe) Kind() Kind { return KindWireframe }

// wireframeEdges index the corners produced by Wireframe.corners:
// bottom face, top face, then the vertical edges.
var wireframeEdges = [24]uint32{
	0, 1, 1, 2, 2, 3, 3, 0,
	4, 5, 5, 6, 6, 7, 7, 4,
	0, 4, 1, 5, 2, 6, 3, 7,
}

// Mesh emits the 8 corners once and one index pair per edge.
func (w Wireframe) Mesh(b mesh.Builder) {
	b.Lines(slices.Values(wireframeEdges[:]), w.corners())
}

// ToMesh returns the line mesh of the outline.
func (w Wireframe) ToMesh() *mesh.Mesh {
	return mesh.FromMeshable(w)
}

func (w Wireframe) corners() iter.Seq[math.Vec3] {
	lo, hi := w.Min, w.Max
	return slices.Values([]math.Vec3{
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
	})
}
