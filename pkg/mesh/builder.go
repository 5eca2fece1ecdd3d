package mesh

import (
	"iter"

	"github.com/Faultbox/meshkit/pkg/math"
)

// Vertex is one triangle-mesh vertex.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
}

// Builder receives the full index and vertex streams of a shape.
//
// Each call consumes both sequences once and replaces everything the builder
// held before; calls never accumulate. Index validity is the caller's
// responsibility.
type Builder interface {
	// Triangles sets a triangle-list mesh with position, normal and UV attributes.
	Triangles(indices iter.Seq[uint32], vertices iter.Seq[Vertex])
	// Lines sets a line-list mesh with positions only.
	Lines(indices iter.Seq[uint32], vertices iter.Seq[math.Vec3])
}

// Meshable is implemented by shapes that can describe their own geometry.
type Meshable interface {
	// Mesh drives b exactly once with the shape's geometry.
	Mesh(b Builder)
}

// Triangles builds a fresh triangle-list mesh from the given streams.
func Triangles(indices iter.Seq[uint32], vertices iter.Seq[Vertex]) *Mesh {
	m := &Mesh{
		Topology:  TriangleList,
		Positions: []math.Vec3{},
		Normals:   []math.Vec3{},
		UVs:       []math.Vec2{},
	}
	for v := range vertices {
		m.Positions = append(m.Positions, v.Position)
		m.Normals = append(m.Normals, v.Normal)
		m.UVs = append(m.UVs, v.UV)
	}
	m.Indices = collect(indices)
	checkDebug(m)
	return m
}

// Lines builds a fresh line-list mesh from the given streams.
func Lines(indices iter.Seq[uint32], vertices iter.Seq[math.Vec3]) *Mesh {
	m := &Mesh{
		Topology:  LineList,
		Positions: []math.Vec3{},
	}
	for p := range vertices {
		m.Positions = append(m.Positions, p)
	}
	m.Indices = collect(indices)
	checkDebug(m)
	return m
}

func collect(indices iter.Seq[uint32]) []uint32 {
	out := []uint32{}
	for i := range indices {
		out = append(out, i)
	}
	return out
}

// MeshBuilder is the Builder that produces a Mesh.
//
// Every build call swaps in a newly allocated Mesh, so a Mesh obtained from
// an earlier call is never modified afterwards.
type MeshBuilder struct {
	mesh *Mesh
}

// NewBuilder returns a builder holding an empty mesh with topology t.
func NewBuilder(t Topology) *MeshBuilder {
	return &MeshBuilder{mesh: New(t)}
}

// Triangles implements Builder.
func (b *MeshBuilder) Triangles(indices iter.Seq[uint32], vertices iter.Seq[Vertex]) {
	b.mesh = Triangles(indices, vertices)
}

// Lines implements Builder.
func (b *MeshBuilder) Lines(indices iter.Seq[uint32], vertices iter.Seq[math.Vec3]) {
	b.mesh = Lines(indices, vertices)
}

// Mesh returns the current mesh.
func (b *MeshBuilder) Mesh() *Mesh {
	return b.mesh
}

// FromMeshable builds the complete mesh of a shape. The builder starts as an
// empty triangle list; line shapes replace the topology with their own.
func FromMeshable(s Meshable) *Mesh {
	b := NewBuilder(DefaultTopology)
	s.Mesh(b)
	return b.Mesh()
}
