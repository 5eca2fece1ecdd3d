// Package mesh provides flat vertex/index buffers for primitive shapes and the
// builder contract that shape adapters drive to produce them.
package mesh

import (
	"github.com/Faultbox/meshkit/pkg/math"
)

// Mesh holds the attribute arrays and index buffer of one mesh, ready for GPU upload.
//
// Triangle meshes carry Positions, Normals and UVs of equal length.
// Line meshes carry Positions only.
type Mesh struct {
	Topology  Topology
	Positions []math.Vec3
	Normals   []math.Vec3
	UVs       []math.Vec2
	Indices   []uint32
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// New returns an empty mesh with the given topology.
func New(t Topology) *Mesh {
	return &Mesh{Topology: t}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// IndexCount returns the number of indices.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Positions) == 0
}

// HasNormals reports whether the mesh carries a normal attribute.
func (m *Mesh) HasNormals() bool {
	return m.Normals != nil
}

// HasUVs reports whether the mesh carries a UV attribute.
func (m *Mesh) HasUVs() bool {
	return m.UVs != nil
}

// PrimitiveCount returns how many points, lines or triangles the index buffer
// assembles under the mesh topology.
func (m *Mesh) PrimitiveCount() int {
	n := len(m.Indices)
	switch m.Topology {
	case PointList:
		return n
	case LineList:
		return n / 2
	case LineStrip:
		if n < 2 {
			return 0
		}
		return n - 1
	case TriangleStrip:
		if n < 3 {
			return 0
		}
		return n - 2
	default:
		return n / 3
	}
}

// Bounds computes the bounding box of the positions. An empty mesh has a zero box.
func (m *Mesh) Bounds() Bounds {
	if len(m.Positions) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Positions[0], Max: m.Positions[0]}
	for _, p := range m.Positions[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}
