package shapes

import (
	"iter"

	"github.com/Faultbox/meshkit/pkg/math"
	"github.com/Faultbox/meshkit/pkg/mesh"
)

// Cuboid is an axis-aligned box centered at the origin.
type Cuboid struct {
	HalfSize math.Vec3
}

// NewCuboid returns a box with the given full extents.
func NewCuboid(width, height, depth float32) Cuboid {
	return Cuboid{HalfSize: math.V3(width/2, height/2, depth/2)}
}

// Kind implements Shape.
func (Cuboid) Kind() Kind { return KindCuboid }

// cuboidFace spans a face with u x v == normal, so corners listed
// (-u,-v), (+u,-v), (+u,+v), (-u,+v) wind counter-clockwise from outside.
type cuboidFace struct {
	normal, u, v math.Vec3
}

var cuboidFaces = [6]cuboidFace{
	{normal: math.V3(1, 0, 0), u: math.V3(0, 0, -1), v: math.V3(0, 1, 0)},
	{normal: math.V3(-1, 0, 0), u: math.V3(0, 0, 1), v: math.V3(0, 1, 0)},
	{normal: math.V3(0, 1, 0), u: math.V3(1, 0, 0), v: math.V3(0, 0, -1)},
	{normal: math.V3(0, -1, 0), u: math.V3(1, 0, 0), v: math.V3(0, 0, 1)},
	{normal: math.V3(0, 0, 1), u: math.V3(1, 0, 0), v: math.V3(0, 1, 0)},
	{normal: math.V3(0, 0, -1), u: math.V3(-1, 0, 0), v: math.V3(0, 1, 0)},
}

var cuboidCorners = [4]struct {
	su, sv float32
	uv     math.Vec2
}{
	{-1, -1, math.Vec2{X: 0, Y: 1}},
	{1, -1, math.Vec2{X: 1, Y: 1}},
	{1, 1, math.Vec2{X: 1, Y: 0}},
	{-1, 1, math.Vec2{X: 0, Y: 0}},
}

// Mesh emits four vertices per face, so each face keeps its own normal,
// and two triangles per face.
func (c Cuboid) Mesh(b mesh.Builder) {
	b.Triangles(cuboidIndices(), c.vertices())
}

// ToMesh returns the triangle mesh of the box.
func (c Cuboid) ToMesh() *mesh.Mesh {
	return mesh.FromMeshable(c)
}

func (c Cuboid) vertices() iter.Seq[mesh.Vertex] {
	return func(yield func(mesh.Vertex) bool) {
		for _, f := range cuboidFaces {
			center := f.normal.Mul(c.HalfSize)
			u := f.u.Mul(c.HalfSize)
			v := f.v.Mul(c.HalfSize)
			for _, corner := range cuboidCorners {
				pos := center.Add(u.Scale(corner.su)).Add(v.Scale(corner.sv))
				if !yield(mesh.Vertex{Position: pos, Normal: f.normal, UV: corner.uv}) {
					return
				}
			}
		}
	}
}

func cuboidIndices() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for face := range uint32(len(cuboidFaces)) {
			base := face * 4
			for _, i := range [6]uint32{0, 1, 2, 0, 2, 3} {
				if !yield(base + i) {
					return
				}
			}
		}
	}
}
