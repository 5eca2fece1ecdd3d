package shapes

import (
	"iter"
	stdmath "math"
	"slices"

	"github.com/Faultbox/meshkit/pkg/math"
	"github.com/Faultbox/meshkit/pkg/mesh"
)

// Polyline3d is a connected series of line segments through its vertices.
//
// Indices are uint32, so at most 1<<32 vertices are addressable. Segments
// past that vertex are not emitted.
type Polyline3d struct {
	Vertices []math.Vec3
}

// NewPolyline3d returns a polyline through the given points.
func NewPolyline3d(points ...math.Vec3) Polyline3d {
	return Polyline3d{Vertices: points}
}

// Kind implements Shape.
func (Polyline3d) Kind() Kind { return KindPolyline }

// Mesh emits the vertices unchanged and one index pair per segment:
// (0,1), (1,2), ..., (n-2,n-1).
func (p Polyline3d) Mesh(b mesh.Builder) {
	b.Lines(polylineIndices(len(p.Vertices)), slices.Values(p.Vertices))
}

// ToMesh returns the line mesh of the polyline.
func (p Polyline3d) ToMesh() *mesh.Mesh {
	return mesh.FromMeshable(p)
}

// SegmentCount returns the number of segments, zero for fewer than two vertices.
func (p Polyline3d) SegmentCount() int {
	if len(p.Vertices) < 2 {
		return 0
	}
	return len(p.Vertices) - 1
}

// Length returns the summed length of all segments.
func (p Polyline3d) Length() float32 {
	var total float32
	for i := 1; i < len(p.Vertices); i++ {
		total += p.Vertices[i].Distance(p.Vertices[i-1])
	}
	return total
}

func polylineIndices(n int) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		segments := indexedSegments(n)
		for i := uint64(0); i < segments; i++ {
			if !yield(uint32(i)) || !yield(uint32(i + 1)) {
				return
			}
		}
	}
}

// indexedSegments returns the number of segments of an n-vertex polyline
// whose endpoints fit in uint32 indices.
func indexedSegments(n int) uint64 {
	// n-1 would underflow for an empty polyline.
	if n < 2 {
		return 0
	}
	return min(uint64(n-1), stdmath.MaxUint32)
}
