// Package shapes provides mesh adapters for parametric primitive shapes.
//
// Every shape implements mesh.Meshable: it computes its own index topology
// from its fields and drives a mesh.Builder exactly once.
package shapes

import "github.com/Faultbox/meshkit/pkg/mesh"

// Kind identifies a shape variant.
type Kind string

// Shape kinds.
const (
	KindPolyline  Kind = "polyline"
	KindSegment   Kind = "segment"
	KindTriangle  Kind = "triangle"
	KindCuboid    Kind = "cuboid"
	KindWireframe Kind = "wireframe" // edge outline of a box
)

// Kinds lists every shape kind.
func Kinds() []Kind {
	return []Kind{KindPolyline, KindSegment, KindTriangle, KindCuboid, KindWireframe}
}

// Shape is a meshable primitive of a known kind.
type Shape interface {
	mesh.Meshable
	Kind() Kind
}

var (
	_ Shape = Polyline3d{}
	_ Shape = Segment3d{}
	_ Shape = Triangle3d{}
	_ Shape = Cuboid{}
	_ Shape = Wireframe{}
)
