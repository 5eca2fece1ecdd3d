package mesh

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"
)

// Topology describes how indices into a vertex list are assembled into primitives.
//
// The ordinals are fixed: they are packed into pipeline specialization keys and
// must round-trip through that representation.
type Topology uint8

const (
	PointList     Topology = 0
	LineList      Topology = 1
	LineStrip     Topology = 2
	TriangleList  Topology = 3
	TriangleStrip Topology = 4
)

// DefaultTopology is used for fresh builders and for unrecognized topology bits.
const DefaultTopology = TriangleList

var topologyNames = [...]string{
	PointList:     "point-list",
	LineList:      "line-list",
	LineStrip:     "line-strip",
	TriangleList:  "triangle-list",
	TriangleStrip: "triangle-strip",
}

// Topologies lists every defined topology in ordinal order.
func Topologies() []Topology {
	return []Topology{PointList, LineList, LineStrip, TriangleList, TriangleStrip}
}

// Valid reports whether t is one of the defined topologies.
func (t Topology) Valid() bool {
	return int(t) < len(topologyNames)
}

// String returns the kebab-case topology name.
func (t Topology) String() string {
	if !t.Valid() {
		return fmt.Sprintf("topology(%d)", uint8(t))
	}
	return topologyNames[t]
}

// ParseTopology parses a topology name as produced by String.
func ParseTopology(s string) (Topology, error) {
	for i, name := range topologyNames {
		if name == s {
			return Topology(i), nil
		}
	}
	return DefaultTopology, fmt.Errorf("%w: %q", ErrUnknownTopology, s)
}

// IsLine reports whether t assembles line primitives.
func (t Topology) IsLine() bool {
	return t == LineList || t == LineStrip
}

// IsStrip reports whether t is a strip topology, which needs a strip index format.
func (t Topology) IsStrip() bool {
	return t == LineStrip || t == TriangleStrip
}

// GPU maps t to the WebGPU primitive topology.
// Unknown values map to the triangle-list default.
func (t Topology) GPU() gputypes.PrimitiveTopology {
	switch t {
	case PointList:
		return gputypes.PrimitiveTopologyPointList
	case LineList:
		return gputypes.PrimitiveTopologyLineList
	case LineStrip:
		return gputypes.PrimitiveTopologyLineStrip
	case TriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip
	default:
		return gputypes.PrimitiveTopologyTriangleList
	}
}

// MarshalYAML encodes t by name.
func (t Topology) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML decodes a topology name.
func (t *Topology) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseTopology(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
