// Package pipeline packs mesh properties into 64-bit render pipeline
// specialization keys and resolves keys into primitive and vertex state.
//
// Base mesh bits are allocated from the highest bit downward. Feature bits
// owned by downstream renderers are allocated from bit 0 upward, so both can
// share one Key without shifts or coordination:
//
//	bit  63     morph targets present
//	bits 60-62  topology ordinal
//	bits 0-59   downstream feature bits
package pipeline

import (
	"fmt"

	"github.com/Faultbox/meshkit/pkg/mesh"
)

// Key is a render pipeline specialization key.
type Key uint64

const (
	// MorphTargets marks meshes that carry morph targets.
	MorphTargets Key = 1 << 63

	// TopologyMaskBits covers every topology ordinal.
	TopologyMaskBits uint64 = 0b111

	// topologyFieldWidth is the number of set bits in TopologyMaskBits.
	topologyFieldWidth = 3

	// TopologyShiftBits places the topology field directly below MorphTargets.
	TopologyShiftBits = 64 - 1 - topologyFieldWidth

	// TopologyBits is the topology field in place.
	TopologyBits Key = Key(TopologyMaskBits << TopologyShiftBits)

	// ReservedBits are all bits owned by this package.
	ReservedBits = MorphTargets | TopologyBits

	// FeatureMask covers the bits left to downstream consumers.
	FeatureMask = ^ReservedBits
)

// FromTopology returns a key with only the topology field set.
func FromTopology(t mesh.Topology) Key {
	return Key((uint64(t) & TopologyMaskBits) << TopologyShiftBits)
}

// NewKey returns a key for the given topology and morph target presence.
func NewKey(t mesh.Topology, morph bool) Key {
	k := FromTopology(t)
	if morph {
		k |= MorphTargets
	}
	return k
}

// ForMesh returns the base key of a mesh.
func ForMesh(m *mesh.Mesh) Key {
	return FromTopology(m.Topology)
}

// Topology decodes the topology field. Bit patterns that match no defined
// topology decode to mesh.TriangleList.
func (k Key) Topology() mesh.Topology {
	bits := (uint64(k) >> TopologyShiftBits) & TopologyMaskBits
	switch bits {
	case uint64(mesh.PointList):
		return mesh.PointList
	case uint64(mesh.LineList):
		return mesh.LineList
	case uint64(mesh.LineStrip):
		return mesh.LineStrip
	case uint64(mesh.TriangleList):
		return mesh.TriangleList
	case uint64(mesh.TriangleStrip):
		return mesh.TriangleStrip
	default:
		return mesh.DefaultTopology
	}
}

// WithTopology returns k with its topology field replaced by t.
func (k Key) WithTopology(t mesh.Topology) Key {
	return k&^TopologyBits | FromTopology(t)
}

// HasMorphTargets reports whether the morph targets bit is set.
func (k Key) HasMorphTargets() bool {
	return k&MorphTargets != 0
}

// Contains reports whether every bit of other is set in k.
func (k Key) Contains(other Key) bool {
	return k&other == other
}

// Union returns k | other.
func (k Key) Union(other Key) Key {
	return k | other
}

// Without returns k with the bits of other cleared.
func (k Key) Without(other Key) Key {
	return k &^ other
}

// Bits returns the raw key.
func (k Key) Bits() uint64 {
	return uint64(k)
}

// FeatureBits returns the downstream-owned bits.
func (k Key) FeatureBits() uint64 {
	return uint64(k & FeatureMask)
}

// String renders the decoded fields.
func (k Key) String() string {
	return fmt.Sprintf("Key{topology=%s morph=%t features=%#x}", k.Topology(), k.HasMorphTargets(), k.FeatureBits())
}
