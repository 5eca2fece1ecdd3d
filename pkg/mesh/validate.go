package mesh

import (
	"errors"
	"fmt"
)

// Mesh contract errors.
var (
	// ErrUnknownTopology is returned when parsing an unrecognized topology name.
	ErrUnknownTopology = errors.New("mesh: unknown topology")

	// ErrAttributeLength is returned when vertex attribute arrays disagree in length.
	ErrAttributeLength = errors.New("mesh: attribute length mismatch")

	// ErrIndexOutOfRange is returned when an index references a missing vertex.
	ErrIndexOutOfRange = errors.New("mesh: index out of range")

	// ErrIndexCount is returned when the index count does not fit the topology.
	ErrIndexCount = errors.New("mesh: index count does not match topology")
)

// Validate checks the buffer invariants that builders leave to their callers:
// attribute arrays agree in length, every index references an existing vertex,
// and list topologies hold whole primitives.
//
// Builders never call this in release builds; it is for tools and tests.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if m.Normals != nil && len(m.Normals) != n {
		return fmt.Errorf("%w: %d normals for %d positions", ErrAttributeLength, len(m.Normals), n)
	}
	if m.UVs != nil && len(m.UVs) != n {
		return fmt.Errorf("%w: %d uvs for %d positions", ErrAttributeLength, len(m.UVs), n)
	}
	if m.Topology.IsLine() && (m.Normals != nil || m.UVs != nil) {
		return fmt.Errorf("%w: %s mesh carries surface attributes", ErrAttributeLength, m.Topology)
	}

	switch m.Topology {
	case LineList:
		if len(m.Indices)%2 != 0 {
			return fmt.Errorf("%w: %d indices for %s", ErrIndexCount, len(m.Indices), m.Topology)
		}
	case TriangleList:
		if len(m.Indices)%3 != 0 {
			return fmt.Errorf("%w: %d indices for %s", ErrIndexCount, len(m.Indices), m.Topology)
		}
	}

	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d at %d, %d vertices", ErrIndexOutOfRange, idx, i, n)
		}
	}
	return nil
}
