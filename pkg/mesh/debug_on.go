//go:build meshdebug

package mesh

import "fmt"

// checkDebug panics when a builder produced a mesh that breaks the buffer
// contract. Enabled with -tags meshdebug.
func checkDebug(m *Mesh) {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("mesh: invalid %s mesh: %v", m.Topology, err))
	}
}
