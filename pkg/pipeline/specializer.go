package pipeline

import (
	"sync"
	"sync/atomic"

	"github.com/Faultbox/meshkit/pkg/mesh"
	"github.com/gogpu/gputypes"
	"go.uber.org/zap"
)

// Descriptor is the pipeline state selected by a key for a vertex layout.
// Descriptors returned by a Specializer are shared and must not be modified.
type Descriptor struct {
	Key          Key
	Layout       mesh.Layout
	Primitive    gputypes.PrimitiveState
	Vertex       gputypes.VertexBufferLayout
	MorphTargets bool
	// Features are the downstream bits of Key, passed through untouched.
	Features uint64
}

// Describe derives the descriptor for key and layout without caching.
func Describe(key Key, layout mesh.Layout) *Descriptor {
	topology := key.Topology()

	primitive := gputypes.PrimitiveState{
		Topology:  topology.GPU(),
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeNone,
	}
	if topology == mesh.TriangleList || topology == mesh.TriangleStrip {
		primitive.CullMode = gputypes.CullModeBack
	}
	if topology.IsStrip() {
		format := mesh.IndexFormat
		primitive.StripIndexFormat = &format
	}

	return &Descriptor{
		Key:          key,
		Layout:       layout,
		Primitive:    primitive,
		Vertex:       layout.VertexBufferLayout(),
		MorphTargets: key.HasMorphTargets(),
		Features:     key.FeatureBits(),
	}
}

type cacheKey struct {
	key    Key
	layout mesh.Layout
}

// Specializer caches descriptors per key and vertex layout.
//
// Specializer is safe for concurrent use. Lookups take a read lock; misses
// take the write lock and check again before inserting.
type Specializer struct {
	mu    sync.RWMutex
	cache map[cacheKey]*Descriptor

	hits   atomic.Uint64
	misses atomic.Uint64

	log *zap.Logger
}

// NewSpecializer returns an empty cache. A nil logger disables logging.
func NewSpecializer(log *zap.Logger) *Specializer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Specializer{
		cache: make(map[cacheKey]*Descriptor),
		log:   log,
	}
}

// Specialize returns the descriptor for key and layout, deriving it on first use.
func (s *Specializer) Specialize(key Key, layout mesh.Layout) *Descriptor {
	ck := cacheKey{key: key, layout: layout}

	s.mu.RLock()
	if d, ok := s.cache[ck]; ok {
		s.mu.RUnlock()
		s.hits.Add(1)
		return d
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.cache[ck]; ok {
		s.hits.Add(1)
		return d
	}

	d := Describe(key, layout)
	s.cache[ck] = d
	s.misses.Add(1)

	s.log.Debug("pipeline specialized",
		zap.Stringer("key", key),
		zap.Stringer("topology", d.Primitive.Topology),
		zap.Uint64("stride", d.Vertex.ArrayStride),
	)
	return d
}

// SpecializeMesh specializes for a mesh, adding extra key bits such as
// downstream features or MorphTargets. Topology bits in extra are ignored.
func (s *Specializer) SpecializeMesh(m *mesh.Mesh, extra Key) *Descriptor {
	return s.Specialize(ForMesh(m).Union(extra.Without(TopologyBits)), m.Layout())
}

// Stats returns cache hit and miss counts.
func (s *Specializer) Stats() (hits, misses uint64) {
	return s.hits.Load(), s.misses.Load()
}

// Len returns the number of cached descriptors.
func (s *Specializer) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

// Reset drops all cached descriptors and statistics.
func (s *Specializer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[cacheKey]*Descriptor)
	s.hits.Store(0)
	s.misses.Store(0)
}
