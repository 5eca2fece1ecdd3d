package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/meshkit/internal/config"
	"github.com/Faultbox/meshkit/pkg/mesh"
	"github.com/Faultbox/meshkit/pkg/pipeline"
	"github.com/Faultbox/meshkit/pkg/shapes"
)

func testDefs() []shapes.Def {
	return []shapes.Def{
		{Name: "path", Kind: shapes.KindPolyline, Points: [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}},
		{Kind: shapes.KindSegment, Points: [][3]float32{{0, 0, 0}, {0, 0, 1}}},
		{Name: "box", Kind: shapes.KindCuboid, HalfSize: [3]float32{1, 1, 1}},
		{Name: "broken", Kind: shapes.KindTriangle, Points: [][3]float32{{0, 0, 0}}},
	}
}

func TestBuildAll(t *testing.T) {
	cfg := config.Default()
	cfg.Mesh.MorphTargets = true
	cfg.Mesh.FeatureBits = 0x5

	sp := pipeline.NewSpecializer(nil)
	results := buildAll(cfg, sp, testDefs())

	if len(results) != 4 {
		t.Fatalf("len(results) = %d, want 4", len(results))
	}

	path := results[0]
	if path.Err != nil {
		t.Fatalf("path: %v", path.Err)
	}
	if path.Mesh.IndexCount() != 4 {
		t.Errorf("path indices = %d, want 4", path.Mesh.IndexCount())
	}
	if got := path.Descriptor.Key.Topology(); got != mesh.LineList {
		t.Errorf("path key topology = %v, want %v", got, mesh.LineList)
	}
	if !path.Descriptor.MorphTargets || path.Descriptor.Features != 0x5 {
		t.Errorf("path descriptor = %+v, want morph and features 0x5", path.Descriptor)
	}

	if results[1].Name != "segment-1" {
		t.Errorf("unnamed shape got name %q, want segment-1", results[1].Name)
	}
	// Both line shapes share one pipeline variant.
	if results[0].Descriptor != results[1].Descriptor {
		t.Error("line shapes should share a cached descriptor")
	}

	if got := results[2].Mesh.Topology; got != mesh.TriangleList {
		t.Errorf("box topology = %v, want %v", got, mesh.TriangleList)
	}

	if !errors.Is(results[3].Err, shapes.ErrPointCount) {
		t.Errorf("broken shape error = %v, want ErrPointCount", results[3].Err)
	}

	if n := sp.Len(); n != 2 {
		t.Errorf("specializer variants = %d, want 2", n)
	}
}

func TestWriteBuffers(t *testing.T) {
	cfg := config.Default()
	results := buildAll(cfg, pipeline.NewSpecializer(nil), testDefs()[:1])

	dir := filepath.Join(t.TempDir(), "buffers")
	if err := writeBuffers(dir, results[0]); err != nil {
		t.Fatalf("writeBuffers() error: %v", err)
	}

	vtx, err := os.ReadFile(filepath.Join(dir, "path.vtx"))
	if err != nil {
		t.Fatalf("failed to read vertex buffer: %v", err)
	}
	if len(vtx) != 3*12 {
		t.Errorf("vertex buffer = %d bytes, want 36", len(vtx))
	}
	idx, err := os.ReadFile(filepath.Join(dir, "path.idx"))
	if err != nil {
		t.Fatalf("failed to read index buffer: %v", err)
	}
	if len(idx) != 4*4 {
		t.Errorf("index buffer = %d bytes, want 16", len(idx))
	}
}

func TestBuildAllRejectsUnsafeNames(t *testing.T) {
	point := [][3]float32{{0, 0, 0}, {1, 0, 0}}
	defs := []shapes.Def{
		{Name: "../escape", Kind: shapes.KindSegment, Points: point},
		{Name: "nested/dir", Kind: shapes.KindSegment, Points: point},
		{Name: "..", Kind: shapes.KindSegment, Points: point},
		{Name: "edge", Kind: shapes.KindSegment, Points: point},
		{Name: "edge", Kind: shapes.KindPolyline, Points: point},
	}

	results := buildAll(config.Default(), pipeline.NewSpecializer(nil), defs)

	for _, r := range results[:3] {
		if !errors.Is(r.Err, errShapeName) {
			t.Errorf("%q: error = %v, want errShapeName", r.Name, r.Err)
		}
		if r.Mesh != nil {
			t.Errorf("%q: built a mesh for a rejected name", r.Name)
		}
	}
	if results[3].Err != nil {
		t.Errorf("first edge: unexpected error %v", results[3].Err)
	}
	if !errors.Is(results[4].Err, errDuplicateName) {
		t.Errorf("second edge: error = %v, want errDuplicateName", results[4].Err)
	}
}

func TestPackKey(t *testing.T) {
	cfg := config.Default()
	cfg.Mesh.FeatureBits = 0x5

	k := packKey(cfg, mesh.LineStrip)
	if k.Topology() != mesh.LineStrip {
		t.Errorf("Topology() = %v, want %v", k.Topology(), mesh.LineStrip)
	}
	if k.HasMorphTargets() {
		t.Error("morph bit set without morph_targets")
	}
	if k.FeatureBits() != 0x5 {
		t.Errorf("FeatureBits() = %#x, want 0x5", k.FeatureBits())
	}

	cfg.Mesh.MorphTargets = true
	if k := packKey(cfg, mesh.PointList); !k.HasMorphTargets() || k.Topology() != mesh.PointList {
		t.Errorf("packKey() with morph = %v", k)
	}
}

func TestParseKey(t *testing.T) {
	k, err := parseKey("0x2000000000000001")
	if err != nil {
		t.Fatalf("parseKey() error: %v", err)
	}
	if k.Topology() != mesh.LineStrip || k.FeatureBits() != 1 {
		t.Errorf("parseKey() = %v", k)
	}

	if _, err := parseKey("not-a-key"); err == nil {
		t.Error("expected error for invalid key")
	}
}
