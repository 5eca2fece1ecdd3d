package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meshkit/internal/config"
	"github.com/Faultbox/meshkit/internal/logger"
	"github.com/Faultbox/meshkit/pkg/mesh"
	"github.com/Faultbox/meshkit/pkg/pipeline"
	"github.com/Faultbox/meshkit/pkg/shapes"
)

// buildResult is the outcome of meshing one shape definition.
type buildResult struct {
	Name       string
	Kind       shapes.Kind
	Mesh       *mesh.Mesh
	Descriptor *pipeline.Descriptor
	Err        error
}

func cmdBuild(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: meshtool build <shapes.yaml>")
	}

	defs, err := shapes.LoadDefs(args[0])
	if err != nil {
		return err
	}

	start := time.Now()
	sp := pipeline.NewSpecializer(logger.Named("pipeline"))
	results := buildAll(cfg, sp, defs)

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Error("shape failed", zap.String("shape", r.Name), zap.Error(r.Err))
			continue
		}

		logger.Info("shape built",
			zap.String("shape", r.Name),
			zap.String("kind", string(r.Kind)),
			zap.Stringer("topology", r.Mesh.Topology),
			zap.Int("vertices", r.Mesh.VertexCount()),
			zap.Int("indices", r.Mesh.IndexCount()),
			zap.Int("primitives", r.Mesh.PrimitiveCount()),
		)
		fmt.Printf("%-16s %-9s %-14s v=%-5d i=%-5d key=%#018x\n",
			r.Name, r.Kind, r.Mesh.Topology, r.Mesh.VertexCount(), r.Mesh.IndexCount(), r.Descriptor.Key.Bits())

		if cfg.Output.WriteBuffers {
			if err := writeBuffers(cfg.Output.Dir, r); err != nil {
				return err
			}
		}
	}

	hits, misses := sp.Stats()
	logger.Info("build finished",
		zap.Int("shapes", len(results)),
		zap.Int("failed", failed),
		zap.Uint64("pipeline_variants", misses),
		zap.Uint64("pipeline_reuses", hits),
		zap.Duration("elapsed", time.Since(start)),
	)

	if failed > 0 {
		return fmt.Errorf("%d of %d shapes failed", failed, len(results))
	}
	return nil
}

var (
	errShapeName     = errors.New("shape name must be a plain file name")
	errDuplicateName = errors.New("duplicate shape name")
)

// buildAll meshes every definition concurrently. Results keep definition order.
// Names become buffer file names, so they are checked up front.
func buildAll(cfg *config.Config, sp *pipeline.Specializer, defs []shapes.Def) []buildResult {
	extra := pipeline.Key(cfg.Mesh.FeatureBits)
	if cfg.Mesh.MorphTargets {
		extra |= pipeline.MorphTargets
	}

	results := make([]buildResult, len(defs))
	seen := make(map[string]int, len(defs))
	var wg sync.WaitGroup
	for i, def := range defs {
		name := shapeName(i, def)
		if err := checkName(name); err != nil {
			results[i] = buildResult{Name: name, Kind: def.Kind, Err: err}
			continue
		}
		if first, ok := seen[name]; ok {
			results[i] = buildResult{Name: name, Kind: def.Kind,
				Err: fmt.Errorf("%w: %q also used by shape %d", errDuplicateName, name, first)}
			continue
		}
		seen[name] = i

		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = buildOne(cfg, sp, extra, name, def)
		}()
	}
	wg.Wait()
	return results
}

func shapeName(i int, def shapes.Def) string {
	if def.Name == "" {
		return fmt.Sprintf("%s-%d", def.Kind, i)
	}
	return def.Name
}

func checkName(name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", errShapeName, name)
	}
	return nil
}

func buildOne(cfg *config.Config, sp *pipeline.Specializer, extra pipeline.Key, name string, def shapes.Def) buildResult {
	r := buildResult{Name: name, Kind: def.Kind}

	shape, err := def.Shape()
	if err != nil {
		r.Err = err
		return r
	}

	m := mesh.FromMeshable(shape)
	if cfg.Mesh.Validate {
		if err := m.Validate(); err != nil {
			r.Err = fmt.Errorf("%s: %w", r.Name, err)
			return r
		}
	}

	r.Mesh = m
	r.Descriptor = sp.SpecializeMesh(m, extra)
	return r
}

func writeBuffers(dir string, r buildResult) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	vtxPath := filepath.Join(dir, r.Name+".vtx")
	if err := os.WriteFile(vtxPath, r.Mesh.VertexBytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", vtxPath, err)
	}
	idxPath := filepath.Join(dir, r.Name+".idx")
	if err := os.WriteFile(idxPath, r.Mesh.IndexBytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", idxPath, err)
	}

	logger.Debug("buffers written",
		zap.String("shape", r.Name),
		zap.String("vertex_file", vtxPath),
		zap.Uint64("stride", r.Descriptor.Vertex.ArrayStride),
	)
	return nil
}
