package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Faultbox/meshkit/internal/config"
	"github.com/Faultbox/meshkit/pkg/mesh"
	"github.com/Faultbox/meshkit/pkg/pipeline"
)

func cmdKey(cfg *config.Config, args []string) error {
	topology := cfg.Mesh.DefaultTopology
	if len(args) > 0 {
		t, err := mesh.ParseTopology(args[0])
		if err != nil {
			return err
		}
		topology = t
	}

	k := packKey(cfg, topology)
	fmt.Printf("%#018x\n%s\n", k.Bits(), k)
	return nil
}

func cmdDecode(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: meshtool decode <key>")
	}
	k, err := parseKey(args[0])
	if err != nil {
		return err
	}
	fmt.Println(k)
	return nil
}

// packKey combines a topology with the configured morph and feature bits.
// The config has already rejected feature bits in the reserved range.
func packKey(cfg *config.Config, topology mesh.Topology) pipeline.Key {
	k := pipeline.NewKey(topology, cfg.Mesh.MorphTargets)
	return k | pipeline.Key(cfg.Mesh.FeatureBits)
}

func parseKey(s string) (pipeline.Key, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid key %q: %w", s, err)
	}
	return pipeline.Key(v), nil
}
