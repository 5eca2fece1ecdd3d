package mesh

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"
)

func TestTopologyOrdinals(t *testing.T) {
	tests := []struct {
		topology Topology
		ordinal  uint8
		name     string
	}{
		{PointList, 0, "point-list"},
		{LineList, 1, "line-list"},
		{LineStrip, 2, "line-strip"},
		{TriangleList, 3, "triangle-list"},
		{TriangleStrip, 4, "triangle-strip"},
	}

	for _, tt := range tests {
		if uint8(tt.topology) != tt.ordinal {
			t.Errorf("%s ordinal = %d, want %d", tt.name, uint8(tt.topology), tt.ordinal)
		}
		if got := tt.topology.String(); got != tt.name {
			t.Errorf("Topology(%d).String() = %q, want %q", tt.ordinal, got, tt.name)
		}
		parsed, err := ParseTopology(tt.name)
		if err != nil {
			t.Errorf("ParseTopology(%q) error: %v", tt.name, err)
		}
		if parsed != tt.topology {
			t.Errorf("ParseTopology(%q) = %v, want %v", tt.name, parsed, tt.topology)
		}
	}
}

func TestParseTopologyUnknown(t *testing.T) {
	got, err := ParseTopology("quad-list")
	if !errors.Is(err, ErrUnknownTopology) {
		t.Errorf("ParseTopology() error = %v, want ErrUnknownTopology", err)
	}
	if got != DefaultTopology {
		t.Errorf("ParseTopology() = %v, want %v", got, DefaultTopology)
	}
}

func TestTopologyValid(t *testing.T) {
	for _, topo := range Topologies() {
		if !topo.Valid() {
			t.Errorf("%v.Valid() = false", topo)
		}
	}
	if Topology(5).Valid() {
		t.Error("Topology(5).Valid() = true")
	}
	if got := Topology(7).String(); got != "topology(7)" {
		t.Errorf("Topology(7).String() = %q", got)
	}
}

func TestTopologyGPU(t *testing.T) {
	tests := []struct {
		topology Topology
		want     gputypes.PrimitiveTopology
	}{
		{PointList, gputypes.PrimitiveTopologyPointList},
		{LineList, gputypes.PrimitiveTopologyLineList},
		{LineStrip, gputypes.PrimitiveTopologyLineStrip},
		{TriangleList, gputypes.PrimitiveTopologyTriangleList},
		{TriangleStrip, gputypes.PrimitiveTopologyTriangleStrip},
		{Topology(6), gputypes.PrimitiveTopologyTriangleList},
	}
	for _, tt := range tests {
		if got := tt.topology.GPU(); got != tt.want {
			t.Errorf("%v.GPU() = %v, want %v", tt.topology, got, tt.want)
		}
	}
}

func TestTopologyYAML(t *testing.T) {
	var doc struct {
		Topology Topology `yaml:"topology"`
	}
	if err := yaml.Unmarshal([]byte("topology: line-strip\n"), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal error: %v", err)
	}
	if doc.Topology != LineStrip {
		t.Errorf("decoded topology = %v, want %v", doc.Topology, LineStrip)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("yaml.Marshal error: %v", err)
	}
	if string(out) != "topology: line-strip\n" {
		t.Errorf("yaml.Marshal = %q", out)
	}

	if err := yaml.Unmarshal([]byte("topology: hexagons\n"), &doc); !errors.Is(err, ErrUnknownTopology) {
		t.Errorf("yaml.Unmarshal error = %v, want ErrUnknownTopology", err)
	}
}
