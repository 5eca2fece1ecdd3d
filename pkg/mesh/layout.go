package mesh

import (
	"encoding/binary"
	stdmath "math"

	"github.com/gogpu/gputypes"
)

// Attribute identifies a vertex attribute and its shader location.
type Attribute struct {
	Name     string
	Format   gputypes.VertexFormat
	Location uint32
}

// Standard vertex attributes, in interleaving order.
var (
	AttributePosition = Attribute{Name: "position", Format: gputypes.VertexFormatFloat32x3, Location: 0}
	AttributeNormal   = Attribute{Name: "normal", Format: gputypes.VertexFormatFloat32x3, Location: 1}
	AttributeUV       = Attribute{Name: "uv", Format: gputypes.VertexFormatFloat32x2, Location: 2}
)

// IndexFormat is the index element format of every mesh.
const IndexFormat = gputypes.IndexFormatUint32

// Layout describes which attributes a mesh carries. It is comparable and
// usable as a map key.
type Layout struct {
	Normals bool
	UVs     bool
}

// Layout returns the attribute layout of the mesh.
func (m *Mesh) Layout() Layout {
	return Layout{Normals: m.HasNormals(), UVs: m.HasUVs()}
}

// Attributes returns the attributes present in the layout, in interleaving order.
func (l Layout) Attributes() []Attribute {
	attrs := []Attribute{AttributePosition}
	if l.Normals {
		attrs = append(attrs, AttributeNormal)
	}
	if l.UVs {
		attrs = append(attrs, AttributeUV)
	}
	return attrs
}

// Stride returns the byte size of one interleaved vertex.
func (l Layout) Stride() uint64 {
	var stride uint64
	for _, a := range l.Attributes() {
		stride += a.Format.Size()
	}
	return stride
}

// VertexBufferLayout returns the interleaved GPU vertex buffer layout.
func (l Layout) VertexBufferLayout() gputypes.VertexBufferLayout {
	attrs := l.Attributes()
	out := make([]gputypes.VertexAttribute, 0, len(attrs))
	var offset uint64
	for _, a := range attrs {
		out = append(out, gputypes.VertexAttribute{
			Format:         a.Format,
			Offset:         offset,
			ShaderLocation: a.Location,
		})
		offset += a.Format.Size()
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: offset,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  out,
	}
}

// VertexBytes packs the vertices interleaved per Layout as little-endian float32.
// Attribute arrays must agree in length (see Validate).
func (m *Mesh) VertexBytes() []byte {
	layout := m.Layout()
	buf := make([]byte, 0, uint64(len(m.Positions))*layout.Stride())
	for i, p := range m.Positions {
		buf = appendFloats(buf, p.X, p.Y, p.Z)
		if layout.Normals {
			n := m.Normals[i]
			buf = appendFloats(buf, n.X, n.Y, n.Z)
		}
		if layout.UVs {
			uv := m.UVs[i]
			buf = appendFloats(buf, uv.X, uv.Y)
		}
	}
	return buf
}

// IndexBytes packs the indices as little-endian uint32.
func (m *Mesh) IndexBytes() []byte {
	buf := make([]byte, 0, len(m.Indices)*4)
	for _, idx := range m.Indices {
		buf = binary.LittleEndian.AppendUint32(buf, idx)
	}
	return buf
}

func appendFloats(buf []byte, vs ...float32) []byte {
	for _, v := range vs {
		buf = binary.LittleEndian.AppendUint32(buf, stdmath.Float32bits(v))
	}
	return buf
}
