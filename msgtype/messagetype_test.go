package msgtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethz-asl/variant/registry"
)

func TestMessageType_IsValid(t *testing.T) {
	tests := []struct {
		name       string
		dataType   string
		signature  string
		definition string
		want       bool
	}{
		{"wildcard signature", "pkg/Type", "*", "field1", true},
		{"32 hex signature", "pkg/Type", "d41d8cd98f00b204e9800998ecf8427e", "field1", true},
		{"empty signature", "pkg/Type", "", "field1", false},
		{"short signature", "pkg/Type", "abc", "field1", false},
		{"long signature", "pkg/Type", "d41d8cd98f00b204e9800998ecf8427e0", "field1", false},
		{"uppercase signature", "pkg/Type", "D41D8CD98F00B204E9800998ECF8427E", "field1", false},
		{"empty data type", "", "*", "field1", false},
		{"empty definition", "pkg/Type", "*", "", false},
		{"all empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt := New(tt.dataType, tt.signature, tt.definition)
			assert.Equal(t, tt.want, mt.IsValid())
		})
	}
}

func TestMessageType_Equal(t *testing.T) {
	a := New("pkg/Type", "*", "float64 x\n")
	b := New("pkg/Type", "*", "completely different definition")
	c := New("pkg/Type", "d41d8cd98f00b204e9800998ecf8427e", "float64 x\n")
	d := New("pkg/Other", "*", "float64 x\n")

	// Definition text is excluded from equality.
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	// Differing signature or data type breaks equality.
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestMessageType_Clear(t *testing.T) {
	mt := New("pkg/Type", "d41d8cd98f00b204e9800998ecf8427e", "float64 x\n")
	require.True(t, mt.IsValid())

	mt.Clear()

	assert.False(t, mt.IsValid())
	assert.Equal(t, "", mt.DataType())
	assert.Equal(t, registry.SignatureWildcard, mt.Signature())
	assert.Equal(t, "", mt.Definition())
}

func TestMessageType_ZeroValueInvalid(t *testing.T) {
	var mt MessageType
	assert.False(t, mt.IsValid())
}

func TestMessageType_String(t *testing.T) {
	mt := New("pkg/Type", "*", "float64 x\n")
	// The rendering is the data type alone, never signature or definition.
	assert.Equal(t, "pkg/Type", mt.String())
}

func TestMessageType_FromDescriptor(t *testing.T) {
	r := registry.NewRegistry()

	point := registry.NewCompound("geometry_msgs/Point")
	require.NoError(t, point.AddMember(registry.Member{Name: "x", Type: "float64"}))
	require.NoError(t, point.AddMember(registry.Member{Name: "y", Type: "float64"}))
	require.NoError(t, r.Register(point))

	mt := FromDescriptor(point)

	assert.Equal(t, "geometry_msgs/Point", mt.DataType())
	assert.Equal(t, point.Signature(), mt.Signature())
	assert.Equal(t, point.Definition(), mt.Definition())
	assert.True(t, mt.IsValid())
}

func TestMessageType_Setters(t *testing.T) {
	var mt MessageType
	mt.SetDataType("pkg/Type")
	mt.SetSignature("*")
	mt.SetDefinition("float64 x\n")

	assert.True(t, mt.IsValid())
	assert.Equal(t, "pkg/Type", mt.DataType())
}
