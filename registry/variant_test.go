package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethz-asl/variant/errors"
)

func TestVariant_Builtin(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		identifier string
		want       any
	}{
		{"bool", false},
		{"int32", int32(0)},
		{"uint8", uint8(0)},
		{"float64", float64(0)},
		{"string", ""},
		{"time", time.Time{}},
		{"duration", time.Duration(0)},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			v, err := r.NewVariant(tt.identifier)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Value())
			assert.Equal(t, tt.identifier, v.TypeIdentifier())
			assert.False(t, v.IsEmpty())
		})
	}
}

func TestVariant_Compound(t *testing.T) {
	r := NewRegistry()

	point := NewCompound("geometry_msgs/Point")
	require.NoError(t, point.AddMember(Member{Name: "x", Type: "float64"}))
	require.NoError(t, point.AddMember(Member{Name: "y", Type: "float64"}))
	require.NoError(t, r.Register(point))

	quat := NewCompound("geometry_msgs/Quaternion")
	require.NoError(t, quat.AddMember(Member{Name: "w", Type: "float64"}))
	require.NoError(t, r.Register(quat))

	pose := NewCompound("geometry_msgs/Pose")
	require.NoError(t, pose.AddMember(Member{Name: "position", Type: "geometry_msgs/Point"}))
	require.NoError(t, pose.AddMember(Member{Name: "orientation", Type: "geometry_msgs/Quaternion"}))
	require.NoError(t, pose.AddMember(Member{Name: "ids", Type: "int32", Array: true, Size: 3}))
	require.NoError(t, r.Register(pose))

	v, err := r.NewVariant("geometry_msgs/Pose")
	require.NoError(t, err)

	position, err := v.Field("position")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": float64(0), "y": float64(0)}, position)

	ids, err := v.Field("ids")
	require.NoError(t, err)
	assert.Equal(t, []any{int32(0), int32(0), int32(0)}, ids)

	_, err = v.Field("missing")
	assert.True(t, errors.Is(err, errors.ErrNoSuchMember))
}

func TestVariant_Set(t *testing.T) {
	r := NewRegistry()

	v, err := r.NewVariant("int32")
	require.NoError(t, err)

	require.NoError(t, v.Set(int32(42)))
	assert.Equal(t, int32(42), v.Value())

	err = v.Set("not an int32")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDataTypeMismatch))
	assert.Equal(t, int32(42), v.Value())
}

func TestVariant_SetField(t *testing.T) {
	r := NewRegistry()

	point := NewCompound("geometry_msgs/Point")
	require.NoError(t, point.AddMember(Member{Name: "x", Type: "float64"}))
	require.NoError(t, r.Register(point))

	v, err := r.NewVariant("geometry_msgs/Point")
	require.NoError(t, err)

	require.NoError(t, v.SetField("x", float64(1.5)))
	x, err := v.Field("x")
	require.NoError(t, err)
	assert.Equal(t, float64(1.5), x)

	err = v.SetField("x", "wrong")
	assert.True(t, errors.Is(err, errors.ErrDataTypeMismatch))

	err = v.SetField("missing", float64(0))
	assert.True(t, errors.Is(err, errors.ErrNoSuchMember))
}

func TestVariant_Empty(t *testing.T) {
	var v Variant
	assert.True(t, v.IsEmpty())
	assert.Equal(t, "", v.TypeIdentifier())
	assert.Equal(t, "<empty>", v.String())

	err := v.Set(1)
	assert.True(t, errors.Is(err, errors.ErrInvalidDataType))
}

func TestDescriptor_NewVariantUnregistered(t *testing.T) {
	d := NewCompound("pkg/Unregistered")
	_, err := d.NewVariant()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidOperation))
}
