package msgdef

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethz-asl/variant/errors"
	"github.com/ethz-asl/variant/registry"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		want  registry.Member
		match bool
	}{
		{
			name:  "plain builtin",
			line:  "float64 x",
			want:  registry.Member{Name: "x", Type: "float64"},
			match: true,
		},
		{
			name:  "plain qualified",
			line:  "geometry_msgs/Point position",
			want:  registry.Member{Name: "position", Type: "geometry_msgs/Point"},
			match: true,
		},
		{
			name:  "variable length array",
			line:  "int32[] values",
			want:  registry.Member{Name: "values", Type: "int32", Array: true},
			match: true,
		},
		{
			name:  "fixed length array",
			line:  "float64[36] covariance",
			want:  registry.Member{Name: "covariance", Type: "float64", Array: true, Size: 36},
			match: true,
		},
		{
			name:  "qualified array",
			line:  "geometry_msgs/Point[4] corners",
			want:  registry.Member{Name: "corners", Type: "geometry_msgs/Point", Array: true, Size: 4},
			match: true,
		},
		{
			name:  "leading whitespace",
			line:  "   uint8 level",
			want:  registry.Member{Name: "level", Type: "uint8"},
			match: true,
		},
		{
			name:  "constant",
			line:  "int32 MAX_RETRIES=5",
			want:  registry.Member{Name: "MAX_RETRIES", Type: "int32"},
			match: true,
		},
		{
			name:  "trailing comment",
			line:  "float64 x # position in meters",
			want:  registry.Member{Name: "x", Type: "float64"},
			match: true,
		},
		{name: "blank", line: "", match: false},
		{name: "whitespace only", line: "   \t ", match: false},
		{name: "comment only", line: "# a comment line", match: false},
		{name: "type without member", line: "float64", match: false},
		{name: "separator banner", line: "================================================================================", match: false},
		{name: "msg banner", line: "MSG: geometry_msgs/Point", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			require.Equal(t, tt.match, ok)
			if tt.match {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseLine_ArrayFormWinsOverPlain(t *testing.T) {
	// The array shape is tried first; a line matching it must never be
	// reported as a plain member.
	m, ok := ParseLine("uint8[] data")
	require.True(t, ok)
	assert.True(t, m.Array)
	assert.Equal(t, "uint8", m.Type)
	assert.Equal(t, "data", m.Name)
}

func TestParseDefinition(t *testing.T) {
	text := `# A pose in free space.
geometry_msgs/Point position
geometry_msgs/Quaternion orientation

float64[36] covariance
`

	members, err := ParseDefinition(text)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "position", members[0].Name)
	assert.Equal(t, "orientation", members[1].Name)
	assert.Equal(t, "covariance", members[2].Name)
	assert.Equal(t, 36, members[2].Size)
}

func TestParseDefinition_Empty(t *testing.T) {
	members, err := ParseDefinition("")
	require.NoError(t, err)
	assert.Empty(t, members)

	members, err = ParseDefinition("# only comments\n# here\n")
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestParseDefinition_OversizedLine(t *testing.T) {
	// A line longer than the scanner's token limit must surface an
	// error instead of silently dropping the rest of the text.
	text := "int32 before\n# " + strings.Repeat("x", bufio.MaxScanTokenSize+1) +
		"\nint32 after\n"

	_, err := ParseDefinition(text)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDefinitionParseFailed))
}
