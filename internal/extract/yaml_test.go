package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "flat map",
			input: "a: '1'\nb: '2'\n",
			want:  []string{"a", "b"},
		},
		{
			name: "nested map",
			input: `a:
  b: value
  c:
    d: deep
`,
			want: []string{"a.b", "a.c.d"},
		},
		{
			name:  "numeric leaf",
			input: "port: 8080\n",
			want:  []string{"port"},
		},
		{
			name:  "empty document",
			input: "",
			want:  nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseYAML([]byte(tc.input))
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.want, got.Sorted())
		})
	}
}

func TestParseYAMLInvalid(t *testing.T) {
	_, err := ParseYAML([]byte(":\n  - ]["))
	assert.Error(t, err)
}
