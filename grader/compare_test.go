package grader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonMatch(t *testing.T) {
	for _, tt := range []struct {
		name string
		mode Comparison
		got  string
		want string
		ok   bool
	}{
		{"included finds substring", ComparisonIncluded, "x\nhello world\n", "hello", true},
		{"included misses", ComparisonIncluded, "goodbye\n", "hello", false},
		{"exact matches whole output", ComparisonExact, "\nolleh\n", "\nolleh\n", true},
		{"exact keeps trailing newline significant", ComparisonExact, "olleh\n", "olleh", false},
		{"exact keeps leading whitespace significant", ComparisonExact, " olleh", "olleh", false},
		{"regex anchors", ComparisonRegex, "olleh\n", "^olleh\n$", true},
		{"regex rejects", ComparisonRegex, "hello\n", "^olleh", false},
		{"regex lookahead", ComparisonRegex, "points: 12", `^(?=.*\d)points`, true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := tt.mode.Match(tt.got, tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestComparisonMatchErrors(t *testing.T) {
	_, err := ComparisonRegex.Match("anything", "(unclosed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad output pattern")

	_, err = Comparison("fuzzy").Match("a", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown comparison")
}
