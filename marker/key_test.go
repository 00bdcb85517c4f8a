package marker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citemark/citemark"
)

func testDatabase(keys ...string) *citemark.Database {
	db := citemark.NewDatabase()
	for _, k := range keys {
		db.Add(&citemark.Entry{Key: k, Title: k})
	}
	return db
}

func TestKey_Reference(t *testing.T) {
	db := testDatabase("a", "b", "c")

	tests := []struct {
		name      string
		citations []citemark.AtomicCitation
		expected  string
	}{
		{
			name:      "no citations",
			citations: nil,
			expected:  "",
		},
		{
			name: "single key",
			citations: []citemark.AtomicCitation{
				{Key: "a"},
			},
			expected: "a",
		},
		{
			name: "supplement in parentheses",
			citations: []citemark.AtomicCitation{
				{Key: "a"},
				{Key: "b", Supplement: "p. 3"},
			},
			expected: "a, b (p. 3)",
		},
		{
			name: "caller order preserved, never sorted",
			citations: []citemark.AtomicCitation{
				{Key: "c"},
				{Key: "a"},
				{Key: "b"},
			},
			expected: "c, a, b",
		},
		{
			name: "numbers ignored",
			citations: []citemark.AtomicCitation{
				{Key: "b", Number: 7},
				{Key: "a", Number: 1},
			},
			expected: "b, a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewKey(db).Reference(tt.citations)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestKey_Reference_KeyNotFound(t *testing.T) {
	db := testDatabase("a", "b")

	out, err := NewKey(db).Reference([]citemark.AtomicCitation{
		{Key: "a"},
		{Key: "ghost"},
		{Key: "phantom"},
	})

	assert.Empty(t, out, "no partial marker on failure")

	var knf *citemark.KeyNotFoundError
	require.ErrorAs(t, err, &knf)
	assert.Equal(t, "ghost", knf.Key, "first absent key in input order")
}
