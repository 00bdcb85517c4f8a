package style

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
)

// assertRendered compares a rendered reference against its expected text
// and reports mismatches as a unified diff, which reads better than one
// long escaped string pair.
func assertRendered(t *testing.T, expected, actual string) {
	t.Helper()
	if expected == actual {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		t.Fatalf("failed to diff rendered reference: %v", err)
	}
	t.Errorf("rendered reference mismatch:\n%s", diff)
}

func TestByName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		found bool
	}{
		{name: "ieee", input: "ieee", found: true},
		{name: "ieee uppercase", input: "IEEE", found: true},
		{name: "author-date", input: "author-date", found: true},
		{name: "authordate alias", input: "authordate", found: true},
		{name: "unknown", input: "vancouver", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := ByName(tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.found, f != nil)
		})
	}
}

func TestNames(t *testing.T) {
	for _, name := range Names() {
		_, ok := ByName(name)
		assert.True(t, ok, "listed style %q must resolve", name)
	}
}
