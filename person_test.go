package citemark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerson_NameFirst(t *testing.T) {
	tests := []struct {
		name     string
		person   Person
		expected string
	}{
		{
			name:     "family and given",
			person:   Person{Name: "Doe", GivenName: "Jane Pat"},
			expected: "Doe, J. P.",
		},
		{
			name:     "given already initials",
			person:   Person{Name: "Rowling", GivenName: "J. K."},
			expected: "Rowling, J. K.",
		},
		{
			name:     "prefix and suffix",
			person:   Person{Name: "Berg", GivenName: "Anna", Prefix: "van der", Suffix: "Jr."},
			expected: "van der Berg, A., Jr.",
		},
		{
			name:     "family only",
			person:   Person{Name: "Aristotle"},
			expected: "Aristotle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.person.NameFirst())
		})
	}
}

func TestPerson_InitialsFirst(t *testing.T) {
	tests := []struct {
		name     string
		person   Person
		expected string
	}{
		{
			name:     "family and given",
			person:   Person{Name: "Doe", GivenName: "Jane Pat"},
			expected: "J. P. Doe",
		},
		{
			name:     "prefix and suffix",
			person:   Person{Name: "Berg", GivenName: "Anna", Prefix: "van der", Suffix: "Jr."},
			expected: "A. van der Berg, Jr.",
		},
		{
			name:     "family only",
			person:   Person{Name: "Aristotle"},
			expected: "Aristotle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.person.InitialsFirst())
		})
	}
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "J. K.", Initials("Joanne Kathleen"))
	assert.Equal(t, "J. K.", Initials("J. K."))
	assert.Equal(t, "", Initials(""))
	assert.Equal(t, "É.", Initials("Émile"), "initials respect rune boundaries")
}

func TestNameLists(t *testing.T) {
	persons := []Person{
		{Name: "Doe", GivenName: "Jane"},
		{Name: "Smith", GivenName: "John"},
	}

	assert.Equal(t, []string{"Doe, J.", "Smith, J."}, NameList(persons))
	assert.Equal(t, []string{"J. Doe", "J. Smith"}, NameListStraight(persons))
	assert.Empty(t, NameList(nil))
}
