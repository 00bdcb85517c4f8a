package bib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citemark/citemark"
)

const sampleBibliography = `
rowling:
  type: book
  title: Harry Potter and the Order of the Phoenix
  author: Rowling, J. K.
  date: 2003-06-21
  publisher: Bloomsbury

doe99:
  type: article
  title: On Things
  author: ["Doe, Jane", "Smith, John"]
  date: 1999
  container: Nature
  volume: 4
  issue: 2
  pages: 7-16

plato:
  title: The Republic
`

func TestParse(t *testing.T) {
	db, err := Parse([]byte(sampleBibliography))
	require.NoError(t, err)

	assert.Equal(t, 3, db.Len())
	assert.Equal(t, []string{"rowling", "doe99", "plato"}, db.Keys(),
		"document order preserved")

	rowling, ok := db.Get("rowling")
	require.True(t, ok)
	assert.Equal(t, "book", rowling.Kind)
	assert.Equal(t, "Harry Potter and the Order of the Phoenix", rowling.Title)
	assert.Equal(t, "Bloomsbury", rowling.Publisher)
	require.NotNil(t, rowling.Date)
	assert.Equal(t, citemark.Date{Year: 2003, Month: 6, Day: 21}, *rowling.Date)
	require.Len(t, rowling.Authors, 1)
	assert.Equal(t, citemark.Person{Name: "Rowling", GivenName: "J. K."}, rowling.Authors[0])

	doe, ok := db.Get("doe99")
	require.True(t, ok)
	assert.Equal(t, "Nature", doe.Container)
	assert.Equal(t, "4", doe.Volume)
	assert.Equal(t, "2", doe.Issue)
	assert.Equal(t, "7-16", doe.Pages)
	require.NotNil(t, doe.Date)
	assert.Equal(t, 1999, doe.Date.Year)
	assert.Equal(t, []citemark.Person{
		{Name: "Doe", GivenName: "Jane"},
		{Name: "Smith", GivenName: "John"},
	}, doe.Authors)

	plato, ok := db.Get("plato")
	require.True(t, ok)
	assert.Nil(t, plato.Date)
	assert.Empty(t, plato.Authors)
}

func TestParse_Empty(t *testing.T) {
	db, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, db.Len())
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name: "missing title",
			input: `
doe99:
  author: Doe, Jane
`,
		},
		{
			name: "unknown field",
			input: `
doe99:
  title: On Things
  colour: blue
`,
		},
		{
			name: "author is a mapping",
			input: `
doe99:
  title: On Things
  author:
    family: Doe
`,
		},
		{
			name:  "top level is a list",
			input: "- doe99\n- smith04\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("doe99: [unclosed"))
	require.Error(t, err)

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr),
		"a syntax error is not a validation error")
}

func TestParse_InvalidDate(t *testing.T) {
	_, err := Parse([]byte("doe99:\n  title: On Things\n  date: someday\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doe99")
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *citemark.Date
		wantErr  bool
	}{
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "year only",
			input:    "2003",
			expected: &citemark.Date{Year: 2003},
		},
		{
			name:     "year and month",
			input:    "2003-06",
			expected: &citemark.Date{Year: 2003, Month: 6},
		},
		{
			name:     "full date",
			input:    "2003-06-21",
			expected: &citemark.Date{Year: 2003, Month: 6, Day: 21},
		},
		{
			name:    "not a date",
			input:   "june 2003",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParsePerson(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected citemark.Person
	}{
		{
			name:     "comma form",
			input:    "Doe, Jane",
			expected: citemark.Person{Name: "Doe", GivenName: "Jane"},
		},
		{
			name:     "comma form with suffix",
			input:    "Doe, Jane, Jr.",
			expected: citemark.Person{Name: "Doe", GivenName: "Jane", Suffix: "Jr."},
		},
		{
			name:     "comma form with particles",
			input:    "van der Berg, Anna",
			expected: citemark.Person{Name: "Berg", GivenName: "Anna", Prefix: "van der"},
		},
		{
			name:     "plain form",
			input:    "Jane Doe",
			expected: citemark.Person{Name: "Doe", GivenName: "Jane"},
		},
		{
			name:     "plain form with particle",
			input:    "Ludwig van Beethoven",
			expected: citemark.Person{Name: "Beethoven", GivenName: "Ludwig", Prefix: "van"},
		},
		{
			name:     "single name",
			input:    "Aristotle",
			expected: citemark.Person{Name: "Aristotle"},
		},
		{
			name:     "empty",
			input:    "",
			expected: citemark.Person{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePerson(tt.input))
		})
	}
}
