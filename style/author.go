package style

import (
	"strconv"

	"github.com/citemark/citemark"
)

// repeatedAuthors stands in for an author list identical to the previous
// entry's, as author-date reference lists conventionally print it.
const repeatedAuthors = "———"

// AuthorDate implements [citemark.BibliographyFormatter] author-date
// style: family-name-first authors, the year in parentheses after the
// author list, an italic title, then publication details. When an
// entry's author list matches the previous entry's exactly, the list is
// printed as three em dashes.
type AuthorDate struct{}

// NewAuthorDate creates an AuthorDate formatter.
func NewAuthorDate() *AuthorDate {
	return &AuthorDate{}
}

// Reference builds the reference-list text for entry. prev is the entry
// directly above it in the reference list, used for author suppression.
func (s *AuthorDate) Reference(entry *citemark.Entry, prev *citemark.Entry) *citemark.RichText {
	r := citemark.NewRichText()

	names := joinNames(citemark.NameList(entry.Authors))
	if names != "" && prev != nil && sameAuthors(entry.Authors, prev.Authors) {
		names = repeatedAuthors
	}

	if names != "" {
		r.Append(names)
		if entry.Date != nil {
			r.Append(" (").Append(strconv.Itoa(entry.Date.Year)).Append(")")
		}
		r.Append(". ")
	}

	italic(r, entry.Title)
	r.Append(".")

	if names == "" && entry.Date != nil {
		r.Append(" (").Append(strconv.Itoa(entry.Date.Year)).Append(").")
	}

	r.AppendOptional(entry.Container, " ", ".")
	r.AppendOptional(entry.Publisher, " ", ".")

	if entry.URL != "" {
		r.Append(" Retrieved from ")
		noHyphenation(r, entry.URL)
	}

	return r
}

func sameAuthors(a, b []citemark.Person) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
