package style

import (
	"strings"

	"github.com/citemark/citemark"
)

// ByName returns the formatter registered under name ("ieee" or
// "author-date"), or false when the name is unknown. Matching is
// case-insensitive.
func ByName(name string) (citemark.BibliographyFormatter, bool) {
	switch strings.ToLower(name) {
	case "ieee":
		return NewIEEE(), true
	case "author-date", "authordate":
		return NewAuthorDate(), true
	default:
		return nil, false
	}
}

// Names lists the registered style names.
func Names() []string {
	return []string{"ieee", "author-date"}
}
