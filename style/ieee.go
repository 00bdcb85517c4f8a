package style

import (
	"strconv"
	"strings"

	"github.com/citemark/citemark"
)

// IEEE implements [citemark.BibliographyFormatter] in the numeric IEEE
// manner.
//
// Entries with a container render as articles ("quoted title" in an
// italic container with volume, issue, and pages); entries without one
// render as books (italic title, edition, publisher). A URL is appended
// as an "[Online]" availability note wrapped in a no-hyphenation span.
// IEEE reference lists are keyed by number, so prev is ignored.
type IEEE struct{}

// NewIEEE creates an IEEE formatter.
func NewIEEE() *IEEE {
	return &IEEE{}
}

// Reference builds the reference-list text for entry.
func (s *IEEE) Reference(entry *citemark.Entry, _ *citemark.Entry) *citemark.RichText {
	r := citemark.NewRichText()

	if names := joinNames(citemark.NameListStraight(entry.Authors)); names != "" {
		r.Append(names).Append(", ")
	}

	if entry.Container != "" {
		r.Append("“").Append(entry.Title).Append(",” ")
		italic(r, entry.Container)
		r.AppendOptional(entry.Volume, ", vol. ", "")
		r.AppendOptional(entry.Issue, ", no. ", "")
		if pg := pageRange(entry.Pages); pg != "" {
			r.Append(", ").Append(pg)
		}
	} else {
		italic(r, entry.Title)
		r.AppendOptional(entry.Edition, ", ", " ed.")
		r.AppendOptional(entry.Publisher, ". ", "")
	}

	if entry.Date != nil {
		r.Append(", ").Append(strconv.Itoa(entry.Date.Year))
	}
	r.Append(".")

	if entry.URL != "" {
		r.Append(" [Online]. Available: ")
		noHyphenation(r, entry.URL)
	}

	return r
}

// italic appends s wrapped in a committed italic span.
func italic(r *citemark.RichText, s string) {
	// The receiver has no pending italic span at any call site, so Open
	// cannot fail.
	_ = r.Open(citemark.Italic)
	r.Append(s)
	r.Commit()
}

// noHyphenation appends s wrapped in a committed no-hyphenation span.
func noHyphenation(r *citemark.RichText, s string) {
	_ = r.Open(citemark.NoHyphenation)
	r.Append(s)
	r.Commit()
}

// joinNames joins rendered names with commas and "and" before the last
// one: "A", "A and B", "A, B, and C".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

// pageRange renders a Pages field like "7" or "7-16" with the usual
// p./pp. prefix. Fields that are not plain numeric ranges pass through
// with a "pp." prefix.
func pageRange(pages string) string {
	if pages == "" {
		return ""
	}

	bounds := strings.SplitN(pages, "-", 2)
	start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
	if err != nil {
		return "pp. " + pages
	}

	end := start
	if len(bounds) == 2 {
		end, err = strconv.Atoi(strings.TrimSpace(bounds[1]))
		if err != nil {
			return "pp. " + pages
		}
	}

	return citemark.FormatRange("p.", "pp.", start, end)
}
