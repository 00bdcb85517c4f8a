package citemark

// CitationMode describes where the output of a [CitationFormatter] should
// be set: inside the running text or in a footnote. The core never
// branches on the mode itself; it is consumed by the embedding renderer
// when placing markers.
type CitationMode int

const (
	// Footnote sets the citation text in a footnote. Only a superscript
	// footnote symbol appears at the matching position of the text;
	// footnote numbers are managed by the caller and may be rendered as
	// endnotes.
	Footnote CitationMode = iota
	// InText sets the citation text directly where it appears.
	InText
)

// AtomicCitation represents one cited source within a combined citation
// mark.
//
// Supplement is citation-specific extra text such as a page or chapter
// locator; an empty string means no supplement. Number is the citation
// number assigned by whatever numbering policy the bibliography uses
// (zero means unassigned) and is required only by numeric formatters.
type AtomicCitation struct {
	// Key of the cited entry.
	Key string
	// Supplement such as a page or chapter number. Empty means none.
	Supplement string
	// Number assigned to the citation. Zero means unassigned.
	Number int
}

// CitationFormatter generates the reference marker for a single combined
// citation mark. Implementations are pure functions of the passed sequence
// plus a read-only view of the known entries; they never see subsequent
// citations or the surrounding document.
type CitationFormatter interface {
	// Reference produces the marker string for the ordered citations, or
	// a *KeyNotFoundError / *NoNumberError for the first offending item.
	// No partial marker is ever produced.
	Reference(citations []AtomicCitation) (string, error)
}

// BibliographyFormatter lays out one full reference-list entry in a
// particular citation style. The previous entry of the reference list, if
// any, is passed so styles can suppress repeated author lists.
type BibliographyFormatter interface {
	// Reference builds the rich-text reference for entry. prev is the
	// entry preceding it in the reference list, or nil for the first one.
	Reference(entry *Entry, prev *Entry) *RichText
}
