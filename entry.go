package citemark

import "strconv"

// Entry is one bibliographic source. Fields that do not apply to a given
// source kind are simply left empty; styles decide what to print.
type Entry struct {
	// Key identifies the entry within its Database.
	Key string
	// Kind of the source, e.g. "article", "book", "web". Free-form.
	Kind string
	// Title of the source.
	Title string
	// Authors in the order they appear on the source.
	Authors []Person
	// Date of publication, nil if unknown.
	Date *Date
	// Container holding the source: journal, collection, or site name.
	Container string
	// Volume of the container.
	Volume string
	// Issue of the container.
	Issue string
	// Pages spanned by the source within its container, e.g. "7" or
	// "7-16".
	Pages string
	// Publisher of the source.
	Publisher string
	// Edition of the source.
	Edition string
	// URL where the source can be retrieved.
	URL string
	// DOI of the source.
	DOI string
	// Note with free-form extra information.
	Note string
}

// Date is a calendar date with optional month and day (zero means
// unknown).
type Date struct {
	Year  int
	Month int
	Day   int
}

// String renders the date as "2003", "2003-06", or "2003-06-21"
// depending on which components are known.
func (d Date) String() string {
	s := strconv.Itoa(d.Year)
	if d.Month > 0 {
		s += "-" + pad2(d.Month)
		if d.Day > 0 {
			s += "-" + pad2(d.Day)
		}
	}
	return s
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
