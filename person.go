package citemark

import "strings"

// Person is one agent associated with an entry, usually an author or
// editor.
type Person struct {
	// Name is the family name.
	Name string
	// GivenName is the given name or names.
	GivenName string
	// Prefix precedes the family name, e.g. "van der".
	Prefix string
	// Suffix follows the name, e.g. "Jr.".
	Suffix string
}

// NameFirst renders the person family-name first with given-name
// initials: "Doe, J. P." A prefix joins the family name and a suffix is
// appended after a comma.
func (p Person) NameFirst() string {
	var sb strings.Builder
	if p.Prefix != "" {
		sb.WriteString(p.Prefix)
		sb.WriteString(" ")
	}
	sb.WriteString(p.Name)
	if ini := Initials(p.GivenName); ini != "" {
		sb.WriteString(", ")
		sb.WriteString(ini)
	}
	if p.Suffix != "" {
		sb.WriteString(", ")
		sb.WriteString(p.Suffix)
	}
	return sb.String()
}

// InitialsFirst renders the person given-name initials first:
// "J. P. Doe". A prefix joins the family name and a suffix is appended
// after a comma.
func (p Person) InitialsFirst() string {
	var sb strings.Builder
	if ini := Initials(p.GivenName); ini != "" {
		sb.WriteString(ini)
		sb.WriteString(" ")
	}
	if p.Prefix != "" {
		sb.WriteString(p.Prefix)
		sb.WriteString(" ")
	}
	sb.WriteString(p.Name)
	if p.Suffix != "" {
		sb.WriteString(", ")
		sb.WriteString(p.Suffix)
	}
	return sb.String()
}

// Initials abbreviates every word of a given name to its first rune
// followed by a period: "Joanne Kathleen" becomes "J. K.". Words that are
// already initials are kept as-is.
func Initials(given string) string {
	fields := strings.Fields(given)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.HasSuffix(f, ".") {
			parts = append(parts, f)
			continue
		}
		runes := []rune(f)
		parts = append(parts, string(runes[0])+".")
	}
	return strings.Join(parts, " ")
}

// NameList renders persons family-name first, one string per person.
func NameList(persons []Person) []string {
	names := make([]string, len(persons))
	for i, p := range persons {
		names[i] = p.NameFirst()
	}
	return names
}

// NameListStraight renders persons given-name initials first, one string
// per person.
func NameListStraight(persons []Person) []string {
	names := make([]string, len(persons))
	for i, p := range persons {
		names[i] = p.InitialsFirst()
	}
	return names
}
