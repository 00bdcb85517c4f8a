package bib

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/citemark/citemark"
)

// entryDoc is the YAML wire form of one entry.
type entryDoc struct {
	Type      string     `yaml:"type"`
	Title     string     `yaml:"title"`
	Author    authorList `yaml:"author"`
	Date      string     `yaml:"date"`
	Container string     `yaml:"container"`
	Volume    string     `yaml:"volume"`
	Issue     string     `yaml:"issue"`
	Pages     string     `yaml:"pages"`
	Publisher string     `yaml:"publisher"`
	Edition   string     `yaml:"edition"`
	URL       string     `yaml:"url"`
	DOI       string     `yaml:"doi"`
	Note      string     `yaml:"note"`
}

// authorList accepts either a single author string or a list of them.
type authorList []string

func (a *authorList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*a = authorList{s}
		return nil
	case yaml.SequenceNode:
		var ss []string
		if err := value.Decode(&ss); err != nil {
			return err
		}
		*a = authorList(ss)
		return nil
	default:
		return fmt.Errorf("author must be a string or a list of strings")
	}
}

// LoadFile reads and parses the bibliography file at path.
func LoadFile(path string) (*citemark.Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bibliography: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads and parses a YAML bibliography from r.
func Load(r io.Reader) (*citemark.Database, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read bibliography: %w", err)
	}
	return Parse(data)
}

// Parse validates and binds a YAML bibliography. The file must be a
// mapping from entry key to entry fields; entries bind in document order.
func Parse(data []byte) (*citemark.Database, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse bibliography: %w", err)
	}

	db := citemark.NewDatabase()
	if len(doc.Content) == 0 {
		return db, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("bibliography must be a mapping of entry keys")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value

		var ed entryDoc
		if err := root.Content[i+1].Decode(&ed); err != nil {
			return nil, fmt.Errorf("entry %s: %w", key, err)
		}

		entry, err := ed.toEntry(key)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", key, err)
		}
		db.Add(entry)
	}

	return db, nil
}

func (ed entryDoc) toEntry(key string) (*citemark.Entry, error) {
	date, err := ParseDate(ed.Date)
	if err != nil {
		return nil, err
	}

	authors := make([]citemark.Person, len(ed.Author))
	for i, a := range ed.Author {
		authors[i] = ParsePerson(a)
	}

	return &citemark.Entry{
		Key:       key,
		Kind:      ed.Type,
		Title:     ed.Title,
		Authors:   authors,
		Date:      date,
		Container: ed.Container,
		Volume:    ed.Volume,
		Issue:     ed.Issue,
		Pages:     ed.Pages,
		Publisher: ed.Publisher,
		Edition:   ed.Edition,
		URL:       ed.URL,
		DOI:       ed.DOI,
		Note:      ed.Note,
	}, nil
}

// ParseDate parses "2003", "2003-06", or "2003-06-21". An empty string
// yields nil.
func ParseDate(s string) (*citemark.Date, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.SplitN(s, "-", 3)
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q", s)
		}
		nums[i] = n
	}

	d := &citemark.Date{Year: nums[0]}
	if len(nums) > 1 {
		d.Month = nums[1]
	}
	if len(nums) > 2 {
		d.Day = nums[2]
	}
	return d, nil
}

// ParsePerson parses a display name into a Person. The comma form
// "Family, Given" (optionally "Family, Given, Suffix") is preferred; a
// plain "Given Family" form takes the last word as the family name.
// Lowercase particles directly before the family name ("van", "der",
// "de", ...) become the prefix in either form.
func ParsePerson(s string) citemark.Person {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) >= 2 {
		prefix, name := splitPrefix(parts[0])
		p := citemark.Person{
			Name:      name,
			Prefix:    prefix,
			GivenName: parts[1],
		}
		if len(parts) >= 3 {
			p.Suffix = parts[2]
		}
		return p
	}

	fields := strings.Fields(parts[0])
	if len(fields) == 0 {
		return citemark.Person{}
	}
	if len(fields) == 1 {
		return citemark.Person{Name: fields[0]}
	}

	name := fields[len(fields)-1]
	rest := fields[:len(fields)-1]

	// Collect trailing lowercase particles as the prefix.
	cut := len(rest)
	for cut > 0 && isParticle(rest[cut-1]) {
		cut--
	}

	return citemark.Person{
		Name:      name,
		Prefix:    strings.Join(rest[cut:], " "),
		GivenName: strings.Join(rest[:cut], " "),
	}
}

// splitPrefix splits leading lowercase particles off a family name:
// "van der Berg" yields ("van der", "Berg").
func splitPrefix(family string) (prefix, name string) {
	fields := strings.Fields(family)
	cut := 0
	for cut < len(fields)-1 && isParticle(fields[cut]) {
		cut++
	}
	return strings.Join(fields[:cut], " "), strings.Join(fields[cut:], " ")
}

func isParticle(word string) bool {
	if word == "" {
		return false
	}
	r := []rune(word)[0]
	return r >= 'a' && r <= 'z'
}
