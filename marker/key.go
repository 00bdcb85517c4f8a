package marker

import (
	"fmt"
	"strings"

	"github.com/citemark/citemark"
)

// Key implements [citemark.CitationFormatter] by printing the entry keys
// themselves, which are already unique within the database.
//
// Citations render in caller order, never sorted: each as "key" or
// "key (supplement)", joined with ", ".
type Key struct {
	db *citemark.Database
}

// NewKey creates a Key formatter reading from db.
func NewKey(db *citemark.Database) *Key {
	return &Key{db: db}
}

// Reference renders the combined citation marker for the given citations.
func (k *Key) Reference(citations []citemark.AtomicCitation) (string, error) {
	items := make([]string, 0, len(citations))
	for _, c := range citations {
		if !k.db.Has(c.Key) {
			return "", &citemark.KeyNotFoundError{Key: c.Key}
		}

		if c.Supplement != "" {
			items = append(items, fmt.Sprintf("%s (%s)", c.Key, c.Supplement))
		} else {
			items = append(items, c.Key)
		}
	}

	return strings.Join(items, ", "), nil
}
