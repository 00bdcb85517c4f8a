package marker

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/citemark/citemark"
)

// Numeric implements [citemark.CitationFormatter] with IEEE-style
// numerical reference markers.
//
// Every citation must carry an assigned number. Citations are sorted
// ascending by number and consecutive unsupplemented numbers are
// compacted into inclusive ranges; a supplemented citation always stands
// alone and never merges into a range. The rendered elements are joined
// with "; " and wrapped in brackets:
//
//	[1-3; 5, p. 9]
type Numeric struct {
	db *citemark.Database
}

// NewNumeric creates a Numeric formatter reading from db.
func NewNumeric(db *citemark.Database) *Numeric {
	return &Numeric{db: db}
}

// citePair is one verified citation ready for compaction.
type citePair struct {
	number     int
	supplement string
}

// elementKind tags the two cases of a compacted display element.
type elementKind int

const (
	// rangeElement is a contiguous run of unsupplemented numbers.
	rangeElement elementKind = iota
	// singleElement is one supplemented number, never merged.
	singleElement
)

// citeElement is one display element of the compacted marker.
type citeElement struct {
	kind       elementKind
	start, end int    // rangeElement bounds, inclusive
	number     int    // singleElement number
	supplement string // singleElement supplement
}

// Reference renders the combined citation marker for the given citations.
func (n *Numeric) Reference(citations []citemark.AtomicCitation) (string, error) {
	pairs := make([]citePair, 0, len(citations))
	for _, c := range citations {
		if !n.db.Has(c.Key) {
			return "", &citemark.KeyNotFoundError{Key: c.Key}
		}
		if c.Number <= 0 {
			return "", &citemark.NoNumberError{Key: c.Key}
		}
		pairs = append(pairs, citePair{number: c.Number, supplement: c.Supplement})
	}

	// Stable so that equal numbers keep caller order.
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].number < pairs[j].number
	})

	elems := compact(pairs)

	parts := make([]string, len(elems))
	for i, e := range elems {
		switch {
		case e.kind == rangeElement && e.start != e.end:
			parts[i] = fmt.Sprintf("%d-%d", e.start, e.end)
		case e.kind == rangeElement:
			parts[i] = strconv.Itoa(e.start)
		default:
			parts[i] = fmt.Sprintf("%d, %s", e.number, e.supplement)
		}
	}

	return "[" + strings.Join(parts, "; ") + "]", nil
}

// compact folds the sorted pairs into display elements in one
// left-to-right pass. The merge rule only ever inspects the last emitted
// element: an unsupplemented number extends a trailing range whose end is
// exactly one below it, and starts a fresh one-number range otherwise. A
// supplemented number always emits a standalone single, so the number
// after it starts a new range even when numerically adjacent.
func compact(pairs []citePair) []citeElement {
	var elems []citeElement
	for _, p := range pairs {
		if p.supplement != "" {
			elems = append(elems, citeElement{
				kind:       singleElement,
				number:     p.number,
				supplement: p.supplement,
			})
			continue
		}

		if last := len(elems) - 1; last >= 0 &&
			elems[last].kind == rangeElement &&
			elems[last].end == p.number-1 {
			elems[last].end = p.number
			continue
		}

		elems = append(elems, citeElement{
			kind:  rangeElement,
			start: p.number,
			end:   p.number,
		})
	}
	return elems
}
