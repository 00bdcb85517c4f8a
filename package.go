// Package citemark renders bibliographic citations and reference-list
// entries as formatted text.
//
// The root package provides the core value types: [RichText], a formatted
// text buffer with byte-range span tracking and an ANSI renderer;
// [AtomicCitation], the request value describing one cited source; and
// [Database], the in-memory key to entry mapping. The capability interfaces
// [CitationFormatter] and [BibliographyFormatter] are implemented by the
// marker and style subpackages.
//
// # Quick Start
//
// Load a bibliography and produce citation markers:
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/citemark/citemark"
//	    "github.com/citemark/citemark/bib"
//	    "github.com/citemark/citemark/marker"
//	)
//
//	func main() {
//	    db, err := bib.LoadFile("bibliography.yml")
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    numeric := marker.NewNumeric(db)
//	    ref, err := numeric.Reference([]citemark.AtomicCitation{
//	        {Key: "rowling", Number: 1},
//	        {Key: "tolkien", Number: 2},
//	        {Key: "adams", Number: 4, Supplement: "p. 42"},
//	    })
//	    if err != nil {
//	        panic(err)
//	    }
//	    fmt.Println(ref) // [1-2; 4, p. 42]
//	}
//
// Render a full reference-list entry with formatting:
//
//	ieee := style.NewIEEE()
//	entry, _ := db.Get("rowling")
//	fmt.Println(ieee.Reference(entry, nil).RenderANSI())
//
// The library is purely synchronous and holds no shared mutable state.
// Concurrent read-only formatting over the same Database is safe; callers
// must not mutate the Database while a formatting pass is running.
package citemark
