// Package marker provides the built-in citemark.CitationFormatter
// implementations.
//
// [Key] renders citation keys verbatim in caller order, for author-key
// styles. [Numeric] renders assigned citation numbers compacted into
// ranges, for numeric styles such as IEEE.
//
//	keyFmt := marker.NewKey(db)
//	out, err := keyFmt.Reference(citations) // "doe99, smith04 (p. 3)"
//
//	numFmt := marker.NewNumeric(db)
//	out, err := numFmt.Reference(citations) // "[1-3; 5, p. 9]"
//
// Both formatters fail fast with *citemark.KeyNotFoundError (or
// *citemark.NoNumberError for Numeric) on the first offending citation
// and never produce a partial marker.
package marker
