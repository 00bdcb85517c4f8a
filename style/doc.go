// Package style provides the built-in citemark.BibliographyFormatter
// implementations.
//
// [IEEE] lays out entries in the numeric IEEE manner (initials-first
// authors, quoted article titles, italic container names). [AuthorDate]
// lays out entries author-date style with family-name-first authors and
// the year after the author list, replacing a repeated author list with
// a three-em-dash placeholder.
//
// Both build their output on [citemark.RichText] and commit every
// formatting span before returning, so results are safe to merge with
// RichText.AppendRich.
package style
