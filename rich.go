package citemark

import (
	"sort"
	"strings"
)

// Formatting identifies one kind of rich-text decoration.
type Formatting int

const (
	// Bold print.
	Bold Formatting = iota
	// Italic print.
	Italic
	// NoHyphenation marks text that must not be hyphenated at line breaks,
	// e.g. URLs. It is a layout hint for external renderers and produces no
	// ANSI escape codes.
	NoHyphenation
)

// String returns the formatting kind name.
func (f Formatting) String() string {
	switch f {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case NoHyphenation:
		return "no-hyphenation"
	default:
		return "unknown"
	}
}

// Span is a half-open byte range of a RichText buffer tagged with one
// formatting kind. Spans may freely overlap or nest.
type Span struct {
	Start  int
	End    int
	Format Formatting
}

// shift moves both boundaries right by n bytes.
func (s Span) shift(n int) Span {
	s.Start += n
	s.End += n
	return s
}

// pendingSpan is a formatting kind that has been opened but not committed.
type pendingSpan struct {
	start  int
	format Formatting
}

// RichText is an append-only text buffer that accumulates plain text plus
// possibly-overlapping formatting spans over its own byte offsets.
//
// Spans go through a two-phase lifecycle: [RichText.Open] records the
// current buffer length as the start of a pending span, and
// [RichText.Commit] closes every pending span at the current length and
// promotes it to the committed set. Only committed spans take part in
// concatenation and rendering.
//
// # Building
//
//	r := citemark.NewRichText()
//	r.Append("see ")
//	r.Open(citemark.Italic)
//	r.Append("The Silmarillion")
//	r.Commit()
//	fmt.Println(r.RenderANSI()) // see \x1b[3mThe Silmarillion\x1b[0m
//
// All offsets are byte offsets into the UTF-8 buffer; every recorded
// boundary falls on a rune boundary because spans can only open and close
// at the current buffer length.
type RichText struct {
	value   string
	spans   []Span
	pending []pendingSpan
}

// NewRichText creates an empty RichText.
func NewRichText() *RichText {
	return &RichText{}
}

// NewRichTextString creates a RichText holding s with no formatting.
func NewRichTextString(s string) *RichText {
	return &RichText{value: s}
}

// String returns the plain text content without any formatting.
func (r *RichText) String() string {
	return r.value
}

// Len returns the length of the content in bytes.
func (r *RichText) Len() int {
	return len(r.value)
}

// IsEmpty reports whether the content is empty.
func (r *RichText) IsEmpty() bool {
	return r.value == ""
}

// Last returns the last rune of the content, or false if it is empty.
func (r *RichText) Last() (rune, bool) {
	var last rune
	ok := false
	for _, ch := range r.value {
		last, ok = ch, true
	}
	return last, ok
}

// Push appends a single rune. Returns self for chaining.
func (r *RichText) Push(ch rune) *RichText {
	r.value += string(ch)
	return r
}

// Append appends plain text. Returns self for chaining.
func (r *RichText) Append(s string) *RichText {
	r.value += s
	return r
}

// AppendOptional appends item surrounded by prefix and postfix, or nothing
// at all when item is empty. Returns self for chaining.
func (r *RichText) AppendOptional(item, prefix, postfix string) *RichText {
	if item == "" {
		return r
	}
	r.value += prefix + item + postfix
	return r
}

// AppendRich appends another RichText. Every committed span of other is
// shifted right by the receiver's current length and merged into the
// receiver's committed set; the receiver's pending spans stay open across
// the append.
//
// Pending spans of other are NOT carried over: commit other before
// appending it, or its open spans are silently lost. Returns self for
// chaining.
func (r *RichText) AppendRich(other *RichText) *RichText {
	offset := len(r.value)
	for _, sp := range other.spans {
		r.spans = append(r.spans, sp.shift(offset))
	}
	r.value += other.value
	return r
}

// Open starts a pending span of the given formatting kind at the current
// buffer length. At most one span per kind may be pending at a time;
// opening a kind that is already pending is a contract violation and
// returns [ErrFormattingOpen] without changing the buffer.
func (r *RichText) Open(f Formatting) error {
	for _, p := range r.pending {
		if p.format == f {
			return ErrFormattingOpen
		}
	}
	r.pending = append(r.pending, pendingSpan{start: len(r.value), format: f})
	return nil
}

// Commit closes every pending span at the current buffer length and moves
// it to the committed set. The pending set is empty afterwards.
func (r *RichText) Commit() {
	for _, p := range r.pending {
		r.spans = append(r.spans, Span{Start: p.start, End: len(r.value), Format: p.format})
	}
	r.pending = r.pending[:0]
}

// Spans returns a copy of the committed spans in commit order.
func (r *RichText) Spans() []Span {
	out := make([]Span, len(r.spans))
	copy(out, r.spans)
	return out
}

// HasPending reports whether any formatting kind is open but not yet
// committed.
func (r *RichText) HasPending() bool {
	return len(r.pending) > 0
}

// Join concatenates items into a new RichText with sep inserted as plain
// unformatted text between consecutive non-empty items. Empty items are
// skipped entirely; an empty slice yields an empty RichText.
func Join(items []*RichText, sep string) *RichText {
	res := NewRichText()
	first := true
	for _, item := range items {
		if item.IsEmpty() {
			continue
		}
		if !first {
			res.Append(sep)
		}
		res.AppendRich(item)
		first = false
	}
	return res
}

// ansiEvent is one boundary of a committed span during rendering.
type ansiEvent struct {
	format Formatting
	pos    int
	end    bool
}

// RenderANSI returns the content with every committed Bold and Italic span
// wrapped in VT100 escape codes: "\x1b[1m" starts bold, "\x1b[3m" starts
// italic, and "\x1b[0m" closes a span. NoHyphenation spans produce no
// markers.
//
// A closing "\x1b[0m" resets all attributes, so when spans overlap, ending
// one span also switches off any other span still open at that position.
// Consumers that need faithful nesting should process Spans directly.
//
// The result is assembled back to front: escape codes are textual
// insertions at arbitrary byte offsets, and inserting them front to back
// would invalidate the offsets not yet processed.
func (r *RichText) RenderANSI() string {
	var events []ansiEvent
	for _, sp := range r.spans {
		if sp.Format == NoHyphenation {
			continue
		}
		events = append(events,
			ansiEvent{format: sp.Format, pos: sp.Start, end: false},
			ansiEvent{format: sp.Format, pos: sp.End, end: true},
		)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].pos > events[j].pos
	})

	var sb strings.Builder
	cursor := len(r.value)
	// Built in reverse: each event prepends its text slice and escape code.
	parts := make([]string, 0, 2*len(events)+1)
	for _, ev := range events {
		parts = append(parts, r.value[ev.pos:cursor])
		cursor = ev.pos

		code := "0"
		if !ev.end {
			switch ev.format {
			case Bold:
				code = "1"
			case Italic:
				code = "3"
			}
		}
		parts = append(parts, "\x1b["+code+"m")
	}
	parts = append(parts, r.value[:cursor])

	for i := len(parts) - 1; i >= 0; i-- {
		sb.WriteString(parts[i])
	}
	return sb.String()
}
