package citemark

// Database is the in-memory citation database: a key to entry mapping
// that remembers insertion order.
//
// Formatters only read from the Database. Concurrent reads are safe;
// callers must not Add while a formatting pass is running.
type Database struct {
	entries map[string]*Entry
	order   []string
}

// NewDatabase creates an empty Database.
func NewDatabase() *Database {
	return &Database{
		entries: make(map[string]*Entry),
	}
}

// Add inserts an entry under its key. Adding a key that already exists
// replaces the stored entry but keeps its original position in Keys.
// Returns self for chaining.
func (d *Database) Add(entry *Entry) *Database {
	if _, ok := d.entries[entry.Key]; !ok {
		d.order = append(d.order, entry.Key)
	}
	d.entries[entry.Key] = entry
	return d
}

// Has reports whether an entry exists under key.
func (d *Database) Has(key string) bool {
	_, ok := d.entries[key]
	return ok
}

// Get returns the entry stored under key.
func (d *Database) Get(key string) (*Entry, bool) {
	e, ok := d.entries[key]
	return e, ok
}

// Keys returns all entry keys in insertion order.
func (d *Database) Keys() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Len returns the number of entries.
func (d *Database) Len() int {
	return len(d.entries)
}

// Numbered builds one AtomicCitation per key with numbers assigned by
// first-citation order: the first distinct key gets 1, the next distinct
// key 2, and so on. A repeated key reuses its earlier number. Keys absent
// from the database are passed through with a number so the formatter can
// report them in input order.
//
// This is one numbering policy; numeric formatters accept any externally
// assigned numbers.
func (d *Database) Numbered(keys []string) []AtomicCitation {
	assigned := make(map[string]int, len(keys))
	next := 1
	out := make([]AtomicCitation, len(keys))
	for i, key := range keys {
		n, ok := assigned[key]
		if !ok {
			n = next
			next++
			assigned[key] = n
		}
		out[i] = AtomicCitation{Key: key, Number: n}
	}
	return out
}
