// Package value defines the tree a parsed configuration becomes: scalars and
// ordered tables. Once a parse has produced a tree, nothing in the pipeline
// mutates it.
package value

// Value is one node of the configuration tree.
type Value interface {
	valueNode()
}

// Int is a non-negative integer literal. The source syntax has no sign, so
// negative values never occur in a parsed tree.
type Int int64

// String is the raw text between a literal's quotes. No escape decoding has
// happened, because the language defines none.
type String string

type Bool bool

func (Int) valueNode()    {}
func (String) valueNode() {}
func (Bool) valueNode()   {}

// Table is an ordered string-to-Value mapping. Keys keep the order they were
// first inserted in, and a key is present at most once.
type Table struct {
	keys    []string
	entries map[string]Value
}

func NewTable() *Table {
	return &Table{entries: make(map[string]Value)}
}

func (*Table) valueNode() {}

func (t *Table) Len() int {
	return len(t.keys)
}

// Keys returns the table's keys in insertion order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

func (t *Table) Get(key string) (Value, bool) {
	v, ok := t.entries[key]
	return v, ok
}

func (t *Table) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Set inserts key with v. Inserting a key that is already present replaces
// its value without changing its position; the parser never does that, it
// checks Has first and rejects the duplicate.
func (t *Table) Set(key string, v Value) {
	if _, ok := t.entries[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.entries[key] = v
}
