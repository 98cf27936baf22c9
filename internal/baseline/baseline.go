// Package baseline provides word indexes the ordered tree is measured against.
package baseline

import (
	"fmt"
	"slices"
	"sort"
)

// Index is a set of words that can be looked up.
type Index interface {
	// Name the index is registered under.
	Name() string
	// Load the words into the index, replacing the previous content.
	Load(words []string)
	// Has reports whether w was loaded.
	Has(w string) bool
	// Len is the number of words held.
	Len() int
}

// Factory is a factory function type to create a new empty Index.
type Factory func() Index

var registry = make(map[string]Factory)

func init() {
	Register("linear", func() Index { return new(Linear) })
	Register("btree", func() Index { return NewBTree(32) })
	Register("llrb", func() Index { return new(LLRB) })
	Register("haxmap", func() Index { return new(HaxMap) })
	Register("hashmap", func() Index { return new(HashMap) })
	Register("bst", func() Index { return NewBST() })
}

// Register registers a new index and a factory function to make a new
// instance. Registering a name twice replaces the previous factory.
func Register(name string, f Factory) {
	registry[name] = f
}

// New returns a new index based on the registered indexes.
func New(name string) (Index, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf(`invalid baseline "%s"`, name)
	}
	return f(), nil
}

// Names of the registered indexes, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Linear keeps the words in a slice and scans it on every lookup.
type Linear struct {
	words []string
}

func (l *Linear) Name() string { return "linear" }

func (l *Linear) Load(words []string) {
	l.words = slices.Clone(words)
}

// Has scans the words in order.
// Time: O(n)
func (l *Linear) Has(w string) bool {
	return slices.Index(l.words, w) >= 0
}

func (l *Linear) Len() int { return len(l.words) }
