// Package store implements the Array/Store container of spec §4.3: a flat,
// insertion-ordered collection of graphitem.Item values indexed by
// (name, coordinate), built once during expansion/resolution and frozen
// thereafter (spec §3 Lifecycle).
//
// Grounded on original_source/src/sirocco/core/graph_items.py's Array/Store
// classes (dict-of-coordinates per name, dimension set fixed on first
// insert) and the teacher's internal/nodestore.Store interface doc comments
// on separation of concerns — adapted here into a single concrete,
// non-interface type since spec §3 calls for construction-time-only
// mutation rather than a long-lived mutable store.
package store

import (
	"fmt"

	"github.com/vk/workgraph/internal/coordinate"
	"github.com/vk/workgraph/internal/graphitem"
	"github.com/vk/workgraph/internal/werr"
)

// Array is a homogeneous, name-scoped collection of items sharing a fixed
// dimension set (spec §3). The dimension set is established by the first
// inserted item; a zero-dimension Array holds exactly one item.
type Array struct {
	name  string
	dims  []string // nil until the first insert fixes it
	order []*graphitem.Item
	byKey map[string]*graphitem.Item
}

func newArray(name string) *Array {
	return &Array{name: name, byKey: map[string]*graphitem.Item{}}
}

// Dims returns the Array's fixed dimension set, or nil if still empty.
func (a *Array) Dims() []string { return a.dims }

// Items returns the Array's items in insertion order.
func (a *Array) Items() []*graphitem.Item { return a.order }

func (a *Array) insert(item *graphitem.Item) error {
	dims := item.Coordinate.Dims()
	if a.dims == nil {
		a.dims = dims
	} else if !sameDims(a.dims, dims) {
		return werr.New(werr.DimensionMismatch,
			fmt.Sprintf("array %q established dimensions %v, got %v", a.name, a.dims, dims),
			[]string{a.name}, &item.Coordinate)
	}
	key := item.Coordinate.Key()
	if _, exists := a.byKey[key]; exists {
		return werr.New(werr.DuplicateCoordinate,
			fmt.Sprintf("item %q already inserted at coordinate %s", a.name, key),
			[]string{a.name}, &item.Coordinate)
	}
	a.byKey[key] = item
	a.order = append(a.order, item)
	return nil
}

// Lookup returns the item at the exact coordinate, or ok=false if absent.
func (a *Array) Lookup(coord coordinate.Coordinate) (*graphitem.Item, bool) {
	item, ok := a.byKey[coord.Key()]
	return item, ok
}

// LookupPartial returns, in insertion order, every item whose coordinate
// agrees with partial on partial's declared dimensions. An empty result is
// legal and distinct from "name unknown" (spec §4.3).
func (a *Array) LookupPartial(partial coordinate.Coordinate) []*graphitem.Item {
	dims := partial.Dims()
	var out []*graphitem.Item
	for _, item := range a.order {
		if matchesOn(item.Coordinate, partial, dims) {
			out = append(out, item)
		}
	}
	return out
}

func matchesOn(full, partial coordinate.Coordinate, dims []string) bool {
	for _, d := range dims {
		if d == coordinate.DateDim {
			fd, pd := full.Date(), partial.Date()
			if fd == nil || pd == nil || !fd.Equal(*pd) {
				return false
			}
			continue
		}
		fv, ok := full.Value(d)
		if !ok {
			return false
		}
		pv, _ := partial.Value(d)
		if !fv.RawEquals(pv) {
			return false
		}
	}
	return true
}

func sameDims(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]bool, len(a))
	for _, d := range a {
		seen[d] = true
	}
	for _, d := range b {
		if !seen[d] {
			return false
		}
	}
	return true
}

// Store is a name -> Array mapping, insertion-ordered for deterministic
// iteration (spec §4.3).
type Store struct {
	names  []string
	arrays map[string]*Array
}

// New builds an empty Store.
func New() *Store {
	return &Store{arrays: map[string]*Array{}}
}

// Insert appends item to the Array named name, creating it on first use.
func (s *Store) Insert(name string, item *graphitem.Item) error {
	arr, ok := s.arrays[name]
	if !ok {
		arr = newArray(name)
		s.arrays[name] = arr
		s.names = append(s.names, name)
	}
	return arr.insert(item)
}

// Array returns the named Array, or nil if the name was never inserted.
func (s *Store) Array(name string) *Array {
	return s.arrays[name]
}

// Lookup is the exact-match accessor of spec §4.3.
func (s *Store) Lookup(name string, coord coordinate.Coordinate) (*graphitem.Item, error) {
	arr, ok := s.arrays[name]
	if !ok {
		return nil, werr.New(werr.UnknownName, fmt.Sprintf("no such name %q", name), []string{name}, nil)
	}
	item, ok := arr.Lookup(coord)
	if !ok {
		return nil, werr.New(werr.UnknownName, fmt.Sprintf("%q has no item at coordinate %s", name, coord.Key()), []string{name}, &coord)
	}
	return item, nil
}

// LookupPartial is the partial-match accessor of spec §4.3. Returns an
// UnknownName error only when the name itself is absent; an empty slice
// with a nil error is the legal "no match" outcome.
func (s *Store) LookupPartial(name string, partial coordinate.Coordinate) ([]*graphitem.Item, error) {
	arr, ok := s.arrays[name]
	if !ok {
		return nil, werr.New(werr.UnknownName, fmt.Sprintf("no such name %q", name), []string{name}, nil)
	}
	return arr.LookupPartial(partial), nil
}

// HasName reports whether name has at least one Array entry.
func (s *Store) HasName(name string) bool {
	_, ok := s.arrays[name]
	return ok
}

// IterItems walks every item in deterministic order: Arrays in insertion
// order of their names, items within an Array in insertion order.
func (s *Store) IterItems(fn func(name string, item *graphitem.Item)) {
	for _, name := range s.names {
		for _, item := range s.arrays[name].order {
			fn(name, item)
		}
	}
}

// Names returns the Store's array names in insertion order.
func (s *Store) Names() []string {
	return append([]string(nil), s.names...)
}
