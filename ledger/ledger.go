// Package ledger is the per-search associative store mapping a tile
// coordinate to a value: a predecessor link or an accumulated cost.
//
// Keys are gridgraph.Coord values, hashed and compared by their two integer
// fields. Two coordinates built separately with equal fields address the
// same entry; no string encoding is involved.
//
// A Ledger lives for one search run and is not safe for concurrent use.
package ledger

import "github.com/katalvlaran/pathgrid/gridgraph"

// Ledger maps coordinates to values of type V.
type Ledger[V any] struct {
	entries map[gridgraph.Coord]V
}

// New returns an empty Ledger sized for about sizeHint entries.
func New[V any](sizeHint int) *Ledger[V] {
	return &Ledger[V]{entries: make(map[gridgraph.Coord]V, sizeHint)}
}

// Set records v for key, replacing any earlier value.
func (l *Ledger[V]) Set(key gridgraph.Coord, v V) {
	l.entries[key] = v
}

// Get returns the value recorded for key, or false if none was.
func (l *Ledger[V]) Get(key gridgraph.Coord) (V, bool) {
	v, ok := l.entries[key]
	return v, ok
}

// Contains reports whether key has a recorded value.
// Unlike a truthiness test, a recorded zero value still counts.
func (l *Ledger[V]) Contains(key gridgraph.Coord) bool {
	_, ok := l.entries[key]
	return ok
}

// Len returns the number of recorded keys.
func (l *Ledger[V]) Len() int {
	return len(l.entries)
}
