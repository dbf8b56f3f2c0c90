package rdb

import "sort"

// Store is a hash-keyed, duplicate-permitting index over primitives of one
// kind. Many entries may share one key — that is how symbol overloading is
// modeled. Within a key, insertion order is preserved, which is what makes
// First deterministic.
type Store struct {
	byHash map[uint32][]Primitive
	count  int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{byHash: make(map[uint32][]Primitive)}
}

// Insert appends p under key. Duplicates are permitted; callers wanting
// dedup check Contains first (as Merge does).
func (s *Store) Insert(key uint32, p Primitive) {
	s.byHash[key] = append(s.byHash[key], p)
	s.count++
}

// First returns the earliest-inserted entry under key. Not overload-complete:
// when several entries share the key, the others are invisible here — use
// Range to enumerate every overload.
func (s *Store) First(key uint32) (Primitive, bool) {
	ps := s.byHash[key]
	if len(ps) == 0 {
		return Primitive{}, false
	}
	return ps[0], true
}

// Range returns every entry under key in insertion order. The returned slice
// is the store's backing storage; callers must not mutate it.
func (s *Store) Range(key uint32) []Primitive {
	return s.byHash[key]
}

// Contains reports whether an entry Equal to p already exists under key.
func (s *Store) Contains(key uint32, p Primitive) bool {
	for _, q := range s.byHash[key] {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

// Len returns the total entry count across all keys.
func (s *Store) Len() int { return s.count }

// Walk visits every (key, entry) pair in ascending key order, insertion
// order within a key. Deterministic, for snapshots and exports.
func (s *Store) Walk(fn func(key uint32, p Primitive)) {
	keys := make([]uint32, 0, len(s.byHash))
	for k := range s.byHash {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		for _, p := range s.byHash[k] {
			fn(k, p)
		}
	}
}
