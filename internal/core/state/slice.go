// Package state holds the client-side caches: one Slice per server resource
// list plus the Session. Every mutation goes through a reducer method so the
// loading and error flags stay consistent with the items.
package state

import "sync"

// Identifiable is any server entity keyed by a numeric id.
type Identifiable interface {
	EntityID() int64
}

// Snapshot is an immutable copy of a slice, safe to render.
type Snapshot[T Identifiable] struct {
	Items     []T    `json:"items"`
	IsLoading bool   `json:"isLoading"`
	Error     string `json:"error,omitempty"`
}

// Slice caches one ordered list of entities with its loading and error flags.
//
// Loading is tracked with an in-flight counter rather than a boolean, so two
// overlapping operations keep IsLoading true until both have settled.
// Reducers apply in the order operations complete.
type Slice[T Identifiable] struct {
	mu       sync.RWMutex
	name     string
	items    []T
	inflight int
	err      string
}

// NewSlice returns an empty slice named name.
func NewSlice[T Identifiable](name string) *Slice[T] {
	return &Slice[T]{name: name, items: []T{}}
}

func (s *Slice[T]) Name() string { return s.name }

// Begin marks an operation as pending and clears the previous error.
func (s *Slice[T]) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight++
	s.err = ""
}

// Fetched replaces the items wholesale with the server's list.
func (s *Slice[T]) Fetched(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = dedupe(items)
	s.settle()
}

// Created appends item. An item whose id is already cached replaces it in place.
func (s *Slice[T]) Created(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(item.EntityID()); i >= 0 {
		s.items[i] = item
	} else {
		s.items = append(s.items, item)
	}
	s.settle()
}

// Updated splices item over the cached entry with the same id. It reports
// whether an entry was replaced.
func (s *Slice[T]) Updated(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.settle()
	i := s.indexOf(item.EntityID())
	if i < 0 {
		return false
	}
	s.items[i] = item
	return true
}

// Patched applies fn to the cached entry with the given id.
func (s *Slice[T]) Patched(id int64, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.settle()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	fn(&s.items[i])
	return true
}

// Removed filters the entry with the given id out of the items.
func (s *Slice[T]) Removed(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.settle()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	return true
}

// Failed records message as the slice error.
func (s *Slice[T]) Failed(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = message
	s.settle()
}

// Settled ends a pending operation without touching items or error.
func (s *Slice[T]) Settled() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settle()
}

// ClearError drops the stored error. Idempotent.
func (s *Slice[T]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// Snapshot returns a copy of the current state.
func (s *Slice[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]T, len(s.items))
	copy(items, s.items)
	return Snapshot[T]{Items: items, IsLoading: s.inflight > 0, Error: s.err}
}

func (s *Slice[T]) settle() {
	if s.inflight > 0 {
		s.inflight--
	}
}

func (s *Slice[T]) indexOf(id int64) int {
	for i := range s.items {
		if s.items[i].EntityID() == id {
			return i
		}
	}
	return -1
}

// dedupe keeps the last occurrence of each id at the position of the first.
func dedupe[T Identifiable](items []T) []T {
	out := make([]T, 0, len(items))
	pos := make(map[int64]int, len(items))
	for _, it := range items {
		if i, ok := pos[it.EntityID()]; ok {
			out[i] = it
			continue
		}
		pos[it.EntityID()] = len(out)
		out = append(out, it)
	}
	return out
}
