package set

import (
	"cmp"
	"slices"
	"sync"
)

// Set is a collection of unique items safe for concurrent use.
// The zero value is an empty set ready to use.
type Set[T cmp.Ordered] struct {
	mu    sync.RWMutex
	items map[T]struct{}
}

func New[T cmp.Ordered](items ...T) *Set[T] {
	s := &Set[T]{}
	s.Add(items...)
	return s
}

// Add adds items to the set
func (s *Set[T]) Add(items ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items == nil {
		s.items = make(map[T]struct{}, len(items))
	}
	for _, item := range items {
		s.items[item] = struct{}{}
	}
}

// Insert adds item and reports whether it was absent.
// The check and the write happen under one lock.
func (s *Set[T]) Insert(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[item]; exists {
		return false
	}
	if s.items == nil {
		s.items = map[T]struct{}{}
	}
	s.items[item] = struct{}{}
	return true
}

// Remove removes an item from the set
func (s *Set[T]) Remove(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, item)
}

// Contains checks if an item exists in the set
func (s *Set[T]) Contains(item T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.items[item]
	return exists
}

// Size returns the number of items in the set
func (s *Set[T]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Clear removes all items from the set
func (s *Set[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.items)
}

// Sorted returns a sorted snapshot of the items.
func (s *Set[T]) Sorted() []T {
	s.mu.RLock()
	items := make([]T, 0, len(s.items))
	for item := range s.items {
		items = append(items, item)
	}
	s.mu.RUnlock()
	slices.Sort(items)
	return items
}
