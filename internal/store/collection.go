package store

import (
	"errors"
	"sync"
	"time"
)

// Shared error taxonomy for all collections and the services built on them.
// Handlers map these via errors.Is; see internal/httpapi.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Collection is a mutex-guarded in-memory list standing in for a database
// table. Ids are monotonic and never reused, even after Remove.
//
// The element type owns its id; callers supply an extractor at construction
// so the collection can locate records without reflection.
type Collection[T any] struct {
	mu     sync.RWMutex
	items  []T
	nextID int64
	idOf   func(T) int64
	clock  func() time.Time
}

func NewCollection[T any](idOf func(T) int64) *Collection[T] {
	return &Collection[T]{
		nextID: 1,
		idOf:   idOf,
		clock:  time.Now,
	}
}

// SetClock replaces the collection clock. Tests only.
func (c *Collection[T]) SetClock(clock func() time.Time) { c.clock = clock }

// Insert allocates the next id and appends the record built by construct.
// construct receives the id and the creation timestamp.
func (c *Collection[T]) Insert(construct func(id int64, now time.Time) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++

	rec := construct(id, c.clock().UTC())
	c.items = append(c.items, rec)
	return rec
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, it := range c.items {
		if c.idOf(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Update replaces the record with the given id by apply's result.
// apply receives the current record and the update timestamp.
// Returns the prior record, the updated record, and whether the id existed.
func (c *Collection[T]) Update(id int64, apply func(cur T, now time.Time) T) (old T, updated T, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, it := range c.items {
		if c.idOf(it) == id {
			old = it
			updated = apply(it, c.clock().UTC())
			c.items[i] = updated
			return old, updated, true
		}
	}
	return old, updated, false
}

// Remove deletes the record with the given id and returns it.
// The id is never handed out again.
func (c *Collection[T]) Remove(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, it := range c.items {
		if c.idOf(it) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return it, true
		}
	}
	var zero T
	return zero, false
}

// List returns all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Filter returns records matching keep, in insertion order.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, it := range c.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Len returns the number of live records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
