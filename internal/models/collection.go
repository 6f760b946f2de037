package models

import (
	"sync"

	"github.com/samber/lo"
)

// Collection is an id-keyed record set guarded by a single RWMutex.
// Identifiers come from a monotonic counter and are never reused.
type Collection[T any] struct {
	mu     sync.RWMutex
	data   map[int]T
	order  []int
	nextID int
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		data:   make(map[int]T),
		nextID: 1,
	}
}

// Insert assigns the next id and stores the record produced by build.
func (c *Collection[T]) Insert(build func(id int) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	rec := build(id)
	c.data[id] = rec
	c.order = append(c.order, id)
	return rec
}

// Put stores a record under an explicit id and moves the counter past it.
func (c *Collection[T]) Put(id int, rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.data[id]; !ok {
		c.order = append(c.order, id)
	}
	c.data[id] = rec
	if id >= c.nextID {
		c.nextID = id + 1
	}
}

func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.data[id]
	return rec, ok
}

// Values returns records in insertion order.
func (c *Collection[T]) Values() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.valuesLocked()
}

func (c *Collection[T]) valuesLocked() []T {
	return lo.Map(c.order, func(id int, _ int) T {
		return c.data[id]
	})
}

func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return lo.Filter(c.valuesLocked(), func(rec T, _ int) bool {
		return keep(rec)
	})
}

// Find returns the first record in insertion order that satisfies match.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range c.order {
		if rec := c.data[id]; match(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Update replaces a record with the result of fn while holding the write
// lock. Nothing is stored when fn fails. Unknown ids yield ErrNotFound.
func (c *Collection[T]) Update(id int, fn func(current T) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	current, ok := c.data[id]
	if !ok {
		return zero, ErrNotFound
	}
	next, err := fn(current)
	if err != nil {
		return zero, err
	}
	c.data[id] = next
	return next, nil
}

// UpdateWhere applies fn to every record accepted by match and returns the
// updated records.
func (c *Collection[T]) UpdateWhere(match func(T) bool, fn func(T) T) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	var updated []T
	for _, id := range c.order {
		rec := c.data[id]
		if !match(rec) {
			continue
		}
		rec = fn(rec)
		c.data[id] = rec
		updated = append(updated, rec)
	}
	return updated
}

func (c *Collection[T]) Delete(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.data[id]; !ok {
		return false
	}
	delete(c.data, id)
	c.order = lo.Without(c.order, id)
	return true
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Reset drops every record and restarts the id counter.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[int]T)
	c.order = nil
	c.nextID = 1
}
