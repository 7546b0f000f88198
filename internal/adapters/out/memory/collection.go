package memory

import (
	"slices"
	"sync"
)

// collection is an ordered, mutex guarded sequence of records stored by value.
// Every operation is total: absence is reported with ok flags, never errors.
type collection[T any] struct {
	mu      sync.RWMutex
	records []T
	idOf    func(T) string
}

func newCollection[T any](idOf func(T) string) *collection[T] {
	return &collection[T]{idOf: idOf}
}

func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.records)
}

func (c *collection[T]) find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.index(id); i >= 0 {
		return c.records[i], true
	}
	var zero T
	return zero, false
}

func (c *collection[T]) has(id string) bool {
	_, ok := c.find(id)
	return ok
}

func (c *collection[T]) append(record T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index(c.idOf(record)) >= 0 {
		return false
	}
	c.records = append(c.records, record)
	return true
}

func (c *collection[T]) replace(record T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(c.idOf(record))
	if i < 0 {
		return false
	}
	c.records[i] = record
	return true
}

func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.records = slices.Delete(c.records, i, i+1)
	return true
}

// index must be called with mu held.
func (c *collection[T]) index(id string) int {
	return slices.IndexFunc(c.records, func(r T) bool { return c.idOf(r) == id })
}
