package kernel

import (
	"sync"

	"github.com/google/uuid"
)

// IDGenerator hands out record identifiers.
type IDGenerator interface {
	NextID() string
}

// UUIDGenerator issues random (version 4) UUID strings and never returns the same
// value twice. A value the taken predicate reports as already in use is skipped,
// so identifiers loaded from fixtures can never be reissued.
//
// UUIDGenerator is safe for concurrent use.
//
// Example:
//
//	gen := kernel.NewUUIDGenerator(store.HasID)
//	id := gen.NextID() // e.g. "550e8400-e29b-41d4-a716-446655440000"
type UUIDGenerator struct {
	mu     sync.Mutex
	issued map[string]struct{}
	taken  func(id string) bool
	source func() string
}

// NewUUIDGenerator creates a generator. taken may be nil.
func NewUUIDGenerator(taken func(id string) bool) *UUIDGenerator {
	return newGenerator(taken, uuid.NewString)
}

func newGenerator(taken func(id string) bool, source func() string) *UUIDGenerator {
	if taken == nil {
		taken = func(string) bool { return false }
	}
	return &UUIDGenerator{
		issued: make(map[string]struct{}),
		taken:  taken,
		source: source,
	}
}

// NextID returns an identifier not previously returned by this generator and
// not reported as taken.
func (g *UUIDGenerator) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		id := g.source()
		if _, seen := g.issued[id]; seen || g.taken(id) {
			continue
		}
		g.issued[id] = struct{}{}
		return id
	}
}
