// Package memory provides the process-lifetime resource store: one ordered
// collection per resource type, a unit of work serialising writes, and YAML
// fixture seeding.
//
// Records are held by value. Repositories hand out copies, so a caller can
// never change stored state except through a committed unit of work.
//
// Usage:
//
//	store := memory.NewStore()
//	factory := store.UnitOfWorkFactory()
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.DishRepository().Add(ctx, d); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// Store owns every dish and order of the process.
type Store struct {
	// writer is a one slot semaphore held by the active unit of work.
	writer chan struct{}
	dishes *collection[dish.Dish]
	orders *collection[order.Order]
	ids    *kernel.UUIDGenerator
}

// NewStore creates an empty store.
func NewStore() *Store {
	s := &Store{
		writer: make(chan struct{}, 1),
		dishes: newCollection(func(d dish.Dish) string { return d.ID() }),
		orders: newCollection(func(o order.Order) string { return o.ID() }),
	}
	s.ids = kernel.NewUUIDGenerator(s.HasID)
	return s
}

// HasID reports whether any collection holds a record with id.
func (s *Store) HasID(id string) bool {
	return s.dishes.has(id) || s.orders.has(id)
}

// IDGenerator returns the generator that never collides with stored ids.
func (s *Store) IDGenerator() kernel.IDGenerator {
	return s.ids
}

// Dishes returns a read-only view used by queries.
func (s *Store) Dishes() ports.DishReader {
	return &DishRepository{store: s}
}

// Orders returns a read-only view used by queries.
func (s *Store) Orders() ports.OrderReader {
	return &OrderRepository{store: s}
}

// UnitOfWorkFactory returns a factory producing units of work over this store.
func (s *Store) UnitOfWorkFactory() *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: s}
}
