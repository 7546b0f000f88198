package ports

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// OrderReader resolves and lists orders.
type OrderReader interface {
	// Get returns the order with the given id or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id string) (*order.Order, error)

	// List returns every order in store order.
	List(ctx context.Context) ([]*order.Order, error)
}

// OrderRepository is the read-write contract used inside a unit of work.
type OrderRepository interface {
	OrderReader

	// Add appends a new order. The id must not already be stored.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored order with the same id, keeping its position.
	Update(ctx context.Context, aggregate *order.Order) error

	// Remove deletes the order from the collection entirely.
	Remove(ctx context.Context, id string) error
}
