// Package ports defines the repository contracts between the restaurant core
// and its storage adapters.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/dish"
)

// DishReader resolves and lists dishes. Returned dishes are copies; changing one
// does not change the store.
type DishReader interface {
	// Get returns the dish with the given id or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id string) (*dish.Dish, error)

	// List returns every dish in store order.
	List(ctx context.Context) ([]*dish.Dish, error)
}

// DishRepository is the read-write contract used inside a unit of work.
type DishRepository interface {
	DishReader

	// Add appends a new dish. The id must not already be stored.
	Add(ctx context.Context, aggregate *dish.Dish) error

	// Update replaces the stored dish with the same id, keeping its position.
	Update(ctx context.Context, aggregate *dish.Dish) error
}
