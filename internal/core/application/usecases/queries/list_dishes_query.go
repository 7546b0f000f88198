package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/guard"
)

var (
	ErrListDishesQueryIsNotConstructed = errors.New(
		"ListDishesQuery must be created via NewListDishesQuery constructor",
	)
)

// ListDishesQuery returns the whole menu in store order.
type ListDishesQuery struct {
	guard guard.ConstructorGuard
}

// NewListDishesQuery creates the parameterless query.
func NewListDishesQuery() ListDishesQuery {
	return ListDishesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListDishesQuery) Validate() error {
	return q.guard.Validate(ErrListDishesQueryIsNotConstructed)
}

// ListDishesQueryHandler runs ListDishesQuery.
type ListDishesQueryHandler struct {
	dishes ports.DishReader
}

// NewListDishesQueryHandler creates the handler over a dish reader.
func NewListDishesQueryHandler(dishes ports.DishReader) ListDishesQueryHandler {
	return ListDishesQueryHandler{dishes: dishes}
}

// Handle lists every dish.
func (h ListDishesQueryHandler) Handle(ctx context.Context, query ListDishesQuery) ([]*dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.dishes.List(ctx)
}
