// Package queries contains the read operations of the restaurant service.
// Queries never mutate the store and return copies of stored records.
package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetDishQueryIsNotConstructed = errors.New(
		"GetDishQuery must be created via NewGetDishQuery constructor",
	)
)

// GetDishQuery resolves one dish by its route id.
type GetDishQuery struct {
	dishID string

	guard guard.ConstructorGuard
}

// NewGetDishQuery requires a non-empty id.
func NewGetDishQuery(dishID string) (GetDishQuery, error) {
	if dishID == "" {
		return GetDishQuery{}, errs.NewValueIsRequiredError("dishId")
	}
	return GetDishQuery{dishID: dishID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDishQuery) Validate() error {
	return q.guard.Validate(ErrGetDishQueryIsNotConstructed)
}

// GetDishQueryHandler runs GetDishQuery.
type GetDishQueryHandler struct {
	dishes ports.DishReader
}

// NewGetDishQueryHandler creates the handler over a dish reader.
func NewGetDishQueryHandler(dishes ports.DishReader) GetDishQueryHandler {
	return GetDishQueryHandler{dishes: dishes}
}

// Handle returns the dish or a not-found error naming the id.
func (h GetDishQueryHandler) Handle(ctx context.Context, query GetDishQuery) (*dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.dishes.Get(ctx, query.dishID)
}
