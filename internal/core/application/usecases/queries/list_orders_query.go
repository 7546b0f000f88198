package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery returns every order in store order.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates the parameterless query.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListOrdersQueryHandler runs ListOrdersQuery.
type ListOrdersQueryHandler struct {
	orders ports.OrderReader
}

// NewListOrdersQueryHandler creates the handler over an order reader.
func NewListOrdersQueryHandler(orders ports.OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle lists every order.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.List(ctx)
}

// CountByStatus tallies orders per status name. Every valid status is present,
// possibly with zero.
func CountByStatus(orders []*order.Order) map[string]int {
	counts := make(map[string]int, len(order.ValidStatuses()))
	for _, s := range order.ValidStatuses() {
		counts[s.String()] = 0
	}
	for _, o := range orders {
		counts[o.Status().String()]++
	}
	return counts
}
