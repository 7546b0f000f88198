package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/application/validation"
	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

var _ ServerInterface = (*Server)(nil)

// Server implements ServerInterface by translating requests into commands and
// queries and their results into response envelopes.
type Server struct {
	// Command handlers
	createDishHandler  commands.CreateDishCommandHandler
	updateDishHandler  commands.UpdateDishCommandHandler
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	getDishHandler    queries.GetDishQueryHandler
	listDishesHandler queries.ListDishesQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler

	logger *slog.Logger
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateDish  commands.CreateDishCommandHandler
	UpdateDish  commands.UpdateDishCommandHandler
	CreateOrder commands.CreateOrderCommandHandler
	UpdateOrder commands.UpdateOrderCommandHandler
	DeleteOrder commands.DeleteOrderCommandHandler

	GetDish    queries.GetDishQueryHandler
	ListDishes queries.ListDishesQueryHandler
	GetOrder   queries.GetOrderQueryHandler
	ListOrders queries.ListOrdersQueryHandler
}

// NewServer creates a Server dispatching to handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		createDishHandler:  handlers.CreateDish,
		updateDishHandler:  handlers.UpdateDish,
		createOrderHandler: handlers.CreateOrder,
		updateOrderHandler: handlers.UpdateOrder,
		deleteOrderHandler: handlers.DeleteOrder,
		getDishHandler:     handlers.GetDish,
		listDishesHandler:  handlers.ListDishes,
		getOrderHandler:    handlers.GetOrder,
		listOrdersHandler:  handlers.ListOrders,
		logger:             logger.With("component", "http_server"),
	}
}

// ListDishes handles GET /dishes.
func (s *Server) ListDishes(ctx echo.Context) error {
	dishes, err := s.listDishesHandler.Handle(ctx.Request().Context(), queries.NewListDishesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Dish, len(dishes))
	for i, d := range dishes {
		response[i] = toDish(d)
	}
	return ctx.JSON(http.StatusOK, Envelope[[]Dish]{Data: response})
}

// CreateDish handles POST /dishes.
func (s *Server) CreateDish(ctx echo.Context) error {
	payload, err := readPayload(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateDishCommand(payload)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.createDishHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Envelope[Dish]{Data: toDish(created)})
}

// GetDish handles GET /dishes/{dishId}.
func (s *Server) GetDish(ctx echo.Context, dishId string) error {
	query, err := queries.NewGetDishQuery(dishId)
	if err != nil {
		return s.fail(ctx, err)
	}

	found, err := s.getDishHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Envelope[Dish]{Data: toDish(found)})
}

// UpdateDish handles PUT /dishes/{dishId}.
func (s *Server) UpdateDish(ctx echo.Context, dishId string) error {
	payload, err := readPayload(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDishCommand(dishId, payload)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.updateDishHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Envelope[Dish]{Data: toDish(updated)})
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, Envelope[[]Order]{Data: response})
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	payload, err := readPayload(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(payload)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Envelope[Order]{Data: toOrder(created)})
}

// GetOrder handles GET /orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId string) error {
	query, err := queries.NewGetOrderQuery(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Envelope[Order]{Data: toOrder(found)})
}

// UpdateOrder handles PUT /orders/{orderId}.
func (s *Server) UpdateOrder(ctx echo.Context, orderId string) error {
	payload, err := readPayload(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(orderId, payload)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Envelope[Order]{Data: toOrder(updated)})
}

// DeleteOrder handles DELETE /orders/{orderId}. Only pending orders can be deleted.
func (s *Server) DeleteOrder(ctx echo.Context, orderId string) error {
	cmd, err := commands.NewDeleteOrderCommand(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// readPayload decodes the request body and unwraps its data envelope. An empty
// body, or one that is not a JSON object, yields an empty payload.
func readPayload(ctx echo.Context) (validation.Payload, error) {
	decoder := json.NewDecoder(ctx.Request().Body)
	decoder.UseNumber()

	var body any
	if err := decoder.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return validation.Payload{}, nil
		}
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}

	object, ok := body.(map[string]any)
	if !ok {
		return validation.Payload{}, nil
	}
	return validation.FromBody(object), nil
}

func toDish(d *dish.Dish) Dish {
	return Dish{
		Id:          d.ID(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageUrl:    d.ImageURL(),
	}
}

func toOrder(o *order.Order) Order {
	items := o.Items()
	dishes := make([]LineItem, len(items))
	for i, item := range items {
		dishes[i] = LineItem{DishId: item.DishID(), Quantity: item.Quantity()}
	}

	return Order{
		Id:           o.ID(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status().String(),
		Dishes:       dishes,
	}
}
