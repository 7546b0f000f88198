package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Dish is the wire representation of a menu item.
type Dish struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageUrl    string `json:"image_url"`
}

// LineItem is one dish reference inside an order.
type LineItem struct {
	DishId   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

// Order is the wire representation of a customer order.
type Order struct {
	Id           string     `json:"id"`
	DeliverTo    string     `json:"deliverTo"`
	MobileNumber string     `json:"mobileNumber"`
	Status       string     `json:"status"`
	Dishes       []LineItem `json:"dishes"`
}

// Envelope wraps every successful response body.
type Envelope[T any] struct {
	Data T `json:"data"`
}

// Error is the body of every failed response.
type Error struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Kind     string `json:"kind,omitempty"`
	Category string `json:"category,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List dishes
	// (GET /dishes)
	ListDishes(ctx echo.Context) error
	// Create a dish
	// (POST /dishes)
	CreateDish(ctx echo.Context) error
	// Read a dish
	// (GET /dishes/{dishId})
	GetDish(ctx echo.Context, dishId string) error
	// Update a dish
	// (PUT /dishes/{dishId})
	UpdateDish(ctx echo.Context, dishId string) error
	// List orders
	// (GET /orders)
	ListOrders(ctx echo.Context) error
	// Create an order
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// Read an order
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId string) error
	// Update an order
	// (PUT /orders/{orderId})
	UpdateOrder(ctx echo.Context, orderId string) error
	// Delete a pending order
	// (DELETE /orders/{orderId})
	DeleteOrder(ctx echo.Context, orderId string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListDishes(ctx echo.Context) error {
	return w.Handler.ListDishes(ctx)
}

func (w *ServerInterfaceWrapper) CreateDish(ctx echo.Context) error {
	return w.Handler.CreateDish(ctx)
}

func (w *ServerInterfaceWrapper) GetDish(ctx echo.Context) error {
	dishId, err := bindPathParam(ctx, "dishId")
	if err != nil {
		return err
	}
	return w.Handler.GetDish(ctx, dishId)
}

func (w *ServerInterfaceWrapper) UpdateDish(ctx echo.Context) error {
	dishId, err := bindPathParam(ctx, "dishId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateDish(ctx, dishId)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	return w.Handler.ListOrders(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	orderId, err := bindPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	orderId, err := bindPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, orderId)
}

func bindPathParam(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group the handlers are
// registered on.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/dishes", wrapper.ListDishes)
	router.POST(baseURL+"/dishes", wrapper.CreateDish)
	router.GET(baseURL+"/dishes/:dishId", wrapper.GetDish)
	router.PUT(baseURL+"/dishes/:dishId", wrapper.UpdateDish)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.PUT(baseURL+"/orders/:orderId", wrapper.UpdateOrder)
	router.DELETE(baseURL+"/orders/:orderId", wrapper.DeleteOrder)
}
