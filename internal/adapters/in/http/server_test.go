package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/memory"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ServerSuite struct {
	suite.Suite

	store *memory.Store
	e     *echo.Echo
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	s.store = memory.NewStore()
	s.Require().NoError(s.store.Load(s.T().Context(), memory.Seed{
		Dishes: []memory.SeedDish{
			{ID: "d1", Name: "Dolcelatte and chickpea spaghetti", Description: "Spaghetti topped with a blend of dolcelatte and fresh chickpeas", Price: 19, ImageURL: "https://images.example.com/spaghetti.jpg"},
		},
		Orders: []memory.SeedOrder{
			{ID: "o1", DeliverTo: "308 Negra Arroyo Lane", MobileNumber: "(505) 143-3369", Dishes: []memory.SeedLineItem{{DishID: "d1", Quantity: 2}}},
			{ID: "o2", DeliverTo: "1600 Pennsylvania Avenue", MobileNumber: "(202) 456-1111", Status: "preparing", Dishes: []memory.SeedLineItem{{DishID: "d1", Quantity: 1}}},
		},
	}))

	s.e = newRouter(s.T(), s.store, order.AnyTransition)
}

func newRouter(t *testing.T, store *memory.Store, policy order.TransitionPolicy) *echo.Echo {
	t.Helper()

	uowFactory := store.UnitOfWorkFactory()
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateDish:  commands.NewCreateDishCommandHandler(uowFactory, store.IDGenerator()),
		UpdateDish:  commands.NewUpdateDishCommandHandler(uowFactory),
		CreateOrder: commands.NewCreateOrderCommandHandler(uowFactory, store.IDGenerator()),
		UpdateOrder: commands.NewUpdateOrderCommandHandler(uowFactory, policy),
		DeleteOrder: commands.NewDeleteOrderCommandHandler(uowFactory),
		GetDish:     queries.NewGetDishQueryHandler(store.Dishes()),
		ListDishes:  queries.NewListDishesQueryHandler(store.Dishes()),
		GetOrder:    queries.NewGetOrderQueryHandler(store.Orders()),
		ListOrders:  queries.NewListOrdersQueryHandler(store.Orders()),
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	doc, err := httpadapter.LoadOpenAPI(t.Context())
	require.NoError(t, err)

	e, err := httpadapter.NewRouter(server, doc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return e
}

func (s *ServerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (s *ServerSuite) TestListDishes() {
	rec := s.do(http.MethodGet, "/dishes", "")

	s.Equal(http.StatusOK, rec.Code)
	body := decode[httpadapter.Envelope[[]httpadapter.Dish]](s.T(), rec)
	s.Require().Len(body.Data, 1)
	s.Equal("d1", body.Data[0].Id)
	s.Equal(19, body.Data[0].Price)
}

func (s *ServerSuite) TestCreateDish() {
	rec := s.do(http.MethodPost, "/dishes",
		`{"data":{"name":"Falafel","description":"Chickpea fritters","price":9,"image_url":"https://images.example.com/falafel.jpg"}}`)

	s.Require().Equal(http.StatusCreated, rec.Code)
	created := decode[httpadapter.Envelope[httpadapter.Dish]](s.T(), rec).Data
	s.NotEmpty(created.Id)
	s.Equal("Falafel", created.Name)

	rec = s.do(http.MethodGet, "/dishes/"+created.Id, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(created, decode[httpadapter.Envelope[httpadapter.Dish]](s.T(), rec).Data)
}

func (s *ServerSuite) TestCreateDish_Validation() {
	testCases := map[string]struct {
		body     string
		message  string
		category string
	}{
		"empty body": {
			body:     "",
			message:  "Dish must include a name",
			category: "missing_field",
		},
		"no data envelope": {
			body:     `{"name":"Falafel"}`,
			message:  "Dish must include a name",
			category: "missing_field",
		},
		"empty description": {
			body:     `{"data":{"name":"Falafel","description":"","price":9,"image_url":"u"}}`,
			message:  "Dish must include a description",
			category: "missing_field",
		},
		"zero price": {
			body:     `{"data":{"name":"Falafel","description":"d","price":0,"image_url":"u"}}`,
			message:  "Dish must have a price that is an integer greater than 0",
			category: "invalid_value",
		},
		"string price": {
			body:     `{"data":{"name":"Falafel","description":"d","price":"9","image_url":"u"}}`,
			message:  "Dish must have a price that is an integer greater than 0",
			category: "invalid_type",
		},
		"fractional price": {
			body:     `{"data":{"name":"Falafel","description":"d","price":9.5,"image_url":"u"}}`,
			message:  "Dish must have a price that is an integer greater than 0",
			category: "invalid_type",
		},
		"missing image": {
			body:     `{"data":{"name":"Falafel","description":"d","price":9}}`,
			message:  "Dish must include a image_url",
			category: "missing_field",
		},
	}

	for name, tc := range testCases {
		s.Run(name, func() {
			rec := s.do(http.MethodPost, "/dishes", tc.body)

			s.Equal(http.StatusBadRequest, rec.Code)
			body := decode[httpadapter.Error](s.T(), rec)
			s.Equal(tc.message, body.Message)
			s.Equal("validation_failed", body.Kind)
			s.Equal(tc.category, body.Category)
		})
	}

	rec := s.do(http.MethodGet, "/dishes", "")
	s.Len(decode[httpadapter.Envelope[[]httpadapter.Dish]](s.T(), rec).Data, 1)
}

func (s *ServerSuite) TestMalformedBody() {
	rec := s.do(http.MethodPost, "/dishes", `{"data":`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Invalid request body", decode[httpadapter.Error](s.T(), rec).Message)
}

func (s *ServerSuite) TestGetDish_NotFound() {
	rec := s.do(http.MethodGet, "/dishes/missing", "")

	s.Equal(http.StatusNotFound, rec.Code)
	body := decode[httpadapter.Error](s.T(), rec)
	s.Equal("Dish does not exist: missing", body.Message)
	s.Equal("not_found", body.Kind)
}

func (s *ServerSuite) TestUpdateDish() {
	valid := `"name":"Spaghetti","description":"d","price":21,"image_url":"u"`

	s.Run("id omitted", func() {
		rec := s.do(http.MethodPut, "/dishes/d1", `{"data":{`+valid+`}}`)

		s.Equal(http.StatusOK, rec.Code)
		updated := decode[httpadapter.Envelope[httpadapter.Dish]](s.T(), rec).Data
		s.Equal("d1", updated.Id)
		s.Equal(21, updated.Price)
	})

	s.Run("id mismatch", func() {
		rec := s.do(http.MethodPut, "/dishes/d1", `{"data":{"id":"d2",`+valid+`}}`)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("Dish id does not match route id. Dish: d2, Route: d1.", decode[httpadapter.Error](s.T(), rec).Message)
	})

	s.Run("unknown dish is reported before field checks", func() {
		rec := s.do(http.MethodPut, "/dishes/nope", `{"data":{}}`)

		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *ServerSuite) TestCreateOrder() {
	rec := s.do(http.MethodPost, "/orders",
		`{"data":{"deliverTo":"12 Grimmauld Place","mobileNumber":"555","dishes":[{"dishId":"d1","quantity":3}]}}`)

	s.Require().Equal(http.StatusCreated, rec.Code)
	created := decode[httpadapter.Envelope[httpadapter.Order]](s.T(), rec).Data
	s.NotEmpty(created.Id)
	s.Equal("pending", created.Status)
	s.Equal([]httpadapter.LineItem{{DishId: "d1", Quantity: 3}}, created.Dishes)
}

func (s *ServerSuite) TestCreateOrder_Validation() {
	testCases := map[string]struct {
		body    string
		message string
	}{
		"missing dishes": {
			body:    `{"data":{"deliverTo":"a","mobileNumber":"b"}}`,
			message: "Order must include at least one dish",
		},
		"empty dishes": {
			body:    `{"data":{"deliverTo":"a","mobileNumber":"b","dishes":[]}}`,
			message: "Order must include at least one dish",
		},
		"second quantity missing": {
			body:    `{"data":{"deliverTo":"a","mobileNumber":"b","dishes":[{"quantity":1},{"dishId":"d1"}]}}`,
			message: "Dish 1 must have a quantity that is an integer greater than 0",
		},
		"unknown status": {
			body:    `{"data":{"deliverTo":"a","mobileNumber":"b","dishes":[{"quantity":1}],"status":"cancelled"}}`,
			message: "Order must have a status of pending, preparing, out-for-delivery, delivered",
		},
	}

	for name, tc := range testCases {
		s.Run(name, func() {
			rec := s.do(http.MethodPost, "/orders", tc.body)

			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(tc.message, decode[httpadapter.Error](s.T(), rec).Message)
		})
	}
}

func (s *ServerSuite) TestUpdateOrder() {
	rec := s.do(http.MethodPut, "/orders/o1",
		`{"data":{"id":"o1","deliverTo":"a","mobileNumber":"b","status":"delivered","dishes":[{"dishId":"d1","quantity":1}]}}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/orders/o1", "")
	s.Equal("delivered", decode[httpadapter.Envelope[httpadapter.Order]](s.T(), rec).Data.Status)

	rec = s.do(http.MethodPut, "/orders/o1",
		`{"data":{"deliverTo":"a","mobileNumber":"b","status":"cancelled","dishes":[{"dishId":"d1","quantity":1}]}}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/orders/o1", "")
	s.Equal("delivered", decode[httpadapter.Envelope[httpadapter.Order]](s.T(), rec).Data.Status)
}

func (s *ServerSuite) TestDeleteOrder() {
	s.Run("non pending is forbidden", func() {
		rec := s.do(http.MethodDelete, "/orders/o2", "")

		s.Equal(http.StatusBadRequest, rec.Code)
		body := decode[httpadapter.Error](s.T(), rec)
		s.Equal("An order cannot be deleted unless it is pending", body.Message)
		s.Equal("operation_forbidden", body.Kind)
		s.Equal(http.StatusOK, s.do(http.MethodGet, "/orders/o2", "").Code)
	})

	s.Run("pending is removed", func() {
		rec := s.do(http.MethodDelete, "/orders/o1", "")

		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
		s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/orders/o1", "").Code)
	})

	s.Run("missing", func() {
		rec := s.do(http.MethodDelete, "/orders/o1", "")

		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal("Order does not exist: o1", decode[httpadapter.Error](s.T(), rec).Message)
	})
}

func (s *ServerSuite) TestUnknownPath() {
	rec := s.do(http.MethodGet, "/menus", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("Path not found: /menus", decode[httpadapter.Error](s.T(), rec).Message)
}

func (s *ServerSuite) TestMethodNotAllowed() {
	rec := s.do(http.MethodDelete, "/dishes/d1", "")

	s.Equal(http.StatusMethodNotAllowed, rec.Code)
	s.Equal("DELETE not allowed for /dishes/d1", decode[httpadapter.Error](s.T(), rec).Message)
}

func (s *ServerSuite) TestOpenAPIDocument() {
	rec := s.do(http.MethodGet, "/openapi.json", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Restaurant API")
	s.Contains(rec.Body.String(), "/orders/{orderId}")
}

func TestForwardOnlyPolicy(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Load(t.Context(), memory.Seed{
		Orders: []memory.SeedOrder{
			{ID: "o1", DeliverTo: "a", MobileNumber: "b", Status: "delivered", Dishes: []memory.SeedLineItem{{DishID: "d1", Quantity: 1}}},
		},
	}))
	e := newRouter(t, store, order.ForwardOnly)

	req := httptest.NewRequest(http.MethodPut, "/orders/o1", strings.NewReader(
		`{"data":{"deliverTo":"a","mobileNumber":"b","status":"pending","dishes":[{"dishId":"d1","quantity":1}]}}`))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "cannot move from delivered back to pending")
}
