package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/memory"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/jobs"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	config Config
	store  *memory.Store
	policy order.TransitionPolicy
	logger *slog.Logger
}

// NewCompositionRoot validates configuration, creates the store and loads the
// seed file when one is configured.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (CompositionRoot, error) {
	config = config.WithDefaults()

	policy, err := config.StatusPolicy()
	if err != nil {
		return CompositionRoot{}, err
	}

	store := memory.NewStore()
	if config.SeedFile != "" {
		seed, loadErr := memory.LoadSeed(config.SeedFile)
		if loadErr != nil {
			return CompositionRoot{}, loadErr
		}
		if err = store.Load(ctx, seed); err != nil {
			return CompositionRoot{}, fmt.Errorf("load seed %s: %w", config.SeedFile, err)
		}
		logger.InfoContext(ctx, "Seed loaded",
			"file", config.SeedFile, "dishes", len(seed.Dishes), "orders", len(seed.Orders))
	}

	return CompositionRoot{
		config: config,
		store:  store,
		policy: policy,
		logger: logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	return commands.NewCreateDishCommandHandler(c.store.UnitOfWorkFactory(), c.store.IDGenerator())
}

func (c *CompositionRoot) CreateUpdateDishCommandHandler() commands.UpdateDishCommandHandler {
	return commands.NewUpdateDishCommandHandler(c.store.UnitOfWorkFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.store.UnitOfWorkFactory(), c.store.IDGenerator())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.store.UnitOfWorkFactory(), c.policy)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.store.UnitOfWorkFactory())
}

func (c *CompositionRoot) CreateGetDishQueryHandler() queries.GetDishQueryHandler {
	return queries.NewGetDishQueryHandler(c.store.Dishes())
}

func (c *CompositionRoot) CreateListDishesQueryHandler() queries.ListDishesQueryHandler {
	return queries.NewListDishesQueryHandler(c.store.Dishes())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store.Orders())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.store.Orders())
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateDish:  c.CreateCreateDishCommandHandler(),
		UpdateDish:  c.CreateUpdateDishCommandHandler(),
		CreateOrder: c.CreateCreateOrderCommandHandler(),
		UpdateOrder: c.CreateUpdateOrderCommandHandler(),
		DeleteOrder: c.CreateDeleteOrderCommandHandler(),
		GetDish:     c.CreateGetDishQueryHandler(),
		ListDishes:  c.CreateListDishesQueryHandler(),
		GetOrder:    c.CreateGetOrderQueryHandler(),
		ListOrders:  c.CreateListOrdersQueryHandler(),
	}, c.logger)
}

// CreateRouter wires the server, the API document and middleware into echo.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := httpadapter.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	return httpadapter.NewRouter(c.CreateServer(), doc, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateListOrdersQueryHandler(), c.config.OrderReportSchedule, c.logger)
}

// Config returns the effective configuration.
func (c *CompositionRoot) Config() Config {
	return c.config
}
