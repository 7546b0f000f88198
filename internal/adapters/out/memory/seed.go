package memory

import (
	"context"
	"errors"
	"fmt"
	"os"

	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/order"

	"gopkg.in/yaml.v3"
)

// Seed is the fixture document loaded at startup.
//
//	dishes:
//	  - id: 3c637d011d844ebab1205fef8a7e36ea
//	    name: Century Eggs
//	    description: Whole eggs preserved in clay and ash for a few months
//	    price: 17
//	    image_url: https://images.example.com/eggs.jpg
//	orders:
//	  - id: f6069a542257054114138301947672ba
//	    deliverTo: 1600 Pennsylvania Avenue NW, Washington, DC 20500
//	    mobileNumber: (202) 456-1111
//	    status: out-for-delivery
//	    dishes:
//	      - dishId: 3c637d011d844ebab1205fef8a7e36ea
//	        quantity: 1
type Seed struct {
	Dishes []SeedDish  `yaml:"dishes"`
	Orders []SeedOrder `yaml:"orders"`
}

type SeedDish struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       int    `yaml:"price"`
	ImageURL    string `yaml:"image_url"`
}

type SeedOrder struct {
	ID           string         `yaml:"id"`
	DeliverTo    string         `yaml:"deliverTo"`
	MobileNumber string         `yaml:"mobileNumber"`
	Status       string         `yaml:"status"`
	Dishes       []SeedLineItem `yaml:"dishes"`
}

type SeedLineItem struct {
	DishID   string `yaml:"dishId"`
	Quantity int    `yaml:"quantity"`
}

// LoadSeed reads and decodes a fixture file. Unknown keys are rejected.
func LoadSeed(path string) (Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return Seed{}, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	var seed Seed
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err = decoder.Decode(&seed); err != nil {
		return Seed{}, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return seed, nil
}

// Build converts the fixture into aggregates, applying the same invariants as
// created records. An omitted order status defaults to pending.
func (s Seed) Build() ([]*dish.Dish, []*order.Order, error) {
	seen := make(map[string]struct{})
	unique := func(kind string, i int, id string) error {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("seed %s %d: duplicate id %s", kind, i, id)
		}
		seen[id] = struct{}{}
		return nil
	}

	dishes := make([]*dish.Dish, 0, len(s.Dishes))
	for i, sd := range s.Dishes {
		d, err := dish.NewDish(sd.ID, sd.Name, sd.Description, sd.Price, sd.ImageURL)
		if err != nil {
			return nil, nil, fmt.Errorf("seed dish %d: %w", i, err)
		}
		if err = unique("dish", i, sd.ID); err != nil {
			return nil, nil, err
		}
		dishes = append(dishes, d)
	}

	orders := make([]*order.Order, 0, len(s.Orders))
	for i, so := range s.Orders {
		o, err := so.build()
		if err != nil {
			return nil, nil, fmt.Errorf("seed order %d: %w", i, err)
		}
		if err = unique("order", i, so.ID); err != nil {
			return nil, nil, err
		}
		orders = append(orders, o)
	}

	return dishes, orders, nil
}

func (so SeedOrder) build() (*order.Order, error) {
	status := order.Pending
	if so.Status != "" {
		parsed, err := order.ParseStatus(so.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	items := make([]order.LineItem, 0, len(so.Dishes))
	var err error
	for j, sl := range so.Dishes {
		item, itemErr := order.NewLineItem(sl.DishID, sl.Quantity)
		if itemErr != nil {
			err = errors.Join(err, fmt.Errorf("dish %d: %w", j, itemErr))
			continue
		}
		items = append(items, item)
	}
	if err != nil {
		return nil, err
	}

	return order.NewOrder(so.ID, so.DeliverTo, so.MobileNumber, status, items)
}

// Load validates the fixture and appends every record in one unit of work.
// Nothing is stored if any record is rejected.
func (s *Store) Load(ctx context.Context, seed Seed) error {
	dishes, orders, err := seed.Build()
	if err != nil {
		return err
	}

	uow := s.UnitOfWorkFactory().Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	for _, d := range dishes {
		if err = uow.DishRepository().Add(ctx, d); err != nil {
			return err
		}
	}
	for _, o := range orders {
		if err = uow.OrderRepository().Add(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
