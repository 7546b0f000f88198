package dish

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	// ErrDishIsNotConstructed is returned when a Dish was not created through NewDish.
	ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")
)

// Dish is a menu item. The identifier is assigned once at construction and never
// changes; every other field is replaced as a whole by Update.
type Dish struct {
	id          string
	name        string
	description string
	price       int
	imageURL    string

	guard guard.ConstructorGuard
}

// NewDish creates a Dish and checks every invariant, reporting all violations at once.
//
// Example:
//
//	d, err := dish.NewDish(gen.NextID(), "Dolcelatte and chickpea spaghetti",
//	    "Spaghetti topped with a blend of dolcelatte and fresh chickpeas", 19,
//	    "https://images.example.com/spaghetti.jpg")
func NewDish(id, name, description string, price int, imageURL string) (*Dish, error) {
	d := &Dish{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setID(id),
		d.setDetails(name, description, price, imageURL),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Dish was created through NewDish.
func (d *Dish) Validate() error {
	if d == nil {
		return ErrDishIsNotConstructed
	}
	return d.guard.Validate(ErrDishIsNotConstructed)
}

// ID returns the dish identifier.
func (d *Dish) ID() string {
	return d.id
}

// Name returns the dish name.
func (d *Dish) Name() string {
	return d.name
}

// Description returns the dish description.
func (d *Dish) Description() string {
	return d.description
}

// Price returns the price in the smallest currency unit.
func (d *Dish) Price() int {
	return d.price
}

// ImageURL returns the reference to the dish image.
func (d *Dish) ImageURL() string {
	return d.imageURL
}

// Update overwrites every mutable field. The dish is left untouched if any value
// violates an invariant.
func (d *Dish) Update(name, description string, price int, imageURL string) error {
	next := *d
	if err := next.setDetails(name, description, price, imageURL); err != nil {
		return err
	}
	*d = next
	return nil
}

func (d *Dish) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	d.id = id
	return nil
}

func (d *Dish) setDetails(name, description string, price int, imageURL string) error {
	var err error
	if name == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("name"))
	}
	if description == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("description"))
	}
	if price <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price)))
	}
	if imageURL == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("image_url"))
	}
	if err != nil {
		return err
	}

	d.name = name
	d.description = description
	d.price = price
	d.imageURL = imageURL
	return nil
}
