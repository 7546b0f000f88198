package commands

import (
	"restaurant/internal/core/application/validation"
)

// dishPipeline is the fixed check order for dish create and update payloads.
var dishPipeline = validation.NewPipeline(
	validation.RequireText("name", "Dish must include a name"),
	validation.RequireText("description", "Dish must include a description"),
	validation.RequirePositiveInteger("price", "Dish must have a price that is an integer greater than 0"),
	validation.RequireText("image_url", "Dish must include a image_url"),
)

// DishAttributes are the mutable fields of a dish after validation.
type DishAttributes struct {
	Name        string
	Description string
	Price       int
	ImageURL    string
}

func parseDishAttributes(p validation.Payload) (DishAttributes, error) {
	if err := dishPipeline.Validate(p); err != nil {
		return DishAttributes{}, err
	}
	return DishAttributes{
		Name:        p.String("name"),
		Description: p.String("description"),
		Price:       p.Int("price"),
		ImageURL:    p.String("image_url"),
	}, nil
}
