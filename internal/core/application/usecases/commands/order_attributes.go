package commands

import (
	"restaurant/internal/core/application/validation"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// orderPipeline is the fixed check order for order create and update payloads.
var orderPipeline = validation.NewPipeline(
	validation.RequireText("deliverTo", "Order must include a deliverTo"),
	validation.RequireText("mobileNumber", "Order must include a mobileNumber"),
	validation.RequireNonEmptyList("dishes", "Order must include at least one dish"),
	validation.EachPositiveInteger("dishes", "quantity", "Dish %d must have a quantity that is an integer greater than 0"),
	validation.OptionalText("status"),
)

// OrderAttributes are the mutable fields of an order after field validation.
// Status is resolved separately by the lifecycle stage.
type OrderAttributes struct {
	DeliverTo    string
	MobileNumber string
	Items        []order.LineItem
}

func parseOrderAttributes(p validation.Payload) (OrderAttributes, error) {
	if err := orderPipeline.Validate(p); err != nil {
		return OrderAttributes{}, err
	}

	entries := p.Objects("dishes")
	items := make([]order.LineItem, 0, len(entries))
	for _, entry := range entries {
		item, err := order.NewLineItem(entry.String("dishId"), entry.Int("quantity"))
		if err != nil {
			return OrderAttributes{}, err
		}
		items = append(items, item)
	}

	return OrderAttributes{
		DeliverTo:    p.String("deliverTo"),
		MobileNumber: p.String("mobileNumber"),
		Items:        items,
	}, nil
}

// resolveStatus reads the requested status. When the payload has none, fallback
// is used if given; otherwise the status is required.
func resolveStatus(p validation.Payload, fallback *order.Status) (order.Status, error) {
	if _, ok := p.Lookup("status"); !ok {
		if fallback != nil {
			return *fallback, nil
		}
		return order.Unknown, errs.NewValueIsRequiredErrorWithCause("status", order.ErrStatusIsNotAllowed)
	}
	return order.ParseStatus(p.String("status"))
}
