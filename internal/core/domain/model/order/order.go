package order

import (
	"errors"
	"fmt"
	"slices"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a customer order. The identifier never changes; Update replaces every
// other field and moves the status according to the transition policy.
//
// Order follows these invariants:
//   - id, deliverTo and mobileNumber are non-empty
//   - status is one of the four lifecycle states
//   - items is non-empty and every quantity is positive
type Order struct {
	id           string
	deliverTo    string
	mobileNumber string
	status       Status
	items        []LineItem

	guard guard.ConstructorGuard
}

// NewOrder creates an Order in the given status.
//
// Example:
//
//	item, _ := order.NewLineItem(dishID, 2)
//	o, err := order.NewOrder(gen.NextID(), "308 Negra Arroyo Lane", "(505) 143-3369",
//	    order.Pending, []order.LineItem{item})
func NewOrder(id, deliverTo, mobileNumber string, status Status, items []LineItem) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setContact(deliverTo, mobileNumber),
		o.setStatus(status),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier.
func (o *Order) ID() string {
	return o.id
}

// DeliverTo returns the delivery address.
func (o *Order) DeliverTo() string {
	return o.deliverTo
}

// MobileNumber returns the contact number.
func (o *Order) MobileNumber() string {
	return o.mobileNumber
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the ordered line items.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

// Update overwrites every mutable field. The status change must be allowed by
// policy. Nothing is changed if any value is rejected.
func (o *Order) Update(deliverTo, mobileNumber string, status Status, items []LineItem, policy TransitionPolicy) error {
	next, err := o.status.TransitionTo(status, policy)
	if err != nil {
		return err
	}

	updated := *o
	if err = errors.Join(
		updated.setContact(deliverTo, mobileNumber),
		updated.setItems(items),
	); err != nil {
		return err
	}
	updated.status = next

	*o = updated
	return nil
}

// ValidateDelete reports whether the order may be removed in its current state.
func (o *Order) ValidateDelete() error {
	return o.status.ValidateDelete()
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

func (o *Order) setContact(deliverTo, mobileNumber string) error {
	var err error
	if deliverTo == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("deliverTo"))
	}
	if mobileNumber == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("mobileNumber"))
	}
	if err != nil {
		return err
	}
	o.deliverTo = deliverTo
	o.mobileNumber = mobileNumber
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("dishes")
	}
	for i, item := range items {
		if item.quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("dishes[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", item.quantity),
			)
		}
	}
	o.items = slices.Clone(items)
	return nil
}
