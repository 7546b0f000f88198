// Package order provides the Order aggregate and its status lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding delivery details, status and line items
//   - Status: the closed set of lifecycle states and the transition rules between them
//   - LineItem: one ordered dish and its quantity
//
// Key business rules:
//   - Delivery address and mobile number are non-empty text
//   - An order holds at least one line item and every quantity is positive
//   - Status is one of pending, preparing, out-for-delivery, delivered
//   - Only a pending order may be deleted
package order
