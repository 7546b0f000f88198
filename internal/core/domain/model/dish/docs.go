// Package dish provides the Dish aggregate of the restaurant menu.
//
// Key business rules:
//   - A dish has a non-empty, immutable identifier
//   - Name, description and image URL are non-empty text
//   - Price is an integer amount in the smallest currency unit and must be positive
//
// Dishes are created and updated but never deleted.
package dish
