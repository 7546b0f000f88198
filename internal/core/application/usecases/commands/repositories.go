// Package commands contains the write operations of the restaurant service.
// Every command follows the same sequence: existence lookup (update and delete),
// id consistency, field validation, lifecycle rules, then exactly one store
// mutation inside a unit of work. The first failing stage ends the command.
package commands

import (
	"restaurant/internal/core/ports"
)

// UoWFactory creates the unit of work a command handler runs in.
type UoWFactory interface {
	Create() ports.UnitOfWork
}
