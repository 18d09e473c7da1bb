package repository

import (
	"context"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/model"

	"gorm.io/gorm"
)

// OrderRepository is the data access contract for one order domain
// (medication or material). Services depend on this interface, not on the
// concrete GORM implementation, enabling clean unit testing via stubs.
//
// SetState is an unconditional field write with no version check, so two
// concurrent writers overwrite each other last-write-wins.
type OrderRepository interface {
	Domain() model.Domain
	Create(ctx context.Context, o *model.Order) error
	// ListPending returns orders still in state pending, newest first.
	ListPending(ctx context.Context) ([]model.Order, error)
	Get(ctx context.Context, id int64) (*model.Order, error)
	SetState(ctx context.Context, id int64, state model.OrderState) (*model.Order, error)
	// CountByItem reports how many orders reference the given item, used as
	// the master-data delete guard.
	CountByItem(ctx context.Context, itemID int64) (int64, error)

	// Used inside transactions; callers must pass the tx instance.
	SetStateTx(tx *gorm.DB, id int64, state model.OrderState) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

// StockRepository is the narrow quantity contract the reconciliation
// workflow needs from either inventory. No lower-bound clamp is enforced
// here; the guard lives in the workflow.
type StockRepository interface {
	Quantity(ctx context.Context, itemID int64) (int, error)
	SetQuantity(ctx context.Context, itemID int64, qty int) error
	SetQuantityTx(tx *gorm.DB, itemID int64, qty int) error
}
