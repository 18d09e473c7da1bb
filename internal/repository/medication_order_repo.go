package repository

import (
	"context"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/model"

	"gorm.io/gorm"
)

type medicationOrderRepo struct{ db *gorm.DB }

func NewMedicationOrderRepository(db *gorm.DB) OrderRepository {
	return &medicationOrderRepo{db: db}
}

func (r *medicationOrderRepo) Domain() model.Domain { return model.DomainMedication }

// medicationOrderToModel is the single row → Order conversion point for the
// medication domain.
func medicationOrderToModel(row *model.MedicationOrder) *model.Order {
	return &model.Order{
		ID:          row.ID,
		Domain:      model.DomainMedication,
		RequesterID: row.RequesterID,
		ItemID:      row.StockID,
		Quantity:    row.Quantity,
		State:       model.OrderState(row.State),
		OrderedAt:   row.OrderedAt,
	}
}

func (r *medicationOrderRepo) Create(ctx context.Context, o *model.Order) error {
	row := model.MedicationOrder{
		RequesterID: o.RequesterID,
		StockID:     o.ItemID,
		Quantity:    o.Quantity,
		State:       string(model.OrderPending),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	*o = *medicationOrderToModel(&row)
	return nil
}

func (r *medicationOrderRepo) ListPending(ctx context.Context) ([]model.Order, error) {
	var rows []model.MedicationOrder
	err := r.db.WithContext(ctx).
		Where("state = ?", string(model.OrderPending)).
		Order("ordered_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, *medicationOrderToModel(&rows[i]))
	}
	return orders, nil
}

func (r *medicationOrderRepo) Get(ctx context.Context, id int64) (*model.Order, error) {
	var row model.MedicationOrder
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return medicationOrderToModel(&row), nil
}

func (r *medicationOrderRepo) SetState(ctx context.Context, id int64, state model.OrderState) (*model.Order, error) {
	err := r.db.WithContext(ctx).Model(&model.MedicationOrder{}).
		Where("id = ?", id).
		Update("state", string(state)).Error
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *medicationOrderRepo) CountByItem(ctx context.Context, itemID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.MedicationOrder{}).
		Where("stock_id = ?", itemID).
		Count(&n).Error
	return n, err
}

func (r *medicationOrderRepo) SetStateTx(tx *gorm.DB, id int64, state model.OrderState) error {
	return tx.Model(&model.MedicationOrder{}).
		Where("id = ?", id).
		Update("state", string(state)).Error
}

func (r *medicationOrderRepo) DB() *gorm.DB { return r.db }
