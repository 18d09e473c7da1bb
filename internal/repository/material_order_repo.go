package repository

import (
	"context"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/model"

	"gorm.io/gorm"
)

type materialOrderRepo struct{ db *gorm.DB }

func NewMaterialOrderRepository(db *gorm.DB) OrderRepository {
	return &materialOrderRepo{db: db}
}

func (r *materialOrderRepo) Domain() model.Domain { return model.DomainMaterial }

func materialOrderToModel(row *model.MaterialOrder) *model.Order {
	return &model.Order{
		ID:          row.ID,
		Domain:      model.DomainMaterial,
		RequesterID: row.RequesterID,
		ItemID:      row.MaterialID,
		SupplierID:  row.SupplierID,
		Quantity:    row.Quantity,
		State:       model.OrderState(row.State),
		OrderedAt:   row.OrderedAt,
	}
}

func (r *materialOrderRepo) Create(ctx context.Context, o *model.Order) error {
	row := model.MaterialOrder{
		RequesterID: o.RequesterID,
		MaterialID:  o.ItemID,
		SupplierID:  o.SupplierID,
		Quantity:    o.Quantity,
		State:       string(model.OrderPending),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	*o = *materialOrderToModel(&row)
	return nil
}

func (r *materialOrderRepo) ListPending(ctx context.Context) ([]model.Order, error) {
	var rows []model.MaterialOrder
	err := r.db.WithContext(ctx).
		Where("state = ?", string(model.OrderPending)).
		Order("ordered_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, *materialOrderToModel(&rows[i]))
	}
	return orders, nil
}

func (r *materialOrderRepo) Get(ctx context.Context, id int64) (*model.Order, error) {
	var row model.MaterialOrder
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return materialOrderToModel(&row), nil
}

func (r *materialOrderRepo) SetState(ctx context.Context, id int64, state model.OrderState) (*model.Order, error) {
	err := r.db.WithContext(ctx).Model(&model.MaterialOrder{}).
		Where("id = ?", id).
		Update("state", string(state)).Error
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *materialOrderRepo) CountByItem(ctx context.Context, itemID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.MaterialOrder{}).
		Where("material_id = ?", itemID).
		Count(&n).Error
	return n, err
}

func (r *materialOrderRepo) SetStateTx(tx *gorm.DB, id int64, state model.OrderState) error {
	return tx.Model(&model.MaterialOrder{}).
		Where("id = ?", id).
		Update("state", string(state)).Error
}

func (r *materialOrderRepo) DB() *gorm.DB { return r.db }
