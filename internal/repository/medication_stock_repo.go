package repository

import (
	"context"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/model"

	"gorm.io/gorm"
)

// MedicationStockRepository covers both the admin CRUD surface and the
// quantity contract the reconciliation workflow depends on.
type MedicationStockRepository interface {
	StockRepository
	Create(ctx context.Context, m *model.MedicationStock) error
	FindByID(ctx context.Context, id int64) (*model.MedicationStock, error)
	List(ctx context.Context) ([]model.MedicationStock, error)
	Update(ctx context.Context, m *model.MedicationStock) error
	Delete(ctx context.Context, id int64) error
}

type medicationStockRepo struct{ db *gorm.DB }

func NewMedicationStockRepository(db *gorm.DB) MedicationStockRepository {
	return &medicationStockRepo{db: db}
}

func (r *medicationStockRepo) Create(ctx context.Context, m *model.MedicationStock) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *medicationStockRepo) FindByID(ctx context.Context, id int64) (*model.MedicationStock, error) {
	var m model.MedicationStock
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *medicationStockRepo) List(ctx context.Context) ([]model.MedicationStock, error) {
	var stocks []model.MedicationStock
	err := r.db.WithContext(ctx).Order("id ASC").Find(&stocks).Error
	return stocks, err
}

func (r *medicationStockRepo) Update(ctx context.Context, m *model.MedicationStock) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *medicationStockRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.MedicationStock{}, id).Error
}

func (r *medicationStockRepo) Quantity(ctx context.Context, itemID int64) (int, error) {
	var m model.MedicationStock
	if err := r.db.WithContext(ctx).Select("quantity").First(&m, itemID).Error; err != nil {
		return 0, err
	}
	return m.Quantity, nil
}

func (r *medicationStockRepo) SetQuantity(ctx context.Context, itemID int64, qty int) error {
	return r.db.WithContext(ctx).Model(&model.MedicationStock{}).
		Where("id = ?", itemID).
		Update("quantity", qty).Error
}

func (r *medicationStockRepo) SetQuantityTx(tx *gorm.DB, itemID int64, qty int) error {
	return tx.Model(&model.MedicationStock{}).
		Where("id = ?", itemID).
		Update("quantity", qty).Error
}
