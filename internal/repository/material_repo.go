package repository

import (
	"context"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/model"

	"gorm.io/gorm"
)

// MaterialRepository is the master-data contract for materials. The material
// quantity column doubles as the domain's stock, so this repository also
// satisfies StockRepository.
type MaterialRepository interface {
	StockRepository
	Create(ctx context.Context, m *model.Material) error
	FindByID(ctx context.Context, id int64) (*model.Material, error)
	List(ctx context.Context) ([]model.Material, error)
	Update(ctx context.Context, m *model.Material) error
	Delete(ctx context.Context, id int64) error
}

type materialRepo struct{ db *gorm.DB }

func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepo{db: db}
}

func (r *materialRepo) Create(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *materialRepo) FindByID(ctx context.Context, id int64) (*model.Material, error) {
	var m model.Material
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *materialRepo) List(ctx context.Context) ([]model.Material, error) {
	var materials []model.Material
	err := r.db.WithContext(ctx).Order("id ASC").Find(&materials).Error
	return materials, err
}

func (r *materialRepo) Update(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *materialRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Material{}, id).Error
}

func (r *materialRepo) Quantity(ctx context.Context, itemID int64) (int, error) {
	var m model.Material
	if err := r.db.WithContext(ctx).Select("quantity").First(&m, itemID).Error; err != nil {
		return 0, err
	}
	return m.Quantity, nil
}

func (r *materialRepo) SetQuantity(ctx context.Context, itemID int64, qty int) error {
	return r.db.WithContext(ctx).Model(&model.Material{}).
		Where("id = ?", itemID).
		Update("quantity", qty).Error
}

func (r *materialRepo) SetQuantityTx(tx *gorm.DB, itemID int64, qty int) error {
	return tx.Model(&model.Material{}).
		Where("id = ?", itemID).
		Update("quantity", qty).Error
}
