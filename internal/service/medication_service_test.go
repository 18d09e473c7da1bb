package service

import (
	"context"
	"errors"
	"testing"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/dto"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/model"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubMedicationRepo struct {
	stocks map[int64]*model.MedicationStock
	nextID int64
}

func newStubMedicationRepo() *stubMedicationRepo {
	return &stubMedicationRepo{stocks: make(map[int64]*model.MedicationStock)}
}

func (r *stubMedicationRepo) Create(_ context.Context, m *model.MedicationStock) error {
	r.nextID++
	m.ID = r.nextID
	r.stocks[m.ID] = m
	return nil
}

func (r *stubMedicationRepo) FindByID(_ context.Context, id int64) (*model.MedicationStock, error) {
	m, ok := r.stocks[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return m, nil
}

func (r *stubMedicationRepo) List(_ context.Context) ([]model.MedicationStock, error) {
	var out []model.MedicationStock
	for _, m := range r.stocks {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMedicationRepo) Update(_ context.Context, m *model.MedicationStock) error {
	r.stocks[m.ID] = m
	return nil
}

func (r *stubMedicationRepo) Delete(_ context.Context, id int64) error {
	delete(r.stocks, id)
	return nil
}

func (r *stubMedicationRepo) Quantity(_ context.Context, itemID int64) (int, error) {
	m, ok := r.stocks[itemID]
	if !ok {
		return 0, errors.New("not found")
	}
	return m.Quantity, nil
}

func (r *stubMedicationRepo) SetQuantity(_ context.Context, itemID int64, qty int) error {
	m, ok := r.stocks[itemID]
	if !ok {
		return errors.New("not found")
	}
	m.Quantity = qty
	return nil
}

func (r *stubMedicationRepo) SetQuantityTx(_ *gorm.DB, itemID int64, qty int) error {
	return r.SetQuantity(context.Background(), itemID, qty)
}

var _ repository.MedicationStockRepository = (*stubMedicationRepo)(nil)

func TestMedicationCRUD(t *testing.T) {
	repo := newStubMedicationRepo()
	svc := NewMedicationService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.MedicationStockRequest{Name: "Paracetamol 500mg", Quantity: 100})
	require.NoError(t, err)
	assert.Equal(t, 100, created.Quantity)

	updated, err := svc.Update(ctx, created.ID, dto.MedicationStockRequest{Name: "Paracetamol 500mg", Quantity: 80})
	require.NoError(t, err)
	assert.Equal(t, 80, updated.Quantity)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrMedicationNotFound)
}

func TestMedicationUpdate_NotFound(t *testing.T) {
	svc := NewMedicationService(newStubMedicationRepo())
	_, err := svc.Update(context.Background(), 99, dto.MedicationStockRequest{Name: "X", Quantity: 1})
	assert.ErrorIs(t, err, ErrMedicationNotFound)
}
