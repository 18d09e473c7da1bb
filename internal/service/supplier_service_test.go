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
)

type stubSupplierRepo struct {
	suppliers map[int64]*model.Supplier
	nextID    int64
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[int64]*model.Supplier)}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	r.nextID++
	s.ID = r.nextID
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id int64) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	var out []model.Supplier
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) Delete(_ context.Context, id int64) error {
	delete(r.suppliers, id)
	return nil
}

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

func supplierReq(name string) dto.SupplierRequest {
	return dto.SupplierRequest{
		Name:    name,
		Address: "1 Main Street",
		Email:   "contact@acme.example",
		Phone:   "0123456789",
		Website: "https://acme.example",
	}
}

func TestSupplierCRUD(t *testing.T) {
	repo := newStubSupplierRepo()
	svc := NewSupplierService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, supplierReq("Acme"))
	require.NoError(t, err)
	assert.Equal(t, "Acme", created.Name)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	updated, err := svc.Update(ctx, created.ID, supplierReq("Acme Ltd"))
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", updated.Name)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestSupplierDelete_NotFound(t *testing.T) {
	svc := NewSupplierService(newStubSupplierRepo())
	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}
