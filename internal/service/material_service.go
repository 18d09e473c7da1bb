package service

import (
	"context"
	"errors"
	"time"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/dto"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/model"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/repository"
)

var (
	ErrMaterialNotFound = errors.New("material not found")
	ErrMaterialOrdered  = errors.New("material has orders and cannot be deleted")
)

type MaterialService interface {
	Create(ctx context.Context, req dto.MaterialRequest) (*dto.MaterialResponse, error)
	Get(ctx context.Context, id int64) (*dto.MaterialResponse, error)
	List(ctx context.Context) ([]dto.MaterialResponse, error)
	Update(ctx context.Context, id int64, req dto.MaterialRequest) (*dto.MaterialResponse, error)
	Delete(ctx context.Context, id int64) error
}

type materialService struct {
	repo   repository.MaterialRepository
	orders repository.OrderRepository
}

func NewMaterialService(repo repository.MaterialRepository, orders repository.OrderRepository) MaterialService {
	return &materialService{repo: repo, orders: orders}
}

func (s *materialService) Create(ctx context.Context, req dto.MaterialRequest) (*dto.MaterialResponse, error) {
	expiry, err := parseExpiry(req.ExpiryDate)
	if err != nil {
		return nil, err
	}
	material := &model.Material{
		Name:         req.Name,
		Description:  req.Description,
		Quantity:     req.Quantity,
		SerialNumber: req.SerialNumber,
		Condition:    req.Condition,
		ExpiryDate:   expiry,
	}
	if err := s.repo.Create(ctx, material); err != nil {
		return nil, err
	}
	return materialToResponse(material), nil
}

func (s *materialService) Get(ctx context.Context, id int64) (*dto.MaterialResponse, error) {
	material, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrMaterialNotFound
	}
	return materialToResponse(material), nil
}

func (s *materialService) List(ctx context.Context) ([]dto.MaterialResponse, error) {
	materials, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MaterialResponse, len(materials))
	for i := range materials {
		resp[i] = *materialToResponse(&materials[i])
	}
	return resp, nil
}

func (s *materialService) Update(ctx context.Context, id int64, req dto.MaterialRequest) (*dto.MaterialResponse, error) {
	material, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrMaterialNotFound
	}
	expiry, err := parseExpiry(req.ExpiryDate)
	if err != nil {
		return nil, err
	}
	material.Name = req.Name
	material.Description = req.Description
	material.Quantity = req.Quantity
	material.SerialNumber = req.SerialNumber
	material.Condition = req.Condition
	material.ExpiryDate = expiry
	if err := s.repo.Update(ctx, material); err != nil {
		return nil, err
	}
	return materialToResponse(material), nil
}

// Delete refuses to remove a material that any order references.
func (s *materialService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrMaterialNotFound
	}
	count, err := s.orders.CountByItem(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrMaterialOrdered
	}
	return s.repo.Delete(ctx, id)
}

func parseExpiry(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, errors.New("invalid expiry date")
	}
	return &t, nil
}

func materialToResponse(m *model.Material) *dto.MaterialResponse {
	var expiry *string
	if m.ExpiryDate != nil {
		v := m.ExpiryDate.Format("2006-01-02")
		expiry = &v
	}
	return &dto.MaterialResponse{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Quantity:     m.Quantity,
		SerialNumber: m.SerialNumber,
		Condition:    m.Condition,
		ExpiryDate:   expiry,
		AddedAt:      m.AddedAt.Format("2006-01-02T15:04:05Z"),
	}
}
