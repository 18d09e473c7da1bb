package service

import (
	"context"
	"errors"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/dto"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/model"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/repository"
)

var ErrMedicationNotFound = errors.New("medication not found")

type MedicationService interface {
	Create(ctx context.Context, req dto.MedicationStockRequest) (*dto.MedicationStockResponse, error)
	Get(ctx context.Context, id int64) (*dto.MedicationStockResponse, error)
	List(ctx context.Context) ([]dto.MedicationStockResponse, error)
	Update(ctx context.Context, id int64, req dto.MedicationStockRequest) (*dto.MedicationStockResponse, error)
	Delete(ctx context.Context, id int64) error
}

type medicationService struct {
	repo repository.MedicationStockRepository
}

func NewMedicationService(repo repository.MedicationStockRepository) MedicationService {
	return &medicationService{repo: repo}
}

func (s *medicationService) Create(ctx context.Context, req dto.MedicationStockRequest) (*dto.MedicationStockResponse, error) {
	stock := &model.MedicationStock{
		Name:     req.Name,
		Quantity: req.Quantity,
	}
	if err := s.repo.Create(ctx, stock); err != nil {
		return nil, err
	}
	return medicationToResponse(stock), nil
}

func (s *medicationService) Get(ctx context.Context, id int64) (*dto.MedicationStockResponse, error) {
	stock, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrMedicationNotFound
	}
	return medicationToResponse(stock), nil
}

func (s *medicationService) List(ctx context.Context) ([]dto.MedicationStockResponse, error) {
	stocks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MedicationStockResponse, len(stocks))
	for i := range stocks {
		resp[i] = *medicationToResponse(&stocks[i])
	}
	return resp, nil
}

func (s *medicationService) Update(ctx context.Context, id int64, req dto.MedicationStockRequest) (*dto.MedicationStockResponse, error) {
	stock, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrMedicationNotFound
	}
	stock.Name = req.Name
	stock.Quantity = req.Quantity
	if err := s.repo.Update(ctx, stock); err != nil {
		return nil, err
	}
	return medicationToResponse(stock), nil
}

func (s *medicationService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrMedicationNotFound
	}
	return s.repo.Delete(ctx, id)
}

func medicationToResponse(m *model.MedicationStock) *dto.MedicationStockResponse {
	return &dto.MedicationStockResponse{
		ID:       m.ID,
		Name:     m.Name,
		Quantity: m.Quantity,
	}
}
