package service

import (
	"context"
	"errors"
	"time"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/dto"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/infra"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/model"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/repository"

	"github.com/google/uuid"
)

type OrderService interface {
	Place(ctx context.Context, requesterID uuid.UUID, req dto.PlaceOrderRequest) (*dto.OrderResponse, error)
	ListPending(ctx context.Context) (*dto.OrderListResponse, error)
	Get(ctx context.Context, id int64) (*dto.OrderResponse, error)
	// ExportPDF writes the printable order sheet and returns its path.
	ExportPDF(ctx context.Context, id int64) (string, error)
}

type orderService struct {
	orders      repository.OrderRepository
	stock       repository.StockRepository
	storagePath string
}

func NewOrderService(orders repository.OrderRepository, stock repository.StockRepository, storagePath string) OrderService {
	return &orderService{orders: orders, stock: stock, storagePath: storagePath}
}

func (s *orderService) Place(ctx context.Context, requesterID uuid.UUID, req dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	// The item must exist before an order can reference it.
	if _, err := s.stock.Quantity(ctx, req.ItemID); err != nil {
		return nil, errors.New("unknown item")
	}

	order := &model.Order{
		Domain:      s.orders.Domain(),
		RequesterID: requesterID,
		ItemID:      req.ItemID,
		SupplierID:  req.SupplierID,
		Quantity:    req.Quantity,
		State:       model.OrderPending,
		OrderedAt:   time.Now(),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return orderToResponse(order), nil
}

func (s *orderService) ListPending(ctx context.Context) (*dto.OrderListResponse, error) {
	orders, err := s.orders.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		data = append(data, *orderToResponse(&orders[i]))
	}
	return &dto.OrderListResponse{Data: data}, nil
}

func (s *orderService) Get(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return orderToResponse(order), nil
}

func (s *orderService) ExportPDF(ctx context.Context, id int64) (string, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return "", ErrOrderNotFound
	}
	return infra.GenerateOrderPDF(order, s.storagePath)
}

func orderToResponse(o *model.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:          o.ID,
		Domain:      string(o.Domain),
		RequesterID: o.RequesterID.String(),
		ItemID:      o.ItemID,
		SupplierID:  o.SupplierID,
		Quantity:    o.Quantity,
		State:       string(o.State),
		OrderedAt:   o.OrderedAt.Format("2006-01-02T15:04:05Z"),
	}
}
