package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/dto"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/model"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/repository"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/worker"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrMissingOrderID    = errors.New("missing order id")
	ErrMissingItemID     = errors.New("missing or invalid item id")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderInProgress   = errors.New("order resolution already in progress")
	ErrInvalidTarget     = errors.New("target state must be accepted or rejected")
	ErrOrderNotFound     = errors.New("order not found")
)

// DomainPolicy captures how a domain's stock reacts to order resolution.
//
// Consumable domains (medication) decrement stock on acceptance and refuse
// to go below zero; a rejected order leaves stock untouched. Non-consumable
// domains (material) decrement unconditionally on acceptance and restore
// the quantity on rejection.
type DomainPolicy struct {
	Consumable    bool
	RequireItemID bool
}

var (
	MedicationPolicy = DomainPolicy{Consumable: true, RequireItemID: false}
	MaterialPolicy   = DomainPolicy{Consumable: false, RequireItemID: true}
)

type ReconcileService interface {
	// Resolve transitions a pending order to accepted or rejected and
	// adjusts the domain's stock according to the policy.
	Resolve(ctx context.Context, orderID int64, target model.OrderState) (*dto.OrderResponse, error)
}

type reconcileService struct {
	orders     repository.OrderRepository
	stock      repository.StockRepository
	users      repository.UserRepository
	dispatcher *worker.Dispatcher
	policy     DomainPolicy
	atomic     bool

	mu       sync.Mutex
	inflight map[int64]struct{}
}

func NewReconcileService(
	orders repository.OrderRepository,
	stock repository.StockRepository,
	users repository.UserRepository,
	dispatcher *worker.Dispatcher,
	policy DomainPolicy,
	atomic bool,
) ReconcileService {
	return &reconcileService{
		orders:     orders,
		stock:      stock,
		users:      users,
		dispatcher: dispatcher,
		policy:     policy,
		atomic:     atomic,
		inflight:   make(map[int64]struct{}),
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *reconcileService) Resolve(ctx context.Context, orderID int64, target model.OrderState) (*dto.OrderResponse, error) {
	if orderID <= 0 {
		return nil, ErrMissingOrderID
	}
	if target != model.OrderAccepted && target != model.OrderRejected {
		return nil, ErrInvalidTarget
	}

	if !s.acquire(orderID) {
		return nil, ErrOrderInProgress
	}
	defer s.release(orderID)

	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if s.policy.RequireItemID && order.ItemID <= 0 {
		return nil, ErrMissingItemID
	}

	if s.atomic {
		err = s.resolveAtomic(ctx, order, target)
	} else {
		err = s.resolveSequential(ctx, order, target)
	}
	if err != nil {
		return nil, err
	}

	order.State = target
	s.notify(ctx, order)
	return orderToResponse(order), nil
}

// resolveSequential performs the two writes in order: the state change
// commits first and is NOT rolled back if the stock adjustment fails.
// A consumable acceptance that would drive stock negative therefore leaves
// the order accepted with stock untouched.
func (s *reconcileService) resolveSequential(ctx context.Context, order *model.Order, target model.OrderState) error {
	if _, err := s.orders.SetState(ctx, order.ID, target); err != nil {
		return err
	}

	delta := s.stockDelta(order, target)
	if delta == 0 {
		return nil
	}

	qty, err := s.stock.Quantity(ctx, order.ItemID)
	if err != nil {
		return err
	}
	if s.policy.Consumable && qty+delta < 0 {
		return ErrInsufficientStock
	}
	return s.stock.SetQuantity(ctx, order.ItemID, qty+delta)
}

// resolveAtomic wraps both writes in a single transaction: the stock
// pre-check runs before any write, so an insufficient consumable stock
// aborts the resolution without changing the order state.
func (s *reconcileService) resolveAtomic(ctx context.Context, order *model.Order, target model.OrderState) error {
	delta := s.stockDelta(order, target)

	if delta != 0 {
		qty, err := s.stock.Quantity(ctx, order.ItemID)
		if err != nil {
			return err
		}
		if s.policy.Consumable && qty+delta < 0 {
			return ErrInsufficientStock
		}
		return runTx(ctx, s.orders.DB(), func(tx *gorm.DB) error {
			if err := s.orders.SetStateTx(tx, order.ID, target); err != nil {
				return err
			}
			return s.stock.SetQuantityTx(tx, order.ItemID, qty+delta)
		})
	}

	return runTx(ctx, s.orders.DB(), func(tx *gorm.DB) error {
		return s.orders.SetStateTx(tx, order.ID, target)
	})
}

// stockDelta returns the signed quantity change the resolution applies.
func (s *reconcileService) stockDelta(order *model.Order, target model.OrderState) int {
	if target == model.OrderAccepted {
		return -order.Quantity
	}
	// rejected: consumable stock was never reserved, nothing to restore
	if s.policy.Consumable {
		return 0
	}
	return order.Quantity
}

// notify emails the requester about the resolution, best-effort.
func (s *reconcileService) notify(ctx context.Context, order *model.Order) {
	if s.dispatcher == nil || s.users == nil {
		return
	}
	user, err := s.users.FindByID(ctx, order.RequesterID)
	if err != nil {
		log.Warn().Int64("order_id", order.ID).Err(err).Msg("reconcile: requester lookup failed, skipping notice")
		return
	}
	payload := worker.OrderNoticePayload{
		ToEmail: user.Email,
		Subject: fmt.Sprintf("Order #%d %s", order.ID, order.State),
		Body: fmt.Sprintf(
			"Hello %s,\n\nYour %s order #%d (quantity %d) has been %s.\n",
			user.Name, order.Domain, order.ID, order.Quantity, order.State,
		),
	}
	if err := s.dispatcher.EnqueueOrderNotice(ctx, payload); err != nil {
		log.Warn().Int64("order_id", order.ID).Err(err).Msg("reconcile: notice enqueue failed")
	}
}

func (s *reconcileService) acquire(orderID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[orderID]; busy {
		return false
	}
	s.inflight[orderID] = struct{}{}
	return true
}

func (s *reconcileService) release(orderID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, orderID)
}
