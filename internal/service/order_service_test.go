package service

import (
	"context"
	"testing"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/dto"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlace_CreatesPendingOrder(t *testing.T) {
	orders := newStubOrderRepo(model.DomainMedication)
	stock := newStubStockRepo()
	stock.qty[7] = 10
	svc := NewOrderService(orders, stock, t.TempDir())

	requester := uuid.New()
	resp, err := svc.Place(context.Background(), requester, dto.PlaceOrderRequest{
		ItemID: 7, Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.State)
	assert.Equal(t, "medication", resp.Domain)
	assert.Equal(t, requester.String(), resp.RequesterID)

	stored, err := orders.Get(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderPending, stored.State)
}

func TestPlace_UnknownItem(t *testing.T) {
	orders := newStubOrderRepo(model.DomainMaterial)
	stock := newStubStockRepo()
	svc := NewOrderService(orders, stock, t.TempDir())

	_, err := svc.Place(context.Background(), uuid.New(), dto.PlaceOrderRequest{
		ItemID: 99, Quantity: 1,
	})
	assert.ErrorContains(t, err, "unknown item")
}

func TestListPending_ExcludesResolved(t *testing.T) {
	orders := newStubOrderRepo(model.DomainMedication)
	stock := newStubStockRepo()
	stock.qty[7] = 50
	svc := NewOrderService(orders, stock, t.TempDir())
	reconcile := NewReconcileService(orders, stock, nil, nil, MedicationPolicy, false)

	a := seedOrder(orders, 7, 1)
	b := seedOrder(orders, 7, 2)
	seedOrder(orders, 7, 3)

	_, err := reconcile.Resolve(context.Background(), a.ID, model.OrderAccepted)
	require.NoError(t, err)
	_, err = reconcile.Resolve(context.Background(), b.ID, model.OrderRejected)
	require.NoError(t, err)

	resp, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 3, resp.Data[0].Quantity)
}

func TestExportPDF_WritesFile(t *testing.T) {
	orders := newStubOrderRepo(model.DomainMaterial)
	stock := newStubStockRepo()
	stock.qty[3] = 5
	svc := NewOrderService(orders, stock, t.TempDir())

	o := seedOrder(orders, 3, 2)
	path, err := svc.ExportPDF(context.Background(), o.ID)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestExportPDF_OrderNotFound(t *testing.T) {
	orders := newStubOrderRepo(model.DomainMaterial)
	svc := NewOrderService(orders, newStubStockRepo(), t.TempDir())

	_, err := svc.ExportPDF(context.Background(), 404)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
