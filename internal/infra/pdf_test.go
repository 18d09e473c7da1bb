package infra

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderPDF(t *testing.T) {
	dir := t.TempDir()
	supplierID := int64(3)
	order := &model.Order{
		ID:          42,
		Domain:      model.DomainMaterial,
		RequesterID: uuid.New(),
		ItemID:      7,
		SupplierID:  &supplierID,
		Quantity:    5,
		State:       model.OrderPending,
		OrderedAt:   time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}

	path, err := GenerateOrderPDF(order, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "order_42.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(500))
}

func TestGenerateOrderPDF_CreatesStorageDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "pdfs")
	order := &model.Order{ID: 1, Domain: model.DomainMedication, Quantity: 1, State: model.OrderAccepted, OrderedAt: time.Now()}

	path, err := GenerateOrderPDF(order, dir)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
