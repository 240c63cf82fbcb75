package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/veltrade/order-records-backend/pkg/config"
	"github.com/veltrade/order-records-backend/pkg/db/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := New(context.Background(), config.DBConfig{
		Path:         ":memory:",
		BusyTimeout:  time.Second,
		MaxOpenConns: 1,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.AutoMigrate(context.Background()))
	return client
}

func TestNewRequiresPath(t *testing.T) {
	_, err := New(context.Background(), config.DBConfig{}, nil)
	require.Error(t, err)
}

func TestPing(t *testing.T) {
	client := newTestClient(t)
	assert.NoError(t, client.Ping(context.Background()))
}

func TestAutoMigrateCreatesOrderTables(t *testing.T) {
	client := newTestClient(t)

	order := models.Order{PONumber: "PO-100", ClientName: "Harbor Hotel"}
	require.NoError(t, client.DB().Create(&order).Error)

	item := models.OrderItem{OrderID: order.ID, ProductName: "Napkins", Qty: 10}
	require.NoError(t, client.DB().Create(&item).Error)
}

func TestUniqueViolationDetection(t *testing.T) {
	client := newTestClient(t)

	require.NoError(t, client.DB().Create(&models.Order{PONumber: "PO-200"}).Error)
	err := client.DB().Create(&models.Order{PONumber: "po-200"}).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err, "orders.po_no"))
	assert.True(t, IsUniqueViolation(err, ""))
	assert.False(t, IsUniqueViolation(err, "orders.invoice_no"))
}

func TestWithTxRollsBackOnError(t *testing.T) {
	client := newTestClient(t)
	sentinel := errors.New("boom")

	err := client.WithTx(context.Background(), func(tx *gorm.DB) error {
		if err := tx.Create(&models.Order{PONumber: "PO-300"}).Error; err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	var count int64
	require.NoError(t, client.DB().Model(&models.Order{}).Where("po_no = ?", "PO-300").Count(&count).Error)
	assert.Zero(t, count)
}
