package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrade/order-records-backend/pkg/config"
	"github.com/veltrade/order-records-backend/pkg/db"
	"github.com/veltrade/order-records-backend/pkg/db/models"
)

func setupOrdersTestDB(t *testing.T) *db.Client {
	t.Helper()

	client, err := db.New(context.Background(), config.DBConfig{
		Path:         ":memory:",
		BusyTimeout:  time.Second,
		MaxOpenConns: 1,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.AutoMigrate(context.Background()))
	return client
}

func seedOrder(t *testing.T, repo Repository, poNumber, client, details string, items ...models.OrderItem) *models.Order {
	t.Helper()

	qty := 0
	for _, item := range items {
		qty += item.Qty
	}
	order := &models.Order{
		PONumber:       poNumber,
		ClientName:     client,
		ProductDetails: details,
		Qty:            qty,
		Items:          items,
	}
	require.NoError(t, repo.Create(context.Background(), order))
	return order
}

func TestRepositoryListDefaultsToNewestFirst(t *testing.T) {
	client := setupOrdersTestDB(t)
	repo := NewRepository(client.DB())

	seedOrder(t, repo, "PO-001", "Harbor Hotel", "Towels x10")
	seedOrder(t, repo, "PO-002", "Bayview Resort", "Soap x50")

	list, err := repo.List(context.Background(), ListFilters{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "PO-002", list[0].PONumber)
	assert.Equal(t, "PO-001", list[1].PONumber)
}

func TestRepositoryListSearchMatchesAllTextColumns(t *testing.T) {
	client := setupOrdersTestDB(t)
	repo := NewRepository(client.DB())

	seedOrder(t, repo, "PO-100", "Harbor Hotel", "Towels x10")
	seedOrder(t, repo, "PO-200", "Bayview Resort", "Bed Sheets x5")
	seedOrder(t, repo, "PO-300", "Cliffside Inn", "towel hooks x2")

	byPO, err := repo.List(context.Background(), ListFilters{Search: "po-100"})
	require.NoError(t, err)
	require.Len(t, byPO, 1)
	assert.Equal(t, "PO-100", byPO[0].PONumber)

	byClient, err := repo.List(context.Background(), ListFilters{Search: "BAYVIEW"})
	require.NoError(t, err)
	require.Len(t, byClient, 1)
	assert.Equal(t, "PO-200", byClient[0].PONumber)

	byProduct, err := repo.List(context.Background(), ListFilters{Search: "towel"})
	require.NoError(t, err)
	assert.Len(t, byProduct, 2)
}

func TestRepositoryListSortWhitelist(t *testing.T) {
	client := setupOrdersTestDB(t)
	repo := NewRepository(client.DB())

	seedOrder(t, repo, "PO-B", "Zeta Trading", "")
	seedOrder(t, repo, "PO-A", "Alpha Foods", "")

	sorted, err := repo.List(context.Background(), ListFilters{SortBy: "client_name", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, sorted, 2)
	assert.Equal(t, "Alpha Foods", sorted[0].ClientName)

	// unrecognized sort keys fall back to id DESC rather than reaching SQL
	fallback, err := repo.List(context.Background(), ListFilters{SortBy: "po_no; DROP TABLE orders"})
	require.NoError(t, err)
	require.Len(t, fallback, 2)
	assert.Equal(t, "PO-A", fallback[0].PONumber)
}

func TestRepositoryCaseInsensitivePOUniqueness(t *testing.T) {
	client := setupOrdersTestDB(t)
	repo := NewRepository(client.DB())

	require.NoError(t, repo.Create(context.Background(), &models.Order{PONumber: "PO-ABC"}))
	err := repo.Create(context.Background(), &models.Order{PONumber: "po-abc"})
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err, "orders.po_no"))
}

func TestRepositoryFindByPONumberIsCaseInsensitive(t *testing.T) {
	client := setupOrdersTestDB(t)
	repo := NewRepository(client.DB())

	seedOrder(t, repo, "PO-ABC", "Harbor Hotel", "")

	found, err := repo.FindByPONumber(context.Background(), "po-ABC")
	require.NoError(t, err)
	assert.Equal(t, "PO-ABC", found.PONumber)
}

func TestRepositoryDeleteCascadesToItems(t *testing.T) {
	client := setupOrdersTestDB(t)
	repo := NewRepository(client.DB())

	order := seedOrder(t, repo, "PO-900", "Harbor Hotel", "",
		models.OrderItem{ProductName: "Towels", Qty: 10},
		models.OrderItem{ProductName: "Soap", Qty: 40},
	)

	count, err := repo.Delete(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	var itemCount int64
	require.NoError(t, client.DB().Model(&models.OrderItem{}).
		Where("order_id = ?", order.ID).
		Count(&itemCount).Error)
	assert.Zero(t, itemCount)

	again, err := repo.Delete(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Zero(t, again)
}

func TestRepositoryReplaceItems(t *testing.T) {
	client := setupOrdersTestDB(t)
	repo := NewRepository(client.DB())

	order := seedOrder(t, repo, "PO-700", "Harbor Hotel", "",
		models.OrderItem{ProductName: "Towels", Qty: 10},
	)

	require.NoError(t, repo.ReplaceItems(context.Background(), order.ID, []models.OrderItem{
		{ProductName: "Bath Mats", Qty: 4},
		{ProductName: "Robes", Qty: 6},
	}))

	reloaded, err := repo.Get(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 2)
	assert.Equal(t, "Bath Mats", reloaded.Items[0].ProductName)

	require.NoError(t, repo.ReplaceItems(context.Background(), order.ID, nil))
	reloaded, err = repo.Get(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Items)
}

func TestRepositorySummaryCounts(t *testing.T) {
	client := setupOrdersTestDB(t)
	repo := NewRepository(client.DB())

	orders := []*models.Order{
		{PONumber: "PO-1", PaymentStatus: "Received"},
		{PONumber: "PO-2", PaymentStatus: "payment received"},
		{PONumber: "PO-3", PaymentStatus: "Pending"},
		{PONumber: "PO-4", PaymentStatus: "written off"},
	}
	for _, order := range orders {
		require.NoError(t, repo.Create(context.Background(), order))
	}

	report, err := repo.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), report.Total)
	assert.Equal(t, int64(2), report.Received)
	assert.Equal(t, int64(1), report.Pending)
}
