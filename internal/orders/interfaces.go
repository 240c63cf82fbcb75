package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/veltrade/order-records-backend/pkg/db/models"
)

// Repository defines persistence operations for the orders tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context, filters ListFilters) ([]models.Order, error)
	Get(ctx context.Context, id int64) (*models.Order, error)
	FindByPONumber(ctx context.Context, poNumber string) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	Save(ctx context.Context, order *models.Order) error
	ReplaceItems(ctx context.Context, orderID int64, items []models.OrderItem) error
	Delete(ctx context.Context, id int64) (int64, error)
	Summary(ctx context.Context) (*SummaryReport, error)
}

// Service defines the order operations exposed to the transport layer.
type Service interface {
	List(ctx context.Context, filters ListFilters) ([]models.Order, error)
	Get(ctx context.Context, id int64) (*models.Order, error)
	Create(ctx context.Context, input OrderInput) (*models.Order, error)
	Update(ctx context.Context, id int64, input OrderInput) (*models.Order, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Summary(ctx context.Context) (*SummaryReport, error)
	Reconcile(ctx context.Context, id int64, delivered []string) (*models.Order, error)
}
