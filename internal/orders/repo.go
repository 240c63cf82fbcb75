package orders

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/veltrade/order-records-backend/pkg/db/models"
)

// sortColumns whitelists the fields the list endpoint may sort by.
var sortColumns = map[string]string{
	"id":              "id",
	"po_no":           "po_no",
	"po_date":         "po_date",
	"client_name":     "client_name",
	"qty":             "qty",
	"dispatch_status": "dispatch_status",
	"invoice_date":    "invoice_date",
	"invoice_amount":  "invoice_amount",
	"payment_status":  "payment_status",
	"created_at":      "created_at",
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) List(ctx context.Context, filters ListFilters) ([]models.Order, error) {
	query := r.db.WithContext(ctx).Model(&models.Order{}).Preload("Items")

	if search := strings.TrimSpace(filters.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(po_no) LIKE ? OR LOWER(client_name) LIKE ? OR LOWER(product_details) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	query = query.Order(orderClause(filters))

	var results []models.Order
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// orderClause resolves the sort key against the whitelist; anything
// unrecognized falls back to newest-first.
func orderClause(filters ListFilters) string {
	column, ok := sortColumns[strings.ToLower(strings.TrimSpace(filters.SortBy))]
	if !ok {
		return "id DESC"
	}
	direction := "ASC"
	if strings.EqualFold(strings.TrimSpace(filters.Order), "desc") {
		direction = "DESC"
	}
	return fmt.Sprintf("%s %s", column, direction)
}

func (r *repository) Get(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) FindByPONumber(ctx context.Context, poNumber string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Where("po_no = ?", poNumber).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *repository) Save(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Omit("Items").Save(order).Error
}

func (r *repository) ReplaceItems(ctx context.Context, orderID int64, items []models.OrderItem) error {
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Order{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *repository) Summary(ctx context.Context) (*SummaryReport, error) {
	var report SummaryReport

	base := r.db.WithContext(ctx).Model(&models.Order{})
	if err := base.Session(&gorm.Session{}).Count(&report.Total).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("LOWER(payment_status) LIKE ?", "%received%").
		Count(&report.Received).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("LOWER(payment_status) LIKE ?", "%pending%").
		Count(&report.Pending).Error; err != nil {
		return nil, err
	}
	return &report, nil
}
