package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/veltrade/order-records-backend/pkg/dates"
	"github.com/veltrade/order-records-backend/pkg/db"
	"github.com/veltrade/order-records-backend/pkg/db/models"
	"github.com/veltrade/order-records-backend/pkg/enums"
	pkgerrors "github.com/veltrade/order-records-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds the order service with its required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]models.Order, error) {
	results, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "list orders")
	}
	return results, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "load order")
	}
	return order, nil
}

func (s *service) Create(ctx context.Context, input OrderInput) (*models.Order, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	// Pre-check is an optimization for a friendly error; the unique
	// constraint remains the authoritative guard against races.
	if _, err := s.repo.FindByPONumber(ctx, input.PONumber); err == nil {
		return nil, duplicatePOError(input.PONumber)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "check po number")
	}

	order := buildOrder(input)

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, order)
	})
	if err != nil {
		if db.IsUniqueViolation(err, "orders.po_no") {
			return nil, duplicatePOError(input.PONumber)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "insert order")
	}
	return order, nil
}

func (s *service) Update(ctx context.Context, id int64, input OrderInput) (*models.Order, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	replacement := buildOrder(input)
	replacement.ID = existing.ID
	replacement.CreatedAt = existing.CreatedAt
	items := replacement.Items
	replacement.Items = nil

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Save(ctx, replacement); err != nil {
			return err
		}
		return repo.ReplaceItems(ctx, replacement.ID, items)
	})
	if err != nil {
		if db.IsUniqueViolation(err, "orders.po_no") {
			return nil, duplicatePOError(input.PONumber)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "update order")
	}

	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) (int64, error) {
	count, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "delete order")
	}
	return count, nil
}

func (s *service) Summary(ctx context.Context) (*SummaryReport, error) {
	report, err := s.repo.Summary(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "summarize orders")
	}
	return report, nil
}

func (s *service) Reconcile(ctx context.Context, id int64, delivered []string) (*models.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := DeriveDispatch(ProductNames(order), delivered)
	order.DispatchStatus = result.Status
	order.DeliveredItems = result.DeliveredItems
	order.UndeliveredItems = result.UndeliveredItems

	saved := *order
	saved.Items = nil
	if err := s.repo.Save(ctx, &saved); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "persist dispatch state")
	}
	return order, nil
}

func validateInput(input OrderInput) error {
	if strings.TrimSpace(input.PONumber) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "po number is required").
			WithDetails(map[string]string{"po_no": "is required"})
	}
	return nil
}

func duplicatePOError(poNumber string) error {
	return pkgerrors.New(pkgerrors.CodeDuplicatePO, "po number already exists").
		WithDetails(map[string]string{"po_no": poNumber})
}

// buildOrder maps an input onto a fresh record, normalizing dates and
// deriving qty from line items when they are present. Dates that cannot be
// read are stored empty rather than propagated as junk.
func buildOrder(input OrderInput) *models.Order {
	order := &models.Order{
		PONumber:         strings.TrimSpace(input.PONumber),
		PODate:           normalizeDate(input.PODate),
		ClientName:       input.ClientName,
		ProductDetails:   input.ProductDetails,
		Qty:              input.Qty,
		DispatchStatus:   enums.DispatchStatus(input.DispatchStatus),
		InvoiceNo:        input.InvoiceNo,
		InvoiceDate:      normalizeDate(input.InvoiceDate),
		InvoiceAmount:    input.InvoiceAmount,
		PaymentStatus:    input.PaymentStatus,
		DeliveredItems:   input.DeliveredItems,
		UndeliveredItems: input.UndeliveredItems,
	}

	if order.DispatchStatus == "" {
		order.DispatchStatus = enums.DispatchStatusPending
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = string(enums.PaymentStatusPending)
	}

	if len(input.Items) > 0 {
		total := 0
		items := make([]models.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			total += item.Qty
			items = append(items, models.OrderItem{
				ProductName: item.ProductName,
				Qty:         item.Qty,
				UnitPrice:   item.UnitPrice,
				TotalPrice:  item.TotalPrice,
				Remarks:     item.Remarks,
			})
		}
		order.Items = items
		order.Qty = total
		if order.ProductDetails == "" {
			order.ProductDetails = FlattenItems(items)
		}
	}

	return order
}

func normalizeDate(raw string) string {
	if normalized, ok := dates.Normalize(raw); ok {
		return normalized
	}
	return ""
}
