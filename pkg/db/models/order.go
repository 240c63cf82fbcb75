package models

import (
	"time"

	"github.com/veltrade/order-records-backend/pkg/enums"
)

// Order is one purchase-order record. PONumber is the business identity key;
// the surrogate ID only exists so the UI has something stable to address.
type Order struct {
	ID               int64                `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PONumber         string               `gorm:"column:po_no;type:TEXT COLLATE NOCASE;not null;uniqueIndex:idx_orders_po_no" json:"po_no"`
	PODate           string               `gorm:"column:po_date" json:"po_date"`
	ClientName       string               `gorm:"column:client_name" json:"client_name"`
	ProductDetails   string               `gorm:"column:product_details" json:"product_details"`
	Qty              int                  `gorm:"column:qty;not null;default:0" json:"qty"`
	DispatchStatus   enums.DispatchStatus `gorm:"column:dispatch_status;not null;default:'Pending'" json:"dispatch_status"`
	InvoiceNo        string               `gorm:"column:invoice_no" json:"invoice_no"`
	InvoiceDate      string               `gorm:"column:invoice_date" json:"invoice_date"`
	InvoiceAmount    float64              `gorm:"column:invoice_amount;not null;default:0" json:"invoice_amount"`
	PaymentStatus    string               `gorm:"column:payment_status;not null;default:'Pending'" json:"payment_status"`
	DeliveredItems   string               `gorm:"column:delivered_items" json:"delivered_items"`
	UndeliveredItems string               `gorm:"column:undelivered_items" json:"undelivered_items"`
	Items            []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt        time.Time            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one product line belonging to an Order. Items are replaced
// wholesale on every order update; there is no per-item patch path.
type OrderItem struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID     int64     `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductName string    `gorm:"column:product_name;not null" json:"product_name"`
	Qty         int       `gorm:"column:qty;not null;default:0" json:"qty"`
	UnitPrice   float64   `gorm:"column:unit_price;not null;default:0" json:"unit_price"`
	TotalPrice  float64   `gorm:"column:total_price;not null;default:0" json:"total_price"`
	Remarks     string    `gorm:"column:remarks" json:"remarks"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
