package orders

// ListFilters describe the inputs supported by the orders list.
type ListFilters struct {
	// Search matches case-insensitively as a substring against po_no,
	// client_name and product_details.
	Search string
	SortBy string
	Order  string
}

// ItemInput is one product line supplied on create/update.
type ItemInput struct {
	ProductName string  `json:"product_name" validate:"required"`
	Qty         int     `json:"qty" validate:"min=0"`
	UnitPrice   float64 `json:"unit_price" validate:"min=0"`
	TotalPrice  float64 `json:"total_price" validate:"min=0"`
	Remarks     string  `json:"remarks"`
}

// OrderInput carries the full field set for create and update. Updates replace
// every field; omitted fields become their zero value.
type OrderInput struct {
	PONumber         string      `json:"po_no" validate:"required"`
	PODate           string      `json:"po_date"`
	ClientName       string      `json:"client_name"`
	ProductDetails   string      `json:"product_details"`
	Qty              int         `json:"qty" validate:"min=0"`
	DispatchStatus   string      `json:"dispatch_status"`
	InvoiceNo        string      `json:"invoice_no"`
	InvoiceDate      string      `json:"invoice_date"`
	InvoiceAmount    float64     `json:"invoice_amount"`
	PaymentStatus    string      `json:"payment_status"`
	DeliveredItems   string      `json:"delivered_items"`
	UndeliveredItems string      `json:"undelivered_items"`
	Items            []ItemInput `json:"items" validate:"dive"`
}

// SummaryReport aggregates payment-status counts across all orders. Matching
// is a case-insensitive substring test, so an order whose status mentions both
// words is counted twice; that quirk is part of the historical contract.
type SummaryReport struct {
	Total    int64 `json:"total"`
	Received int64 `json:"received"`
	Pending  int64 `json:"pending"`
}
