package enums

// DispatchStatus is the delivery completion state of an order's products.
type DispatchStatus string

const (
	DispatchStatusPending   DispatchStatus = "Pending"
	DispatchStatusPartial   DispatchStatus = "Partial"
	DispatchStatusDelivered DispatchStatus = "Delivered"
)

// PaymentStatus is free text in the stored record; these are the
// conventional values the summary report matches against.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusReceived PaymentStatus = "Received"
)
