package dto

// PaymentStatusEvent is published by the payments service whenever a payment
// is saved, and consumed by the orders service.
type PaymentStatusEvent struct {
	OrderID       int64  `json:"order_id"`
	PaymentStatus string `json:"payment_status"`
	IsPayed       bool   `json:"is_payed"`
}
