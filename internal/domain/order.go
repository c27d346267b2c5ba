package domain

import "time"

type Cart struct {
	CartID int64
	UserID int64
}

// Order embeds its Cart inline, same as Product embeds Category: the orders
// store joins the cart row on read and persists only Cart.CartID on write.
type Order struct {
	OrderID   int64
	OrderDate time.Time
	OrderDesc string
	OrderFee  float64
	Cart      Cart
}
