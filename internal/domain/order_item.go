package domain

import "fmt"

// OrderItemID is the order item's identity: there is no surrogate id, the
// (orderId, productId) pair is the key. Components are immutable once the
// record exists; updates that change them address a different record.
type OrderItemID struct {
	OrderID   int64
	ProductID int64
}

func (id OrderItemID) String() string {
	return fmt.Sprintf("orderId=%d, productId=%d", id.OrderID, id.ProductID)
}

type OrderItem struct {
	OrderID         int64
	ProductID       int64
	OrderedQuantity int32
}

func (oi OrderItem) ID() OrderItemID {
	return OrderItemID{OrderID: oi.OrderID, ProductID: oi.ProductID}
}
