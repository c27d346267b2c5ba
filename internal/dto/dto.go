// Package dto holds the composite shapes the services exchange over HTTP.
// Foreign substructures (User on a favourite, Order on a payment, ...) are
// filled by the owning service's aggregator and never persisted.
package dto

import (
	"time"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
)

type CredentialDTO struct {
	CredentialID int64  `json:"credential_id"`
	Username     string `json:"username"`
	Password     string `json:"password,omitempty"`
	IsEnabled    bool   `json:"is_enabled"`
}

type UserDTO struct {
	UserID     int64          `json:"user_id"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	ImageURL   string         `json:"image_url"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Credential *CredentialDTO `json:"credential,omitempty"`
}

type CategoryDTO struct {
	CategoryID    int64  `json:"category_id"`
	CategoryTitle string `json:"category_title"`
	ImageURL      string `json:"image_url"`
}

type ProductDTO struct {
	ProductID    int64        `json:"product_id"`
	ProductTitle string       `json:"product_title"`
	ImageURL     string       `json:"image_url"`
	SKU          string       `json:"sku"`
	PriceUnit    float64      `json:"price_unit"`
	Quantity     int32        `json:"quantity"`
	Category     *CategoryDTO `json:"category,omitempty"`
}

type CartDTO struct {
	CartID int64 `json:"cart_id"`
	UserID int64 `json:"user_id"`
}

type OrderDTO struct {
	OrderID   int64     `json:"order_id"`
	OrderDate time.Time `json:"order_date"`
	OrderDesc string    `json:"order_desc"`
	OrderFee  float64   `json:"order_fee"`
	Cart      *CartDTO  `json:"cart,omitempty"`
}

type OrderItemDTO struct {
	OrderID         int64       `json:"order_id"`
	ProductID       int64       `json:"product_id"`
	OrderedQuantity int32       `json:"ordered_quantity"`
	Product         *ProductDTO `json:"product,omitempty"`
	Order           *OrderDTO   `json:"order,omitempty"`
}

type PaymentDTO struct {
	PaymentID     int64                `json:"payment_id"`
	OrderID       int64                `json:"order_id"`
	IsPayed       bool                 `json:"is_payed"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	Order         *OrderDTO            `json:"order,omitempty"`
}

type FavouriteDTO struct {
	UserID    int64       `json:"user_id"`
	ProductID int64       `json:"product_id"`
	LikeDate  time.Time   `json:"like_date"`
	User      *UserDTO    `json:"user,omitempty"`
	Product   *ProductDTO `json:"product,omitempty"`
}
