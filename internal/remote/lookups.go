package remote

import (
	"context"
	"fmt"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
)

// The aggregators depend on these lookup interfaces, never on Client
// directly, so tests substitute stubs for the remote services.

type UserLookup interface {
	FetchUser(ctx context.Context, userID int64) (*dto.UserDTO, error)
}

type ProductLookup interface {
	FetchProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error)
}

type OrderLookup interface {
	FetchOrder(ctx context.Context, orderID int64) (*dto.OrderDTO, error)
}

type userClient struct{ c *Client }

func NewUserClient(c *Client) UserLookup { return &userClient{c: c} }

func (u *userClient) FetchUser(ctx context.Context, userID int64) (*dto.UserDTO, error) {
	var out dto.UserDTO
	if err := u.c.getJSON(ctx, fmt.Sprintf("/users/%d", userID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type productClient struct{ c *Client }

func NewProductClient(c *Client) ProductLookup { return &productClient{c: c} }

func (p *productClient) FetchProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	var out dto.ProductDTO
	if err := p.c.getJSON(ctx, fmt.Sprintf("/products/%d", productID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type orderClient struct{ c *Client }

func NewOrderClient(c *Client) OrderLookup { return &orderClient{c: c} }

func (o *orderClient) FetchOrder(ctx context.Context, orderID int64) (*dto.OrderDTO, error) {
	var out dto.OrderDTO
	if err := o.c.getJSON(ctx, fmt.Sprintf("/orders/%d", orderID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
