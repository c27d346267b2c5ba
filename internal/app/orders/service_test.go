package orders

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
)

type stubOrderRepo struct {
	orders      map[int64]*domain.Order
	nextID      int64
	deleteCalls int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: map[int64]*domain.Order{}, nextID: 1}
}

func (r *stubOrderRepo) FindAll(ctx context.Context) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *stubOrderRepo) FindByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	o, ok := r.orders[orderID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return o, nil
}

func (r *stubOrderRepo) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order.OrderID == 0 {
		order.OrderID = r.nextID
		r.nextID++
	}
	r.orders[order.OrderID] = order
	return order, nil
}

func (r *stubOrderRepo) Delete(ctx context.Context, order *domain.Order) error {
	r.deleteCalls++
	delete(r.orders, order.OrderID)
	return nil
}

func TestOrderDeleteByIDAbsentDoesNotTouchDelete(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, zap.NewNop())

	err := svc.DeleteByID(context.Background(), 99)
	require.Error(t, err)

	var notFound *OrderNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Order with id: 99 not found!", notFound.Error())
	assert.Zero(t, repo.deleteCalls, "delete primitive must not run for an absent order")
}

func TestOrderDeleteByIDRemovesExisting(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, zap.NewNop())

	saved, err := svc.Save(context.Background(), &dto.OrderDTO{
		OrderDate: time.Now(),
		OrderDesc: "first order",
		OrderFee:  12.5,
		Cart:      &dto.CartDTO{CartID: 3},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByID(context.Background(), saved.OrderID))
	assert.Equal(t, 1, repo.deleteCalls)

	_, err = svc.FindByID(context.Background(), saved.OrderID)
	var notFound *OrderNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestOrderSaveEchoesCart(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), zap.NewNop())

	saved, err := svc.Save(context.Background(), &dto.OrderDTO{
		OrderDesc: "with cart",
		Cart:      &dto.CartDTO{CartID: 5},
	})
	require.NoError(t, err)
	assert.NotZero(t, saved.OrderID)
	require.NotNil(t, saved.Cart)
	assert.Equal(t, int64(5), saved.Cart.CartID)
}

func TestHandlePaymentStatusUpdateIgnoresUnknownOrder(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), zap.NewNop())

	err := svc.HandlePaymentStatusUpdate(context.Background(), &dto.PaymentStatusEvent{
		OrderID:       123,
		PaymentStatus: "COMPLETED",
		IsPayed:       true,
	})
	assert.NoError(t, err, "events for deleted orders are dropped, not retried")
}

func TestHandlePaymentStatusUpdateKnownOrder(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, zap.NewNop())

	saved, err := svc.Save(context.Background(), &dto.OrderDTO{OrderDesc: "paid order"})
	require.NoError(t, err)

	err = svc.HandlePaymentStatusUpdate(context.Background(), &dto.PaymentStatusEvent{
		OrderID:       saved.OrderID,
		PaymentStatus: "IN_PROGRESS",
	})
	assert.NoError(t, err)
}
