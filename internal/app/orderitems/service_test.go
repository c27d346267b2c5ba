package orderitems

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/remote"
)

type stubOrderItemRepo struct {
	records map[domain.OrderItemID]*domain.OrderItem
}

func newStubOrderItemRepo() *stubOrderItemRepo {
	return &stubOrderItemRepo{records: map[domain.OrderItemID]*domain.OrderItem{}}
}

func (r *stubOrderItemRepo) FindAll(ctx context.Context) ([]*domain.OrderItem, error) {
	out := make([]*domain.OrderItem, 0, len(r.records))
	for _, item := range r.records {
		out = append(out, item)
	}
	return out, nil
}

func (r *stubOrderItemRepo) FindByID(ctx context.Context, id domain.OrderItemID) (*domain.OrderItem, error) {
	item, ok := r.records[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return item, nil
}

func (r *stubOrderItemRepo) Save(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	r.records[item.ID()] = item
	return item, nil
}

func (r *stubOrderItemRepo) DeleteByID(ctx context.Context, id domain.OrderItemID) error {
	delete(r.records, id)
	return nil
}

type stubProductLookup struct {
	products map[int64]*dto.ProductDTO
}

func (l *stubProductLookup) FetchProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	p, ok := l.products[productID]
	if !ok {
		return nil, &remote.FetchError{URL: "/products", StatusCode: 404}
	}
	return p, nil
}

type stubOrderLookup struct {
	orders map[int64]*dto.OrderDTO
}

func (l *stubOrderLookup) FetchOrder(ctx context.Context, orderID int64) (*dto.OrderDTO, error) {
	o, ok := l.orders[orderID]
	if !ok {
		return nil, &remote.FetchError{URL: "/orders", StatusCode: 404}
	}
	return o, nil
}

func newTestService(repo *stubOrderItemRepo, products *stubProductLookup, orders *stubOrderLookup, policy remote.ListPolicy) OrderItemService {
	return NewOrderItemService(repo, products, orders, nil, policy, zap.NewNop())
}

func TestOrderItemFindByIDNotFoundMessage(t *testing.T) {
	svc := newTestService(newStubOrderItemRepo(), &stubProductLookup{}, &stubOrderLookup{}, "")

	_, err := svc.FindByID(context.Background(), domain.OrderItemID{OrderID: 3, ProductID: 8})
	require.Error(t, err)

	var notFound *OrderItemNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "OrderItem with id: orderId=3, productId=8 not found!", notFound.Error())
}

func TestOrderItemFindByIDEnriches(t *testing.T) {
	repo := newStubOrderItemRepo()
	repo.records[domain.OrderItemID{OrderID: 3, ProductID: 8}] = &domain.OrderItem{
		OrderID: 3, ProductID: 8, OrderedQuantity: 2,
	}
	products := &stubProductLookup{products: map[int64]*dto.ProductDTO{8: {ProductID: 8, ProductTitle: "asus"}}}
	orders := &stubOrderLookup{orders: map[int64]*dto.OrderDTO{3: {OrderID: 3, OrderDesc: "first"}}}
	svc := newTestService(repo, products, orders, "")

	d, err := svc.FindByID(context.Background(), domain.OrderItemID{OrderID: 3, ProductID: 8})
	require.NoError(t, err)
	assert.Equal(t, int32(2), d.OrderedQuantity)
	require.NotNil(t, d.Product)
	require.NotNil(t, d.Order)
	assert.Equal(t, "asus", d.Product.ProductTitle)
	assert.Equal(t, "first", d.Order.OrderDesc)
}

func TestOrderItemSaveUpsertsOnSameKey(t *testing.T) {
	repo := newStubOrderItemRepo()
	products := &stubProductLookup{products: map[int64]*dto.ProductDTO{8: {ProductID: 8}}}
	orders := &stubOrderLookup{orders: map[int64]*dto.OrderDTO{3: {OrderID: 3}}}
	svc := newTestService(repo, products, orders, "")

	_, err := svc.Save(context.Background(), &dto.OrderItemDTO{OrderID: 3, ProductID: 8, OrderedQuantity: 1})
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), &dto.OrderItemDTO{OrderID: 3, ProductID: 8, OrderedQuantity: 5})
	require.NoError(t, err)

	all, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1, "same key saves overwrite, they do not accumulate")
	assert.Equal(t, int32(5), all[0].OrderedQuantity)
}

func TestOrderItemSaveEchoesSubstructures(t *testing.T) {
	svc := newTestService(newStubOrderItemRepo(), &stubProductLookup{}, &stubOrderLookup{}, "")

	product := &dto.ProductDTO{ProductID: 8, ProductTitle: "asus"}
	order := &dto.OrderDTO{OrderID: 3}
	saved, err := svc.Save(context.Background(), &dto.OrderItemDTO{
		OrderID: 3, ProductID: 8, OrderedQuantity: 1,
		Product: product,
		Order:   order,
	})
	require.NoError(t, err)
	assert.Equal(t, product, saved.Product)
	assert.Equal(t, order, saved.Order)
}

func TestOrderItemFindAllSkipPolicy(t *testing.T) {
	repo := newStubOrderItemRepo()
	repo.records[domain.OrderItemID{OrderID: 3, ProductID: 8}] = &domain.OrderItem{OrderID: 3, ProductID: 8}
	repo.records[domain.OrderItemID{OrderID: 4, ProductID: 99}] = &domain.OrderItem{OrderID: 4, ProductID: 99}

	// product 99 and order 4 are not resolvable
	products := &stubProductLookup{products: map[int64]*dto.ProductDTO{8: {ProductID: 8}}}
	orders := &stubOrderLookup{orders: map[int64]*dto.OrderDTO{3: {OrderID: 3}}}
	svc := newTestService(repo, products, orders, remote.ListPolicySkip)

	all, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(3), all[0].OrderID)
}

func TestOrderItemDeleteThenFindNotFound(t *testing.T) {
	repo := newStubOrderItemRepo()
	repo.records[domain.OrderItemID{OrderID: 3, ProductID: 8}] = &domain.OrderItem{OrderID: 3, ProductID: 8}
	svc := newTestService(repo, &stubProductLookup{}, &stubOrderLookup{}, "")

	id := domain.OrderItemID{OrderID: 3, ProductID: 8}
	require.NoError(t, svc.DeleteByID(context.Background(), id))

	_, err := svc.FindByID(context.Background(), id)
	var notFound *OrderItemNotFoundError
	assert.True(t, errors.As(err, &notFound))
}
