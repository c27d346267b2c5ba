package payments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/remote"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/outbox_repo"
)

type stubPaymentRepo struct {
	payments map[int64]*domain.Payment
	outbox   []*outbox_repo.OutboxMessage
	nextID   int64
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{payments: map[int64]*domain.Payment{}, nextID: 1}
}

func (r *stubPaymentRepo) FindAll(ctx context.Context) ([]*domain.Payment, error) {
	out := make([]*domain.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubPaymentRepo) FindByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	p, ok := r.payments[paymentID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}

func (r *stubPaymentRepo) Save(ctx context.Context, payment *domain.Payment, msg *outbox_repo.OutboxMessage) (*domain.Payment, error) {
	if payment.PaymentID == 0 {
		payment.PaymentID = r.nextID
		r.nextID++
	}
	r.payments[payment.PaymentID] = payment
	r.outbox = append(r.outbox, msg)
	return payment, nil
}

func (r *stubPaymentRepo) DeleteByID(ctx context.Context, paymentID int64) error {
	delete(r.payments, paymentID)
	return nil
}

type stubOutboxRepo struct {
	unsent []*outbox_repo.OutboxMessage
	sent   []string
}

func (r *stubOutboxRepo) GetUnsentMessages(ctx context.Context) ([]*outbox_repo.OutboxMessage, error) {
	return r.unsent, nil
}

func (r *stubOutboxRepo) MarkMessageSent(ctx context.Context, id string) error {
	r.sent = append(r.sent, id)
	return nil
}

type stubOrderLookup struct {
	orders map[int64]*dto.OrderDTO
	err    error
}

func (l *stubOrderLookup) FetchOrder(ctx context.Context, orderID int64) (*dto.OrderDTO, error) {
	if l.err != nil {
		return nil, l.err
	}
	o, ok := l.orders[orderID]
	if !ok {
		return nil, &remote.FetchError{URL: "/orders", StatusCode: 404}
	}
	return o, nil
}

type stubProducer struct {
	produced map[string][][]byte
	err      error
}

func newStubProducer() *stubProducer {
	return &stubProducer{produced: map[string][][]byte{}}
}

func (p *stubProducer) Produce(ctx context.Context, topic string, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.produced[topic] = append(p.produced[topic], payload)
	return nil
}

func (p *stubProducer) Close() error { return nil }

func newTestService(repo *stubPaymentRepo, outbox *stubOutboxRepo, lookup *stubOrderLookup, producer *stubProducer, policy remote.ListPolicy) PaymentService {
	return NewPaymentService(repo, outbox, lookup, producer, "payment_status_updates", policy, zap.NewNop())
}

func TestPaymentFindByIDNotFound(t *testing.T) {
	svc := newTestService(newStubPaymentRepo(), &stubOutboxRepo{}, &stubOrderLookup{}, newStubProducer(), "")

	_, err := svc.FindByID(context.Background(), 99)
	require.Error(t, err)

	var notFound *PaymentNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Payment with id: 99 not found!", notFound.Error())
}

func TestPaymentFindByIDPropagatesLookupFailure(t *testing.T) {
	repo := newStubPaymentRepo()
	lookup := &stubOrderLookup{err: &remote.FetchError{URL: "/orders/5", StatusCode: 503}}
	svc := newTestService(repo, &stubOutboxRepo{}, lookup, newStubProducer(), "")

	saved, err := svc.Save(context.Background(), &dto.PaymentDTO{
		OrderID:       5,
		PaymentStatus: domain.PaymentStatusInProgress,
	})
	require.NoError(t, err)

	d, err := svc.FindByID(context.Background(), saved.PaymentID)
	require.Error(t, err, "a payment must not be served with a missing order substructure")
	assert.Nil(t, d)

	var fetchErr *remote.FetchError
	assert.True(t, errors.As(err, &fetchErr))
}

func TestPaymentSaveQueuesStatusEvent(t *testing.T) {
	repo := newStubPaymentRepo()
	svc := newTestService(repo, &stubOutboxRepo{}, &stubOrderLookup{}, newStubProducer(), "")

	orderEcho := &dto.OrderDTO{OrderID: 8, OrderDesc: "echoed"}
	saved, err := svc.Save(context.Background(), &dto.PaymentDTO{
		OrderID:       8,
		IsPayed:       true,
		PaymentStatus: domain.PaymentStatusCompleted,
		Order:         orderEcho,
	})
	require.NoError(t, err)
	assert.Equal(t, orderEcho, saved.Order, "save echoes the caller's order without a re-fetch")

	require.Len(t, repo.outbox, 1)
	msg := repo.outbox[0]
	assert.Equal(t, "payment_status_updates", msg.Topic)
	assert.Equal(t, outbox_repo.StatusPending, msg.Status)
	assert.NotEmpty(t, msg.ID)

	var event dto.PaymentStatusEvent
	require.NoError(t, json.Unmarshal(msg.Payload, &event))
	assert.Equal(t, int64(8), event.OrderID)
	assert.Equal(t, "COMPLETED", event.PaymentStatus)
	assert.True(t, event.IsPayed)
}

func TestPaymentSaveTakesOrderIDFromSubstructure(t *testing.T) {
	repo := newStubPaymentRepo()
	svc := newTestService(repo, &stubOutboxRepo{}, &stubOrderLookup{}, newStubProducer(), "")

	saved, err := svc.Save(context.Background(), &dto.PaymentDTO{
		PaymentStatus: domain.PaymentStatusNotStarted,
		Order:         &dto.OrderDTO{OrderID: 44},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(44), saved.OrderID)
}

func TestPaymentFindAllAbortPolicy(t *testing.T) {
	repo := newStubPaymentRepo()
	lookup := &stubOrderLookup{orders: map[int64]*dto.OrderDTO{}}
	svc := newTestService(repo, &stubOutboxRepo{}, lookup, newStubProducer(), remote.ListPolicyAbort)

	_, err := svc.Save(context.Background(), &dto.PaymentDTO{OrderID: 1, PaymentStatus: domain.PaymentStatusNotStarted})
	require.NoError(t, err)

	_, err = svc.FindAll(context.Background())
	assert.Error(t, err, "abort policy fails the list when a lookup fails")
}

func TestPaymentFindAllSkipPolicy(t *testing.T) {
	repo := newStubPaymentRepo()
	lookup := &stubOrderLookup{orders: map[int64]*dto.OrderDTO{
		2: {OrderID: 2, OrderDesc: "resolvable"},
	}}
	svc := newTestService(repo, &stubOutboxRepo{}, lookup, newStubProducer(), remote.ListPolicySkip)

	_, err := svc.Save(context.Background(), &dto.PaymentDTO{OrderID: 1, PaymentStatus: domain.PaymentStatusNotStarted})
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), &dto.PaymentDTO{OrderID: 2, PaymentStatus: domain.PaymentStatusCompleted})
	require.NoError(t, err)

	result, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 1, "the element with the failed lookup is dropped")
	assert.Equal(t, int64(2), result[0].OrderID)
	require.NotNil(t, result[0].Order)
	assert.Equal(t, "resolvable", result[0].Order.OrderDesc)
}

func TestProcessOutboxPublishesAndMarksSent(t *testing.T) {
	outbox := &stubOutboxRepo{unsent: []*outbox_repo.OutboxMessage{
		{ID: "msg-1", Topic: "payment_status_updates", Payload: []byte(`{"order_id":1}`)},
		{ID: "msg-2", Topic: "payment_status_updates", Payload: []byte(`{"order_id":2}`)},
	}}
	producer := newStubProducer()
	svc := newTestService(newStubPaymentRepo(), outbox, &stubOrderLookup{}, producer, "")

	require.NoError(t, svc.ProcessOutbox(context.Background()))
	assert.Len(t, producer.produced["payment_status_updates"], 2)
	assert.Equal(t, []string{"msg-1", "msg-2"}, outbox.sent)
}

func TestProcessOutboxKeepsMessagePendingOnProduceFailure(t *testing.T) {
	outbox := &stubOutboxRepo{unsent: []*outbox_repo.OutboxMessage{
		{ID: "msg-1", Topic: "payment_status_updates", Payload: []byte(`{}`)},
	}}
	producer := newStubProducer()
	producer.err = errors.New("broker unavailable")
	svc := newTestService(newStubPaymentRepo(), outbox, &stubOrderLookup{}, producer, "")

	require.NoError(t, svc.ProcessOutbox(context.Background()))
	assert.Empty(t, outbox.sent, "an unpublished message stays pending for the next poll")
}
