package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	orders map[string]map[string]Order // userId -> orderId -> order
	writes []Status
}

func newFakeRepo(orders ...Order) *fakeRepo {
	r := &fakeRepo{orders: make(map[string]map[string]Order)}
	for _, o := range orders {
		if r.orders[o.UserID] == nil {
			r.orders[o.UserID] = make(map[string]Order)
		}
		r.orders[o.UserID][o.OrderID] = o
	}
	return r
}

func (r *fakeRepo) ListAll(ctx context.Context) ([]Order, error) {
	var out []Order
	for _, byOrder := range r.orders {
		for _, o := range byOrder {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeRepo) Get(ctx context.Context, userID, orderID string) (Order, error) {
	o, ok := r.orders[userID][orderID]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o, nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, userID, orderID string, status Status) error {
	o, ok := r.orders[userID][orderID]
	if !ok {
		return ErrNotFound
	}
	o.OrderStatus = status
	r.orders[userID][orderID] = o
	r.writes = append(r.writes, status)
	return nil
}

func testOrder(userID, orderID string, status Status, phone string) Order {
	return Order{
		UserID:      userID,
		OrderID:     orderID,
		OrderStatus: status,
		Customer:    Customer{PhoneNumber: phone},
	}
}

func TestSearchOrdersRestrictedToProcessing(t *testing.T) {
	repo := newFakeRepo(
		testOrder("u1", "ORD1", StatusProcessing, "9876543210"),
		testOrder("u1", "ORD2", StatusDelivered, "9876543210"),
		testOrder("u2", "ORD3", StatusProcessing, "1112223334"),
	)
	svc := NewService(repo, zap.NewNop())

	// by phone: the delivered order with the same number is invisible
	hits, err := svc.SearchOrders(context.Background(), "9876543210")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "ORD1", hits[0].OrderID)

	// by orderId: non-Processing orders never match
	hits, err = svc.SearchOrders(context.Background(), "ORD2")
	require.NoError(t, err)
	assert.Empty(t, hits)

	// ListOrders has no such restriction
	all, err := svc.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSearchOrdersEmptyTerm(t *testing.T) {
	svc := NewService(newFakeRepo(), zap.NewNop())
	hits, err := svc.SearchOrders(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRepo(testOrder("u1", "ORD1", StatusProcessing, ""))
	svc := NewService(repo, zap.NewNop())

	updated, err := svc.UpdateStatus(context.Background(), "u1", "ORD1", StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, updated.OrderStatus)
	assert.Equal(t, []Status{StatusConfirmed}, repo.writes)
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	repo := newFakeRepo(testOrder("u1", "ORD1", StatusProcessing, ""))
	svc := NewService(repo, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), "u1", "ORD1", Status("Shipped"))
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.Empty(t, repo.writes)
}

func TestUpdateStatusRejectsNoOp(t *testing.T) {
	repo := newFakeRepo(testOrder("u1", "ORD1", StatusProcessing, ""))
	svc := NewService(repo, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), "u1", "ORD1", StatusProcessing)
	assert.ErrorIs(t, err, ErrSameStatus)
	assert.Empty(t, repo.writes)
}

func TestUpdateStatusAnyToAny(t *testing.T) {
	// no transition graph: Delivered back to Processing is allowed
	repo := newFakeRepo(testOrder("u1", "ORD1", StatusDelivered, ""))
	svc := NewService(repo, zap.NewNop())

	updated, err := svc.UpdateStatus(context.Background(), "u1", "ORD1", StatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, updated.OrderStatus)
}

func TestParseStatus(t *testing.T) {
	s, ok := ParseStatus("  Out for Delivery ")
	require.True(t, ok)
	assert.Equal(t, StatusOutForDelivery, s)

	_, ok = ParseStatus("out for delivery") // case matters
	assert.False(t, ok)

	_, ok = ParseStatus("")
	assert.False(t, ok)
}

func TestStatusMetaCoversAllStatuses(t *testing.T) {
	for _, s := range AllStatuses {
		m := s.Meta()
		assert.NotEmpty(t, m.Label, string(s))
		assert.NotEmpty(t, m.Tone, string(s))
	}
}
