package rtdb

import (
	"context"
	"errors"
	"sort"
	"strings"

	"firebase.google.com/go/v4/db"

	orderdom "alwarmart/internal/domain/order"
)

// ========================================
// Realtime Database Repository Implementation
// ========================================

// OrderRepositoryRTDB reads the Order tree from Firebase Realtime Database.
// The tree shape is Order/{userId}/{orderId} -> order document; ListAll
// flattens it and tags every order with its owning userId.
type OrderRepositoryRTDB struct {
	Client *db.Client
}

func NewOrderRepositoryRTDB(client *db.Client) *OrderRepositoryRTDB {
	return &OrderRepositoryRTDB{Client: client}
}

func (r *OrderRepositoryRTDB) root() *db.Ref {
	return r.Client.NewRef("Order")
}

// Ensure interface implementation
var _ orderdom.Repository = (*OrderRepositoryRTDB)(nil)

func (r *OrderRepositoryRTDB) ListAll(ctx context.Context) ([]orderdom.Order, error) {
	if r.Client == nil {
		return nil, errors.New("OrderRepositoryRTDB: nil db client")
	}

	var tree map[string]map[string]orderdom.Order
	if err := r.root().Get(ctx, &tree); err != nil {
		return nil, err
	}

	// deterministic flatten order: userId, then orderId
	userIDs := make([]string, 0, len(tree))
	for uid := range tree {
		userIDs = append(userIDs, uid)
	}
	sort.Strings(userIDs)

	var out []orderdom.Order
	for _, uid := range userIDs {
		byOrder := tree[uid]
		orderIDs := make([]string, 0, len(byOrder))
		for oid := range byOrder {
			orderIDs = append(orderIDs, oid)
		}
		sort.Strings(orderIDs)

		for _, oid := range orderIDs {
			o := byOrder[oid]
			o.UserID = uid
			if o.OrderID == "" {
				o.OrderID = oid
			}
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OrderRepositoryRTDB) Get(ctx context.Context, userID, orderID string) (orderdom.Order, error) {
	if r.Client == nil {
		return orderdom.Order{}, errors.New("OrderRepositoryRTDB: nil db client")
	}

	userID = strings.TrimSpace(userID)
	orderID = strings.TrimSpace(orderID)
	if userID == "" || orderID == "" {
		return orderdom.Order{}, orderdom.ErrNotFound
	}

	var o orderdom.Order
	if err := r.root().Child(userID).Child(orderID).Get(ctx, &o); err != nil {
		return orderdom.Order{}, err
	}
	// a missing path unmarshals to the zero value
	if o.OrderID == "" && len(o.OrderItems) == 0 {
		return orderdom.Order{}, orderdom.ErrNotFound
	}

	o.UserID = userID
	if o.OrderID == "" {
		o.OrderID = orderID
	}
	return o, nil
}

// UpdateStatus performs a single-field partial update at
// Order/{userId}/{orderId}; sibling fields are untouched.
func (r *OrderRepositoryRTDB) UpdateStatus(ctx context.Context, userID, orderID string, status orderdom.Status) error {
	if r.Client == nil {
		return errors.New("OrderRepositoryRTDB: nil db client")
	}

	userID = strings.TrimSpace(userID)
	orderID = strings.TrimSpace(orderID)
	if userID == "" || orderID == "" {
		return orderdom.ErrNotFound
	}

	return r.root().Child(userID).Child(orderID).Update(ctx, map[string]interface{}{
		"orderStatus": string(status),
	})
}
