package order

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// ========================================
// Service
// ========================================

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// ListOrders returns every order across all users, in tree order, each
// tagged with its owning userId. There is no pagination; remote read
// failures propagate to the caller.
func (s *Service) ListOrders(ctx context.Context) ([]Order, error) {
	return s.repo.ListAll(ctx)
}

// Get returns a single order by its tree position.
func (s *Service) Get(ctx context.Context, userID, orderID string) (Order, error) {
	userID = strings.TrimSpace(userID)
	orderID = strings.TrimSpace(orderID)
	if userID == "" || orderID == "" {
		return Order{}, ErrInvalidID
	}
	return s.repo.Get(ctx, userID, orderID)
}

// SearchOrders matches the term against orderId or the customer's primary
// phone number, exactly. Only orders still in Processing are searched.
func (s *Service) SearchOrders(ctx context.Context, term string) ([]Order, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []Order
	for _, o := range all {
		if o.OrderStatus != StatusProcessing {
			continue
		}
		if o.OrderID == term || o.Customer.PhoneNumber == term {
			out = append(out, o)
		}
	}
	return out, nil
}

// UpdateStatus moves an order to a new status. Any status is reachable from
// any other; the only rejected transition is a no-op to the order's current
// status. Unknown status values are rejected before the remote write.
func (s *Service) UpdateStatus(ctx context.Context, userID, orderID string, next Status) (Order, error) {
	userID = strings.TrimSpace(userID)
	orderID = strings.TrimSpace(orderID)
	if userID == "" || orderID == "" {
		return Order{}, ErrInvalidID
	}
	if !next.IsValid() {
		return Order{}, ErrUnknownStatus
	}

	o, err := s.repo.Get(ctx, userID, orderID)
	if err != nil {
		return Order{}, err
	}
	if o.OrderStatus == next {
		return Order{}, ErrSameStatus
	}

	if err := s.repo.UpdateStatus(ctx, userID, orderID, next); err != nil {
		return Order{}, err
	}
	s.log.Info("order status updated",
		zap.String("userId", userID),
		zap.String("orderId", orderID),
		zap.String("from", string(o.OrderStatus)),
		zap.String("to", string(next)))

	o.OrderStatus = next
	return o, nil
}
