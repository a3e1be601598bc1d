package order

import (
	"context"
	"errors"
)

// ========================================
// Ports
// ========================================

// Repository reads and updates the Order tree in the realtime database.
// ListAll flattens Order/{userId}/{orderId} into a single slice, tagging
// each order with its owning userId. UpdateStatus is a single-field partial
// write at Order/{userId}/{orderId}; no audit trail is kept.
type Repository interface {
	ListAll(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, userID, orderID string) (Order, error)
	UpdateStatus(ctx context.Context, userID, orderID string, status Status) error
}

// Contract errors shared by all Repository implementations.
var (
	ErrNotFound      = errors.New("order: not found")
	ErrInvalidID     = errors.New("order: invalid id")
	ErrUnknownStatus = errors.New("order: unknown status")
	ErrSameStatus    = errors.New("order: order already has this status")
)
