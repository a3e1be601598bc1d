package brand

import (
	"context"
	"errors"
)

// ========================================
// Ports
// ========================================

// Repository defines the data access contract for the brand collection.
// Documents are keyed by brandName.
type Repository interface {
	ListAll(ctx context.Context) ([]Brand, error)
	GetByName(ctx context.Context, name string) (Brand, error)
	Save(ctx context.Context, b Brand) (Brand, error)
	Delete(ctx context.Context, name string) error
}

// IconStore abstracts the blob store holding brand icons.
type IconStore interface {
	Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

// Contract errors shared by all Repository implementations.
var (
	ErrNotFound    = errors.New("brand: not found")
	ErrInvalidName = errors.New("brand: invalid name")
)
