package category

import (
	"context"
	"errors"
)

// ========================================
// Ports
// ========================================

// Repository defines the data access contract for the Category collection.
// Create returns the store-generated document id.
type Repository interface {
	ListAll(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id string) (Category, error)
	Create(ctx context.Context, c Category) (Category, error)
	Update(ctx context.Context, id string, c Category) (Category, error)
	Delete(ctx context.Context, id string) error
}

// ImageStore abstracts the blob store holding category images.
type ImageStore interface {
	Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

// Contract errors shared by all Repository implementations.
var (
	ErrNotFound   = errors.New("category: not found")
	ErrInvalidTag = errors.New("category: invalid tag")
	ErrInvalidID  = errors.New("category: invalid id")
)
