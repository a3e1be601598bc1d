package product

import (
	"context"
	"errors"
)

// ========================================
// Ports
// ========================================

// Repository defines the data access contract for the Product collection.
type Repository interface {
	ListAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, id string, p Product) (Product, error)
	Delete(ctx context.Context, id string) error
}

// ImageStore abstracts the blob store that holds product images. Upload
// returns the public download URL for the stored object.
type ImageStore interface {
	Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

// Contract errors shared by all Repository implementations.
var (
	ErrNotFound  = errors.New("product: not found")
	ErrConflict  = errors.New("product: conflict")
	ErrInvalidID = errors.New("product: invalid id")
)
