package subcategory

import (
	"context"
	"errors"
)

// Repository defines the data access contract for the subCategory
// collection. Create returns the store-generated document id.
type Repository interface {
	ListAll(ctx context.Context) ([]SubCategory, error)
	GetByID(ctx context.Context, id string) (SubCategory, error)
	Create(ctx context.Context, sc SubCategory) (SubCategory, error)
	Update(ctx context.Context, id string, sc SubCategory) (SubCategory, error)
	Delete(ctx context.Context, id string) error
}

// Contract errors shared by all Repository implementations.
var (
	ErrNotFound    = errors.New("subcategory: not found")
	ErrInvalidName = errors.New("subcategory: invalid name")
	ErrInvalidID   = errors.New("subcategory: invalid id")
)
