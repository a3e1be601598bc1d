package adsproduct

import (
	"context"
	"errors"
)

// Repository defines the data access contract for the AdsProduct collection.
// Update is a merge-set: unspecified fields keep their stored values and the
// write stamps updatedAt.
type Repository interface {
	ListAll(ctx context.Context) ([]AdsProduct, error)
	GetByID(ctx context.Context, productID string) (AdsProduct, error)
	Create(ctx context.Context, a AdsProduct) (AdsProduct, error)
	Update(ctx context.Context, productID string, sponsorTypes []SponsorType) (AdsProduct, error)
	Delete(ctx context.Context, productID string) error
}

// Contract errors shared by all Repository implementations.
var (
	ErrNotFound  = errors.New("adsproduct: not found")
	ErrInvalidID = errors.New("adsproduct: invalid product id")
)
