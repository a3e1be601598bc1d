package adsproduct

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) ListAll(ctx context.Context) ([]AdsProduct, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, productID string) (AdsProduct, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return AdsProduct{}, ErrInvalidID
	}
	return s.repo.GetByID(ctx, productID)
}

// Create writes the sponsorship document keyed by the promoted productId.
func (s *Service) Create(ctx context.Context, productID string, sponsorTypes []SponsorType) (AdsProduct, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return AdsProduct{}, ErrInvalidID
	}

	a := AdsProduct{
		ProductID:    productID,
		SponsorTypes: sponsorTypes,
		CreatedAt:    time.Now(),
	}
	if err := a.Validate(); err != nil {
		return AdsProduct{}, err
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return AdsProduct{}, err
	}
	s.log.Info("ads product created", zap.String("productId", productID))
	return created, nil
}

// Update replaces the sponsor types via a merge-set that stamps updatedAt.
func (s *Service) Update(ctx context.Context, productID string, sponsorTypes []SponsorType) (AdsProduct, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return AdsProduct{}, ErrInvalidID
	}

	probe := AdsProduct{ProductID: productID, SponsorTypes: sponsorTypes}
	if err := probe.Validate(); err != nil {
		return AdsProduct{}, err
	}

	return s.repo.Update(ctx, productID, sponsorTypes)
}

func (s *Service) Delete(ctx context.Context, productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return ErrInvalidID
	}
	return s.repo.Delete(ctx, productID)
}
