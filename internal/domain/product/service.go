package product

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ========================================
// Service
// ========================================

// Service implements the product use cases on top of the Repository and
// ImageStore ports.
type Service struct {
	repo   Repository
	images ImageStore
	log    *zap.Logger
}

func NewService(repo Repository, images ImageStore, log *zap.Logger) *Service {
	return &Service{repo: repo, images: images, log: log}
}

func (s *Service) ListAll(ctx context.Context) ([]Product, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Product{}, ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

// Create validates the raw form, uploads the staged images, and persists the
// document keyed by its productId. Validation failures abort before any
// upload happens.
func (s *Service) Create(ctx context.Context, form FormInput, files []ImageFile) (Product, error) {
	if err := form.Validate(0, len(files)); err != nil {
		return Product{}, err
	}

	p := form.Normalize()

	urls, err := s.uploadImages(ctx, files)
	if err != nil {
		return Product{}, err
	}
	p.ProductImage = urls

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return Product{}, err
	}
	s.log.Info("product created", zap.String("productId", created.ProductID))
	return created, nil
}

// Update validates against the combined image count (kept URLs plus newly
// staged files), uploads the new files, and overwrites the document. The
// productImage field becomes currentImages followed by the new URLs.
func (s *Service) Update(ctx context.Context, id string, form FormInput, currentImages []string, files []ImageFile) (Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Product{}, ErrInvalidID
	}

	if err := form.Validate(len(currentImages), len(files)); err != nil {
		return Product{}, err
	}

	form.ProductID = id
	p := form.Normalize()

	urls, err := s.uploadImages(ctx, files)
	if err != nil {
		return Product{}, err
	}
	p.ProductImage = append(append([]string{}, currentImages...), urls...)

	updated, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return Product{}, err
	}
	s.log.Info("product updated", zap.String("productId", id))
	return updated, nil
}

// Delete removes the stored images first, then the document. Image removal
// is best effort: a failed blob delete is logged and the document delete
// still proceeds.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	for _, url := range p.ProductImage {
		if err := s.images.Delete(ctx, url); err != nil {
			s.log.Warn("product image delete failed",
				zap.String("productId", id),
				zap.String("url", url),
				zap.Error(err))
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("product deleted", zap.String("productId", id))
	return nil
}

// SearchForVariation returns products whose name contains the query
// (case-insensitive), excluding the product the variation would be attached
// to. An empty query returns nothing.
func (s *Service) SearchForVariation(ctx context.Context, ownerID, query string) ([]Product, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []Product
	for _, p := range all {
		if p.ProductID == ownerID {
			continue
		}
		if strings.Contains(strings.ToLower(p.ProductName), query) {
			out = append(out, p)
		}
	}
	return out, nil
}

// AttachVariation snapshots the target product onto the owner's variation
// list and persists the owner. Attaching an already-linked product is
// rejected with ErrVariationAlreadyAttached.
func (s *Service) AttachVariation(ctx context.Context, ownerID, targetID string) (Product, error) {
	ownerID = strings.TrimSpace(ownerID)
	targetID = strings.TrimSpace(targetID)
	if ownerID == "" || targetID == "" {
		return Product{}, ErrInvalidID
	}

	owner, err := s.repo.GetByID(ctx, ownerID)
	if err != nil {
		return Product{}, err
	}
	target, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return Product{}, err
	}

	v := Variation{
		ID:               target.ProductID,
		Name:             target.ProductName,
		WeightWithSIUnit: strings.TrimSpace(target.Weight + " " + target.WeightSIUnit),
	}
	if err := owner.AttachVariation(v); err != nil {
		return Product{}, err
	}

	return s.repo.Update(ctx, ownerID, owner)
}

// uploadImages stores each staged file under product/<millis><filename> and
// collects the resulting download URLs in selection order.
func (s *Service) uploadImages(ctx context.Context, files []ImageFile) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		objectPath := "product/" + strconv.FormatInt(time.Now().UnixMilli(), 10) + f.Name
		url, err := s.images.Upload(ctx, objectPath, f.Data, f.ContentType)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
