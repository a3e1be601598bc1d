package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ========================================
// Service
// ========================================

type Service struct {
	repo   Repository
	images ImageStore
	log    *zap.Logger
}

func NewService(repo Repository, images ImageStore, log *zap.Logger) *Service {
	return &Service{repo: repo, images: images, log: log}
}

func (s *Service) ListAll(ctx context.Context) ([]Category, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Category{}, ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

// Create uploads the category image under Categorys/<timestamp>-<tag>, then
// writes the document. The store assigns the document id.
func (s *Service) Create(ctx context.Context, tag string, img *Image) (Category, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return Category{}, ErrInvalidTag
	}

	c := Category{Tag: tag}

	if img != nil {
		url, err := s.uploadImage(ctx, tag, img)
		if err != nil {
			return Category{}, err
		}
		c.ImageURI = url
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return Category{}, err
	}
	s.log.Info("category created", zap.String("id", created.ID), zap.String("tag", tag))
	return created, nil
}

// Update renames the tag and optionally replaces the image. The previous
// image is deleted best effort before the new one is uploaded.
func (s *Service) Update(ctx context.Context, id, tag string, img *Image) (Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Category{}, ErrInvalidID
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return Category{}, ErrInvalidTag
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Category{}, err
	}
	c.Tag = tag

	if img != nil {
		if c.ImageURI != "" {
			if err := s.images.Delete(ctx, c.ImageURI); err != nil {
				s.log.Warn("category image delete failed",
					zap.String("id", id),
					zap.String("url", c.ImageURI),
					zap.Error(err))
			}
		}
		url, err := s.uploadImage(ctx, tag, img)
		if err != nil {
			return Category{}, err
		}
		c.ImageURI = url
	}

	return s.repo.Update(ctx, id, c)
}

// Delete removes the image best effort, then the document.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if c.ImageURI != "" {
		if err := s.images.Delete(ctx, c.ImageURI); err != nil {
			s.log.Warn("category image delete failed",
				zap.String("id", id),
				zap.String("url", c.ImageURI),
				zap.Error(err))
		}
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) uploadImage(ctx context.Context, tag string, img *Image) (string, error) {
	objectPath := fmt.Sprintf("Categorys/%d-%s", time.Now().UnixMilli(), tag)
	return s.images.Upload(ctx, objectPath, img.Data, img.ContentType)
}
