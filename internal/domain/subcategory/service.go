package subcategory

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

func (s *Service) ListAll(ctx context.Context) ([]SubCategory, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (SubCategory, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return SubCategory{}, ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, name string) (SubCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SubCategory{}, ErrInvalidName
	}

	created, err := s.repo.Create(ctx, SubCategory{
		SubCategoryName: name,
		CreatedAt:       time.Now(),
	})
	if err != nil {
		return SubCategory{}, err
	}
	s.log.Info("subcategory created", zap.String("id", created.ID), zap.String("name", name))
	return created, nil
}

func (s *Service) Update(ctx context.Context, id, name string) (SubCategory, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return SubCategory{}, ErrInvalidID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return SubCategory{}, ErrInvalidName
	}

	sc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return SubCategory{}, err
	}
	sc.SubCategoryName = name

	return s.repo.Update(ctx, id, sc)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}
