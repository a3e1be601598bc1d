package brand

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

type Service struct {
	repo  Repository
	icons IconStore
	log   *zap.Logger
}

func NewService(repo Repository, icons IconStore, log *zap.Logger) *Service {
	return &Service{repo: repo, icons: icons, log: log}
}

func (s *Service) ListAll(ctx context.Context) ([]Brand, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetByName(ctx context.Context, name string) (Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Brand{}, ErrInvalidName
	}
	return s.repo.GetByName(ctx, name)
}

// Create stores a brand keyed by its name, uploading the icon first when one
// was provided. Saving a name that already exists overwrites that document.
func (s *Service) Create(ctx context.Context, name string, icon *Icon) (Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Brand{}, ErrInvalidName
	}

	b := Brand{BrandName: name, CreatedAt: time.Now()}

	if icon != nil {
		url, err := s.uploadIcon(ctx, icon)
		if err != nil {
			return Brand{}, err
		}
		b.BrandIcon = url
	}

	saved, err := s.repo.Save(ctx, b)
	if err != nil {
		return Brand{}, err
	}
	s.log.Info("brand created", zap.String("brandName", name))
	return saved, nil
}

// UpdateIcon replaces the brand's icon. The previous icon is deleted best
// effort before the new upload; a failed delete is logged and the update
// continues.
func (s *Service) UpdateIcon(ctx context.Context, name string, icon *Icon) (Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Brand{}, ErrInvalidName
	}
	if icon == nil {
		return Brand{}, ErrInvalidName
	}

	b, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return Brand{}, err
	}

	if b.BrandIcon != "" {
		if err := s.icons.Delete(ctx, b.BrandIcon); err != nil {
			s.log.Warn("brand icon delete failed",
				zap.String("brandName", name),
				zap.String("url", b.BrandIcon),
				zap.Error(err))
		}
	}

	url, err := s.uploadIcon(ctx, icon)
	if err != nil {
		return Brand{}, err
	}
	b.BrandIcon = url
	b.UpdatedAt = time.Now()

	return s.repo.Save(ctx, b)
}

// Delete removes the icon best effort, then the document.
func (s *Service) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}

	b, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return err
	}

	if b.BrandIcon != "" {
		if err := s.icons.Delete(ctx, b.BrandIcon); err != nil {
			s.log.Warn("brand icon delete failed",
				zap.String("brandName", name),
				zap.String("url", b.BrandIcon),
				zap.Error(err))
		}
	}

	return s.repo.Delete(ctx, name)
}

func (s *Service) uploadIcon(ctx context.Context, icon *Icon) (string, error) {
	objectPath := "brandIcon/" + strconv.FormatInt(time.Now().UnixMilli(), 10) + icon.Name
	return s.icons.Upload(ctx, objectPath, icon.Data, icon.ContentType)
}
