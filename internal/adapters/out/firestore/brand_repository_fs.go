package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	fscommon "alwarmart/internal/adapters/out/firestore/common"
	branddom "alwarmart/internal/domain/brand"
)

// ========================================
// Firestore Repository Implementation
// ========================================

// BrandRepositoryFS stores brands in the "brand" collection. The brandName
// doubles as the document id, so Save is an upsert-by-key.
type BrandRepositoryFS struct {
	Client *firestore.Client
}

func NewBrandRepositoryFS(client *firestore.Client) *BrandRepositoryFS {
	return &BrandRepositoryFS{Client: client}
}

func (r *BrandRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("brand")
}

// Ensure interface implementation
var _ branddom.Repository = (*BrandRepositoryFS)(nil)

func (r *BrandRepositoryFS) ListAll(ctx context.Context) ([]branddom.Brand, error) {
	iter := r.col().Documents(ctx)
	defer iter.Stop()

	var items []branddom.Brand
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		b, err := docToBrand(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, nil
}

func (r *BrandRepositoryFS) GetByName(ctx context.Context, name string) (branddom.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return branddom.Brand{}, branddom.ErrNotFound
	}

	snap, err := r.col().Doc(name).Get(ctx)
	if fscommon.IsNotFound(err) {
		return branddom.Brand{}, branddom.ErrNotFound
	}
	if err != nil {
		return branddom.Brand{}, err
	}
	return docToBrand(snap)
}

func (r *BrandRepositoryFS) Save(ctx context.Context, b branddom.Brand) (branddom.Brand, error) {
	name := strings.TrimSpace(b.BrandName)
	if name == "" {
		return branddom.Brand{}, branddom.ErrInvalidName
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	ref := r.col().Doc(name)
	if _, err := ref.Set(ctx, brandToDocData(b)); err != nil {
		return branddom.Brand{}, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return branddom.Brand{}, err
	}
	return docToBrand(snap)
}

func (r *BrandRepositoryFS) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return branddom.ErrNotFound
	}
	ref := r.col().Doc(name)

	if _, err := ref.Get(ctx); fscommon.IsNotFound(err) {
		return branddom.ErrNotFound
	} else if err != nil {
		return err
	}

	_, err := ref.Delete(ctx)
	return err
}

// ========================================
// Mapping Helpers
// ========================================

func docToBrand(doc *firestore.DocumentSnapshot) (branddom.Brand, error) {
	var raw struct {
		BrandName string     `firestore:"brandName"`
		BrandIcon string     `firestore:"brandIcon"`
		CreatedAt time.Time  `firestore:"createdAt"`
		UpdatedAt *time.Time `firestore:"updatedAt"`
	}
	if err := doc.DataTo(&raw); err != nil {
		return branddom.Brand{}, err
	}

	b := branddom.Brand{
		BrandName: doc.Ref.ID,
		BrandIcon: strings.TrimSpace(raw.BrandIcon),
		CreatedAt: raw.CreatedAt.UTC(),
	}
	if raw.UpdatedAt != nil && !raw.UpdatedAt.IsZero() {
		b.UpdatedAt = raw.UpdatedAt.UTC()
	}
	return b, nil
}

func brandToDocData(b branddom.Brand) map[string]any {
	data := map[string]any{
		"brandName": strings.TrimSpace(b.BrandName),
		"createdAt": b.CreatedAt.UTC(),
	}
	if strings.TrimSpace(b.BrandIcon) != "" {
		data["brandIcon"] = strings.TrimSpace(b.BrandIcon)
	}
	if !b.UpdatedAt.IsZero() {
		data["updatedAt"] = b.UpdatedAt.UTC()
	}
	return data
}
