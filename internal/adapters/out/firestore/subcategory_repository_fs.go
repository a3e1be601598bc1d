package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	fscommon "alwarmart/internal/adapters/out/firestore/common"
	subcatdom "alwarmart/internal/domain/subcategory"
)

// ========================================
// Firestore Repository Implementation
// ========================================

// SubCategoryRepositoryFS stores subcategories in the "subCategory"
// collection with store-generated document ids.
type SubCategoryRepositoryFS struct {
	Client *firestore.Client
}

func NewSubCategoryRepositoryFS(client *firestore.Client) *SubCategoryRepositoryFS {
	return &SubCategoryRepositoryFS{Client: client}
}

func (r *SubCategoryRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("subCategory")
}

// Ensure interface implementation
var _ subcatdom.Repository = (*SubCategoryRepositoryFS)(nil)

func (r *SubCategoryRepositoryFS) ListAll(ctx context.Context) ([]subcatdom.SubCategory, error) {
	iter := r.col().Documents(ctx)
	defer iter.Stop()

	var items []subcatdom.SubCategory
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		sc, err := docToSubCategory(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, sc)
	}
	return items, nil
}

func (r *SubCategoryRepositoryFS) GetByID(ctx context.Context, id string) (subcatdom.SubCategory, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return subcatdom.SubCategory{}, subcatdom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if fscommon.IsNotFound(err) {
		return subcatdom.SubCategory{}, subcatdom.ErrNotFound
	}
	if err != nil {
		return subcatdom.SubCategory{}, err
	}
	return docToSubCategory(snap)
}

func (r *SubCategoryRepositoryFS) Create(ctx context.Context, sc subcatdom.SubCategory) (subcatdom.SubCategory, error) {
	if sc.CreatedAt.IsZero() {
		sc.CreatedAt = time.Now().UTC()
	}

	ref := r.col().NewDoc()
	sc.ID = ref.ID

	if _, err := ref.Create(ctx, subCategoryToDocData(sc)); err != nil {
		return subcatdom.SubCategory{}, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return subcatdom.SubCategory{}, err
	}
	return docToSubCategory(snap)
}

func (r *SubCategoryRepositoryFS) Update(ctx context.Context, id string, sc subcatdom.SubCategory) (subcatdom.SubCategory, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return subcatdom.SubCategory{}, subcatdom.ErrNotFound
	}
	ref := r.col().Doc(id)

	if _, err := ref.Get(ctx); fscommon.IsNotFound(err) {
		return subcatdom.SubCategory{}, subcatdom.ErrNotFound
	} else if err != nil {
		return subcatdom.SubCategory{}, err
	}

	sc.ID = id
	if _, err := ref.Set(ctx, subCategoryToDocData(sc)); err != nil {
		return subcatdom.SubCategory{}, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return subcatdom.SubCategory{}, err
	}
	return docToSubCategory(snap)
}

func (r *SubCategoryRepositoryFS) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return subcatdom.ErrNotFound
	}
	ref := r.col().Doc(id)

	if _, err := ref.Get(ctx); fscommon.IsNotFound(err) {
		return subcatdom.ErrNotFound
	} else if err != nil {
		return err
	}

	_, err := ref.Delete(ctx)
	return err
}

// ========================================
// Mapping Helpers
// ========================================

func docToSubCategory(doc *firestore.DocumentSnapshot) (subcatdom.SubCategory, error) {
	var raw struct {
		SubCategoryName string    `firestore:"subCategoryName"`
		CreatedAt       time.Time `firestore:"createdAt"`
	}
	if err := doc.DataTo(&raw); err != nil {
		return subcatdom.SubCategory{}, err
	}

	return subcatdom.SubCategory{
		ID:              doc.Ref.ID,
		SubCategoryName: strings.TrimSpace(raw.SubCategoryName),
		CreatedAt:       raw.CreatedAt.UTC(),
	}, nil
}

func subCategoryToDocData(sc subcatdom.SubCategory) map[string]any {
	return map[string]any{
		"subCategoryName": strings.TrimSpace(sc.SubCategoryName),
		"createdAt":       sc.CreatedAt.UTC(),
	}
}
