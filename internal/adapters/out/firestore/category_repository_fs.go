package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	fscommon "alwarmart/internal/adapters/out/firestore/common"
	categorydom "alwarmart/internal/domain/category"
)

// ========================================
// Firestore Repository Implementation
// ========================================

// CategoryRepositoryFS stores categories in the "Category" collection with
// store-generated document ids.
type CategoryRepositoryFS struct {
	Client *firestore.Client
}

func NewCategoryRepositoryFS(client *firestore.Client) *CategoryRepositoryFS {
	return &CategoryRepositoryFS{Client: client}
}

func (r *CategoryRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("Category")
}

// Ensure interface implementation
var _ categorydom.Repository = (*CategoryRepositoryFS)(nil)

func (r *CategoryRepositoryFS) ListAll(ctx context.Context) ([]categorydom.Category, error) {
	iter := r.col().Documents(ctx)
	defer iter.Stop()

	var items []categorydom.Category
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		c, err := docToCategory(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, nil
}

func (r *CategoryRepositoryFS) GetByID(ctx context.Context, id string) (categorydom.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return categorydom.Category{}, categorydom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if fscommon.IsNotFound(err) {
		return categorydom.Category{}, categorydom.ErrNotFound
	}
	if err != nil {
		return categorydom.Category{}, err
	}
	return docToCategory(snap)
}

func (r *CategoryRepositoryFS) Create(ctx context.Context, c categorydom.Category) (categorydom.Category, error) {
	ref := r.col().NewDoc()
	c.ID = ref.ID

	if _, err := ref.Create(ctx, categoryToDocData(c)); err != nil {
		return categorydom.Category{}, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return categorydom.Category{}, err
	}
	return docToCategory(snap)
}

func (r *CategoryRepositoryFS) Update(ctx context.Context, id string, c categorydom.Category) (categorydom.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return categorydom.Category{}, categorydom.ErrNotFound
	}
	ref := r.col().Doc(id)

	if _, err := ref.Get(ctx); fscommon.IsNotFound(err) {
		return categorydom.Category{}, categorydom.ErrNotFound
	} else if err != nil {
		return categorydom.Category{}, err
	}

	c.ID = id
	if _, err := ref.Set(ctx, categoryToDocData(c)); err != nil {
		return categorydom.Category{}, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return categorydom.Category{}, err
	}
	return docToCategory(snap)
}

func (r *CategoryRepositoryFS) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return categorydom.ErrNotFound
	}
	ref := r.col().Doc(id)

	if _, err := ref.Get(ctx); fscommon.IsNotFound(err) {
		return categorydom.ErrNotFound
	} else if err != nil {
		return err
	}

	_, err := ref.Delete(ctx)
	return err
}

// ========================================
// Mapping Helpers
// ========================================

func docToCategory(doc *firestore.DocumentSnapshot) (categorydom.Category, error) {
	var raw struct {
		Tag      string `firestore:"tag"`
		ImageURI string `firestore:"imageUri"`
	}
	if err := doc.DataTo(&raw); err != nil {
		return categorydom.Category{}, err
	}

	return categorydom.Category{
		ID:       doc.Ref.ID,
		Tag:      strings.TrimSpace(raw.Tag),
		ImageURI: strings.TrimSpace(raw.ImageURI),
	}, nil
}

func categoryToDocData(c categorydom.Category) map[string]any {
	data := map[string]any{
		"tag": strings.TrimSpace(c.Tag),
	}
	if strings.TrimSpace(c.ImageURI) != "" {
		data["imageUri"] = strings.TrimSpace(c.ImageURI)
	}
	return data
}
