package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	fscommon "alwarmart/internal/adapters/out/firestore/common"
	adsdom "alwarmart/internal/domain/adsproduct"
)

// ========================================
// Firestore Repository Implementation
// ========================================

// AdsProductRepositoryFS stores sponsorships in the "AdsProduct" collection,
// keyed by the promoted productId. Update is a merge-set that stamps
// updatedAt without touching createdAt.
type AdsProductRepositoryFS struct {
	Client *firestore.Client
}

func NewAdsProductRepositoryFS(client *firestore.Client) *AdsProductRepositoryFS {
	return &AdsProductRepositoryFS{Client: client}
}

func (r *AdsProductRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("AdsProduct")
}

// Ensure interface implementation
var _ adsdom.Repository = (*AdsProductRepositoryFS)(nil)

func (r *AdsProductRepositoryFS) ListAll(ctx context.Context) ([]adsdom.AdsProduct, error) {
	iter := r.col().Documents(ctx)
	defer iter.Stop()

	var items []adsdom.AdsProduct
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		a, err := docToAdsProduct(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, nil
}

func (r *AdsProductRepositoryFS) GetByID(ctx context.Context, productID string) (adsdom.AdsProduct, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return adsdom.AdsProduct{}, adsdom.ErrNotFound
	}

	snap, err := r.col().Doc(productID).Get(ctx)
	if fscommon.IsNotFound(err) {
		return adsdom.AdsProduct{}, adsdom.ErrNotFound
	}
	if err != nil {
		return adsdom.AdsProduct{}, err
	}
	return docToAdsProduct(snap)
}

func (r *AdsProductRepositoryFS) Create(ctx context.Context, a adsdom.AdsProduct) (adsdom.AdsProduct, error) {
	productID := strings.TrimSpace(a.ProductID)
	if productID == "" {
		return adsdom.AdsProduct{}, adsdom.ErrInvalidID
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	ref := r.col().Doc(productID)
	data := map[string]any{
		"productId":    productID,
		"sponsorTypes": sponsorTypesToDocData(a.SponsorTypes),
		"createdAt":    a.CreatedAt.UTC(),
	}
	if _, err := ref.Set(ctx, data); err != nil {
		return adsdom.AdsProduct{}, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return adsdom.AdsProduct{}, err
	}
	return docToAdsProduct(snap)
}

func (r *AdsProductRepositoryFS) Update(ctx context.Context, productID string, sponsorTypes []adsdom.SponsorType) (adsdom.AdsProduct, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return adsdom.AdsProduct{}, adsdom.ErrNotFound
	}
	ref := r.col().Doc(productID)

	if _, err := ref.Get(ctx); fscommon.IsNotFound(err) {
		return adsdom.AdsProduct{}, adsdom.ErrNotFound
	} else if err != nil {
		return adsdom.AdsProduct{}, err
	}

	data := map[string]any{
		"sponsorTypes": sponsorTypesToDocData(sponsorTypes),
		"updatedAt":    time.Now().UTC(),
	}
	if _, err := ref.Set(ctx, data, firestore.MergeAll); err != nil {
		return adsdom.AdsProduct{}, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return adsdom.AdsProduct{}, err
	}
	return docToAdsProduct(snap)
}

func (r *AdsProductRepositoryFS) Delete(ctx context.Context, productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return adsdom.ErrNotFound
	}
	ref := r.col().Doc(productID)

	if _, err := ref.Get(ctx); fscommon.IsNotFound(err) {
		return adsdom.ErrNotFound
	} else if err != nil {
		return err
	}

	_, err := ref.Delete(ctx)
	return err
}

// ========================================
// Mapping Helpers
// ========================================

func docToAdsProduct(doc *firestore.DocumentSnapshot) (adsdom.AdsProduct, error) {
	var raw struct {
		SponsorTypes []struct {
			Type          string `firestore:"type"`
			PriorityLevel string `firestore:"priorityLevel"`
		} `firestore:"sponsorTypes"`
		CreatedAt time.Time  `firestore:"createdAt"`
		UpdatedAt *time.Time `firestore:"updatedAt"`
	}
	if err := doc.DataTo(&raw); err != nil {
		return adsdom.AdsProduct{}, err
	}

	types := make([]adsdom.SponsorType, 0, len(raw.SponsorTypes))
	for _, st := range raw.SponsorTypes {
		types = append(types, adsdom.SponsorType{
			Type:          st.Type,
			PriorityLevel: st.PriorityLevel,
		})
	}

	a := adsdom.AdsProduct{
		ProductID:    doc.Ref.ID,
		SponsorTypes: types,
		CreatedAt:    raw.CreatedAt.UTC(),
	}
	if raw.UpdatedAt != nil && !raw.UpdatedAt.IsZero() {
		a.UpdatedAt = raw.UpdatedAt.UTC()
	}
	return a, nil
}

func sponsorTypesToDocData(types []adsdom.SponsorType) []map[string]any {
	out := make([]map[string]any, 0, len(types))
	for _, st := range types {
		out = append(out, map[string]any{
			"type":          st.Type,
			"priorityLevel": st.PriorityLevel,
		})
	}
	return out
}
