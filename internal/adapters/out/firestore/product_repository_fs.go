package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	fscommon "alwarmart/internal/adapters/out/firestore/common"
	productdom "alwarmart/internal/domain/product"
)

// ========================================
// Firestore Repository Implementation
// ========================================

// ProductRepositoryFS stores products in the "Product" collection, keyed by
// productId.
type ProductRepositoryFS struct {
	Client *firestore.Client
}

func NewProductRepositoryFS(client *firestore.Client) *ProductRepositoryFS {
	return &ProductRepositoryFS{Client: client}
}

func (r *ProductRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("Product")
}

// Ensure interface implementation
var _ productdom.Repository = (*ProductRepositoryFS)(nil)

func (r *ProductRepositoryFS) ListAll(ctx context.Context) ([]productdom.Product, error) {
	iter := r.col().Documents(ctx)
	defer iter.Stop()

	var items []productdom.Product
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		p, err := docToProduct(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

func (r *ProductRepositoryFS) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.Product{}, productdom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if fscommon.IsNotFound(err) {
		return productdom.Product{}, productdom.ErrNotFound
	}
	if err != nil {
		return productdom.Product{}, err
	}
	return docToProduct(snap)
}

func (r *ProductRepositoryFS) Create(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	if strings.TrimSpace(p.ProductID) == "" {
		return productdom.Product{}, productdom.ErrInvalidID
	}

	ref := r.col().Doc(p.ProductID)
	if _, err := ref.Create(ctx, productToDocData(p)); err != nil {
		if fscommon.IsAlreadyExists(err) {
			return productdom.Product{}, productdom.ErrConflict
		}
		return productdom.Product{}, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return productdom.Product{}, err
	}
	return docToProduct(snap)
}

func (r *ProductRepositoryFS) Update(ctx context.Context, id string, p productdom.Product) (productdom.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.Product{}, productdom.ErrNotFound
	}
	ref := r.col().Doc(id)

	// ensure exists
	if _, err := ref.Get(ctx); fscommon.IsNotFound(err) {
		return productdom.Product{}, productdom.ErrNotFound
	} else if err != nil {
		return productdom.Product{}, err
	}

	p.ProductID = id
	if _, err := ref.Set(ctx, productToDocData(p)); err != nil {
		return productdom.Product{}, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return productdom.Product{}, err
	}
	return docToProduct(snap)
}

func (r *ProductRepositoryFS) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.ErrNotFound
	}
	ref := r.col().Doc(id)

	if _, err := ref.Get(ctx); fscommon.IsNotFound(err) {
		return productdom.ErrNotFound
	} else if err != nil {
		return err
	}

	_, err := ref.Delete(ctx)
	return err
}

// ========================================
// Mapping Helpers
// ========================================

func docToProduct(doc *firestore.DocumentSnapshot) (productdom.Product, error) {
	var raw struct {
		Available             bool     `firestore:"available"`
		ProductName           string   `firestore:"productName"`
		ProductDescription    string   `firestore:"productDescription"`
		Brand                 string   `firestore:"brand"`
		Category              string   `firestore:"category"`
		SubCategory           string   `firestore:"subCategory"`
		Price                 float64  `firestore:"price"`
		MRP                   float64  `firestore:"mrp"`
		PurchasePrice         float64  `firestore:"purchasePrice"`
		Discount              float64  `firestore:"discount"`
		StockCount            int      `firestore:"stockCount"`
		MinSelectableQuantity int      `firestore:"minSelectableQuantity"`
		MaxSelectableQuantity int      `firestore:"maxSelectableQuantity"`
		SelectableQuantity    int      `firestore:"selectableQuantity"`
		Weight                string   `firestore:"weight"`
		WeightSIUnit          string   `firestore:"weightSIUnit"`
		ProductLife           string   `firestore:"productLife"`
		ProductType           string   `firestore:"productType"`
		ProductIsFoodItem     string   `firestore:"productIsFoodItem"`
		Keywords              []string `firestore:"keywords"`
		ProductImage          []string `firestore:"productImage"`
		Barcode               string   `firestore:"barcode"`
		Variations            []struct {
			ID               string `firestore:"id"`
			Name             string `firestore:"name"`
			WeightWithSIUnit string `firestore:"weightWithSIUnit"`
		} `firestore:"variations"`
	}

	if err := doc.DataTo(&raw); err != nil {
		return productdom.Product{}, err
	}

	variations := make([]productdom.Variation, 0, len(raw.Variations))
	for _, v := range raw.Variations {
		variations = append(variations, productdom.Variation{
			ID:               v.ID,
			Name:             v.Name,
			WeightWithSIUnit: v.WeightWithSIUnit,
		})
	}
	if len(variations) == 0 {
		variations = nil
	}

	return productdom.Product{
		Available:             raw.Available,
		ProductID:             doc.Ref.ID,
		ProductName:           strings.TrimSpace(raw.ProductName),
		ProductDescription:    raw.ProductDescription,
		Brand:                 strings.TrimSpace(raw.Brand),
		Category:              strings.TrimSpace(raw.Category),
		SubCategory:           strings.TrimSpace(raw.SubCategory),
		Price:                 raw.Price,
		MRP:                   raw.MRP,
		PurchasePrice:         raw.PurchasePrice,
		Discount:              raw.Discount,
		StockCount:            raw.StockCount,
		MinSelectableQuantity: raw.MinSelectableQuantity,
		MaxSelectableQuantity: raw.MaxSelectableQuantity,
		SelectableQuantity:    raw.SelectableQuantity,
		Weight:                strings.TrimSpace(raw.Weight),
		WeightSIUnit:          strings.TrimSpace(raw.WeightSIUnit),
		ProductLife:           raw.ProductLife,
		ProductType:           strings.TrimSpace(raw.ProductType),
		ProductIsFoodItem:     strings.TrimSpace(raw.ProductIsFoodItem),
		Keywords:              raw.Keywords,
		ProductImage:          raw.ProductImage,
		Variations:            variations,
		Barcode:               strings.TrimSpace(raw.Barcode),
	}, nil
}

func productToDocData(p productdom.Product) map[string]any {
	variations := make([]map[string]any, 0, len(p.Variations))
	for _, v := range p.Variations {
		variations = append(variations, map[string]any{
			"id":               v.ID,
			"name":             v.Name,
			"weightWithSIUnit": v.WeightWithSIUnit,
		})
	}

	data := map[string]any{
		"available":             p.Available,
		"productId":             p.ProductID,
		"productName":           strings.TrimSpace(p.ProductName),
		"productDescription":    p.ProductDescription,
		"brand":                 strings.TrimSpace(p.Brand),
		"category":              strings.TrimSpace(p.Category),
		"subCategory":           strings.TrimSpace(p.SubCategory),
		"price":                 p.Price,
		"mrp":                   p.MRP,
		"purchasePrice":         p.PurchasePrice,
		"discount":              p.Discount,
		"stockCount":            p.StockCount,
		"minSelectableQuantity": p.MinSelectableQuantity,
		"maxSelectableQuantity": p.MaxSelectableQuantity,
		"selectableQuantity":    p.SelectableQuantity,
		"weight":                strings.TrimSpace(p.Weight),
		"weightSIUnit":          strings.TrimSpace(p.WeightSIUnit),
		"productLife":           p.ProductLife,
		"productType":           strings.TrimSpace(p.ProductType),
		"productIsFoodItem":     strings.TrimSpace(p.ProductIsFoodItem),
		"keywords":              p.Keywords,
		"productImage":          p.ProductImage,
		"variations":            variations,
		"barcode":               strings.TrimSpace(p.Barcode),
	}
	return data
}
