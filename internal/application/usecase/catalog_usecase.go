package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	branddom "alwarmart/internal/domain/brand"
	categorydom "alwarmart/internal/domain/category"
	productdom "alwarmart/internal/domain/product"
	subcatdom "alwarmart/internal/domain/subcategory"
)

// CatalogSnapshot is the joint read the console boots from: products plus
// every lookup collection, fetched in one round.
type CatalogSnapshot struct {
	Products      []productdom.Product    `json:"products"`
	Brands        []branddom.Brand        `json:"brands"`
	Categories    []categorydom.Category  `json:"categories"`
	SubCategories []subcatdom.SubCategory `json:"subCategories"`
}

// CatalogUsecase loads the four catalog collections concurrently. Any
// single failure fails the whole load.
type CatalogUsecase struct {
	products      *productdom.Service
	brands        *branddom.Service
	categories    *categorydom.Service
	subcategories *subcatdom.Service
}

func NewCatalogUsecase(
	products *productdom.Service,
	brands *branddom.Service,
	categories *categorydom.Service,
	subcategories *subcatdom.Service,
) *CatalogUsecase {
	return &CatalogUsecase{
		products:      products,
		brands:        brands,
		categories:    categories,
		subcategories: subcategories,
	}
}

func (u *CatalogUsecase) Load(ctx context.Context) (CatalogSnapshot, error) {
	var snap CatalogSnapshot

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := u.products.ListAll(gctx)
		if err != nil {
			return err
		}
		snap.Products = items
		return nil
	})
	g.Go(func() error {
		items, err := u.brands.ListAll(gctx)
		if err != nil {
			return err
		}
		snap.Brands = items
		return nil
	})
	g.Go(func() error {
		items, err := u.categories.ListAll(gctx)
		if err != nil {
			return err
		}
		snap.Categories = items
		return nil
	})
	g.Go(func() error {
		items, err := u.subcategories.ListAll(gctx)
		if err != nil {
			return err
		}
		snap.SubCategories = items
		return nil
	})

	if err := g.Wait(); err != nil {
		return CatalogSnapshot{}, err
	}
	return snap, nil
}
