package di

import (
	"go.uber.org/zap"

	fsadapter "alwarmart/internal/adapters/out/firestore"
	gcsadapter "alwarmart/internal/adapters/out/gcs"
	mailadapter "alwarmart/internal/adapters/out/mail"
	printeradapter "alwarmart/internal/adapters/out/printer"
	rtdbadapter "alwarmart/internal/adapters/out/rtdb"
	"alwarmart/internal/application/usecase"
	adsdom "alwarmart/internal/domain/adsproduct"
	branddom "alwarmart/internal/domain/brand"
	categorydom "alwarmart/internal/domain/category"
	orderdom "alwarmart/internal/domain/order"
	productdom "alwarmart/internal/domain/product"
	subcatdom "alwarmart/internal/domain/subcategory"
)

// Container wires domain services and usecases onto the shared infra.
type Container struct {
	Products      *productdom.Service
	Brands        *branddom.Service
	Categories    *categorydom.Service
	SubCategories *subcatdom.Service
	AdsProducts   *adsdom.Service
	Orders        *orderdom.Service

	Catalog      *usecase.CatalogUsecase
	OrderConfirm *usecase.OrderConfirmUsecase
}

func NewContainer(inf *Infra, log *zap.Logger) *Container {
	cfg := inf.Config

	images := gcsadapter.NewImageStoreGCS(inf.GCS, cfg.ImageBucket)

	products := productdom.NewService(
		fsadapter.NewProductRepositoryFS(inf.Firestore), images, log)
	brands := branddom.NewService(
		fsadapter.NewBrandRepositoryFS(inf.Firestore), images, log)
	categories := categorydom.NewService(
		fsadapter.NewCategoryRepositoryFS(inf.Firestore), images, log)
	subcategories := subcatdom.NewService(
		fsadapter.NewSubCategoryRepositoryFS(inf.Firestore), log)
	adsproducts := adsdom.NewService(
		fsadapter.NewAdsProductRepositoryFS(inf.Firestore), log)

	c := &Container{
		Products:      products,
		Brands:        brands,
		Categories:    categories,
		SubCategories: subcategories,
		AdsProducts:   adsproducts,
		Catalog:       usecase.NewCatalogUsecase(products, brands, categories, subcategories),
	}

	if inf.RTDB != nil {
		orders := orderdom.NewService(rtdbadapter.NewOrderRepositoryRTDB(inf.RTDB), log)
		c.Orders = orders

		pdf := printeradapter.NewPDFWriter(cfg.InvoiceDir)

		var receipt usecase.ReceiptPrinter
		if cfg.PrinterAddr != "" {
			receipt = printeradapter.NewReceiptPrinter(cfg.PrinterAddr)
		}

		var mailer usecase.InvoiceMailer
		if cfg.SendGridAPIKey != "" {
			m := mailadapter.NewInvoiceMailer(
				mailadapter.NewSendGridClient(cfg.SendGridAPIKey, log),
				cfg.MailFrom, cfg.MailTo)
			if m.Configured() {
				mailer = m
			}
		}

		c.OrderConfirm = usecase.NewOrderConfirmUsecase(orders, pdf, receipt, mailer, log)
	}

	return c
}
