package usecase

import (
	"context"

	"go.uber.org/zap"

	invoicedom "alwarmart/internal/domain/invoice"
	orderdom "alwarmart/internal/domain/order"
)

// ========================================
// Ports
// ========================================

// PDFRenderer writes the invoice document and returns its file path.
type PDFRenderer interface {
	Render(inv invoicedom.Invoice) (string, error)
}

// ReceiptPrinter ships the invoice to a thermal printer.
type ReceiptPrinter interface {
	Print(inv invoicedom.Invoice) error
}

// InvoiceMailer notifies the operations inbox about a confirmed order.
type InvoiceMailer interface {
	SendInvoiceSummary(ctx context.Context, inv invoicedom.Invoice) error
}

// ========================================
// Render choice
// ========================================

// RenderChoice selects which invoice outputs the confirm operation runs.
type RenderChoice int

const (
	RenderNone RenderChoice = iota
	RenderPDF
	RenderPrinter
	RenderBoth
)

func (c RenderChoice) wantsPDF() bool {
	return c == RenderPDF || c == RenderBoth
}

func (c RenderChoice) wantsPrinter() bool {
	return c == RenderPrinter || c == RenderBoth
}

// ========================================
// Usecase
// ========================================

// ConfirmResult reports what the confirm operation did. RenderErrors holds
// best-effort failures; the status change itself already succeeded when a
// result is returned.
type ConfirmResult struct {
	Order        orderdom.Order     `json:"order"`
	Invoice      invoicedom.Invoice `json:"invoice"`
	PDFPath      string             `json:"pdfPath,omitempty"`
	RenderErrors []string           `json:"renderErrors,omitempty"`
}

// OrderConfirmUsecase moves an order to Confirmed and runs the selected
// invoice outputs. Rendering never rolls back the status change: failures
// are collected into the result instead.
type OrderConfirmUsecase struct {
	orders  *orderdom.Service
	pdf     PDFRenderer
	printer ReceiptPrinter
	mailer  InvoiceMailer
	log     *zap.Logger
}

func NewOrderConfirmUsecase(
	orders *orderdom.Service,
	pdf PDFRenderer,
	printer ReceiptPrinter,
	mailer InvoiceMailer,
	log *zap.Logger,
) *OrderConfirmUsecase {
	return &OrderConfirmUsecase{
		orders:  orders,
		pdf:     pdf,
		printer: printer,
		mailer:  mailer,
		log:     log,
	}
}

func (u *OrderConfirmUsecase) Confirm(ctx context.Context, userID, orderID string, choice RenderChoice) (ConfirmResult, error) {
	updated, err := u.orders.UpdateStatus(ctx, userID, orderID, orderdom.StatusConfirmed)
	if err != nil {
		return ConfirmResult{}, err
	}

	inv := invoicedom.BuildFromOrder(updated)
	result := ConfirmResult{Order: updated, Invoice: inv}

	if choice.wantsPDF() && u.pdf != nil {
		path, err := u.pdf.Render(inv)
		if err != nil {
			u.log.Warn("invoice pdf render failed",
				zap.String("orderId", orderID), zap.Error(err))
			result.RenderErrors = append(result.RenderErrors, "pdf: "+err.Error())
		} else {
			result.PDFPath = path
		}
	}

	if choice.wantsPrinter() && u.printer != nil {
		if err := u.printer.Print(inv); err != nil {
			u.log.Warn("invoice receipt print failed",
				zap.String("orderId", orderID), zap.Error(err))
			result.RenderErrors = append(result.RenderErrors, "printer: "+err.Error())
		}
	}

	// ops notification is fire-and-forget; not part of the render choice
	if u.mailer != nil {
		if err := u.mailer.SendInvoiceSummary(ctx, inv); err != nil {
			u.log.Warn("invoice summary mail failed",
				zap.String("orderId", orderID), zap.Error(err))
		}
	}

	return result, nil
}
