package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	invoicedom "alwarmart/internal/domain/invoice"
	orderdom "alwarmart/internal/domain/order"
)

// ========================================
// Test doubles
// ========================================

type fakeOrderRepo struct {
	order   orderdom.Order
	updated []orderdom.Status
}

func (r *fakeOrderRepo) ListAll(ctx context.Context) ([]orderdom.Order, error) {
	return []orderdom.Order{r.order}, nil
}

func (r *fakeOrderRepo) Get(ctx context.Context, userID, orderID string) (orderdom.Order, error) {
	if r.order.UserID != userID || r.order.OrderID != orderID {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	return r.order, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, userID, orderID string, status orderdom.Status) error {
	r.order.OrderStatus = status
	r.updated = append(r.updated, status)
	return nil
}

type fakePDF struct {
	err   error
	calls int
}

func (f *fakePDF) Render(inv invoicedom.Invoice) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "/tmp/" + invoicedom.PDFFileName(inv.OrderID), nil
}

type fakePrinter struct {
	err   error
	calls int
}

func (f *fakePrinter) Print(inv invoicedom.Invoice) error {
	f.calls++
	return f.err
}

type fakeMailer struct {
	calls int
	err   error
}

func (f *fakeMailer) SendInvoiceSummary(ctx context.Context, inv invoicedom.Invoice) error {
	f.calls++
	return f.err
}

func processingOrder() orderdom.Order {
	return orderdom.Order{
		UserID:          "u1",
		OrderID:         "ORD1",
		OrderStatus:     orderdom.StatusProcessing,
		OrderTotalPrice: 1000,
		CouponCodeValue: 100,
		Shipping:        orderdom.Shipping{ShippingFee: "50"},
		ProcessingFees:  20,
		Donate:          10,
	}
}

func newConfirmUsecase(repo *fakeOrderRepo, pdf *fakePDF, pr *fakePrinter, m InvoiceMailer) *OrderConfirmUsecase {
	svc := orderdom.NewService(repo, zap.NewNop())
	return NewOrderConfirmUsecase(svc, pdf, pr, m, zap.NewNop())
}

// ========================================
// Tests
// ========================================

func TestConfirmRendersBoth(t *testing.T) {
	repo := &fakeOrderRepo{order: processingOrder()}
	pdf := &fakePDF{}
	pr := &fakePrinter{}
	mailer := &fakeMailer{}
	uc := newConfirmUsecase(repo, pdf, pr, mailer)

	result, err := uc.Confirm(context.Background(), "u1", "ORD1", RenderBoth)
	require.NoError(t, err)

	assert.Equal(t, orderdom.StatusConfirmed, result.Order.OrderStatus)
	assert.Equal(t, float64(980), result.Invoice.Total)
	assert.Equal(t, 1, pdf.calls)
	assert.Equal(t, 1, pr.calls)
	assert.Equal(t, 1, mailer.calls)
	assert.Empty(t, result.RenderErrors)
	assert.Equal(t, "/tmp/AlwarMart_Invoice_ORD1.pdf", result.PDFPath)
}

func TestConfirmRenderFailureKeepsStatus(t *testing.T) {
	repo := &fakeOrderRepo{order: processingOrder()}
	pdf := &fakePDF{err: errors.New("disk full")}
	pr := &fakePrinter{err: errors.New("printer offline")}
	uc := newConfirmUsecase(repo, pdf, pr, nil)

	result, err := uc.Confirm(context.Background(), "u1", "ORD1", RenderBoth)
	require.NoError(t, err)

	// status change survived both render failures
	assert.Equal(t, []orderdom.Status{orderdom.StatusConfirmed}, repo.updated)
	require.Len(t, result.RenderErrors, 2)
	assert.Contains(t, result.RenderErrors[0], "pdf:")
	assert.Contains(t, result.RenderErrors[1], "printer:")
}

func TestConfirmRespectsRenderChoice(t *testing.T) {
	repo := &fakeOrderRepo{order: processingOrder()}
	pdf := &fakePDF{}
	pr := &fakePrinter{}
	uc := newConfirmUsecase(repo, pdf, pr, nil)

	_, err := uc.Confirm(context.Background(), "u1", "ORD1", RenderPDF)
	require.NoError(t, err)
	assert.Equal(t, 1, pdf.calls)
	assert.Equal(t, 0, pr.calls)
}

func TestConfirmAlreadyConfirmedRejected(t *testing.T) {
	o := processingOrder()
	o.OrderStatus = orderdom.StatusConfirmed
	repo := &fakeOrderRepo{order: o}
	pdf := &fakePDF{}
	uc := newConfirmUsecase(repo, pdf, &fakePrinter{}, nil)

	_, err := uc.Confirm(context.Background(), "u1", "ORD1", RenderBoth)
	assert.ErrorIs(t, err, orderdom.ErrSameStatus)
	assert.Equal(t, 0, pdf.calls)
}
