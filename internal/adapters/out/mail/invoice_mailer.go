package mail

import (
	"context"
	"fmt"
	"strings"

	invoicedom "alwarmart/internal/domain/invoice"
)

// EmailClient is the thin transport behind the mailer.
type EmailClient interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// InvoiceMailer sends a plain-text invoice summary to the operations inbox
// when an order is confirmed. The workflow treats it as fire-and-forget.
type InvoiceMailer struct {
	client EmailClient
	from   string
	to     string
}

func NewInvoiceMailer(client EmailClient, from, to string) *InvoiceMailer {
	return &InvoiceMailer{
		client: client,
		from:   strings.TrimSpace(from),
		to:     strings.TrimSpace(to),
	}
}

// Configured reports whether both addresses are set. An unconfigured mailer
// is skipped by the workflow rather than erroring.
func (m *InvoiceMailer) Configured() bool {
	return m != nil && m.from != "" && m.to != ""
}

func (m *InvoiceMailer) SendInvoiceSummary(ctx context.Context, inv invoicedom.Invoice) error {
	subject := fmt.Sprintf("Order %s confirmed - %s", inv.OrderID, inv.CustomerName)
	return m.client.Send(ctx, m.from, m.to, subject, buildSummaryBody(inv))
}

func buildSummaryBody(inv invoicedom.Invoice) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Order %s confirmed on %s\n\n", inv.OrderID, inv.OrderDate)
	fmt.Fprintf(&b, "Customer: %s (%s)\n", inv.CustomerName, inv.CustomerPhone)
	fmt.Fprintf(&b, "Payment: %s (%s)\n\n", inv.PaymentMethod, inv.PaymentStatus)

	b.WriteString("Items:\n")
	for _, it := range inv.Items {
		fmt.Fprintf(&b, "  %s x%d @ %.2f = %.2f\n", it.Name, it.Quantity, it.UnitPrice, it.Total)
	}

	fmt.Fprintf(&b, "\nSubtotal:   %.2f\n", inv.Subtotal)
	if inv.CouponCodeValue > 0 {
		fmt.Fprintf(&b, "Coupon:    -%.2f\n", inv.CouponCodeValue)
	}
	fmt.Fprintf(&b, "Shipping:   %.2f\n", inv.ShippingFee)
	if inv.ProcessingFees > 0 {
		fmt.Fprintf(&b, "Processing: %.2f\n", inv.ProcessingFees)
	}
	if inv.Donate > 0 {
		fmt.Fprintf(&b, "Donation:   %.2f\n", inv.Donate)
	}
	fmt.Fprintf(&b, "Total:      %.2f\n", inv.Total)

	return b.String()
}
