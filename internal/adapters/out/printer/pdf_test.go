package printer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoicedom "alwarmart/internal/domain/invoice"
)

func sampleInvoice() invoicedom.Invoice {
	return invoicedom.Invoice{
		BusinessName:  invoicedom.BusinessName,
		BusinessPhone: invoicedom.BusinessPhone,
		BusinessEmail: invoicedom.BusinessEmail,
		OrderID:       "ORD1",
		OrderDate:     "2025-01-15",
		CustomerName:  "Asha Sharma",
		CustomerPhone: "9876543210",
		PaymentMethod: "COD",
		PaymentStatus: "Pending",
		Items: []invoicedom.LineItem{
			{Name: "Basmati Rice", Weight: "1 Kg", Quantity: 2, UnitPrice: 120, Total: 240},
		},
		Subtotal: 240,
		Total:    240,
	}
}

func TestRenderCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "invoices")
	w := NewPDFWriter(dir)

	path, err := w.Render(sampleInvoice())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "AlwarMart_Invoice_ORD1.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderOverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	w := NewPDFWriter(dir)

	first, err := w.Render(sampleInvoice())
	require.NoError(t, err)

	second, err := w.Render(sampleInvoice())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
