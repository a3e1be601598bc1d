package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	invoicedom "alwarmart/internal/domain/invoice"
)

func TestBuildReceiptStructure(t *testing.T) {
	inv := invoicedom.Invoice{
		BusinessName:  invoicedom.BusinessName,
		BusinessPhone: invoicedom.BusinessPhone,
		BusinessEmail: invoicedom.BusinessEmail,
		OrderID:       "ORD123",
		OrderDate:     "2025-01-15",
		CustomerName:  "Asha Sharma",
		PaymentMethod: "COD",
		PaymentStatus: "Pending",
		Items: []invoicedom.LineItem{
			{Name: "Basmati Rice", Weight: "1 Kg", Quantity: 2, UnitPrice: 120, Total: 240},
		},
		Subtotal: 240,
		Total:    240,
	}

	payload := buildReceipt(inv)

	assert.True(t, bytes.HasPrefix(payload, cmdInit))
	assert.True(t, bytes.HasSuffix(payload, cmdCutPaper))
	assert.True(t, bytes.Contains(payload, []byte("ALWAR MART")))
	assert.True(t, bytes.Contains(payload, []byte("7023941072")))
	assert.True(t, bytes.Contains(payload, []byte("contact@alwarmart.com")))
	assert.True(t, bytes.Contains(payload, []byte("ORD123")))
	assert.True(t, bytes.Contains(payload, cmdDoubleWidth))
	assert.True(t, bytes.Contains(payload, cmdFontB))
}

func TestLeftRightFillsWidth(t *testing.T) {
	row := leftRight("Subtotal", "240.00")
	assert.Len(t, row, receiptWidth)
	assert.True(t, strings.HasPrefix(row, "Subtotal"))
	assert.True(t, strings.HasSuffix(row, "240.00"))
}

func TestItemRowTruncatesLongNames(t *testing.T) {
	row := itemRow(strings.Repeat("x", 60), "2", "120.00", "240.00")
	assert.Len(t, row, receiptWidth)
}

func TestPrintRequiresAddress(t *testing.T) {
	p := NewReceiptPrinter("")
	err := p.Print(invoicedom.Invoice{OrderID: "ORD1"})
	assert.Error(t, err)
}
