package printer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	invoicedom "alwarmart/internal/domain/invoice"
)

// PDFWriter renders invoices to PDF files on local disk.
type PDFWriter struct {
	OutputDir string
}

func NewPDFWriter(outputDir string) *PDFWriter {
	return &PDFWriter{OutputDir: strings.TrimSpace(outputDir)}
}

// Render writes the invoice document and returns the file path. The layout
// is a single A4 page: centered business header, order and customer blocks,
// item grid, right-aligned pricing summary, terms and footer.
func (w *PDFWriter) Render(inv invoicedom.Invoice) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	// business header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(usable, 9, inv.BusinessName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(usable, 5, "Phone: "+inv.BusinessPhone, "", 1, "C", false, 0, "")
	pdf.CellFormat(usable, 5, "Email: "+inv.BusinessEmail, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(usable, 7, "TAX INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// order block
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(usable/2, 5, "Order ID: "+inv.OrderID, "", 0, "L", false, 0, "")
	pdf.CellFormat(usable/2, 5, "Order Date: "+inv.OrderDate, "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// customer & shipping block
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(usable, 5, "Bill To", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(usable, 5, inv.CustomerName, "", 1, "L", false, 0, "")
	pdf.CellFormat(usable, 5, "Phone: "+inv.CustomerPhone, "", 1, "L", false, 0, "")

	addr := strings.TrimSpace(strings.Join(nonEmpty(
		inv.Address.FlatHouse,
		inv.Address.Address,
		inv.Address.Landmark,
	), ", "))
	if addr != "" {
		pdf.MultiCell(usable, 5, addr, "", "L", false)
	}
	pdf.Ln(3)

	// item grid
	const (
		colName = 80.0
		colWt   = 30.0
		colQty  = 20.0
		colRate = 30.0
	)
	colTotal := usable - colName - colWt - colQty - colRate

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(colName, 7, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colWt, 7, "Weight", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colQty, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colRate, 7, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colTotal, 7, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range inv.Items {
		pdf.CellFormat(colName, 6, it.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWt, 6, it.Weight, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colQty, 6, fmt.Sprintf("%d", it.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colRate, 6, money(it.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, 6, money(it.Total), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// pricing summary, right-aligned
	summaryRow := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(usable-60, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, value, "", 1, "R", false, 0, "")
	}

	summaryRow("Subtotal", money(inv.Subtotal), false)
	if inv.CouponCodeValue > 0 {
		label := "Coupon"
		if inv.CouponCode != "" {
			label = "Coupon (" + inv.CouponCode + ")"
		}
		summaryRow(label, "-"+money(inv.CouponCodeValue), false)
	}
	summaryRow("Shipping", money(inv.ShippingFee), false)
	if inv.ProcessingFees > 0 {
		summaryRow("Processing", money(inv.ProcessingFees), false)
	}
	if inv.Donate > 0 {
		summaryRow("Donation", money(inv.Donate), false)
	}
	summaryRow("Grand Total", money(inv.Total), true)
	pdf.Ln(2)

	// payment
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(usable, 5, fmt.Sprintf("Payment: %s (%s)", inv.PaymentMethod, inv.PaymentStatus), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// terms & footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(usable, 4,
		"Terms & Conditions: Goods once sold will not be taken back. "+
			"Please check items at the time of delivery. "+
			"All disputes are subject to Alwar jurisdiction.",
		"", "L", false)
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(usable, 5, "Thank you for shopping with "+inv.BusinessName+"!", "", 1, "C", false, 0, "")

	if w.OutputDir != "" {
		if err := os.MkdirAll(w.OutputDir, 0o755); err != nil {
			return "", fmt.Errorf("pdf: create dir %s: %w", w.OutputDir, err)
		}
	}

	path := filepath.Join(w.OutputDir, invoicedom.PDFFileName(inv.OrderID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", path, err)
	}
	return path, nil
}

func money(v float64) string {
	return fmt.Sprintf("Rs. %.2f", v)
}

func nonEmpty(parts ...string) []string {
	var out []string
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
