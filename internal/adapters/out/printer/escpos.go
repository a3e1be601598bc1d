package printer

import (
	"bytes"
	"fmt"
	"net"
	"strings"
	"time"

	invoicedom "alwarmart/internal/domain/invoice"
)

// ESC/POS command set used by the receipt layout.
var (
	cmdInit         = []byte{0x1B, 0x40}
	cmdAlignLeft    = []byte{0x1B, 0x61, 0x00}
	cmdAlignCenter  = []byte{0x1B, 0x61, 0x01}
	cmdAlignRight   = []byte{0x1B, 0x61, 0x02}
	cmdEmphasizeOn  = []byte{0x1B, 0x45, 0x01}
	cmdEmphasizeOff = []byte{0x1B, 0x45, 0x00}
	cmdFontA        = []byte{0x1B, 0x4D, 0x00}
	cmdFontB        = []byte{0x1B, 0x4D, 0x01}
	cmdDoubleWidth  = []byte{0x1D, 0x21, 0x10}
	cmdNormalSize   = []byte{0x1D, 0x21, 0x00}
	cmdCutPaper     = []byte{0x1D, 0x56, 0x41, 0x10}
)

// receiptWidth is the character width of font A on 80mm paper.
const receiptWidth = 48

// ReceiptPrinter sends ESC/POS receipts to a network thermal printer,
// typically on port 9100.
type ReceiptPrinter struct {
	Addr        string
	DialTimeout time.Duration
}

func NewReceiptPrinter(addr string) *ReceiptPrinter {
	return &ReceiptPrinter{
		Addr:        strings.TrimSpace(addr),
		DialTimeout: 5 * time.Second,
	}
}

// Print renders the invoice as an ESC/POS byte stream and ships it to the
// printer over TCP. One connection per receipt.
func (p *ReceiptPrinter) Print(inv invoicedom.Invoice) error {
	if p.Addr == "" {
		return fmt.Errorf("escpos: printer address not configured")
	}

	payload := buildReceipt(inv)

	conn, err := net.DialTimeout("tcp", p.Addr, p.DialTimeout)
	if err != nil {
		return fmt.Errorf("escpos: dial %s: %w", p.Addr, err)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
		return fmt.Errorf("escpos: set deadline: %w", err)
	}
	if _, err := conn.Write(payload); err != nil {
		return fmt.Errorf("escpos: write: %w", err)
	}
	return nil
}

// buildReceipt assembles the full command stream for one receipt.
func buildReceipt(inv invoicedom.Invoice) []byte {
	var b bytes.Buffer

	b.Write(cmdInit)

	// header
	b.Write(cmdAlignCenter)
	b.Write(cmdDoubleWidth)
	b.Write(cmdEmphasizeOn)
	b.WriteString(inv.BusinessName + "\n")
	b.Write(cmdEmphasizeOff)
	b.Write(cmdNormalSize)
	b.WriteString("Ph: " + inv.BusinessPhone + "\n")
	b.WriteString(inv.BusinessEmail + "\n")
	b.WriteString(divider() + "\n")

	// order block
	b.Write(cmdAlignLeft)
	b.Write(cmdFontA)
	b.WriteString(leftRight("Order: "+inv.OrderID, inv.OrderDate) + "\n")
	b.WriteString("Customer: " + inv.CustomerName + "\n")
	if inv.CustomerPhone != "" {
		b.WriteString("Phone: " + inv.CustomerPhone + "\n")
	}
	b.WriteString(divider() + "\n")

	// item table header
	b.Write(cmdEmphasizeOn)
	b.WriteString(itemRow("Item", "Qty", "Rate", "Total") + "\n")
	b.Write(cmdEmphasizeOff)
	b.WriteString(divider() + "\n")

	// items (font B packs more columns on narrow paper)
	b.Write(cmdFontB)
	for _, it := range inv.Items {
		name := it.Name
		if it.Weight != "" {
			name += " " + it.Weight
		}
		b.WriteString(itemRow(
			name,
			fmt.Sprintf("%d", it.Quantity),
			fmt.Sprintf("%.2f", it.UnitPrice),
			fmt.Sprintf("%.2f", it.Total),
		) + "\n")
	}
	b.Write(cmdFontA)
	b.WriteString(divider() + "\n")

	// pricing summary
	b.WriteString(leftRight("Subtotal", fmt.Sprintf("%.2f", inv.Subtotal)) + "\n")
	if inv.CouponCodeValue > 0 {
		label := "Coupon"
		if inv.CouponCode != "" {
			label = "Coupon " + inv.CouponCode
		}
		b.WriteString(leftRight(label, fmt.Sprintf("-%.2f", inv.CouponCodeValue)) + "\n")
	}
	b.WriteString(leftRight("Shipping", fmt.Sprintf("%.2f", inv.ShippingFee)) + "\n")
	if inv.ProcessingFees > 0 {
		b.WriteString(leftRight("Processing", fmt.Sprintf("%.2f", inv.ProcessingFees)) + "\n")
	}
	if inv.Donate > 0 {
		b.WriteString(leftRight("Donation", fmt.Sprintf("%.2f", inv.Donate)) + "\n")
	}
	b.Write(cmdEmphasizeOn)
	b.WriteString(leftRight("TOTAL", fmt.Sprintf("Rs.%.2f", inv.Total)) + "\n")
	b.Write(cmdEmphasizeOff)
	b.WriteString(divider() + "\n")

	b.WriteString("Payment: " + inv.PaymentMethod + " (" + inv.PaymentStatus + ")\n")
	b.WriteString(divider() + "\n")

	// terms & footer
	b.Write(cmdAlignCenter)
	b.WriteString("Goods once sold will not be taken back.\n")
	b.WriteString("Check items at the time of delivery.\n")
	b.Write(cmdEmphasizeOn)
	b.WriteString("Thank you for shopping with us!\n")
	b.Write(cmdEmphasizeOff)
	b.WriteString("\n\n\n")

	b.Write(cmdCutPaper)
	return b.Bytes()
}

func divider() string {
	return strings.Repeat("-", receiptWidth)
}

// leftRight pads label and value to the full receipt width.
func leftRight(label, value string) string {
	pad := receiptWidth - len(label) - len(value)
	if pad < 1 {
		pad = 1
	}
	return label + strings.Repeat(" ", pad) + value
}

// itemRow lays out the 48-column item table: name column left, numeric
// columns right.
func itemRow(name, qty, rate, total string) string {
	const (
		qtyW   = 4
		rateW  = 9
		totalW = 10
	)
	nameW := receiptWidth - qtyW - rateW - totalW

	if len(name) > nameW {
		name = name[:nameW]
	}
	return fmt.Sprintf("%-*s%*s%*s%*s", nameW, name, qtyW, qty, rateW, rate, totalW, total)
}
