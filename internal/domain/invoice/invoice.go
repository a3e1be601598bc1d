package invoice

import (
	"strconv"
	"strings"

	"alwarmart/internal/domain/order"
)

// Business identity printed on every invoice.
const (
	BusinessName  = "ALWAR MART"
	BusinessPhone = "7023941072"
	BusinessEmail = "contact@alwarmart.com"
)

// Invoice is the fully assembled render payload. Both the PDF writer and
// the receipt printer consume this one struct; neither reaches back into
// the order tree.
type Invoice struct {
	BusinessName  string
	BusinessPhone string
	BusinessEmail string

	OrderID   string
	OrderDate string

	CustomerName  string
	CustomerPhone string
	Address       order.Address

	PaymentMethod string
	PaymentStatus string

	Items []LineItem

	Subtotal        float64
	CouponCode      string
	CouponCodeValue float64
	ShippingFee     float64
	ProcessingFees  float64
	Donate          float64
	Total           float64
}

// LineItem is one invoice row with its extended total.
type LineItem struct {
	Name      string
	Weight    string
	Quantity  int
	UnitPrice float64
	Total     float64
}

// BuildFromOrder assembles the invoice payload from a stored order.
func BuildFromOrder(o order.Order) Invoice {
	items := make([]LineItem, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		items = append(items, LineItem{
			Name:      it.ProductName,
			Weight:    it.WeightWithSIUnit,
			Quantity:  it.SelectableQuantity,
			UnitPrice: it.Price,
			Total:     it.Price * float64(it.SelectableQuantity),
		})
	}

	return Invoice{
		BusinessName:  BusinessName,
		BusinessPhone: BusinessPhone,
		BusinessEmail: BusinessEmail,

		OrderID:   o.OrderID,
		OrderDate: o.OrderDate,

		CustomerName:  o.Customer.FullName,
		CustomerPhone: o.Customer.PhoneNumber,
		Address:       o.Shipping.Address,

		PaymentMethod: o.Payment.PaymentMethod,
		PaymentStatus: o.Payment.PaymentStatus,

		Items: items,

		Subtotal:        o.OrderTotalPrice,
		CouponCode:      o.CouponCode,
		CouponCodeValue: o.CouponCodeValue,
		ShippingFee:     ParseShippingFee(o.Shipping.ShippingFee),
		ProcessingFees:  o.ProcessingFees,
		Donate:          o.Donate,
		Total:           ComputeTotal(o),
	}
}

// ComputeTotal applies the invoice formula:
//
//	orderTotalPrice - couponCodeValue + shippingFee + processingFees + donate
//
// No tax is added and no rounding happens beyond display formatting.
func ComputeTotal(o order.Order) float64 {
	return o.OrderTotalPrice -
		o.CouponCodeValue +
		ParseShippingFee(o.Shipping.ShippingFee) +
		o.ProcessingFees +
		o.Donate
}

// ParseShippingFee converts the stored string fee to a number. Absent or
// unparseable values count as zero.
func ParseShippingFee(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	fee, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return fee
}

// PDFFileName is the canonical name of the rendered invoice document.
func PDFFileName(orderID string) string {
	return "AlwarMart_Invoice_" + orderID + ".pdf"
}
