package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alwarmart/internal/domain/order"
)

func TestComputeTotal(t *testing.T) {
	o := order.Order{
		OrderTotalPrice: 1000,
		CouponCodeValue: 100,
		Shipping:        order.Shipping{ShippingFee: "50"},
		ProcessingFees:  20,
		Donate:          10,
	}
	assert.Equal(t, float64(980), ComputeTotal(o))
}

func TestComputeTotalShippingFeeDefaults(t *testing.T) {
	o := order.Order{OrderTotalPrice: 500}

	o.Shipping.ShippingFee = ""
	assert.Equal(t, float64(500), ComputeTotal(o))

	o.Shipping.ShippingFee = "free"
	assert.Equal(t, float64(500), ComputeTotal(o))

	o.Shipping.ShippingFee = " 25 "
	assert.Equal(t, float64(525), ComputeTotal(o))
}

func TestBuildFromOrder(t *testing.T) {
	o := order.Order{
		OrderID:         "ORD123",
		OrderDate:       "2025-01-15",
		Customer:        order.Customer{FullName: "Asha Sharma", PhoneNumber: "9876543210"},
		OrderTotalPrice: 300,
		CouponCode:      "SAVE50",
		CouponCodeValue: 50,
		Shipping:        order.Shipping{ShippingFee: "30"},
		Payment:         order.Payment{PaymentMethod: "COD", PaymentStatus: "Pending"},
		OrderItems: []order.OrderItem{
			{ProductName: "Basmati Rice", WeightWithSIUnit: "1 Kg", Price: 120, SelectableQuantity: 2},
			{ProductName: "Toor Dal", WeightWithSIUnit: "500 Grams", Price: 60, SelectableQuantity: 1},
		},
	}

	inv := BuildFromOrder(o)

	assert.Equal(t, BusinessName, inv.BusinessName)
	assert.Equal(t, "ORD123", inv.OrderID)
	require.Len(t, inv.Items, 2)
	assert.Equal(t, float64(240), inv.Items[0].Total)
	assert.Equal(t, float64(60), inv.Items[1].Total)
	assert.Equal(t, float64(280), inv.Total) // 300-50+30
}

func TestPDFFileName(t *testing.T) {
	assert.Equal(t, "AlwarMart_Invoice_ORD123.pdf", PDFFileName("ORD123"))
}
