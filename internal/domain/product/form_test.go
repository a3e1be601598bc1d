package product

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() FormInput {
	return FormInput{
		ProductName:           "Basmati Rice",
		ProductDescription:    "Premium long grain basmati rice from the foothills.",
		Brand:                 "India Gate",
		Category:              "Grocery",
		SubCategory:           "Rice",
		Price:                 "120",
		MRP:                   "150",
		PurchasePrice:         "100",
		Discount:              "20",
		StockCount:            "50",
		MinSelectableQuantity: "1",
		MaxSelectableQuantity: "5",
		SelectableQuantity:    "1",
		Weight:                "1",
		WeightSIUnit:          "Kg",
		ProductType:           "Grocery",
		Keywords:              "rice, basmati",
	}
}

func TestValidatePasses(t *testing.T) {
	f := validForm()
	require.NoError(t, f.Validate(2, 0))
}

func TestValidateCollectsAllFailures(t *testing.T) {
	f := FormInput{}
	err := f.Validate(0, 0)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// every required field plus images plus keywords
	assert.Contains(t, verr.Messages, "Product Name is required")
	assert.Contains(t, verr.Messages, "Purchase Price is required")
	assert.Contains(t, verr.Messages, "At least 2 product images are required")
	assert.Contains(t, verr.Messages, "At least one keyword is required")
	assert.GreaterOrEqual(t, len(verr.Messages), 14)
}

func TestValidateNumericCoercion(t *testing.T) {
	f := validForm()
	f.Price = "abc"
	f.StockCount = "-3"

	var verr *ValidationError
	require.ErrorAs(t, f.Validate(2, 0), &verr)
	assert.Contains(t, verr.Messages, "Price must be a non-negative number")
	assert.Contains(t, verr.Messages, "Stock Count must be a non-negative number")
}

func TestValidateCrossFieldRules(t *testing.T) {
	f := validForm()
	f.Price = "200" // above MRP 150
	f.PurchasePrice = "250"
	f.Discount = "120"
	f.MaxSelectableQuantity = "100" // above stock 50
	f.MinSelectableQuantity = "200"

	var verr *ValidationError
	require.ErrorAs(t, f.Validate(2, 0), &verr)
	assert.Contains(t, verr.Messages, "Price cannot be greater than MRP")
	assert.Contains(t, verr.Messages, "Purchase Price cannot be greater than Price")
	assert.Contains(t, verr.Messages, "Discount must be between 0 and 100")
	assert.Contains(t, verr.Messages, "Max Selectable Quantity cannot exceed Stock Count")
	assert.Contains(t, verr.Messages, "Min Selectable Quantity cannot exceed Max Selectable Quantity")
}

func TestValidateDescriptionLengthAndUnit(t *testing.T) {
	f := validForm()
	f.ProductDescription = "too short"
	f.WeightSIUnit = "Stone"

	var verr *ValidationError
	require.ErrorAs(t, f.Validate(2, 0), &verr)
	assert.Contains(t, verr.Messages, "Description must be at least 20 characters")
	assert.Contains(t, verr.Messages, "Weight SI Unit must be one of the supported units")
}

func TestValidateImageCountMixesPersistedAndStaged(t *testing.T) {
	f := validForm()
	assert.NoError(t, f.Validate(1, 1))
	assert.Error(t, f.Validate(1, 0))
	assert.Error(t, f.Validate(0, 1))
}

func TestWarningsAreNonBlocking(t *testing.T) {
	f := validForm()
	f.Price = "200"

	warns := f.Warnings()
	require.Len(t, warns, 1)
	assert.Contains(t, warns, "Price is greater than MRP")

	// the same form still runs the full submit path without panicking
	err := f.Validate(2, 0)
	assert.Error(t, err)
}

func TestNormalizeDefaults(t *testing.T) {
	f := validForm()
	f.ProductID = ""
	f.Discount = ""
	f.MinSelectableQuantity = ""
	f.MaxSelectableQuantity = ""
	f.SelectableQuantity = ""

	p := f.Normalize()
	assert.True(t, strings.HasPrefix(p.ProductID, "PRD"))
	assert.Equal(t, float64(0), p.Discount)
	assert.Equal(t, 1, p.MinSelectableQuantity)
	assert.Equal(t, 1, p.MaxSelectableQuantity)
	assert.Equal(t, 1, p.SelectableQuantity)
	assert.Equal(t, []string{"rice", "basmati"}, p.Keywords)
}

func TestNormalizeKeepsExplicitID(t *testing.T) {
	f := validForm()
	f.ProductID = "PRDABC12345"

	p := f.Normalize()
	assert.Equal(t, "PRDABC12345", p.ProductID)
}
