package product

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxImageFileSize is the per-file ceiling for staged product images (5 MiB).
const MaxImageFileSize = 5 * 1024 * 1024

// MinImages is the minimum combined count of persisted and staged images.
const MinImages = 2

// MinDescriptionLen is the minimum product description length in characters.
const MinDescriptionLen = 20

// FormInput carries raw form values exactly as typed. Numeric fields stay
// strings until Normalize so that coercion failures can be reported instead
// of silently zeroed.
type FormInput struct {
	Available             bool        `json:"available"`
	ProductID             string      `json:"productId"`
	ProductName           string      `json:"productName"`
	ProductDescription    string      `json:"productDescription"`
	Brand                 string      `json:"brand"`
	Category              string      `json:"category"`
	SubCategory           string      `json:"subCategory"`
	Price                 string      `json:"price"`
	MRP                   string      `json:"mrp"`
	PurchasePrice         string      `json:"purchasePrice"`
	Discount              string      `json:"discount"`
	StockCount            string      `json:"stockCount"`
	MinSelectableQuantity string      `json:"minSelectableQuantity"`
	MaxSelectableQuantity string      `json:"maxSelectableQuantity"`
	SelectableQuantity    string      `json:"selectableQuantity"`
	Weight                string      `json:"weight"`
	WeightSIUnit          string      `json:"weightSIUnit"`
	ProductLife           string      `json:"productLife"`
	ProductType           string      `json:"productType"`
	ProductIsFoodItem     string      `json:"productIsFoodItem"`
	Keywords              string      `json:"keywords"`
	Variations            []Variation `json:"variations"`
	Barcode               string      `json:"barcode"`
}

// ValidationError is the collected result of the submit-time batch
// validation. It is never persisted.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "product: validation failed: " + strings.Join(e.Messages, "; ")
}

// requiredFields is the fixed presence-check list, in report order.
var requiredFields = []struct {
	label string
	get   func(f *FormInput) string
}{
	{"Product Name", func(f *FormInput) string { return f.ProductName }},
	{"Description", func(f *FormInput) string { return f.ProductDescription }},
	{"Brand", func(f *FormInput) string { return f.Brand }},
	{"Category", func(f *FormInput) string { return f.Category }},
	{"Sub Category", func(f *FormInput) string { return f.SubCategory }},
	{"Price", func(f *FormInput) string { return f.Price }},
	{"MRP", func(f *FormInput) string { return f.MRP }},
	{"Stock Count", func(f *FormInput) string { return f.StockCount }},
	{"Weight", func(f *FormInput) string { return f.Weight }},
	{"Weight SI Unit", func(f *FormInput) string { return f.WeightSIUnit }},
	{"Product Type", func(f *FormInput) string { return f.ProductType }},
	{"Purchase Price", func(f *FormInput) string { return f.PurchasePrice }},
}

// numericFields is the fixed coercion/non-negativity list, in report order.
var numericFields = []struct {
	label string
	get   func(f *FormInput) string
}{
	{"Price", func(f *FormInput) string { return f.Price }},
	{"MRP", func(f *FormInput) string { return f.MRP }},
	{"Discount", func(f *FormInput) string { return f.Discount }},
	{"Stock Count", func(f *FormInput) string { return f.StockCount }},
	{"Min Selectable Quantity", func(f *FormInput) string { return f.MinSelectableQuantity }},
	{"Max Selectable Quantity", func(f *FormInput) string { return f.MaxSelectableQuantity }},
	{"Selectable Quantity", func(f *FormInput) string { return f.SelectableQuantity }},
	{"Purchase Price", func(f *FormInput) string { return f.PurchasePrice }},
}

// Validate runs the submit-time pipeline and collects every failure instead
// of stopping at the first. existingImages counts already-persisted URLs,
// stagedImages counts newly selected files.
func (f *FormInput) Validate(existingImages, stagedImages int) error {
	var msgs []string

	// 1. required-field presence
	for _, rf := range requiredFields {
		if strings.TrimSpace(rf.get(f)) == "" {
			msgs = append(msgs, rf.label+" is required")
		}
	}

	// 2. image count
	if existingImages+stagedImages < MinImages {
		msgs = append(msgs, fmt.Sprintf("At least %d product images are required", MinImages))
	}

	// 3. numeric coercion + non-negativity
	for _, nf := range numericFields {
		raw := strings.TrimSpace(nf.get(f))
		if raw == "" {
			continue // presence is stage 1's concern
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || n < 0 {
			msgs = append(msgs, nf.label+" must be a non-negative number")
		}
	}

	// 4. cross-field rules (only where both sides parse)
	price, priceOK := parseNum(f.Price)
	mrp, mrpOK := parseNum(f.MRP)
	purchase, purchaseOK := parseNum(f.PurchasePrice)
	discount, discountOK := parseNum(f.Discount)
	stock, stockOK := parseNum(f.StockCount)
	minQty, minOK := parseNum(f.MinSelectableQuantity)
	maxQty, maxOK := parseNum(f.MaxSelectableQuantity)

	if priceOK && mrpOK && price > mrp {
		msgs = append(msgs, "Price cannot be greater than MRP")
	}
	if purchaseOK && priceOK && purchase > price {
		msgs = append(msgs, "Purchase Price cannot be greater than Price")
	}
	if discountOK && (discount < 0 || discount > 100) {
		msgs = append(msgs, "Discount must be between 0 and 100")
	}
	if maxOK && stockOK && maxQty > stock {
		msgs = append(msgs, "Max Selectable Quantity cannot exceed Stock Count")
	}
	if minOK && maxOK && minQty > maxQty {
		msgs = append(msgs, "Min Selectable Quantity cannot exceed Max Selectable Quantity")
	}

	// 5. keyword non-emptiness
	if len(SplitKeywordInput(f.Keywords)) == 0 {
		msgs = append(msgs, "At least one keyword is required")
	}

	// 6. description minimum length
	if desc := strings.TrimSpace(f.ProductDescription); desc != "" && len([]rune(desc)) < MinDescriptionLen {
		msgs = append(msgs, fmt.Sprintf("Description must be at least %d characters", MinDescriptionLen))
	}

	// 7. weight-unit enum membership
	if u := strings.TrimSpace(f.WeightSIUnit); u != "" && !IsValidWeightUnit(u) {
		msgs = append(msgs, "Weight SI Unit must be one of the supported units")
	}

	if len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return nil
}

// Warnings is the non-blocking per-field path run while the operator is
// still editing. It checks only the cross-field price/quantity rules and
// never prevents further input or resubmission.
func (f *FormInput) Warnings() []string {
	var warns []string

	price, priceOK := parseNum(f.Price)
	mrp, mrpOK := parseNum(f.MRP)
	purchase, purchaseOK := parseNum(f.PurchasePrice)
	stock, stockOK := parseNum(f.StockCount)
	maxQty, maxOK := parseNum(f.MaxSelectableQuantity)

	if priceOK && mrpOK && price > mrp {
		warns = append(warns, "Price is greater than MRP")
	}
	if maxOK && stockOK && maxQty > stock {
		warns = append(warns, "Max Selectable Quantity exceeds Stock Count")
	}
	if purchaseOK && priceOK && purchase > price {
		warns = append(warns, "Purchase Price is greater than Price")
	}
	return warns
}

// Normalize coerces the raw input into a well-typed Product. Prices default
// to 0, selectable quantities to 1, matching the store defaults. A missing
// productId gets a generated one.
func (f *FormInput) Normalize() Product {
	id := strings.TrimSpace(f.ProductID)
	if id == "" {
		id = NewID()
	}

	return Product{
		Available:             f.Available,
		ProductID:             id,
		ProductName:           strings.TrimSpace(f.ProductName),
		ProductDescription:    strings.TrimSpace(f.ProductDescription),
		Brand:                 strings.TrimSpace(f.Brand),
		Category:              strings.TrimSpace(f.Category),
		SubCategory:           strings.TrimSpace(f.SubCategory),
		Price:                 numOr(f.Price, 0),
		MRP:                   numOr(f.MRP, 0),
		PurchasePrice:         numOr(f.PurchasePrice, 0),
		Discount:              numOr(f.Discount, 0),
		StockCount:            int(numOr(f.StockCount, 0)),
		MinSelectableQuantity: int(numOr(f.MinSelectableQuantity, 1)),
		MaxSelectableQuantity: int(numOr(f.MaxSelectableQuantity, 1)),
		SelectableQuantity:    int(numOr(f.SelectableQuantity, 1)),
		Weight:                strings.TrimSpace(f.Weight),
		WeightSIUnit:          strings.TrimSpace(f.WeightSIUnit),
		ProductLife:           strings.TrimSpace(f.ProductLife),
		ProductType:           strings.TrimSpace(f.ProductType),
		ProductIsFoodItem:     strings.TrimSpace(f.ProductIsFoodItem),
		Keywords:              dedupeKeywords(SplitKeywordInput(f.Keywords)),
		Variations:            f.Variations,
		Barcode:               strings.TrimSpace(f.Barcode),
	}
}

func parseNum(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func numOr(raw string, def float64) float64 {
	if n, ok := parseNum(raw); ok {
		return n
	}
	return def
}
