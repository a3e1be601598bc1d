package product

import (
	"errors"
	"strings"
)

// Product is the catalog entry as stored in the Product collection.
// Field names follow the store representation (productName, productImage, ...).
type Product struct {
	Available             bool        `json:"available"`
	ProductID             string      `json:"productId"`
	ProductName           string      `json:"productName"`
	ProductDescription    string      `json:"productDescription"`
	Brand                 string      `json:"brand"`
	Category              string      `json:"category"`
	SubCategory           string      `json:"subCategory"`
	Price                 float64     `json:"price"`
	MRP                   float64     `json:"mrp"`
	PurchasePrice         float64     `json:"purchasePrice"`
	Discount              float64     `json:"discount"`
	StockCount            int         `json:"stockCount"`
	MinSelectableQuantity int         `json:"minSelectableQuantity"`
	MaxSelectableQuantity int         `json:"maxSelectableQuantity"`
	SelectableQuantity    int         `json:"selectableQuantity"`
	Weight                string      `json:"weight"`
	WeightSIUnit          string      `json:"weightSIUnit"`
	ProductLife           string      `json:"productLife"`
	ProductType           string      `json:"productType"`
	ProductIsFoodItem     string      `json:"productIsFoodItem"`
	Keywords              []string    `json:"keywords"`
	ProductImage          []string    `json:"productImage"`
	Variations            []Variation `json:"variations"`
	Barcode               string      `json:"barcode"`
}

// Variation is a denormalized snapshot link to another product, copied at
// attach time. It is not a live foreign key: later edits to the referenced
// product do not propagate.
type Variation struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	WeightWithSIUnit string `json:"weightWithSIUnit"`
}

var ErrVariationAlreadyAttached = errors.New("product: this product is already added as a variation")

// AttachVariation appends a variation reference. Attaching an id that is
// already present is rejected.
func (p *Product) AttachVariation(v Variation) error {
	for _, existing := range p.Variations {
		if existing.ID == v.ID {
			return ErrVariationAlreadyAttached
		}
	}
	p.Variations = append(p.Variations, v)
	return nil
}

// ========================================
// Closed enums
// ========================================

// FoodItemType classifies a product for dietary filtering.
type FoodItemType string

const (
	FoodNonVeg        FoodItemType = "FoodNonVeg"
	VegetableAndFruit FoodItemType = "VegetableAndFruit"
	FoodVeg           FoodItemType = "FoodVeg"
	NonFood           FoodItemType = "nonFood"
)

// FoodItemTypes is the render order for selects.
var FoodItemTypes = []FoodItemType{FoodNonVeg, VegetableAndFruit, FoodVeg, NonFood}

// foodItemTypeLabels preserves the console's display labels.
var foodItemTypeLabels = map[FoodItemType]string{
	FoodNonVeg:        "Non-Vegetarian Food",
	VegetableAndFruit: "Vegetable & Fruit",
	FoodVeg:           "Vegetarian Food",
	NonFood:           "Non-Food Item",
}

func (t FoodItemType) Label() string {
	if l, ok := foodItemTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

func IsValidFoodItemType(v string) bool {
	_, ok := foodItemTypeLabels[FoodItemType(v)]
	return ok
}

// WeightUnit is the closed set of stored weight/measure unit values.
type WeightUnit string

const (
	UnitKg          WeightUnit = "Kg"
	UnitGrams       WeightUnit = "Grams"
	UnitHalfKg      WeightUnit = "Half Kg"
	UnitQuarterKg   WeightUnit = "Quarter Kg"
	UnitLitre       WeightUnit = "Litre"
	UnitHalfLitre   WeightUnit = "Half Litre"
	UnitMilliliters WeightUnit = "Milliliters"
	UnitPiece       WeightUnit = "Piece"
	UnitPieces      WeightUnit = "Pieces"
	UnitDozen       WeightUnit = "Dozen"
	UnitHalfDozen   WeightUnit = "Half Dozen"
	UnitPack        WeightUnit = "Pack"
	UnitBox         WeightUnit = "Box"
	UnitCarton      WeightUnit = "Carton"
	UnitPacket      WeightUnit = "Packet"
	UnitBag         WeightUnit = "Bag"
	UnitBundle      WeightUnit = "Bundle"
	UnitPouch       WeightUnit = "Pouch"
	UnitSachet      WeightUnit = "Sachet"
	UnitQuintal     WeightUnit = "Quintal (100 Kg)"
	UnitTola        WeightUnit = "Tola (11.66 g)"
	UnitBunch       WeightUnit = "Bunch"
	UnitStrip       WeightUnit = "Strip"
	UnitRoll        WeightUnit = "Roll"
	UnitSheet       WeightUnit = "Sheet"
	UnitPair        WeightUnit = "Pair"
	UnitBottle      WeightUnit = "Bottle"
	UnitCan         WeightUnit = "Can"
	UnitJar         WeightUnit = "Jar"
	UnitUnit        WeightUnit = "Unit"
	UnitOther       WeightUnit = "Other"
)

// WeightUnits is the render order for selects.
var WeightUnits = []WeightUnit{
	UnitKg, UnitGrams, UnitHalfKg, UnitQuarterKg,
	UnitLitre, UnitHalfLitre, UnitMilliliters,
	UnitPiece, UnitPieces, UnitDozen, UnitHalfDozen,
	UnitPack, UnitBox, UnitCarton, UnitPacket, UnitBag, UnitBundle,
	UnitPouch, UnitSachet, UnitQuintal, UnitTola, UnitBunch,
	UnitStrip, UnitRoll, UnitSheet, UnitPair,
	UnitBottle, UnitCan, UnitJar, UnitUnit, UnitOther,
}

var weightUnitSet = func() map[WeightUnit]struct{} {
	m := make(map[WeightUnit]struct{}, len(WeightUnits))
	for _, u := range WeightUnits {
		m[u] = struct{}{}
	}
	return m
}()

func IsValidWeightUnit(v string) bool {
	_, ok := weightUnitSet[WeightUnit(v)]
	return ok
}

// ProductTypes is the closed classification list, in render order.
var ProductTypes = []string{
	"Grocery",
	"Vegetables and Fruits",
	"Dairy Products",
	"Bakery Items",
	"Spices and Condiments",
	"Snacks and Beverages",
	"Personal Care",
	"Skin Care",
	"Hair Care",
	"Baby Care",
	"Household Essentials",
	"Stationery",
	"Kitchen Essentials",
	"Packaged Food",
	"Pet Care",
	"Electrical Items",
	"Women's Essentials",
	"Men's Essentials",
	"Health and Wellness",
	"Miscellaneous Items",
	"Festive Products",
}

func IsValidProductType(v string) bool {
	v = strings.TrimSpace(v)
	for _, t := range ProductTypes {
		if t == v {
			return true
		}
	}
	return false
}
