package subcategory

import "time"

// SubCategory is a second-level catalog grouping. The ID is the
// store-generated document id.
type SubCategory struct {
	ID              string    `json:"id"`
	SubCategoryName string    `json:"subCategoryName"`
	CreatedAt       time.Time `json:"createdAt"`
}
