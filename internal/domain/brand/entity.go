package brand

import "time"

// Brand is keyed by its name: the brandName doubles as the document id, so
// creating a brand that already exists overwrites it (upsert-by-key).
type Brand struct {
	BrandName string    `json:"brandName"`
	BrandIcon string    `json:"brandIcon,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Icon is one uploaded brand icon held in memory until the brand is saved.
type Icon struct {
	Name        string
	ContentType string
	Data        []byte
}
