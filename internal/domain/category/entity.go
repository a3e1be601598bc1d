package category

// Category is a top-level catalog grouping. The ID is the store-generated
// document id, opaque to the domain.
type Category struct {
	ID       string `json:"id"`
	Tag      string `json:"tag"`
	ImageURI string `json:"imageUri,omitempty"`
}

// Image is one uploaded category image held in memory until save.
type Image struct {
	Name        string
	ContentType string
	Data        []byte
}
