package product

import (
	"errors"
	"fmt"
)

// ErrImageTooLarge marks a staged file that exceeds MaxImageFileSize.
var ErrImageTooLarge = errors.New("product: image exceeds the 5 MB limit")

// ImageFile is one uploaded image held in memory until the product is saved.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// StageImages filters incoming files against the per-file size ceiling.
// Oversized files are rejected individually with a named message; files
// within the limit are accepted even when siblings in the same selection
// were rejected.
func StageImages(files []ImageFile) (accepted []ImageFile, rejected []string) {
	for _, f := range files {
		if len(f.Data) > MaxImageFileSize {
			rejected = append(rejected, fmt.Sprintf("%s exceeds the 5 MB limit", f.Name))
			continue
		}
		accepted = append(accepted, f)
	}
	return accepted, rejected
}
