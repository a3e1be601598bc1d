package gcs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"

	gcscommon "alwarmart/internal/adapters/out/gcs/common"
	branddom "alwarmart/internal/domain/brand"
	categorydom "alwarmart/internal/domain/category"
	productdom "alwarmart/internal/domain/product"
)

// ImageStoreGCS implements the per-domain blob store ports backed by Google
// Cloud Storage. One instance serves product images, brand icons and
// category images; the callers choose the object path prefix.
type ImageStoreGCS struct {
	Client *storage.Client
	Bucket string
}

func NewImageStoreGCS(client *storage.Client, bucket string) *ImageStoreGCS {
	return &ImageStoreGCS{
		Client: client,
		Bucket: strings.TrimSpace(bucket),
	}
}

// Ensure interface implementation
var (
	_ productdom.ImageStore  = (*ImageStoreGCS)(nil)
	_ branddom.IconStore     = (*ImageStoreGCS)(nil)
	_ categorydom.ImageStore = (*ImageStoreGCS)(nil)
)

func (s *ImageStoreGCS) effectiveBucket() (string, error) {
	b := strings.TrimSpace(s.Bucket)
	if b == "" {
		return "", errors.New("ImageStoreGCS: bucket is empty")
	}
	return b, nil
}

// Upload writes the object and returns its public download URL.
func (s *ImageStoreGCS) Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error) {
	if s.Client == nil {
		return "", errors.New("ImageStoreGCS: nil storage client")
	}
	bucket, err := s.effectiveBucket()
	if err != nil {
		return "", err
	}

	objectPath = strings.TrimLeft(strings.TrimSpace(objectPath), "/")
	if objectPath == "" {
		return "", errors.New("ImageStoreGCS: object path is empty")
	}

	w := s.Client.Bucket(bucket).Object(objectPath).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("ImageStoreGCS: write %s: %w", objectPath, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("ImageStoreGCS: close %s: %w", objectPath, err)
	}

	return gcscommon.PublicURL(bucket, objectPath), nil
}

// Delete removes the object a public URL points at. URLs outside the
// allowed storage hosts, and objects already gone, both come back as plain
// errors for the caller to log; nothing here is fatal by contract.
func (s *ImageStoreGCS) Delete(ctx context.Context, url string) error {
	if s.Client == nil {
		return errors.New("ImageStoreGCS: nil storage client")
	}

	bucket, objectPath, ok := gcscommon.ParseObjectURL(url)
	if !ok {
		return fmt.Errorf("ImageStoreGCS: unrecognized storage url: %s", url)
	}

	if err := s.Client.Bucket(bucket).Object(objectPath).Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return fmt.Errorf("ImageStoreGCS: object not found: %s", objectPath)
		}
		return fmt.Errorf("ImageStoreGCS: delete %s: %w", objectPath, err)
	}
	return nil
}
