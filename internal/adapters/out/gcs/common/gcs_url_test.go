package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t,
		"https://storage.googleapis.com/alwarmart/product/123front.jpg",
		PublicURL("alwarmart", "/product/123front.jpg"))
}

func TestParseObjectURL(t *testing.T) {
	bucket, obj, ok := ParseObjectURL("https://storage.googleapis.com/alwarmart/Categorys/1700000000000-Grocery")
	assert.True(t, ok)
	assert.Equal(t, "alwarmart", bucket)
	assert.Equal(t, "Categorys/1700000000000-Grocery", obj)

	_, _, ok = ParseObjectURL("https://example.com/alwarmart/x.jpg")
	assert.False(t, ok)

	_, _, ok = ParseObjectURL("https://storage.googleapis.com/onlybucket")
	assert.False(t, ok)
}

func TestParseObjectURLFirebaseDownloadForm(t *testing.T) {
	bucket, obj, ok := ParseObjectURL(
		"https://firebasestorage.googleapis.com/v0/b/alwarmart.appspot.com/o/product%2F123front.jpg?alt=media&token=abc")
	assert.True(t, ok)
	assert.Equal(t, "alwarmart.appspot.com", bucket)
	assert.Equal(t, "product/123front.jpg", obj)

	bucket, obj, ok = ParseObjectURL(
		"https://firebasestorage.googleapis.com/v0/b/alwarmart.appspot.com/o/brandIcon%2F1700000000000icon.png")
	assert.True(t, ok)
	assert.Equal(t, "alwarmart.appspot.com", bucket)
	assert.Equal(t, "brandIcon/1700000000000icon.png", obj)

	_, _, ok = ParseObjectURL("https://firebasestorage.googleapis.com/v0/b/alwarmart.appspot.com")
	assert.False(t, ok)

	_, _, ok = ParseObjectURL("https://firebasestorage.googleapis.com/v0/b/alwarmart.appspot.com/o/")
	assert.False(t, ok)
}

func TestIsAllowedImageURL(t *testing.T) {
	assert.True(t, IsAllowedImageURL("https://storage.googleapis.com/b/o.jpg"))
	assert.True(t, IsAllowedImageURL("https://firebasestorage.googleapis.com/v0/b/p/o/x.jpg"))
	assert.False(t, IsAllowedImageURL("https://cdn.example.com/x.jpg"))
	assert.False(t, IsAllowedImageURL("::not a url::"))
}
