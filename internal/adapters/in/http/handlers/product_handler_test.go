package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	productdom "alwarmart/internal/domain/product"
)

type stubProductRepo struct {
	byID map[string]productdom.Product
}

func newStubProductRepo(products ...productdom.Product) *stubProductRepo {
	r := &stubProductRepo{byID: make(map[string]productdom.Product)}
	for _, p := range products {
		r.byID[p.ProductID] = p
	}
	return r
}

func (r *stubProductRepo) ListAll(ctx context.Context) ([]productdom.Product, error) {
	out := make([]productdom.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubProductRepo) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return productdom.Product{}, productdom.ErrNotFound
	}
	return p, nil
}

func (r *stubProductRepo) Create(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	if _, ok := r.byID[p.ProductID]; ok {
		return productdom.Product{}, productdom.ErrConflict
	}
	r.byID[p.ProductID] = p
	return p, nil
}

func (r *stubProductRepo) Update(ctx context.Context, id string, p productdom.Product) (productdom.Product, error) {
	if _, ok := r.byID[id]; !ok {
		return productdom.Product{}, productdom.ErrNotFound
	}
	r.byID[id] = p
	return p, nil
}

func (r *stubProductRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return productdom.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubImageStore struct{}

func (stubImageStore) Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error) {
	return "https://storage.googleapis.com/alwarmart/" + objectPath, nil
}

func (stubImageStore) Delete(ctx context.Context, url string) error { return nil }

func newProductRouter(repo *stubProductRepo) http.Handler {
	svc := productdom.NewService(repo, stubImageStore{}, zap.NewNop())
	r := chi.NewRouter()
	r.Route("/products", NewProductHandler(svc).Routes)
	return r
}

func writeProductFormFields(t *testing.T, mw *multipart.Writer) {
	t.Helper()
	fields := map[string]string{
		"productName":        "Basmati Rice",
		"productDescription": "Premium long grain basmati rice from the foothills.",
		"brand":              "India Gate",
		"category":           "Grocery",
		"subCategory":        "Rice",
		"price":              "120",
		"mrp":                "150",
		"purchasePrice":      "100",
		"stockCount":         "50",
		"weight":             "1",
		"weightSIUnit":       "Kg",
		"productType":        "Grocery",
		"keywords":           "rice, basmati",
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
}

func attachImage(t *testing.T, mw *multipart.Writer, name string, data []byte) {
	t.Helper()
	fw, err := mw.CreateFormFile("productImage", name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
}

func doMultipart(t *testing.T, router http.Handler, method, target string, body *bytes.Buffer, mw *multipart.Writer) *httptest.ResponseRecorder {
	t.Helper()
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProductCreateKeepsRemainderOfOversizedBatch(t *testing.T) {
	router := newProductRouter(newStubProductRepo())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	writeProductFormFields(t, mw)
	attachImage(t, mw, "front.jpg", []byte("front"))
	attachImage(t, mw, "back.jpg", []byte("back"))
	attachImage(t, mw, "huge.jpg", make([]byte, productdom.MaxImageFileSize+1))

	rec := doMultipart(t, router, http.MethodPost, "/products", &body, mw)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp productSubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Product.ProductImage, 2)
	require.Len(t, resp.RejectedImages, 1)
	assert.Contains(t, resp.RejectedImages[0], "huge.jpg")
}

func TestProductUpdateRejectsForeignCurrentImages(t *testing.T) {
	router := newProductRouter(newStubProductRepo(productdom.Product{
		ProductID:   "PRDTEST00001",
		ProductName: "Basmati Rice",
	}))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	writeProductFormFields(t, mw)
	require.NoError(t, mw.WriteField("currentImages", "https://cdn.example.com/x.jpg"))

	rec := doMultipart(t, router, http.MethodPut, "/products/PRDTEST00001", &body, mw)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestProductUpdateAcceptsFirebaseCurrentImages(t *testing.T) {
	router := newProductRouter(newStubProductRepo(productdom.Product{
		ProductID:   "PRDTEST00001",
		ProductName: "Basmati Rice",
	}))

	kept := "https://firebasestorage.googleapis.com/v0/b/alwarmart.appspot.com/o/product%2Fold.jpg?alt=media"

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	writeProductFormFields(t, mw)
	require.NoError(t, mw.WriteField("currentImages", kept))
	attachImage(t, mw, "new.jpg", []byte("new"))

	rec := doMultipart(t, router, http.MethodPut, "/products/PRDTEST00001", &body, mw)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp productSubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Product.ProductImage, 2)
	assert.Equal(t, kept, resp.Product.ProductImage[0])
	assert.Empty(t, resp.RejectedImages)
}
