package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ========================================
// Test doubles
// ========================================

type fakeRepo struct {
	byID map[string]Product
}

func newFakeRepo(products ...Product) *fakeRepo {
	r := &fakeRepo{byID: make(map[string]Product)}
	for _, p := range products {
		r.byID[p.ProductID] = p
	}
	return r
}

func (r *fakeRepo) ListAll(ctx context.Context) ([]Product, error) {
	out := make([]Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (r *fakeRepo) Create(ctx context.Context, p Product) (Product, error) {
	if _, ok := r.byID[p.ProductID]; ok {
		return Product{}, ErrConflict
	}
	r.byID[p.ProductID] = p
	return p, nil
}

func (r *fakeRepo) Update(ctx context.Context, id string, p Product) (Product, error) {
	if _, ok := r.byID[id]; !ok {
		return Product{}, ErrNotFound
	}
	r.byID[id] = p
	return p, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeImageStore struct {
	uploaded  []string
	deleted   []string
	deleteErr error
}

func (s *fakeImageStore) Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error) {
	s.uploaded = append(s.uploaded, objectPath)
	return "https://storage.googleapis.com/bucket/" + objectPath, nil
}

func (s *fakeImageStore) Delete(ctx context.Context, url string) error {
	s.deleted = append(s.deleted, url)
	return s.deleteErr
}

func newTestService(repo *fakeRepo, store *fakeImageStore) *Service {
	return NewService(repo, store, zap.NewNop())
}

// ========================================
// Tests
// ========================================

func TestCreateUploadsThenPersists(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeImageStore{}
	svc := newTestService(repo, store)

	files := []ImageFile{
		{Name: "front.jpg", ContentType: "image/jpeg", Data: []byte("a")},
		{Name: "back.jpg", ContentType: "image/jpeg", Data: []byte("b")},
	}
	created, err := svc.Create(context.Background(), validForm(), files)
	require.NoError(t, err)

	assert.Len(t, store.uploaded, 2)
	assert.Len(t, created.ProductImage, 2)
	stored, err := repo.GetByID(context.Background(), created.ProductID)
	require.NoError(t, err)
	assert.Equal(t, created.ProductImage, stored.ProductImage)
}

func TestCreateValidationFailureSkipsUpload(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeImageStore{}
	svc := newTestService(repo, store)

	_, err := svc.Create(context.Background(), FormInput{}, nil)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, store.uploaded)
	assert.Empty(t, repo.byID)
}

func TestUpdateMergesCurrentAndNewImages(t *testing.T) {
	existingForm := validForm()
	existing := existingForm.Normalize()
	existing.ProductID = "PRDEXIST0001"
	existing.ProductImage = []string{"https://storage.googleapis.com/bucket/old.jpg"}
	repo := newFakeRepo(existing)
	store := &fakeImageStore{}
	svc := newTestService(repo, store)

	kept := []string{"https://storage.googleapis.com/bucket/old.jpg"}
	files := []ImageFile{{Name: "new.jpg", ContentType: "image/jpeg", Data: []byte("n")}}

	updated, err := svc.Update(context.Background(), existing.ProductID, validForm(), kept, files)
	require.NoError(t, err)
	require.Len(t, updated.ProductImage, 2)
	assert.Equal(t, kept[0], updated.ProductImage[0])
}

func TestDeleteRemovesImagesBestEffort(t *testing.T) {
	pForm := validForm()
	p := pForm.Normalize()
	p.ProductID = "PRDDEL000001"
	p.ProductImage = []string{"u1", "u2"}
	repo := newFakeRepo(p)
	store := &fakeImageStore{deleteErr: errors.New("gone already")}
	svc := newTestService(repo, store)

	// blob failures do not block the document delete
	require.NoError(t, svc.Delete(context.Background(), p.ProductID))
	assert.Len(t, store.deleted, 2)
	_, err := repo.GetByID(context.Background(), p.ProductID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchForVariationExcludesOwner(t *testing.T) {
	aForm := validForm()
	a := aForm.Normalize()
	a.ProductID = "PRDA"
	a.ProductName = "Basmati Rice 1kg"
	bForm := validForm()
	b := bForm.Normalize()
	b.ProductID = "PRDB"
	b.ProductName = "Basmati Rice 5kg"
	repo := newFakeRepo(a, b)
	svc := newTestService(repo, &fakeImageStore{})

	hits, err := svc.SearchForVariation(context.Background(), "PRDA", "basmati")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "PRDB", hits[0].ProductID)

	hits, err = svc.SearchForVariation(context.Background(), "PRDA", "  ")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestAttachVariationSnapshotsAndRejectsDuplicates(t *testing.T) {
	ownerForm := validForm()
	owner := ownerForm.Normalize()
	owner.ProductID = "PRDOWNER0001"
	targetForm := validForm()
	target := targetForm.Normalize()
	target.ProductID = "PRDTARGET001"
	target.ProductName = "Basmati Rice 5kg"
	target.Weight = "5"
	target.WeightSIUnit = "Kg"
	repo := newFakeRepo(owner, target)
	svc := newTestService(repo, &fakeImageStore{})

	updated, err := svc.AttachVariation(context.Background(), owner.ProductID, target.ProductID)
	require.NoError(t, err)
	require.Len(t, updated.Variations, 1)
	assert.Equal(t, Variation{
		ID:               "PRDTARGET001",
		Name:             "Basmati Rice 5kg",
		WeightWithSIUnit: "5 Kg",
	}, updated.Variations[0])

	_, err = svc.AttachVariation(context.Background(), owner.ProductID, target.ProductID)
	assert.ErrorIs(t, err, ErrVariationAlreadyAttached)
}

func TestStageImagesRejectsOversizedIndividually(t *testing.T) {
	big := make([]byte, MaxImageFileSize+1)
	files := []ImageFile{
		{Name: "ok.jpg", Data: []byte("fine")},
		{Name: "huge.jpg", Data: big},
	}

	accepted, rejected := StageImages(files)
	require.Len(t, accepted, 1)
	assert.Equal(t, "ok.jpg", accepted[0].Name)
	require.Len(t, rejected, 1)
	assert.Contains(t, rejected[0], "huge.jpg")
}
