package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	gcscommon "alwarmart/internal/adapters/out/gcs/common"
	productdom "alwarmart/internal/domain/product"
)

// ProductHandler serves /products. Create and update are multipart forms:
// scalar fields mirror the form field names, staged files arrive under
// "productImage", and update carries the kept URLs as repeated
// "currentImages" fields. Oversized files are dropped one by one and
// reported back; the rest of the selection is still stored.
type ProductHandler struct {
	svc *productdom.Service
}

func NewProductHandler(svc *productdom.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// productSubmitResponse is the create/update payload. RejectedImages lists
// staged files that were dropped for exceeding the size limit; dropping one
// file never blocks the rest of the submission.
type productSubmitResponse struct {
	Product        productdom.Product `json:"product"`
	RejectedImages []string           `json:"rejectedImages,omitempty"`
}

func (h *ProductHandler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/warnings", h.warnings)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/variations/search", h.searchVariations)
	r.Post("/{id}/variations", h.attachVariation)
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListAll(r.Context())
	if err != nil {
		writeProductErr(w, err)
		return
	}
	if items == nil {
		items = []productdom.Product{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ProductHandler) get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	files, err := readImageFiles(r, "productImage")
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read uploaded images")
		return
	}
	staged, rejected := productdom.StageImages(files)

	created, err := h.svc.Create(r.Context(), formInputFromRequest(r), staged)
	if err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, productSubmitResponse{
		Product:        created,
		RejectedImages: rejected,
	})
}

func (h *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	files, err := readImageFiles(r, "productImage")
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read uploaded images")
		return
	}
	staged, rejected := productdom.StageImages(files)

	currentImages := r.MultipartForm.Value["currentImages"]
	for _, u := range currentImages {
		if !gcscommon.IsAllowedImageURL(u) {
			writeError(w, http.StatusBadRequest, "currentImages contains an unrecognized storage url")
			return
		}
	}

	updated, err := h.svc.Update(r.Context(),
		chi.URLParam(r, "id"), formInputFromRequest(r), currentImages, staged)
	if err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productSubmitResponse{
		Product:        updated,
		RejectedImages: rejected,
	})
}

func (h *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// warnings is the non-blocking per-field path: it echoes advisory messages
// for the cross-field price/quantity rules and never rejects the request.
func (h *ProductHandler) warnings(w http.ResponseWriter, r *http.Request) {
	var form productdom.FormInput
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	warns := form.Warnings()
	if warns == nil {
		warns = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"warnings": warns})
}

func (h *ProductHandler) searchVariations(w http.ResponseWriter, r *http.Request) {
	hits, err := h.svc.SearchForVariation(r.Context(),
		chi.URLParam(r, "id"), r.URL.Query().Get("q"))
	if err != nil {
		writeProductErr(w, err)
		return
	}
	if hits == nil {
		hits = []productdom.Product{}
	}
	writeJSON(w, http.StatusOK, hits)
}

type attachVariationRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

func (h *ProductHandler) attachVariation(w http.ResponseWriter, r *http.Request) {
	var req attachVariationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}

	updated, err := h.svc.AttachVariation(r.Context(), chi.URLParam(r, "id"), req.ProductID)
	if err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// formInputFromRequest maps multipart form fields onto the raw form struct.
func formInputFromRequest(r *http.Request) productdom.FormInput {
	return productdom.FormInput{
		Available:             strings.EqualFold(r.FormValue("available"), "true"),
		ProductID:             r.FormValue("productId"),
		ProductName:           r.FormValue("productName"),
		ProductDescription:    r.FormValue("productDescription"),
		Brand:                 r.FormValue("brand"),
		Category:              r.FormValue("category"),
		SubCategory:           r.FormValue("subCategory"),
		Price:                 r.FormValue("price"),
		MRP:                   r.FormValue("mrp"),
		PurchasePrice:         r.FormValue("purchasePrice"),
		Discount:              r.FormValue("discount"),
		StockCount:            r.FormValue("stockCount"),
		MinSelectableQuantity: r.FormValue("minSelectableQuantity"),
		MaxSelectableQuantity: r.FormValue("maxSelectableQuantity"),
		SelectableQuantity:    r.FormValue("selectableQuantity"),
		Weight:                r.FormValue("weight"),
		WeightSIUnit:          r.FormValue("weightSIUnit"),
		ProductLife:           r.FormValue("productLife"),
		ProductType:           r.FormValue("productType"),
		ProductIsFoodItem:     r.FormValue("productIsFoodItem"),
		Keywords:              r.FormValue("keywords"),
		Barcode:               r.FormValue("barcode"),
	}
}

func writeProductErr(w http.ResponseWriter, err error) {
	if verr, ok := asValidationError(err); ok {
		writeValidationError(w, verr)
		return
	}

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, productdom.ErrInvalidID):
		code = http.StatusBadRequest
	case errors.Is(err, productdom.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, productdom.ErrConflict),
		errors.Is(err, productdom.ErrVariationAlreadyAttached):
		code = http.StatusConflict
	}
	writeError(w, code, err.Error())
}
