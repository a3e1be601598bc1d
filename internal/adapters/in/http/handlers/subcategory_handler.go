package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	subcatdom "alwarmart/internal/domain/subcategory"
)

// SubCategoryHandler serves /subcategories as plain JSON CRUD.
type SubCategoryHandler struct {
	svc *subcatdom.Service
}

func NewSubCategoryHandler(svc *subcatdom.Service) *SubCategoryHandler {
	return &SubCategoryHandler{svc: svc}
}

func (h *SubCategoryHandler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type subCategoryRequest struct {
	SubCategoryName string `json:"subCategoryName" validate:"required"`
}

func (h *SubCategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListAll(r.Context())
	if err != nil {
		writeSubCategoryErr(w, err)
		return
	}
	if items == nil {
		items = []subcatdom.SubCategory{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *SubCategoryHandler) get(w http.ResponseWriter, r *http.Request) {
	sc, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeSubCategoryErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (h *SubCategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req subCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "subCategoryName is required")
		return
	}

	created, err := h.svc.Create(r.Context(), req.SubCategoryName)
	if err != nil {
		writeSubCategoryErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *SubCategoryHandler) update(w http.ResponseWriter, r *http.Request) {
	var req subCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "subCategoryName is required")
		return
	}

	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req.SubCategoryName)
	if err != nil {
		writeSubCategoryErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *SubCategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeSubCategoryErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func writeSubCategoryErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, subcatdom.ErrInvalidID), errors.Is(err, subcatdom.ErrInvalidName):
		code = http.StatusBadRequest
	case errors.Is(err, subcatdom.ErrNotFound):
		code = http.StatusNotFound
	}
	writeError(w, code, err.Error())
}
