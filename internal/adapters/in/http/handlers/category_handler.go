package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	categorydom "alwarmart/internal/domain/category"
)

// CategoryHandler serves /categories. Create and update are multipart
// forms: "tag" plus an optional "image" file.
type CategoryHandler struct {
	svc *categorydom.Service
}

func NewCategoryHandler(svc *categorydom.Service) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListAll(r.Context())
	if err != nil {
		writeCategoryErr(w, err)
		return
	}
	if items == nil {
		items = []categorydom.Category{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CategoryHandler) get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeCategoryErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	img, err := readCategoryImage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read uploaded image")
		return
	}

	created, err := h.svc.Create(r.Context(), r.FormValue("tag"), img)
	if err != nil {
		writeCategoryErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CategoryHandler) update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	img, err := readCategoryImage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read uploaded image")
		return
	}

	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), r.FormValue("tag"), img)
	if err != nil {
		writeCategoryErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeCategoryErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func readCategoryImage(r *http.Request) (*categorydom.Image, error) {
	file, err := readOneImageFile(r, "image")
	if err != nil || file == nil {
		return nil, err
	}
	return &categorydom.Image{
		Name:        file.Name,
		ContentType: file.ContentType,
		Data:        file.Data,
	}, nil
}

func writeCategoryErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, categorydom.ErrInvalidID), errors.Is(err, categorydom.ErrInvalidTag):
		code = http.StatusBadRequest
	case errors.Is(err, categorydom.ErrNotFound):
		code = http.StatusNotFound
	}
	writeError(w, code, err.Error())
}
