package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	branddom "alwarmart/internal/domain/brand"
)

// BrandHandler serves /brands. Create is a multipart form: "brandName" plus
// an optional "brandIcon" file. Brands are addressed by name.
type BrandHandler struct {
	svc *branddom.Service
}

func NewBrandHandler(svc *branddom.Service) *BrandHandler {
	return &BrandHandler{svc: svc}
}

func (h *BrandHandler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{name}", h.get)
	r.Put("/{name}/icon", h.updateIcon)
	r.Delete("/{name}", h.delete)
}

func (h *BrandHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListAll(r.Context())
	if err != nil {
		writeBrandErr(w, err)
		return
	}
	if items == nil {
		items = []branddom.Brand{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *BrandHandler) get(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.GetByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeBrandErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BrandHandler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	icon, err := readBrandIcon(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read uploaded icon")
		return
	}

	created, err := h.svc.Create(r.Context(), r.FormValue("brandName"), icon)
	if err != nil {
		writeBrandErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *BrandHandler) updateIcon(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	icon, err := readBrandIcon(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read uploaded icon")
		return
	}
	if icon == nil {
		writeError(w, http.StatusBadRequest, "brandIcon file is required")
		return
	}

	updated, err := h.svc.UpdateIcon(r.Context(), chi.URLParam(r, "name"), icon)
	if err != nil {
		writeBrandErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *BrandHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeBrandErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func readBrandIcon(r *http.Request) (*branddom.Icon, error) {
	file, err := readOneImageFile(r, "brandIcon")
	if err != nil || file == nil {
		return nil, err
	}
	return &branddom.Icon{
		Name:        file.Name,
		ContentType: file.ContentType,
		Data:        file.Data,
	}, nil
}

func writeBrandErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, branddom.ErrInvalidName):
		code = http.StatusBadRequest
	case errors.Is(err, branddom.ErrNotFound):
		code = http.StatusNotFound
	}
	writeError(w, code, err.Error())
}
