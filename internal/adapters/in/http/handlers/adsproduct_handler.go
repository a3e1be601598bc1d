package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	adsdom "alwarmart/internal/domain/adsproduct"
)

// AdsProductHandler serves /adsproducts as JSON CRUD keyed by productId.
type AdsProductHandler struct {
	svc *adsdom.Service
}

func NewAdsProductHandler(svc *adsdom.Service) *AdsProductHandler {
	return &AdsProductHandler{svc: svc}
}

func (h *AdsProductHandler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{productId}", h.get)
	r.Put("/{productId}", h.update)
	r.Delete("/{productId}", h.delete)
}

type sponsorTypeDTO struct {
	Type          string `json:"type" validate:"required"`
	PriorityLevel string `json:"priorityLevel" validate:"required"`
}

type adsProductCreateRequest struct {
	ProductID    string           `json:"productId" validate:"required"`
	SponsorTypes []sponsorTypeDTO `json:"sponsorTypes" validate:"required,dive"`
}

type adsProductUpdateRequest struct {
	SponsorTypes []sponsorTypeDTO `json:"sponsorTypes" validate:"required,dive"`
}

func (h *AdsProductHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListAll(r.Context())
	if err != nil {
		writeAdsProductErr(w, err)
		return
	}
	if items == nil {
		items = []adsdom.AdsProduct{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *AdsProductHandler) get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		writeAdsProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *AdsProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var req adsProductCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "productId and sponsorTypes are required")
		return
	}

	created, err := h.svc.Create(r.Context(), req.ProductID, toSponsorTypes(req.SponsorTypes))
	if err != nil {
		writeAdsProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *AdsProductHandler) update(w http.ResponseWriter, r *http.Request) {
	var req adsProductUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "sponsorTypes are required")
		return
	}

	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "productId"), toSponsorTypes(req.SponsorTypes))
	if err != nil {
		writeAdsProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *AdsProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "productId")); err != nil {
		writeAdsProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func toSponsorTypes(dtos []sponsorTypeDTO) []adsdom.SponsorType {
	out := make([]adsdom.SponsorType, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, adsdom.SponsorType{
			Type:          d.Type,
			PriorityLevel: d.PriorityLevel,
		})
	}
	return out
}

func writeAdsProductErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, adsdom.ErrInvalidID),
		errors.Is(err, adsdom.ErrInvalidSponsorType),
		errors.Is(err, adsdom.ErrInvalidPriorityLevel),
		errors.Is(err, adsdom.ErrNoSponsorTypes):
		code = http.StatusBadRequest
	case errors.Is(err, adsdom.ErrNotFound):
		code = http.StatusNotFound
	}
	writeError(w, code, err.Error())
}
