package handlers

import (
	"net/http"

	"alwarmart/internal/application/usecase"
)

// CatalogHandler serves the joint catalog load the console boots from.
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// GET /catalog
func (h *CatalogHandler) Load(w http.ResponseWriter, r *http.Request) {
	snap, err := h.uc.Load(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "catalog load failed: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
