package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"alwarmart/internal/application/usecase"
	orderdom "alwarmart/internal/domain/order"
)

// OrderHandler serves /orders on top of the realtime tree. All mutations
// address an order by its tree position {userId}/{orderId}.
type OrderHandler struct {
	svc     *orderdom.Service
	confirm *usecase.OrderConfirmUsecase
}

func NewOrderHandler(svc *orderdom.Service, confirm *usecase.OrderConfirmUsecase) *OrderHandler {
	return &OrderHandler{svc: svc, confirm: confirm}
}

func (h *OrderHandler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/search", h.search)
	r.Get("/statuses", h.statuses)
	r.Get("/{userId}/{orderId}", h.get)
	r.Patch("/{userId}/{orderId}/status", h.updateStatus)
	r.Post("/{userId}/{orderId}/confirm", h.confirmOrder)
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListOrders(r.Context())
	if err != nil {
		writeOrderErr(w, err)
		return
	}
	if items == nil {
		items = []orderdom.Order{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *OrderHandler) search(w http.ResponseWriter, r *http.Request) {
	hits, err := h.svc.SearchOrders(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeOrderErr(w, err)
		return
	}
	if hits == nil {
		hits = []orderdom.Order{}
	}
	writeJSON(w, http.StatusOK, hits)
}

// statuses exposes the status enum with its display metadata so clients
// never hardcode the list.
func (h *OrderHandler) statuses(w http.ResponseWriter, r *http.Request) {
	type statusDTO struct {
		Value string `json:"value"`
		Label string `json:"label"`
		Tone  string `json:"tone"`
	}
	out := make([]statusDTO, 0, len(orderdom.AllStatuses))
	for _, s := range orderdom.AllStatuses {
		m := s.Meta()
		out = append(out, statusDTO{Value: string(s), Label: m.Label, Tone: m.Tone})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *OrderHandler) get(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Get(r.Context(), chi.URLParam(r, "userId"), chi.URLParam(r, "orderId"))
	if err != nil {
		writeOrderErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *OrderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "status is required")
		return
	}

	next, ok := orderdom.ParseStatus(req.Status)
	if !ok {
		writeOrderErr(w, orderdom.ErrUnknownStatus)
		return
	}

	updated, err := h.svc.UpdateStatus(r.Context(),
		chi.URLParam(r, "userId"), chi.URLParam(r, "orderId"), next)
	if err != nil {
		writeOrderErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type confirmRequest struct {
	Render string `json:"render"`
}

// confirmOrder moves the order to Confirmed and runs the selected invoice
// outputs. Render failures come back in the response; the status change is
// already committed at that point.
func (h *OrderHandler) confirmOrder(w http.ResponseWriter, r *http.Request) {
	if h.confirm == nil {
		writeError(w, http.StatusServiceUnavailable, "order confirmation is not configured")
		return
	}

	var req confirmRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	choice, ok := parseRenderChoice(req.Render)
	if !ok {
		writeError(w, http.StatusBadRequest, "render must be one of: none, pdf, printer, both")
		return
	}

	result, err := h.confirm.Confirm(r.Context(),
		chi.URLParam(r, "userId"), chi.URLParam(r, "orderId"), choice)
	if err != nil {
		writeOrderErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func parseRenderChoice(raw string) (usecase.RenderChoice, bool) {
	switch raw {
	case "", "none":
		return usecase.RenderNone, true
	case "pdf":
		return usecase.RenderPDF, true
	case "printer":
		return usecase.RenderPrinter, true
	case "both":
		return usecase.RenderBoth, true
	default:
		return usecase.RenderNone, false
	}
}

func writeOrderErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, orderdom.ErrInvalidID), errors.Is(err, orderdom.ErrUnknownStatus):
		code = http.StatusBadRequest
	case errors.Is(err, orderdom.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, orderdom.ErrSameStatus):
		code = http.StatusConflict
	}
	writeError(w, code, err.Error())
}
