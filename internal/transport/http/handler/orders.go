package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nexus-dashboard/internal/application/order"
	"github.com/nexus-dashboard/internal/domain"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	svc    order.Service
	userID string
}

func NewOrderHandler(svc order.Service, userID string) *OrderHandler {
	return &OrderHandler{svc: svc, userID: userID}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.List(r.Context(), h.userID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	o, err := h.svc.Create(r.Context(), h.userID, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}
