package handler

import (
	"net/http"

	"github.com/nexus-dashboard/internal/application/market"
)

// MarketHandler serves the read-only portfolio, market data and execution lists.
type MarketHandler struct {
	svc    market.Service
	userID string
}

func NewMarketHandler(svc market.Service, userID string) *MarketHandler {
	return &MarketHandler{svc: svc, userID: userID}
}

func (h *MarketHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Portfolio(r.Context(), h.userID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *MarketHandler) MarketData(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.MarketData(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *MarketHandler) Executions(w http.ResponseWriter, r *http.Request) {
	executions, err := h.svc.Executions(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, executions)
}
