package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nexus-dashboard/internal/application/notification"
	"github.com/nexus-dashboard/internal/domain"
	"github.com/nexus-dashboard/internal/pkg/validate"
)

// NotificationHandler handles notification endpoints for a single configured user.
type NotificationHandler struct {
	svc    notification.Service
	userID string
}

func NewNotificationHandler(svc notification.Service, userID string) *NotificationHandler {
	return &NotificationHandler{svc: svc, userID: userID}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.svc.List(r.Context(), h.userID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

// Update applies {"isRead": bool} and returns the stored notification.
func (h *NotificationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.NotificationReadUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	n, err := h.svc.SetRead(r.Context(), chi.URLParam(r, "id"), h.userID, *req.IsRead)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}
