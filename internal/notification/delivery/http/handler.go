package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/supplychain-dashboard/internal/notification/domain"
	"github.com/tair/supplychain-dashboard/internal/notification/usecase/command"
	"github.com/tair/supplychain-dashboard/internal/notification/usecase/query"
	"github.com/tair/supplychain-dashboard/pkg/logger"
)

// NotificationHandler handles HTTP requests for notifications
type NotificationHandler struct {
	markReadHandler *command.MarkReadHandler
	clearAllHandler *command.ClearAllHandler
	listHandler     *query.ListNotificationsHandler
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(repo domain.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{
		markReadHandler: command.NewMarkReadHandler(repo),
		clearAllHandler: command.NewClearAllHandler(repo),
		listHandler:     query.NewListNotificationsHandler(repo),
	}
}

// Response is the uniform JSON envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListNotifications handles GET /api/notifications, newest first
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.listHandler.Handle(query.ListNotificationsQuery{
		UnreadOnly: r.URL.Query().Get("unread") == "true",
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list notifications")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list notifications"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: notifications})
}

// MarkNotificationRead handles PATCH /api/notifications/{id}/read
func (h *NotificationHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.markReadHandler.Handle(command.MarkReadCommand{ID: id}); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Notification marked as read"})
}

// ClearAllNotifications handles DELETE /api/notifications
func (h *NotificationHandler) ClearAllNotifications(w http.ResponseWriter, r *http.Request) {
	if err := h.clearAllHandler.Handle(command.ClearAllCommand{}); err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "All notifications cleared"})
}

// RegisterRoutes registers all notification routes
func (h *NotificationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/notifications", h.ListNotifications).Methods("GET")
	router.HandleFunc("/api/notifications", h.ClearAllNotifications).Methods("DELETE")
	router.HandleFunc("/api/notifications/{id}/read", h.MarkNotificationRead).Methods("PATCH")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
