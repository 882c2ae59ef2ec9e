package handler

import (
	"encoding/json"
	"net/http"

	"github.com/openplay/courtqueue/internal/api/request"
	"github.com/openplay/courtqueue/internal/api/response"
	"github.com/openplay/courtqueue/internal/services/roster"
	"github.com/openplay/courtqueue/internal/services/session"
)

// RosterHandler handles roster upload and the attendance export
type RosterHandler struct {
	controller *session.Controller
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(controller *session.Controller) *RosterHandler {
	return &RosterHandler{controller: controller}
}

// Upload handles POST /api/v1/session/roster
func (h *RosterHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req request.RosterUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Text == "" {
		WriteError(w, NewInvalidRequestError("roster text is required"))
		return
	}

	players := roster.Parse(req.Text)
	added := h.controller.ImportRoster(players)

	response.JSON(w, http.StatusOK, response.RosterResult{
		Parsed: len(players),
		Added:  added,
	})
}

// Export handles GET /api/v1/session/export (PIN-gated via middleware)
func (h *RosterHandler) Export(w http.ResponseWriter, r *http.Request) {
	response.Text(w, http.StatusOK, roster.Export(h.controller.Snapshot()))
}
