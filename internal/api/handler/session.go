package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/openplay/courtqueue/internal/api/request"
	"github.com/openplay/courtqueue/internal/api/response"
	"github.com/openplay/courtqueue/internal/model"
	"github.com/openplay/courtqueue/internal/services/session"
)

// SessionHandler handles the session rotation endpoints
type SessionHandler struct {
	controller *session.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller *session.Controller) *SessionHandler {
	return &SessionHandler{controller: controller}
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.view())
}

// AddPlayer handles POST /api/v1/session/players
func (h *SessionHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.controller.AddPlayer(req.FirstName, req.LastName, req.Phone, req.Payment)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(*player, false))
}

// DeletePlayer handles DELETE /api/v1/session/players/{id}
func (h *SessionHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if err := h.controller.DeletePlayer(id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// PausePlayer handles POST /api/v1/session/players/{id}/pause
func (h *SessionHandler) PausePlayer(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if err := h.controller.PausePlayer(id); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.view())
}

// ResumePlayer handles POST /api/v1/session/players/{id}/resume
func (h *SessionHandler) ResumePlayer(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if err := h.controller.ResumePlayer(id); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.view())
}

// AddCourt handles POST /api/v1/session/courts
func (h *SessionHandler) AddCourt(w http.ResponseWriter, r *http.Request) {
	number, err := h.controller.AddCourt()
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CourtResult{Number: number})
}

// RemoveCourt handles DELETE /api/v1/session/courts/{number}
func (h *SessionHandler) RemoveCourt(w http.ResponseWriter, r *http.Request) {
	number, err := courtNumber(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.controller.RemoveCourt(number); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// CompleteGame handles POST /api/v1/session/courts/{number}/complete
func (h *SessionHandler) CompleteGame(w http.ResponseWriter, r *http.Request) {
	number, err := courtNumber(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.controller.CompleteGame(number); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.view())
}

// Swap handles POST /api/v1/session/swap
func (h *SessionHandler) Swap(w http.ResponseWriter, r *http.Request) {
	var req request.SwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	source := positionFromRequest(req.Source)
	target := positionFromRequest(req.Target)

	if err := h.controller.ApplySwap(source, target); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.view())
}

// ReorderCourts handles POST /api/v1/session/courts/reorder
func (h *SessionHandler) ReorderCourts(w http.ResponseWriter, r *http.Request) {
	var req request.ReorderCourtsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.controller.ReorderCourt(req.SourceIndex, req.TargetIndex); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.view())
}

// Terminate handles DELETE /api/v1/session (PIN-gated via middleware)
func (h *SessionHandler) Terminate(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Terminate(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *SessionHandler) view() response.SessionView {
	return response.SessionViewFrom(
		h.controller.SessionID(),
		h.controller.Players(),
		h.controller.PausedPlayers(),
		h.controller.Courts(),
		h.controller.QueueView(),
	)
}

func courtNumber(r *http.Request) (int, error) {
	number, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil {
		return 0, NewInvalidRequestError("court number must be an integer")
	}
	return number, nil
}

func positionFromRequest(p request.Position) model.Position {
	return model.Position{
		Kind:  model.PositionKind(p.Kind),
		Index: p.Index,
		Court: p.Court,
		Slot:  p.Slot,
	}
}
