package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tenpinclub/rollbook/internal/api/response"
	"github.com/tenpinclub/rollbook/internal/model"
	"github.com/tenpinclub/rollbook/internal/services/roster"
)

// PlayerHandler handles the public player roster endpoints
type PlayerHandler struct {
	rosterService *roster.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(rosterService *roster.Service) *PlayerHandler {
	return &PlayerHandler{
		rosterService: rosterService,
	}
}

// List handles GET /api/players?team=&name=
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.PlayerFilter{
		Team: r.URL.Query().Get("team"),
		Name: r.URL.Query().Get("name"),
	}

	players, err := h.rosterService.ListPlayers(r.Context(), filter)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UsersFromModels(players))
}

// GetByName handles GET /api/players/{name}
func (h *PlayerHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	user, err := h.rosterService.GetPlayerByName(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}

// DeleteByName handles DELETE /api/players/{name}
func (h *PlayerHandler) DeleteByName(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.rosterService.DeletePlayerByName(r.Context(), name); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Deleted"})
}

// ListTeams handles GET /api/teams
func (h *PlayerHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.rosterService.ListTeams(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, teams)
}
