package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tenpinclub/rollbook/internal/api/middleware"
	"github.com/tenpinclub/rollbook/internal/api/request"
	"github.com/tenpinclub/rollbook/internal/api/response"
	"github.com/tenpinclub/rollbook/internal/model"
	"github.com/tenpinclub/rollbook/internal/services/roster"
)

// GameHandler handles match-day endpoints
type GameHandler struct {
	rosterService *roster.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(rosterService *roster.Service) *GameHandler {
	return &GameHandler{
		rosterService: rosterService,
	}
}

// List handles GET /api/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.rosterService.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, games)
}

// Get handles GET /api/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("invalid game id"))
		return
	}

	game, err := h.rosterService.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, game)
}

// Create handles POST /api/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.MustGetClaims(r.Context())

	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	game := &model.Game{
		Title:      req.Title,
		LocationID: req.LocationID,
		Date:       req.Date,
		Players:    gamePlayersFromEntries(req.Players),
		CreatedBy:  claims.ID,
	}
	if err := h.rosterService.CreateGame(r.Context(), game); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.IDResponse{ID: game.ID})
}

// Update handles PUT /api/games/{id}
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("invalid game id"))
		return
	}

	var req request.UpdateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	game, err := h.rosterService.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	game.Title = req.Title
	game.LocationID = req.LocationID
	game.Date = req.Date
	game.Players = gamePlayersFromEntries(req.Players)
	if err := h.rosterService.UpdateGame(r.Context(), game); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Updated"})
}

// Delete handles DELETE /api/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("invalid game id"))
		return
	}

	if err := h.rosterService.DeleteGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Deleted"})
}

func gamePlayersFromEntries(entries []request.GamePlayerEntry) []model.GamePlayer {
	players := make([]model.GamePlayer, 0, len(entries))
	for _, e := range entries {
		players = append(players, model.GamePlayer{
			ID:    e.ID,
			Name:  e.Name,
			Score: e.Score,
		})
	}
	return players
}
