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

// ScoreHandler handles session score endpoints
type ScoreHandler struct {
	rosterService *roster.Service
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(rosterService *roster.Service) *ScoreHandler {
	return &ScoreHandler{
		rosterService: rosterService,
	}
}

// List handles GET /api/scores?player_id=&location_id=
func (h *ScoreHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter model.ScoreFilter
	if v := r.URL.Query().Get("player_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			WriteError(w, NewInvalidRequestError("invalid player_id"))
			return
		}
		filter.PlayerID = id
	}
	if v := r.URL.Query().Get("location_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			WriteError(w, NewInvalidRequestError("invalid location_id"))
			return
		}
		filter.LocationID = id
	}

	scores, err := h.rosterService.ListScores(r.Context(), filter)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, scores)
}

// Create handles POST /api/scores
func (h *ScoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.MustGetClaims(r.Context())

	var req request.CreateScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == 0 {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	score := &model.Score{
		PlayerID:      req.PlayerID,
		Date:          req.Date,
		LocationID:    req.LocationID,
		Level:         req.Level,
		Opponent:      req.Opponent,
		Scores:        req.Scores,
		Spares:        req.Spares,
		Strikes:       req.Strikes,
		SubstituteFor: req.SubstituteFor,
		CreatedBy:     claims.ID,
	}
	if err := h.rosterService.CreateScore(r.Context(), score); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.IDResponse{ID: score.ID})
}

// Update handles PUT /api/scores/{id}
func (h *ScoreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("invalid score id"))
		return
	}

	var req request.UpdateScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	patch := &model.Score{
		Date:          req.Date,
		LocationID:    req.LocationID,
		Level:         req.Level,
		Opponent:      req.Opponent,
		Scores:        req.Scores,
		Spares:        req.Spares,
		Strikes:       req.Strikes,
		SubstituteFor: req.SubstituteFor,
	}
	if _, err := h.rosterService.UpdateScore(r.Context(), id, patch); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Updated"})
}
