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

// LocationHandler handles venue endpoints
type LocationHandler struct {
	rosterService *roster.Service
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(rosterService *roster.Service) *LocationHandler {
	return &LocationHandler{
		rosterService: rosterService,
	}
}

// List handles GET /api/locations
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.rosterService.ListLocations(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, locations)
}

// Create handles POST /api/locations
func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.MustGetClaims(r.Context())

	var req request.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	loc := &model.Location{
		Name:      req.Name,
		Address:   req.Address,
		CreatedBy: claims.ID,
	}
	if err := h.rosterService.CreateLocation(r.Context(), loc); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.IDResponse{ID: loc.ID})
}

// Delete handles DELETE /api/locations/{id}
func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("invalid location id"))
		return
	}

	if err := h.rosterService.DeleteLocation(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Deleted"})
}
