package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tenpinclub/rollbook/internal/api/request"
	"github.com/tenpinclub/rollbook/internal/api/response"
	"github.com/tenpinclub/rollbook/internal/model"
	"github.com/tenpinclub/rollbook/internal/services/roster"
)

// UserHandler handles coach-facing user management endpoints
type UserHandler struct {
	rosterService *roster.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(rosterService *roster.Service) *UserHandler {
	return &UserHandler{
		rosterService: rosterService,
	}
}

// Create handles POST /api/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}
	role := model.Role(req.Role)
	if req.Role != "" && !role.Valid() {
		WriteError(w, NewInvalidRequestError("invalid role"))
		return
	}

	user := &model.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
		Team:  req.Team,
	}
	if err := h.rosterService.CreateUser(r.Context(), user, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"user": response.UserFromModel(user)})
}

// Update handles PUT /api/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("invalid user id"))
		return
	}

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	role := model.Role(req.Role)
	if req.Role != "" && !role.Valid() {
		WriteError(w, NewInvalidRequestError("invalid role"))
		return
	}

	patch := &model.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
		Team:  req.Team,
	}
	if _, err := h.rosterService.UpdateUser(r.Context(), id, patch, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Updated"})
}

// Delete handles DELETE /api/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("invalid user id"))
		return
	}

	if err := h.rosterService.DeleteUser(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Deleted"})
}
