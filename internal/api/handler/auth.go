package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tenpinclub/rollbook/internal/api/middleware"
	"github.com/tenpinclub/rollbook/internal/api/request"
	"github.com/tenpinclub/rollbook/internal/api/response"
	"github.com/tenpinclub/rollbook/internal/services/auth"
)

// AuthHandler handles sign-in, sign-up, and account endpoints
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignIn handles POST /api/auth/signin. Email plus password takes precedence
// over a bare name; a name alone is the passwordless quick sign-in path.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req request.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	switch {
	case req.Email != "" && req.Password != "":
		session, err := h.authService.SignInWithPassword(r.Context(), req.Email, req.Password)
		if err != nil {
			WriteError(w, err)
			return
		}
		response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))

	case req.Name != "":
		session, err := h.authService.QuickSignIn(r.Context(), req.Name)
		if err != nil {
			WriteError(w, err)
			return
		}
		response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))

	default:
		WriteError(w, NewInvalidRequestError("email and password, or name, is required"))
	}
}

// SignInWithCode handles POST /api/auth/signin-code
func (h *AuthHandler) SignInWithCode(w http.ResponseWriter, r *http.Request) {
	var req request.CoachCodeSignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.CoachCode == "" {
		WriteError(w, NewInvalidRequestError("coachCode is required"))
		return
	}

	session, err := h.authService.SignInWithCoachCode(r.Context(), req.CoachCode)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// SignUpCoach handles POST /api/auth/signup-coach
func (h *AuthHandler) SignUpCoach(w http.ResponseWriter, r *http.Request) {
	var req request.SignupCoachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}
	if req.Email == "" {
		WriteError(w, NewInvalidRequestError("email is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.authService.SignUpCoach(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFromSession(session))
}

// GetMe handles GET /api/auth/me
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	claims := middleware.MustGetClaims(r.Context())

	user, err := h.authService.Me(r.Context(), claims.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"user": response.UserFromModel(user)})
}

// UpdateMe handles PUT /api/auth/me
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	claims := middleware.MustGetClaims(r.Context())

	var req request.UpdatePrefsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.authService.UpdatePrefs(r.Context(), claims.ID, req.Prefs); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Updated"})
}

// DeleteMe handles DELETE /api/auth/delete-me
func (h *AuthHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	claims := middleware.MustGetClaims(r.Context())

	if err := h.authService.DeleteAccount(r.Context(), claims.ID); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Deleted"})
}

// VerifyEmail handles GET /api/auth/verify?token=
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		WriteError(w, NewInvalidRequestError("token is required"))
		return
	}

	if err := h.authService.VerifyEmail(r.Context(), token); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Verified"})
}
