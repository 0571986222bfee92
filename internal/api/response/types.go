package response

import (
	"time"

	"github.com/tenpinclub/rollbook/internal/model"
	"github.com/tenpinclub/rollbook/internal/services/auth"
)

// User represents a user in API responses. Credential material (password
// digest, verify token) never leaves the server.
type User struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Email     *string        `json:"email,omitempty"`
	Role      string         `json:"role"`
	Team      string         `json:"team,omitempty"`
	CoachCode string         `json:"coach_code,omitempty"`
	CoachID   int            `json:"coach_id,omitempty"`
	Verified  bool           `json:"verified,omitempty"`
	Prefs     map[string]any `json:"prefs,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Team:      u.Team,
		CoachCode: u.CoachCode,
		CoachID:   u.CoachID,
		Verified:  u.Verified,
		Prefs:     u.Prefs,
		CreatedAt: u.CreatedAt,
	}
}

// UsersFromModels converts a slice of users
func UsersFromModels(users []*model.User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, UserFromModel(u))
	}
	return out
}

// AuthResponse is the response for sign-in and sign-up endpoints
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		User:  UserFromModel(s.User),
		Token: s.Token,
	}
}

// IDResponse reports the id of a created record
type IDResponse struct {
	ID int `json:"id"`
}

// MessageResponse is a simple human-readable acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports liveness and the active storage backend
type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}
