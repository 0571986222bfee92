package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tenpinclub/rollbook/internal/api/handler"
	apimiddleware "github.com/tenpinclub/rollbook/internal/api/middleware"
	"github.com/tenpinclub/rollbook/internal/api/response"
	"github.com/tenpinclub/rollbook/internal/middleware"
	"github.com/tenpinclub/rollbook/internal/model"
	"github.com/tenpinclub/rollbook/internal/services/auth"
	"github.com/tenpinclub/rollbook/internal/services/roster"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	RosterService  *roster.Service
	StorageBackend string
}

// NewRouter creates a new API router with all routes configured.
//
// GET endpoints are public; mutations require a bearer token, and roster
// mutations additionally require a coach or admin role. Order matters: a
// missing token is 401, a player-role token on a coach route is 403.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	playerHandler := handler.NewPlayerHandler(cfg.RosterService)
	locationHandler := handler.NewLocationHandler(cfg.RosterService)
	gameHandler := handler.NewGameHandler(cfg.RosterService)
	scoreHandler := handler.NewScoreHandler(cfg.RosterService)
	userHandler := handler.NewUserHandler(cfg.RosterService)

	// Create middleware
	authMiddleware := apimiddleware.Auth(cfg.AuthService.Tokens())
	coachOnly := apimiddleware.RequireRole(model.RoleCoach, model.RoleAdmin)
	requestIDMiddleware := middleware.RequestID()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(requestIDMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no auth required for sign-in/sign-up/verify)
	api.HandleFunc("/auth/signin", authHandler.SignIn).Methods(http.MethodPost)
	api.HandleFunc("/auth/signin-code", authHandler.SignInWithCode).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup-coach", authHandler.SignUpCoach).Methods(http.MethodPost)
	api.HandleFunc("/auth/verify", authHandler.VerifyEmail).Methods(http.MethodGet)

	// Account routes (any authenticated role)
	account := api.PathPrefix("/auth").Subrouter()
	account.Use(authMiddleware)
	account.HandleFunc("/me", authHandler.GetMe).Methods(http.MethodGet)
	account.HandleFunc("/me", authHandler.UpdateMe).Methods(http.MethodPut)
	account.HandleFunc("/delete-me", authHandler.DeleteMe).Methods(http.MethodDelete)

	// Public read routes
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{name}", playerHandler.GetByName).Methods(http.MethodGet)
	api.HandleFunc("/teams", playerHandler.ListTeams).Methods(http.MethodGet)
	api.HandleFunc("/locations", locationHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{id:[0-9]+}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/scores", scoreHandler.List).Methods(http.MethodGet)

	// Mutations (coach/admin only)
	manage := api.NewRoute().Subrouter()
	manage.Use(authMiddleware)
	manage.Use(coachOnly)
	manage.HandleFunc("/players/{name}", playerHandler.DeleteByName).Methods(http.MethodDelete)
	manage.HandleFunc("/locations", locationHandler.Create).Methods(http.MethodPost)
	manage.HandleFunc("/locations/{id:[0-9]+}", locationHandler.Delete).Methods(http.MethodDelete)
	manage.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	manage.HandleFunc("/games/{id:[0-9]+}", gameHandler.Update).Methods(http.MethodPut)
	manage.HandleFunc("/games/{id:[0-9]+}", gameHandler.Delete).Methods(http.MethodDelete)
	manage.HandleFunc("/scores", scoreHandler.Create).Methods(http.MethodPost)
	manage.HandleFunc("/scores/{id:[0-9]+}", scoreHandler.Update).Methods(http.MethodPut)
	manage.HandleFunc("/users", userHandler.Create).Methods(http.MethodPost)
	manage.HandleFunc("/users/{id:[0-9]+}", userHandler.Update).Methods(http.MethodPut)
	manage.HandleFunc("/users/{id:[0-9]+}", userHandler.Delete).Methods(http.MethodDelete)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler(cfg.StorageBackend)).Methods(http.MethodGet)

	return r
}

func healthHandler(backend string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, response.HealthResponse{
			Status:  "ok",
			Backend: backend,
		})
	}
}
