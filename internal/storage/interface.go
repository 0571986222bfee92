package storage

import (
	"context"

	"github.com/tenpinclub/rollbook/internal/model"
)

// Storage defines the interface for data persistence.
//
// Exactly one implementation is selected per process; the backends never
// share an underlying medium. Implementations return the model sentinel
// errors for absent records, and assign a new integer id on Create when the
// medium does not auto-assign one (one greater than the current maximum).
type Storage interface {
	// User operations
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id int) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	// GetUserByName matches the name exactly but case-insensitively.
	GetUserByName(ctx context.Context, name string) (*model.User, error)
	// GetCoachByCode finds a coach-role user by their join code.
	GetCoachByCode(ctx context.Context, code string) (*model.User, error)
	GetUserByVerifyToken(ctx context.Context, token string) (*model.User, error)
	ListPlayers(ctx context.Context, filter model.PlayerFilter) ([]*model.User, error)
	// ListTeams returns the distinct non-empty team names across all users.
	ListTeams(ctx context.Context) ([]string, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id int) error
	DeleteUserByName(ctx context.Context, name string) error

	// Location operations
	CreateLocation(ctx context.Context, loc *model.Location) error
	ListLocations(ctx context.Context) ([]*model.Location, error)
	DeleteLocation(ctx context.Context, id int) error

	// Game operations
	CreateGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id int) (*model.Game, error)
	// ListGames returns games most recent first.
	ListGames(ctx context.Context) ([]*model.Game, error)
	UpdateGame(ctx context.Context, game *model.Game) error
	DeleteGame(ctx context.Context, id int) error

	// Score operations
	CreateScore(ctx context.Context, score *model.Score) error
	GetScore(ctx context.Context, id int) (*model.Score, error)
	// ListScores returns scores most recent first.
	ListScores(ctx context.Context, filter model.ScoreFilter) ([]*model.Score, error)
	UpdateScore(ctx context.Context, score *model.Score) error

	// Close releases the underlying medium.
	Close() error
}
