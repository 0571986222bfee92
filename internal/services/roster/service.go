// Package roster manages the club's players, locations, games, and score
// records. Derived score fields (avg, totalWood) are computed here, on every
// write, so the storage layer only ever sees consistent records.
package roster

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/tenpinclub/rollbook/internal/dependencies/clock"
	"github.com/tenpinclub/rollbook/internal/model"
	"github.com/tenpinclub/rollbook/internal/services/auth"
	"github.com/tenpinclub/rollbook/internal/storage"
)

// ErrInvalidScores is returned when a session does not carry exactly three
// integer woods.
var ErrInvalidScores = fmt.Errorf("a session requires exactly %d scores", model.WoodsPerSession)

// Service implements roster and score management.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a roster service.
func New(store storage.Storage, clk clock.Clock) *Service {
	return &Service{
		storage: store,
		clock:   clk,
	}
}

// Players

// ListPlayers returns player-role users, optionally narrowed by team and a
// name substring.
func (s *Service) ListPlayers(ctx context.Context, filter model.PlayerFilter) ([]*model.User, error) {
	return s.storage.ListPlayers(ctx, filter)
}

// ListTeams returns the distinct team names in use.
func (s *Service) ListTeams(ctx context.Context) ([]string, error) {
	return s.storage.ListTeams(ctx)
}

// CreateUser provisions a roster entry on someone else's behalf. The
// password is optional; when present it is hashed before it reaches storage.
func (s *Service) CreateUser(ctx context.Context, user *model.User, password string) error {
	if !user.Role.Valid() {
		user.Role = model.RolePlayer
	}
	if user.Email != nil {
		if _, err := s.storage.GetUserByEmail(ctx, *user.Email); err == nil {
			return model.ErrEmailTaken
		} else if !errors.Is(err, model.ErrUserNotFound) {
			return err
		}
	}
	if password != "" {
		hashed, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		user.Password = hashed
	}
	user.CreatedAt = s.clock.Now()
	return s.storage.CreateUser(ctx, user)
}

// GetUser returns one user by id.
func (s *Service) GetUser(ctx context.Context, id int) (*model.User, error) {
	return s.storage.GetUser(ctx, id)
}

// UpdateUser applies partial edits to an existing user. Zero-valued fields
// in the patch leave the stored value alone; the password, when set, is
// hashed.
func (s *Service) UpdateUser(ctx context.Context, id int, patch *model.User, password string) (*model.User, error) {
	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != "" {
		user.Name = patch.Name
	}
	if patch.Email != nil {
		if existing, err := s.storage.GetUserByEmail(ctx, *patch.Email); err == nil {
			if existing.ID != id {
				return nil, model.ErrEmailTaken
			}
		} else if !errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}
		user.Email = patch.Email
	}
	if patch.Role.Valid() {
		user.Role = patch.Role
	}
	if patch.Team != "" {
		user.Team = patch.Team
	}
	if password != "" {
		hashed, err := auth.HashPassword(password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user by id.
func (s *Service) DeleteUser(ctx context.Context, id int) error {
	return s.storage.DeleteUser(ctx, id)
}

// GetPlayerByName looks one user up by case-insensitive exact name.
func (s *Service) GetPlayerByName(ctx context.Context, name string) (*model.User, error) {
	return s.storage.GetUserByName(ctx, name)
}

// DeletePlayerByName removes a player by exact name.
func (s *Service) DeletePlayerByName(ctx context.Context, name string) error {
	return s.storage.DeleteUserByName(ctx, name)
}

// Locations

// CreateLocation records a new venue.
func (s *Service) CreateLocation(ctx context.Context, loc *model.Location) error {
	return s.storage.CreateLocation(ctx, loc)
}

// ListLocations returns all venues.
func (s *Service) ListLocations(ctx context.Context) ([]*model.Location, error) {
	return s.storage.ListLocations(ctx)
}

// DeleteLocation removes a venue. Games and scores that reference it keep
// their now-dangling location id; history is never rewritten.
func (s *Service) DeleteLocation(ctx context.Context, id int) error {
	return s.storage.DeleteLocation(ctx, id)
}

// Games

// CreateGame records a match day with its participant snapshots.
func (s *Service) CreateGame(ctx context.Context, game *model.Game) error {
	if game.Players == nil {
		game.Players = []model.GamePlayer{}
	}
	return s.storage.CreateGame(ctx, game)
}

// GetGame returns one game by id.
func (s *Service) GetGame(ctx context.Context, id int) (*model.Game, error) {
	return s.storage.GetGame(ctx, id)
}

// ListGames returns games most recent first.
func (s *Service) ListGames(ctx context.Context) ([]*model.Game, error) {
	return s.storage.ListGames(ctx)
}

// UpdateGame replaces an existing game's editable fields.
func (s *Service) UpdateGame(ctx context.Context, game *model.Game) error {
	if game.Players == nil {
		game.Players = []model.GamePlayer{}
	}
	return s.storage.UpdateGame(ctx, game)
}

// DeleteGame removes a game by id.
func (s *Service) DeleteGame(ctx context.Context, id int) error {
	return s.storage.DeleteGame(ctx, id)
}

// Scores

// CreateScore validates and records a session. The player must exist; the
// derived fields are computed from the woods regardless of what the caller
// supplied.
func (s *Service) CreateScore(ctx context.Context, score *model.Score) error {
	if len(score.Scores) != model.WoodsPerSession {
		return ErrInvalidScores
	}
	if _, err := s.storage.GetUser(ctx, score.PlayerID); err != nil {
		return err
	}
	deriveScore(score)
	score.CreatedAt = s.clock.Now()
	return s.storage.CreateScore(ctx, score)
}

// ListScores returns sessions most recent first, optionally narrowed by
// player and location.
func (s *Service) ListScores(ctx context.Context, filter model.ScoreFilter) ([]*model.Score, error) {
	return s.storage.ListScores(ctx, filter)
}

// UpdateScore applies partial edits to a session and re-derives avg and
// totalWood whenever the woods change, so the stored record can never carry
// stale derived fields.
func (s *Service) UpdateScore(ctx context.Context, id int, patch *model.Score) (*model.Score, error) {
	score, err := s.storage.GetScore(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Scores != nil {
		if len(patch.Scores) != model.WoodsPerSession {
			return nil, ErrInvalidScores
		}
		score.Scores = patch.Scores
		deriveScore(score)
	}
	if patch.Date != "" {
		score.Date = patch.Date
	}
	if patch.LocationID != 0 {
		score.LocationID = patch.LocationID
	}
	if patch.Level != "" {
		score.Level = patch.Level
	}
	if patch.Opponent != "" {
		score.Opponent = patch.Opponent
	}
	if patch.Spares != 0 {
		score.Spares = patch.Spares
	}
	if patch.Strikes != 0 {
		score.Strikes = patch.Strikes
	}
	if patch.SubstituteFor != "" {
		score.SubstituteFor = patch.SubstituteFor
	}
	if err := s.storage.UpdateScore(ctx, score); err != nil {
		return nil, err
	}
	return score, nil
}

func deriveScore(score *model.Score) {
	total := 0
	for _, wood := range score.Scores {
		total += wood
	}
	score.TotalWood = total
	score.Avg = int(math.Round(float64(total) / model.WoodsPerSession))
}
