// Package gormdb implements storage over a SQL database via GORM. Two
// constructors select the engine: NewPostgres for the hosted relational
// backend and NewSQLite for the embedded one. The query surface is identical
// across both, so the implementation is shared.
package gormdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tenpinclub/rollbook/internal/model"
	"github.com/tenpinclub/rollbook/internal/storage"
)

// Storage is a SQL-backed implementation of the storage interface.
type Storage struct {
	db *gorm.DB
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func newStorage(db *gorm.DB) (*Storage, error) {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Location{},
		&model.Game{},
		&model.Score{},
	); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if err != nil && isDuplicateEmail(err) {
		return model.ErrEmailTaken
	}
	return err
}

// isDuplicateEmail reports whether err is the unique-index violation on
// users.email — the schema's only unique constraint. Postgres arrives here
// as GORM's translated ErrDuplicatedKey; the pure-Go sqlite driver bypasses
// GORM's translator, so fall back to the constraint message.
func isDuplicateEmail(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") && strings.Contains(msg, "email")
}

func (s *Storage) GetUser(ctx context.Context, id int) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, userErr(err)
	}
	return &user, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, userErr(err)
	}
	return &user, nil
}

func (s *Storage) GetUserByName(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&user).Error
	if err != nil {
		return nil, userErr(err)
	}
	return &user, nil
}

func (s *Storage) GetCoachByCode(ctx context.Context, code string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).
		Where("coach_code = ? AND role = ?", code, model.RoleCoach).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCoachNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByVerifyToken(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).
		Where("verify_token = ? AND verify_token <> ''", token).
		First(&user).Error
	if err != nil {
		return nil, userErr(err)
	}
	return &user, nil
}

func (s *Storage) ListPlayers(ctx context.Context, filter model.PlayerFilter) ([]*model.User, error) {
	q := s.db.WithContext(ctx).Where("role = ?", model.RolePlayer)
	if filter.Team != "" {
		q = q.Where("team = ?", filter.Team)
	}
	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	players := []*model.User{}
	if err := q.Order("id").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (s *Storage) ListTeams(ctx context.Context) ([]string, error) {
	teams := []string{}
	err := s.db.WithContext(ctx).
		Model(&model.User{}).
		Distinct("team").
		Where("team <> ''").
		Order("team").
		Pluck("team", &teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *Storage) UpdateUser(ctx context.Context, user *model.User) error {
	// Save would insert a fresh row when the id is absent; an explicit
	// UPDATE keeps the not-found contract intact.
	res := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", user.ID).
		Select("*").
		Updates(user)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (s *Storage) DeleteUser(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error
}

func (s *Storage) DeleteUserByName(ctx context.Context, name string) error {
	return s.db.WithContext(ctx).Delete(&model.User{}, "name = ?", name).Error
}

// Location operations

func (s *Storage) CreateLocation(ctx context.Context, loc *model.Location) error {
	return s.db.WithContext(ctx).Create(loc).Error
}

func (s *Storage) ListLocations(ctx context.Context) ([]*model.Location, error) {
	locs := []*model.Location{}
	if err := s.db.WithContext(ctx).Order("id").Find(&locs).Error; err != nil {
		return nil, err
	}
	return locs, nil
}

func (s *Storage) DeleteLocation(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Delete(&model.Location{}, "id = ?", id).Error
}

// Game operations

func (s *Storage) CreateGame(ctx context.Context, game *model.Game) error {
	return s.db.WithContext(ctx).Create(game).Error
}

func (s *Storage) GetGame(ctx context.Context, id int) (*model.Game, error) {
	var game model.Game
	err := s.db.WithContext(ctx).First(&game, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	games := []*model.Game{}
	if err := s.db.WithContext(ctx).Order("date DESC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (s *Storage) UpdateGame(ctx context.Context, game *model.Game) error {
	res := s.db.WithContext(ctx).
		Model(&model.Game{}).
		Where("id = ?", game.ID).
		Select("*").
		Updates(game)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrGameNotFound
	}
	return nil
}

func (s *Storage) DeleteGame(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Delete(&model.Game{}, "id = ?", id).Error
}

// Score operations

func (s *Storage) CreateScore(ctx context.Context, score *model.Score) error {
	return s.db.WithContext(ctx).Create(score).Error
}

func (s *Storage) GetScore(ctx context.Context, id int) (*model.Score, error) {
	var score model.Score
	err := s.db.WithContext(ctx).First(&score, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrScoreNotFound
		}
		return nil, err
	}
	return &score, nil
}

func (s *Storage) ListScores(ctx context.Context, filter model.ScoreFilter) ([]*model.Score, error) {
	q := s.db.WithContext(ctx)
	if filter.PlayerID != 0 {
		q = q.Where("player_id = ?", filter.PlayerID)
	}
	if filter.LocationID != 0 {
		q = q.Where("location_id = ?", filter.LocationID)
	}
	scores := []*model.Score{}
	if err := q.Order("date DESC").Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

func (s *Storage) UpdateScore(ctx context.Context, score *model.Score) error {
	res := s.db.WithContext(ctx).
		Model(&model.Score{}).
		Where("id = ?", score.ID).
		Select("*").
		Updates(score)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrScoreNotFound
	}
	return nil
}

func userErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrUserNotFound
	}
	return err
}
