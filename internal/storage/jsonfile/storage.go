// Package jsonfile implements storage as a single flat JSON document on disk.
//
// Every operation reloads the whole document and every mutation rewrites it
// in full before returning, so each request observes the latest committed
// state. Writes go through a temp-file rename, so a crash leaves the previous
// document rather than a torn one. There is no locking across processes:
// concurrent writers race last-write-wins, an accepted limitation of this
// backend — deployments that need better guarantees should run the
// relational backend instead.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tenpinclub/rollbook/internal/model"
	"github.com/tenpinclub/rollbook/internal/storage"
)

// document is the on-disk shape of the whole store.
type document struct {
	Users     []*model.User     `json:"users"`
	Locations []*model.Location `json:"locations"`
	Games     []*model.Game     `json:"games"`
	Scores    []*model.Score    `json:"scores"`
}

// Storage is a flat-file implementation of the storage interface. It owns
// the file exclusively for the process lifetime; callers never see the raw
// document.
type Storage struct {
	mu   sync.Mutex
	path string
}

// New creates a jsonfile storage backed by the file at path, creating the
// file (and parent directories) with an empty document if absent.
func New(path string) (*Storage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensuring data dir: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		empty := document{
			Users:     []*model.User{},
			Locations: []*model.Location{},
			Games:     []*model.Game{},
			Scores:    []*model.Score{},
		}
		if err := writeDocument(path, &empty); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return &Storage{path: path}, nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Close is a no-op; the file is reopened on every operation.
func (s *Storage) Close() error {
	return nil
}

func (s *Storage) load() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading store: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding store: %w", err)
	}
	return &doc, nil
}

func (s *Storage) persist(doc *document) error {
	return writeDocument(s.path, doc)
}

func writeDocument(path string, doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	// Write-then-rename so a crash mid-write leaves the previous document
	// intact rather than a truncated file.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("committing store: %w", err)
	}
	return nil
}

// nextUserID returns one greater than the current maximum user id.
func nextUserID(doc *document) int {
	max := 0
	for _, u := range doc.Users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	if user.ID == 0 {
		user.ID = nextUserID(doc)
	}
	doc.Users = append(doc.Users, user)
	return s.persist(doc)
}

func (s *Storage) GetUser(ctx context.Context, id int) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, u := range doc.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, u := range doc.Users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (s *Storage) GetUserByName(ctx context.Context, name string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, u := range doc.Users {
		if strings.EqualFold(u.Name, name) {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (s *Storage) GetCoachByCode(ctx context.Context, code string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, u := range doc.Users {
		if u.Role == model.RoleCoach && u.CoachCode == code {
			return u, nil
		}
	}
	return nil, model.ErrCoachNotFound
}

func (s *Storage) GetUserByVerifyToken(ctx context.Context, token string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, u := range doc.Users {
		if u.VerifyToken != "" && u.VerifyToken == token {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (s *Storage) ListPlayers(ctx context.Context, filter model.PlayerFilter) ([]*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	nameQuery := strings.ToLower(filter.Name)
	players := []*model.User{}
	for _, u := range doc.Users {
		if u.Role != model.RolePlayer {
			continue
		}
		if filter.Team != "" && u.Team != filter.Team {
			continue
		}
		if nameQuery != "" && !strings.Contains(strings.ToLower(u.Name), nameQuery) {
			continue
		}
		players = append(players, u)
	}
	return players, nil
}

func (s *Storage) ListTeams(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	teams := []string{}
	for _, u := range doc.Users {
		if u.Team != "" && !seen[u.Team] {
			seen[u.Team] = true
			teams = append(teams, u.Team)
		}
	}
	sort.Strings(teams)
	return teams, nil
}

func (s *Storage) UpdateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	for i, u := range doc.Users {
		if u.ID == user.ID {
			doc.Users[i] = user
			return s.persist(doc)
		}
	}
	return model.ErrUserNotFound
}

func (s *Storage) DeleteUser(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	kept := doc.Users[:0]
	for _, u := range doc.Users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	doc.Users = kept
	return s.persist(doc)
}

func (s *Storage) DeleteUserByName(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	kept := doc.Users[:0]
	for _, u := range doc.Users {
		if u.Name != name {
			kept = append(kept, u)
		}
	}
	doc.Users = kept
	return s.persist(doc)
}

// Location operations

func (s *Storage) CreateLocation(ctx context.Context, loc *model.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	max := 0
	for _, l := range doc.Locations {
		if l.ID > max {
			max = l.ID
		}
	}
	if loc.ID == 0 {
		loc.ID = max + 1
	}
	doc.Locations = append(doc.Locations, loc)
	return s.persist(doc)
}

func (s *Storage) ListLocations(ctx context.Context) ([]*model.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	locs := append([]*model.Location{}, doc.Locations...)
	sort.Slice(locs, func(i, j int) bool { return locs[i].ID < locs[j].ID })
	return locs, nil
}

func (s *Storage) DeleteLocation(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	kept := doc.Locations[:0]
	for _, l := range doc.Locations {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	doc.Locations = kept
	return s.persist(doc)
}

// Game operations

func (s *Storage) CreateGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	max := 0
	for _, g := range doc.Games {
		if g.ID > max {
			max = g.ID
		}
	}
	if game.ID == 0 {
		game.ID = max + 1
	}
	doc.Games = append(doc.Games, game)
	return s.persist(doc)
}

func (s *Storage) GetGame(ctx context.Context, id int) (*model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, g := range doc.Games {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, model.ErrGameNotFound
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	games := append([]*model.Game{}, doc.Games...)
	sort.Slice(games, func(i, j int) bool { return games[i].Date > games[j].Date })
	return games, nil
}

func (s *Storage) UpdateGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	for i, g := range doc.Games {
		if g.ID == game.ID {
			doc.Games[i] = game
			return s.persist(doc)
		}
	}
	return model.ErrGameNotFound
}

func (s *Storage) DeleteGame(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	kept := doc.Games[:0]
	for _, g := range doc.Games {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	doc.Games = kept
	return s.persist(doc)
}

// Score operations

func (s *Storage) CreateScore(ctx context.Context, score *model.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	max := 0
	for _, sc := range doc.Scores {
		if sc.ID > max {
			max = sc.ID
		}
	}
	if score.ID == 0 {
		score.ID = max + 1
	}
	doc.Scores = append(doc.Scores, score)
	return s.persist(doc)
}

func (s *Storage) GetScore(ctx context.Context, id int) (*model.Score, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, sc := range doc.Scores {
		if sc.ID == id {
			return sc, nil
		}
	}
	return nil, model.ErrScoreNotFound
}

func (s *Storage) ListScores(ctx context.Context, filter model.ScoreFilter) ([]*model.Score, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	scores := []*model.Score{}
	for _, sc := range doc.Scores {
		if filter.PlayerID != 0 && sc.PlayerID != filter.PlayerID {
			continue
		}
		if filter.LocationID != 0 && sc.LocationID != filter.LocationID {
			continue
		}
		scores = append(scores, sc)
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].Date > scores[j].Date })
	return scores, nil
}

func (s *Storage) UpdateScore(ctx context.Context, score *model.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	for i, sc := range doc.Scores {
		if sc.ID == score.ID {
			doc.Scores[i] = score
			return s.persist(doc)
		}
	}
	return model.ErrScoreNotFound
}
