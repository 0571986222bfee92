package gormdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tenpinclub/rollbook/internal/model"
)

// The SQLite backend exercises the shared GORM implementation; the postgres
// backend differs only in the driver it opens.
type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	store, err := NewSQLite(filepath.Join(s.T().TempDir(), "club.sqlite3"))
	s.Require().NoError(err)
	s.storage = store
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	s.Require().NoError(s.storage.Close())
}

func (s *StorageSuite) TestCreateAndGetUser() {
	email := "x@club.local"
	user := &model.User{Name: "Coach X", Email: &email, Role: model.RoleCoach, CoachCode: "AB12CD"}

	s.Require().NoError(s.storage.CreateUser(s.ctx, user))
	s.NotZero(user.ID)

	retrieved, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("Coach X", retrieved.Name)
	s.Equal("AB12CD", retrieved.CoachCode)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, 42)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByNameCaseInsensitive() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "Alice", Role: model.RolePlayer}))

	found, err := s.storage.GetUserByName(s.ctx, "ALICE")
	s.Require().NoError(err)
	s.Equal("Alice", found.Name)

	_, err = s.storage.GetUserByName(s.ctx, "Ali")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetCoachByCodeRequiresCoachRole() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{
		Name: "Pretender", Role: model.RolePlayer, CoachCode: "AB12CD",
	}))

	_, err := s.storage.GetCoachByCode(s.ctx, "AB12CD")
	s.ErrorIs(err, model.ErrCoachNotFound)
}

func (s *StorageSuite) TestListPlayersExcludesOtherRoles() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "Alice", Role: model.RolePlayer, Team: "Strikers"}))
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "Coach X", Role: model.RoleCoach}))

	players, err := s.storage.ListPlayers(s.ctx, model.PlayerFilter{})
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal("Alice", players[0].Name)
}

func (s *StorageSuite) TestListPlayersNameSubstring() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "Alice Student", Role: model.RolePlayer}))
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "Bob Student", Role: model.RolePlayer}))

	players, err := s.storage.ListPlayers(s.ctx, model.PlayerFilter{Name: "ali"})
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal("Alice Student", players[0].Name)
}

func (s *StorageSuite) TestListTeamsDistinct() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "A", Role: model.RolePlayer, Team: "Strikers"}))
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "B", Role: model.RolePlayer, Team: "Strikers"}))
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "C", Role: model.RolePlayer, Team: "Spares"}))

	teams, err := s.storage.ListTeams(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"Strikers", "Spares"}, teams)
}

func (s *StorageSuite) TestCreateUserDuplicateEmail() {
	email := "x@club.local"
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "Coach X", Email: &email, Role: model.RoleCoach}))

	err := s.storage.CreateUser(s.ctx, &model.User{Name: "Coach Y", Email: &email, Role: model.RoleCoach})
	s.ErrorIs(err, model.ErrEmailTaken)
}

func (s *StorageSuite) TestUpdateUserNotFound() {
	err := s.storage.UpdateUser(s.ctx, &model.User{ID: 42, Name: "Ghost", Role: model.RolePlayer})
	s.ErrorIs(err, model.ErrUserNotFound)

	// The failed update must not have inserted the record.
	_, err = s.storage.GetUser(s.ctx, 42)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestUpdateUser() {
	user := &model.User{Name: "Alice", Role: model.RolePlayer, Team: "Strikers"}
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))

	user.Team = ""
	user.Role = model.RoleCoach
	s.Require().NoError(s.storage.UpdateUser(s.ctx, user))

	retrieved, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(model.RoleCoach, retrieved.Role)
	// Zero values are written through: Update replaces the full record.
	s.Empty(retrieved.Team)
}

func (s *StorageSuite) TestUpdateGameNotFound() {
	err := s.storage.UpdateGame(s.ctx, &model.Game{ID: 42, Title: "Ghost"})
	s.ErrorIs(err, model.ErrGameNotFound)

	_, err = s.storage.GetGame(s.ctx, 42)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestUpdateScoreNotFound() {
	err := s.storage.UpdateScore(s.ctx, &model.Score{ID: 42, Scores: []int{1, 2, 3}})
	s.ErrorIs(err, model.ErrScoreNotFound)

	_, err = s.storage.GetScore(s.ctx, 42)
	s.ErrorIs(err, model.ErrScoreNotFound)
}

func (s *StorageSuite) TestScoreRoundTripWithSerializedWoods() {
	score := &model.Score{
		PlayerID:  1,
		Date:      "2024-01-05",
		Scores:    []int{120, 150, 130},
		Avg:       133,
		TotalWood: 400,
	}
	s.Require().NoError(s.storage.CreateScore(s.ctx, score))

	retrieved, err := s.storage.GetScore(s.ctx, score.ID)
	s.Require().NoError(err)
	s.Equal([]int{120, 150, 130}, retrieved.Scores)
	s.Equal(133, retrieved.Avg)
	s.Equal(400, retrieved.TotalWood)
}

func (s *StorageSuite) TestGamePlayersSnapshotRoundTrip() {
	game := &model.Game{
		Title: "Weekly Fun",
		Date:  "2024-02-01",
		Players: []model.GamePlayer{
			{ID: 2, Name: "Alice Student", Score: 120},
			{ID: 3, Name: "Bob Student", Score: 90},
		},
	}
	s.Require().NoError(s.storage.CreateGame(s.ctx, game))

	retrieved, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Require().Len(retrieved.Players, 2)
	s.Equal("Alice Student", retrieved.Players[0].Name)
	s.Equal(120, retrieved.Players[0].Score)
}

func (s *StorageSuite) TestListGamesMostRecentFirst() {
	s.Require().NoError(s.storage.CreateGame(s.ctx, &model.Game{Title: "Old", Date: "2024-01-01"}))
	s.Require().NoError(s.storage.CreateGame(s.ctx, &model.Game{Title: "New", Date: "2024-02-01"}))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal("New", games[0].Title)
}

func (s *StorageSuite) TestListScoresFilters() {
	s.Require().NoError(s.storage.CreateScore(s.ctx, &model.Score{PlayerID: 1, LocationID: 1, Scores: []int{1, 2, 3}}))
	s.Require().NoError(s.storage.CreateScore(s.ctx, &model.Score{PlayerID: 2, LocationID: 2, Scores: []int{4, 5, 6}}))

	scores, err := s.storage.ListScores(s.ctx, model.ScoreFilter{PlayerID: 2})
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Equal(2, scores[0].PlayerID)

	scores, err = s.storage.ListScores(s.ctx, model.ScoreFilter{LocationID: 1})
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Equal(1, scores[0].LocationID)
}

func (s *StorageSuite) TestDeleteLocation() {
	loc := &model.Location{Name: "Lane 1"}
	s.Require().NoError(s.storage.CreateLocation(s.ctx, loc))

	s.Require().NoError(s.storage.DeleteLocation(s.ctx, loc.ID))

	locations, err := s.storage.ListLocations(s.ctx)
	s.Require().NoError(err)
	s.Empty(locations)
}
