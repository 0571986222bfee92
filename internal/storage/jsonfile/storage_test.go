package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tenpinclub/rollbook/internal/model"
)

type StorageSuite struct {
	suite.Suite
	path    string
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "club.json")
	store, err := New(s.path)
	s.Require().NoError(err)
	s.storage = store
	s.ctx = context.Background()
}

// User tests

func (s *StorageSuite) TestCreateAssignsSequentialIDs() {
	alice := &model.User{Name: "Alice", Role: model.RolePlayer}
	bob := &model.User{Name: "Bob", Role: model.RolePlayer}

	s.Require().NoError(s.storage.CreateUser(s.ctx, alice))
	s.Require().NoError(s.storage.CreateUser(s.ctx, bob))

	s.Equal(1, alice.ID)
	s.Equal(2, bob.ID)
}

func (s *StorageSuite) TestCreateAssignsMaxPlusOneAfterDelete() {
	alice := &model.User{Name: "Alice", Role: model.RolePlayer}
	bob := &model.User{Name: "Bob", Role: model.RolePlayer}
	s.Require().NoError(s.storage.CreateUser(s.ctx, alice))
	s.Require().NoError(s.storage.CreateUser(s.ctx, bob))

	// Deleting the highest id frees it for reuse; ids are one greater than
	// the current maximum, not monotonic for all time.
	s.Require().NoError(s.storage.DeleteUser(s.ctx, bob.ID))

	carol := &model.User{Name: "Carol", Role: model.RolePlayer}
	s.Require().NoError(s.storage.CreateUser(s.ctx, carol))
	s.Equal(2, carol.ID)
}

func (s *StorageSuite) TestWritesLeaveNoTempFile() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "Alice", Role: model.RolePlayer}))

	// The rename that commits each write must consume its temp file.
	entries, err := os.ReadDir(filepath.Dir(s.path))
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(filepath.Base(s.path), entries[0].Name())
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, 42)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByNameIsCaseInsensitiveExact() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "Alice", Role: model.RolePlayer}))

	found, err := s.storage.GetUserByName(s.ctx, "aLiCe")
	s.Require().NoError(err)
	s.Equal("Alice", found.Name)

	// Exact match only, no substring.
	_, err = s.storage.GetUserByName(s.ctx, "Ali")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetCoachByCodeIgnoresNonCoaches() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{
		Name: "Pretender", Role: model.RolePlayer, CoachCode: "AB12CD",
	}))
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{
		Name: "Coach X", Role: model.RoleCoach, CoachCode: "EF34GH",
	}))

	_, err := s.storage.GetCoachByCode(s.ctx, "AB12CD")
	s.ErrorIs(err, model.ErrCoachNotFound)

	coach, err := s.storage.GetCoachByCode(s.ctx, "EF34GH")
	s.Require().NoError(err)
	s.Equal("Coach X", coach.Name)
}

func (s *StorageSuite) TestListPlayersFilters() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "Alice Student", Role: model.RolePlayer, Team: "Strikers"}))
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "Bob Student", Role: model.RolePlayer, Team: "Spares"}))
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "Coach X", Role: model.RoleCoach}))

	all, err := s.storage.ListPlayers(s.ctx, model.PlayerFilter{})
	s.Require().NoError(err)
	s.Len(all, 2) // coach excluded

	byTeam, err := s.storage.ListPlayers(s.ctx, model.PlayerFilter{Team: "Strikers"})
	s.Require().NoError(err)
	s.Require().Len(byTeam, 1)
	s.Equal("Alice Student", byTeam[0].Name)

	byName, err := s.storage.ListPlayers(s.ctx, model.PlayerFilter{Name: "bob"})
	s.Require().NoError(err)
	s.Require().Len(byName, 1)
	s.Equal("Bob Student", byName[0].Name)
}

func (s *StorageSuite) TestListTeamsDistinctSorted() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "A", Role: model.RolePlayer, Team: "Strikers"}))
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "B", Role: model.RolePlayer, Team: "Spares"}))
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "C", Role: model.RolePlayer, Team: "Strikers"}))
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{Name: "D", Role: model.RolePlayer}))

	teams, err := s.storage.ListTeams(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Spares", "Strikers"}, teams)
}

func (s *StorageSuite) TestUpdateUserNotFound() {
	err := s.storage.UpdateUser(s.ctx, &model.User{ID: 42, Name: "Ghost"})
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Durability

func (s *StorageSuite) TestDataSurvivesReopen() {
	email := "x@club.local"
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{
		Name: "Coach X", Email: &email, Role: model.RoleCoach,
		Password: "$2a$10$digest", CoachCode: "AB12CD",
	}))
	s.Require().NoError(s.storage.CreateScore(s.ctx, &model.Score{
		PlayerID: 1, Scores: []int{120, 150, 130}, Avg: 133, TotalWood: 400,
	}))

	reopened, err := New(s.path)
	s.Require().NoError(err)

	coach, err := reopened.GetUserByEmail(s.ctx, "x@club.local")
	s.Require().NoError(err)
	s.Equal("AB12CD", coach.CoachCode)
	s.Equal("$2a$10$digest", coach.Password)

	score, err := reopened.GetScore(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal([]int{120, 150, 130}, score.Scores)
	s.Equal(400, score.TotalWood)
}

// Game and score tests

func (s *StorageSuite) TestListGamesMostRecentFirst() {
	s.Require().NoError(s.storage.CreateGame(s.ctx, &model.Game{Title: "Old", Date: "2024-01-01"}))
	s.Require().NoError(s.storage.CreateGame(s.ctx, &model.Game{Title: "New", Date: "2024-02-01"}))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal("New", games[0].Title)
}

func (s *StorageSuite) TestListScoresFilterByLocation() {
	s.Require().NoError(s.storage.CreateScore(s.ctx, &model.Score{PlayerID: 1, LocationID: 1, Scores: []int{1, 2, 3}}))
	s.Require().NoError(s.storage.CreateScore(s.ctx, &model.Score{PlayerID: 1, LocationID: 2, Scores: []int{4, 5, 6}}))

	scores, err := s.storage.ListScores(s.ctx, model.ScoreFilter{LocationID: 2})
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Equal(2, scores[0].LocationID)
}

func (s *StorageSuite) TestUpdateScoreNotFound() {
	err := s.storage.UpdateScore(s.ctx, &model.Score{ID: 42})
	s.ErrorIs(err, model.ErrScoreNotFound)
}
