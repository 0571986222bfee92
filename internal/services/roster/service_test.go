package roster

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tenpinclub/rollbook/internal/dependencies/mocks"
	"github.com/tenpinclub/rollbook/internal/model"
	"github.com/tenpinclub/rollbook/internal/storage/jsonfile"
)

type ServiceSuite struct {
	suite.Suite
	storage *jsonfile.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	store, err := jsonfile.New(filepath.Join(s.T().TempDir(), "club.json"))
	s.Require().NoError(err)

	s.storage = store
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock)
	s.ctx = context.Background()
}

func (s *ServiceSuite) createPlayer(name string) *model.User {
	user := &model.User{Name: name, Role: model.RolePlayer}
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))
	return user
}

// Score tests

func (s *ServiceSuite) TestCreateScoreDerivesFields() {
	player := s.createPlayer("Alice")

	score := &model.Score{
		PlayerID: player.ID,
		Date:     "2024-01-05",
		Scores:   []int{120, 150, 130},
	}
	err := s.service.CreateScore(s.ctx, score)
	s.Require().NoError(err)

	s.Equal(400, score.TotalWood)
	s.Equal(133, score.Avg)

	stored, err := s.storage.GetScore(s.ctx, score.ID)
	s.Require().NoError(err)
	s.Equal(400, stored.TotalWood)
	s.Equal(133, stored.Avg)
}

func (s *ServiceSuite) TestCreateScoreIgnoresCallerSuppliedDerivedFields() {
	player := s.createPlayer("Alice")

	score := &model.Score{
		PlayerID:  player.ID,
		Scores:    []int{100, 100, 100},
		Avg:       999,
		TotalWood: 999,
	}
	s.Require().NoError(s.service.CreateScore(s.ctx, score))

	s.Equal(300, score.TotalWood)
	s.Equal(100, score.Avg)
}

func (s *ServiceSuite) TestCreateScoreRejectsWrongWoodCount() {
	player := s.createPlayer("Alice")

	err := s.service.CreateScore(s.ctx, &model.Score{
		PlayerID: player.ID,
		Scores:   []int{120, 150},
	})
	s.ErrorIs(err, ErrInvalidScores)

	err = s.service.CreateScore(s.ctx, &model.Score{
		PlayerID: player.ID,
		Scores:   []int{120, 150, 130, 140},
	})
	s.ErrorIs(err, ErrInvalidScores)
}

func (s *ServiceSuite) TestCreateScoreRequiresExistingPlayer() {
	err := s.service.CreateScore(s.ctx, &model.Score{
		PlayerID: 42,
		Scores:   []int{120, 150, 130},
	})
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *ServiceSuite) TestUpdateScoreRecomputesDerivedFields() {
	player := s.createPlayer("Alice")
	score := &model.Score{PlayerID: player.ID, Scores: []int{120, 150, 130}}
	s.Require().NoError(s.service.CreateScore(s.ctx, score))

	updated, err := s.service.UpdateScore(s.ctx, score.ID, &model.Score{
		Scores: []int{100, 110, 120},
	})
	s.Require().NoError(err)

	s.Equal(330, updated.TotalWood)
	s.Equal(110, updated.Avg)
}

func (s *ServiceSuite) TestUpdateScoreKeepsDerivedFieldsWhenWoodsUntouched() {
	player := s.createPlayer("Alice")
	score := &model.Score{PlayerID: player.ID, Scores: []int{120, 150, 130}}
	s.Require().NoError(s.service.CreateScore(s.ctx, score))

	updated, err := s.service.UpdateScore(s.ctx, score.ID, &model.Score{
		Opponent: "Riverside",
	})
	s.Require().NoError(err)

	s.Equal("Riverside", updated.Opponent)
	s.Equal(400, updated.TotalWood)
	s.Equal(133, updated.Avg)
}

func (s *ServiceSuite) TestUpdateScorePreservesOmittedFields() {
	player := s.createPlayer("Alice")
	score := &model.Score{PlayerID: player.ID, Scores: []int{120, 150, 130}, Spares: 4, Strikes: 2}
	s.Require().NoError(s.service.CreateScore(s.ctx, score))

	updated, err := s.service.UpdateScore(s.ctx, score.ID, &model.Score{
		Scores: []int{100, 110, 120},
	})
	s.Require().NoError(err)

	// Omitted fields keep their stored values: the patch cannot zero them.
	s.Equal(4, updated.Spares)
	s.Equal(2, updated.Strikes)
}

func (s *ServiceSuite) TestUpdateScoreNotFound() {
	_, err := s.service.UpdateScore(s.ctx, 99, &model.Score{Scores: []int{1, 2, 3}})
	s.ErrorIs(err, model.ErrScoreNotFound)
}

func (s *ServiceSuite) TestListScoresFiltersByPlayer() {
	alice := s.createPlayer("Alice")
	bob := s.createPlayer("Bob")

	s.Require().NoError(s.service.CreateScore(s.ctx, &model.Score{PlayerID: alice.ID, Scores: []int{1, 2, 3}}))
	s.Require().NoError(s.service.CreateScore(s.ctx, &model.Score{PlayerID: bob.ID, Scores: []int{4, 5, 6}}))

	scores, err := s.service.ListScores(s.ctx, model.ScoreFilter{PlayerID: alice.ID})
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Equal(alice.ID, scores[0].PlayerID)
}

// User tests

func (s *ServiceSuite) TestCreateUserHashesPassword() {
	email := "dana@club.local"
	user := &model.User{Name: "Dana", Email: &email, Role: model.RolePlayer}

	err := s.service.CreateUser(s.ctx, user, "hunter2")
	s.Require().NoError(err)

	stored, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.NotEmpty(stored.Password)
	s.NotEqual("hunter2", stored.Password)
}

func (s *ServiceSuite) TestCreateUserDefaultsToPlayerRole() {
	user := &model.User{Name: "Dana"}
	s.Require().NoError(s.service.CreateUser(s.ctx, user, ""))
	s.Equal(model.RolePlayer, user.Role)
}

func (s *ServiceSuite) TestCreateUserRejectsDuplicateEmail() {
	email := "dana@club.local"
	s.Require().NoError(s.service.CreateUser(s.ctx, &model.User{Name: "Dana", Email: &email}, ""))

	err := s.service.CreateUser(s.ctx, &model.User{Name: "Other", Email: &email}, "")
	s.ErrorIs(err, model.ErrEmailTaken)
}

func (s *ServiceSuite) TestUpdateUserAppliesPartialPatch() {
	user := s.createPlayer("Alice")

	updated, err := s.service.UpdateUser(s.ctx, user.ID, &model.User{Team: "Strikers"}, "")
	s.Require().NoError(err)

	s.Equal("Alice", updated.Name)
	s.Equal("Strikers", updated.Team)
}

func (s *ServiceSuite) TestUpdateUserChangesRole() {
	user := s.createPlayer("Alice")

	updated, err := s.service.UpdateUser(s.ctx, user.ID, &model.User{Role: model.RoleCoach}, "")
	s.Require().NoError(err)
	s.Equal(model.RoleCoach, updated.Role)
}

func (s *ServiceSuite) TestDeletePlayerByName() {
	s.createPlayer("Alice")

	s.Require().NoError(s.service.DeletePlayerByName(s.ctx, "Alice"))

	players, err := s.service.ListPlayers(s.ctx, model.PlayerFilter{})
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *ServiceSuite) TestDeletePlayerByNameMatchesExactly() {
	s.createPlayer("Alice")

	// Unlike lookup, deletion requires the exact stored spelling.
	s.Require().NoError(s.service.DeletePlayerByName(s.ctx, "ALICE"))

	players, err := s.service.ListPlayers(s.ctx, model.PlayerFilter{})
	s.Require().NoError(err)
	s.Len(players, 1)
}

// Location and game tests

func (s *ServiceSuite) TestLocationLifecycle() {
	loc := &model.Location{Name: "Lane 1", Address: "123 Bowling St."}
	s.Require().NoError(s.service.CreateLocation(s.ctx, loc))
	s.NotZero(loc.ID)

	locations, err := s.service.ListLocations(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(locations, 1)

	s.Require().NoError(s.service.DeleteLocation(s.ctx, loc.ID))

	locations, err = s.service.ListLocations(s.ctx)
	s.Require().NoError(err)
	s.Empty(locations)
}

func (s *ServiceSuite) TestGameListOrderedByDateDescending() {
	older := &model.Game{Title: "Old", Date: "2024-01-01"}
	newer := &model.Game{Title: "New", Date: "2024-02-01"}
	s.Require().NoError(s.service.CreateGame(s.ctx, older))
	s.Require().NoError(s.service.CreateGame(s.ctx, newer))

	games, err := s.service.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal("New", games[0].Title)
	s.Equal("Old", games[1].Title)
}

func (s *ServiceSuite) TestCreateGameNormalizesNilPlayers() {
	game := &model.Game{Title: "Weekly Fun"}
	s.Require().NoError(s.service.CreateGame(s.ctx, game))
	s.NotNil(game.Players)
}
