// Package seed populates an empty store with a demo club so a fresh install
// is immediately usable.
package seed

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tenpinclub/rollbook/internal/dependencies/clock"
	"github.com/tenpinclub/rollbook/internal/dependencies/random"
	"github.com/tenpinclub/rollbook/internal/model"
	"github.com/tenpinclub/rollbook/internal/services/auth"
	"github.com/tenpinclub/rollbook/internal/storage"
)

// Demo account credentials. The password is for local development only.
const (
	CoachEmail    = "coach@club.local"
	CoachPassword = "coachpass"
)

// Run seeds demo data when no demo coach exists yet. Running against an
// already-seeded store is a no-op. An existing coach missing a join code gets
// one assigned.
func Run(ctx context.Context, store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) error {
	coach, err := store.GetUserByEmail(ctx, CoachEmail)
	if err == nil {
		if coach.CoachCode == "" {
			coach.CoachCode = auth.NewCoachCode(rnd)
			if err := store.UpdateUser(ctx, coach); err != nil {
				return err
			}
			logger.Info("assigned join code to existing coach", "coach_code", coach.CoachCode)
		}
		return nil
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(CoachPassword)
	if err != nil {
		return err
	}

	email := CoachEmail
	coach = &model.User{
		Name:      "Coach Admin",
		Email:     &email,
		Role:      model.RoleCoach,
		Password:  hashed,
		CoachCode: auth.NewCoachCode(rnd),
		Verified:  true,
		CreatedAt: clk.Now(),
	}
	if err := store.CreateUser(ctx, coach); err != nil {
		return err
	}

	alice := &model.User{Name: "Alice Student", Role: model.RolePlayer, CreatedAt: clk.Now()}
	if err := store.CreateUser(ctx, alice); err != nil {
		return err
	}
	bob := &model.User{Name: "Bob Student", Role: model.RolePlayer, CreatedAt: clk.Now()}
	if err := store.CreateUser(ctx, bob); err != nil {
		return err
	}

	lane := &model.Location{Name: "Lane 1", Address: "123 Bowling St."}
	if err := store.CreateLocation(ctx, lane); err != nil {
		return err
	}

	game := &model.Game{
		Title:      "Weekly Fun",
		LocationID: lane.ID,
		Date:       "2025-11-01",
		Players: []model.GamePlayer{
			{ID: alice.ID, Name: alice.Name, Score: 120},
			{ID: bob.ID, Name: bob.Name, Score: 90},
		},
	}
	if err := store.CreateGame(ctx, game); err != nil {
		return err
	}

	logger.Info("seeded demo club", "coach_email", CoachEmail, "coach_code", coach.CoachCode)
	return nil
}
