package factory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenpinclub/rollbook/internal/config"
	"github.com/tenpinclub/rollbook/internal/factory"
)

func TestNewRequiresBackendConfig(t *testing.T) {
	_, err := factory.New(factory.Config{
		StorageBackend: config.BackendPostgres,
		JWTSecret:      "s",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DatabaseURL")

	_, err = factory.New(factory.Config{
		StorageBackend: "carrier-pigeon",
		JWTSecret:      "s",
	})
	require.Error(t, err)
}

func TestNewJSONFileBackend(t *testing.T) {
	app, err := factory.New(factory.Config{
		StorageBackend: config.BackendJSONFile,
		JSONFilePath:   t.TempDir() + "/club.json",
		JWTSecret:      "s",
	})
	require.NoError(t, err)
	defer app.Close()

	assert.NotNil(t, app.Storage)
	assert.NotNil(t, app.AuthService)
	assert.NotNil(t, app.RosterService)
}

func TestTestAppUsesMocks(t *testing.T) {
	app, err := factory.NewTestApp(t.TempDir())
	require.NoError(t, err)
	defer app.Close()

	ctx := context.Background()

	// Coach code comes from the queued mock, timestamps from the mock clock.
	app.MockRandom.QueueString("AB12CD")
	session, err := app.AuthService.SignUpCoach(ctx, "Coach X", "x@club.local", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "AB12CD", session.User.CoachCode)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), session.User.CreatedAt)

	// Tokens verify against the same mocked clock.
	claims, err := app.AuthService.Tokens().Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, claims.ID)
}
