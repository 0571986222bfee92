package factory

import (
	"path/filepath"
	"time"

	"github.com/tenpinclub/rollbook/internal/dependencies/mocks"
	"github.com/tenpinclub/rollbook/internal/storage/jsonfile"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App backed by a jsonfile store in dir, with mocked
// clock and randomness.
func NewTestApp(dir string) (*TestApp, error) {
	store, err := jsonfile.New(filepath.Join(dir, "club.json"))
	if err != nil {
		return nil, err
	}

	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, "test-secret", 0)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}, nil
}
