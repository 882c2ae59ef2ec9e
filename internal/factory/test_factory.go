package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/openplay/courtqueue/internal/dependencies/mocks"
	"github.com/openplay/courtqueue/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockRandom.QueueString("SESS01")
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, "", 0, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
