package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/openplay/courtqueue/internal/model"
	"github.com/openplay/courtqueue/internal/services/roster"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) addPlayers(names ...string) []model.PlayerID {
	ids := make([]model.PlayerID, len(names))
	for i, name := range names {
		p, err := s.app.SessionController.AddPlayer(name, "", "", "cash")
		s.Require().NoError(err)
		ids[i] = p.ID
		s.app.MockClock.Advance(time.Second)
	}
	return ids
}

// Test: a full open-play morning from arrivals to export
func (s *IntegrationSuite) TestFullSessionFlow() {
	// Step 1: the organizer uploads the pre-registration roster
	uploaded := roster.Parse("Alice Smith\tcash\t555-0100\nBob Jones\tonline\t\n")
	added := s.app.SessionController.ImportRoster(uploaded)
	s.Equal(2, added)

	// Step 2: walk-ins arrive
	s.addPlayers("Cara", "Drew", "Eve", "Finn")

	// Step 3: a court opens and the first four take it
	number, err := s.app.SessionController.AddCourt()
	s.Require().NoError(err)
	s.Equal(1, number)

	courts := s.app.SessionController.Courts()
	s.Require().Len(courts, 1)
	s.Equal(4, courts[0].Occupancy())

	view := s.app.SessionController.QueueView()
	s.Len(view.NextUp, 2) // Eve and Finn wait

	// Step 4: the game finishes; the four recycle to the back and the
	// two waiters plus the first two recyclers take the court
	s.app.MockClock.Advance(30 * time.Minute)
	s.Require().NoError(s.app.SessionController.CompleteGame(1))

	courts = s.app.SessionController.Courts()
	s.Equal(4, courts[0].Occupancy())

	view = s.app.SessionController.QueueView()
	s.Require().Len(view.NextUp, 2)
	s.Equal("Cara", view.NextUp[0].Player.FirstName)
	s.Equal("Drew", view.NextUp[1].Player.FirstName)

	// Step 5: two more walk-ins join the line behind them
	s.addPlayers("Gil", "Hana")
	s.Len(s.app.SessionController.QueueView().NextUp, 4)

	// Step 6: export shows everyone who played
	rows := roster.Rows(s.app.SessionController.Snapshot())
	s.Len(rows, 8)
	for _, row := range rows {
		s.True(row.Played, "%s should have played", row.Name)
	}
}

// Test: session state survives a save/load cycle through storage
func (s *IntegrationSuite) TestSnapshotRoundTripThroughStorage() {
	ids := s.addPlayers("Alice", "Bob", "Cara", "Drew", "Eve")
	_, err := s.app.SessionController.AddCourt()
	s.Require().NoError(err)
	s.Require().NoError(s.app.SessionController.PausePlayer(ids[4]))

	s.Require().NoError(s.app.SessionController.SaveToStorage(s.ctx))

	// A fresh controller picks the session back up from the saved snapshot
	restored := NewTestApp()
	controller := restored.SessionController
	snap, err := s.app.Storage.LoadSnapshot(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(controller.LoadSnapshot(snap))

	s.Len(controller.Players(), 5)
	s.Len(controller.PausedPlayers(), 1)
	courts := controller.Courts()
	s.Require().Len(courts, 1)
	s.Equal(4, courts[0].Occupancy())
}

// Test: terminate clears storage and starts a fresh session
func (s *IntegrationSuite) TestTerminateResetsEverything() {
	s.addPlayers("Alice", "Bob")
	s.Require().NoError(s.app.SessionController.SaveToStorage(s.ctx))

	s.app.MockRandom.QueueString("SESS02")
	s.Require().NoError(s.app.SessionController.Terminate(s.ctx))

	s.Empty(s.app.SessionController.Players())
	s.Equal(model.SessionID("SESS02"), s.app.SessionController.SessionID())

	_, err := s.app.Storage.LoadSnapshot(s.ctx)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

// Test: cooldown guards the clear button against a double click
func (s *IntegrationSuite) TestCompleteGameCooldownBlocksDoubleClear() {
	s.addPlayers("A", "B", "C", "D", "E", "F", "G", "H")
	_, err := s.app.SessionController.AddCourt()
	s.Require().NoError(err)

	s.Require().NoError(s.app.SessionController.CompleteGame(1))
	s.ErrorIs(s.app.SessionController.CompleteGame(1), model.ErrCourtCoolingDown)

	s.app.MockClock.Advance(11 * time.Second)
	s.Require().NoError(s.app.SessionController.CompleteGame(1))
}
