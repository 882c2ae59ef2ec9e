package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/openplay/courtqueue/internal/dependencies/mocks"
	"github.com/openplay/courtqueue/internal/model"
	"github.com/openplay/courtqueue/internal/services/cooldown"
	"github.com/openplay/courtqueue/internal/storage/memory"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	cooldowns  *cooldown.Table
	controller *Controller
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.random.QueueString("SESSA1")
	s.cooldowns = cooldown.New(s.clock, 10*time.Second)
	s.controller = NewController(s.storage, s.clock, s.random, s.cooldowns, discardLogger())
}

// addPlayers adds one player per name, advancing the clock between adds
func (s *ControllerSuite) addPlayers(names ...string) []model.PlayerID {
	ids := make([]model.PlayerID, len(names))
	for i, name := range names {
		p, err := s.controller.AddPlayer(name, "", "", "cash")
		s.Require().NoError(err)
		ids[i] = p.ID
		s.clock.Advance(time.Second)
	}
	return ids
}

func (s *ControllerSuite) queueNames() []string {
	view := s.controller.QueueView()
	var names []string
	for _, e := range view.NextUp {
		names = append(names, e.Player.FirstName)
	}
	for _, e := range view.NextUp2 {
		names = append(names, e.Player.FirstName)
	}
	for _, e := range view.General {
		names = append(names, e.Player.FirstName)
	}
	return names
}

// AddPlayer tests

func (s *ControllerSuite) TestAddPlayerValidation() {
	_, err := s.controller.AddPlayer("  ", "", "", "cash")
	s.ErrorIs(err, model.ErrEmptyName)

	_, err = s.controller.AddPlayer("Alice", "", "", "")
	s.ErrorIs(err, model.ErrInvalidPayment)

	_, err = s.controller.AddPlayer("Alice", "", "", "venmo")
	s.ErrorIs(err, model.ErrInvalidPayment)

	s.Empty(s.controller.Players())
}

func (s *ControllerSuite) TestAddPlayerDisambiguatesDuplicateName() {
	s.addPlayers("Alice")

	p, err := s.controller.AddPlayer("alice", "", "", "online")
	s.Require().NoError(err)
	s.Equal("alice (2)", p.FullName())

	p3, err := s.controller.AddPlayer("Alice", "", "", "online")
	s.Require().NoError(err)
	s.Equal("Alice (3)", p3.FullName())
}

func (s *ControllerSuite) TestAddPlayerSuffixGoesOnLastName() {
	_, err := s.controller.AddPlayer("Alice", "Smith", "", "cash")
	s.Require().NoError(err)

	p, err := s.controller.AddPlayer("Alice", "Smith", "555-0100", "cash")
	s.Require().NoError(err)
	s.Equal("Alice", p.FirstName)
	s.Equal("Smith (2)", p.LastName)
}

// Delete / pause / resume tests

func (s *ControllerSuite) TestDeletePlayerMovesToDeletedLog() {
	ids := s.addPlayers("Alice", "Bob")

	s.Require().NoError(s.controller.DeletePlayer(ids[0]))

	s.Len(s.controller.Players(), 1)
	snap := s.controller.Snapshot()
	s.Len(snap.DeletedPlayers, 1)
	s.Equal("Alice", snap.DeletedPlayers[0].FirstName)
}

func (s *ControllerSuite) TestDeletePlayerOnCourtIsRefused() {
	ids := s.addPlayers("Alice", "Bob", "Cara", "Drew")
	_, err := s.controller.AddCourt()
	s.Require().NoError(err)

	s.ErrorIs(s.controller.DeletePlayer(ids[0]), model.ErrPlayerOnCourt)
	s.Len(s.controller.Players(), 4)
}

func (s *ControllerSuite) TestPausePreservesOtherPositions() {
	s.addPlayers("Alice", "Bob", "Cara")
	ids := s.controller.Players()

	s.Require().NoError(s.controller.PausePlayer(ids[1].ID))

	s.Equal([]string{"Alice", "Cara"}, s.queueNames())
	// Registry order is untouched
	players := s.controller.Players()
	s.Equal("Bob", players[1].FirstName)
}

func (s *ControllerSuite) TestPausePlayerOnCourtIsRefused() {
	ids := s.addPlayers("Alice", "Bob", "Cara", "Drew")
	_, err := s.controller.AddCourt()
	s.Require().NoError(err)

	s.ErrorIs(s.controller.PausePlayer(ids[2]), model.ErrPlayerOnCourt)
}

func (s *ControllerSuite) TestResumeSendsToBackOfLine() {
	ids := s.addPlayers("Alice", "Bob", "Cara")
	s.Require().NoError(s.controller.PausePlayer(ids[0]))

	s.clock.Advance(5 * time.Minute)
	s.Require().NoError(s.controller.ResumePlayer(ids[0]))

	s.Equal([]string{"Bob", "Cara", "Alice"}, s.queueNames())
	players := s.controller.Players()
	resumed := players[len(players)-1]
	s.Equal("Alice", resumed.FirstName)
	s.Equal(s.clock.CurrentTime, resumed.AddedAt)
}

func (s *ControllerSuite) TestResumeUnpausedPlayerIsNoOp() {
	ids := s.addPlayers("Alice", "Bob")

	s.Require().NoError(s.controller.ResumePlayer(ids[0]))

	s.Equal([]string{"Alice", "Bob"}, s.queueNames())
}

// Court tests

func (s *ControllerSuite) TestAddCourtLimit() {
	for i := 0; i < model.MaxCourts; i++ {
		_, err := s.controller.AddCourt()
		s.Require().NoError(err)
	}

	_, err := s.controller.AddCourt()
	s.ErrorIs(err, model.ErrCourtLimit)
	s.Len(s.controller.Courts(), model.MaxCourts)
}

func (s *ControllerSuite) TestAddCourtAssignsFirstFourInArrivalOrder() {
	ids := s.addPlayers("Alice", "Bob", "Cara", "Drew", "Eve", "Finn")

	_, err := s.controller.AddCourt()
	s.Require().NoError(err)

	courts := s.controller.Courts()
	s.Equal([4]model.PlayerID{ids[0], ids[1], ids[2], ids[3]}, courts[0].Slots)
	s.Equal([]string{"Eve", "Finn"}, s.queueNames())
}

func (s *ControllerSuite) TestRemoveFullCourtRecyclesInSlotOrder() {
	ids := s.addPlayers("Alice", "Bob", "Cara", "Drew", "Eve")
	_, err := s.controller.AddCourt()
	s.Require().NoError(err)

	s.Require().NoError(s.controller.RemoveCourt(1))

	s.Empty(s.controller.Courts())
	// The four recycled players append behind Eve in slot order
	s.Equal([]string{"Eve", "Alice", "Bob", "Cara", "Drew"}, s.queueNames())
	_ = ids
}

func (s *ControllerSuite) TestRemoveCourtRenumbersContiguously() {
	s.addPlayers("Alice", "Bob", "Cara", "Drew")
	for i := 0; i < 3; i++ {
		_, err := s.controller.AddCourt()
		s.Require().NoError(err)
	}

	s.Require().NoError(s.controller.RemoveCourt(2))

	courts := s.controller.Courts()
	s.Require().Len(courts, 2)
	s.Equal(1, courts[0].Number)
	s.Equal(2, courts[1].Number)
}

func (s *ControllerSuite) TestRemoveMissingCourt() {
	s.ErrorIs(s.controller.RemoveCourt(3), model.ErrCourtNotFound)
}

// CompleteGame tests

func (s *ControllerSuite) TestCompleteGameRotation() {
	// Eight players, one court: A-D play, E-H wait
	ids := s.addPlayers("A", "B", "C", "D", "E", "F", "G", "H")
	_, err := s.controller.AddCourt()
	s.Require().NoError(err)

	s.Require().NoError(s.controller.CompleteGame(1))

	courts := s.controller.Courts()
	s.Equal([4]model.PlayerID{ids[4], ids[5], ids[6], ids[7]}, courts[0].Slots)
	s.Equal([]string{"A", "B", "C", "D"}, s.queueNames())

	players := s.controller.Players()
	var order []string
	for _, p := range players {
		order = append(order, p.FirstName)
	}
	s.Equal([]string{"E", "F", "G", "H", "A", "B", "C", "D"}, order)
}

func (s *ControllerSuite) TestCompleteGameWithInsufficientReplacements() {
	s.addPlayers("A", "B", "C", "D", "E", "F")
	_, err := s.controller.AddCourt()
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)
	s.Require().NoError(s.controller.CompleteGame(1))

	// Only E and F wait, so the court refills with E, F, A, B
	courts := s.controller.Courts()
	occupants := courts[0].PlayerIDs()
	s.Require().Len(occupants, 4)
	s.Equal([]string{"C", "D"}, s.queueNames())
}

func (s *ControllerSuite) TestCompleteGameRequiresFullCourt() {
	s.addPlayers("A", "B")
	_, err := s.controller.AddCourt()
	s.Require().NoError(err)

	s.ErrorIs(s.controller.CompleteGame(1), model.ErrCourtNotFull)
}

func (s *ControllerSuite) TestCompleteGameCooldownBlocksDoubleClear() {
	s.addPlayers("A", "B", "C", "D", "E", "F", "G", "H")
	_, err := s.controller.AddCourt()
	s.Require().NoError(err)

	s.Require().NoError(s.controller.CompleteGame(1))
	s.ErrorIs(s.controller.CompleteGame(1), model.ErrCourtCoolingDown)

	s.clock.Advance(11 * time.Second)
	s.Require().NoError(s.controller.CompleteGame(1))
}

func (s *ControllerSuite) TestRemoveCourtCancelsCooldown() {
	s.addPlayers("A", "B", "C", "D", "E", "F", "G", "H")
	for i := 0; i < 2; i++ {
		_, err := s.controller.AddCourt()
		s.Require().NoError(err)
	}

	s.Require().NoError(s.controller.CompleteGame(2))
	s.Require().NoError(s.controller.RemoveCourt(1))

	// Former court 2 is now court 1 and keeps its cooldown
	s.ErrorIs(s.controller.CompleteGame(1), model.ErrCourtCoolingDown)
}

// Rotation invariants

func (s *ControllerSuite) TestNoDuplicationAcrossCourtsAndQueue() {
	s.addPlayers("A", "B", "C", "D", "E", "F", "G", "H", "I", "J")
	for i := 0; i < 2; i++ {
		_, err := s.controller.AddCourt()
		s.Require().NoError(err)
	}
	s.Require().NoError(s.controller.CompleteGame(1))
	s.clock.Advance(time.Minute)
	s.Require().NoError(s.controller.CompleteGame(2))

	seen := map[model.PlayerID]int{}
	for _, c := range s.controller.Courts() {
		s.Contains([]int{0, 4}, c.Occupancy())
		for _, id := range c.PlayerIDs() {
			seen[id]++
		}
	}
	view := s.controller.QueueView()
	for _, e := range view.NextUp {
		seen[e.Player.ID]++
	}
	for _, e := range view.NextUp2 {
		seen[e.Player.ID]++
	}
	for _, e := range view.General {
		seen[e.Player.ID]++
	}

	s.Len(seen, 10)
	for id, n := range seen {
		s.Equalf(1, n, "player %s appears %d times", id, n)
	}
}

// Reorder tests

func (s *ControllerSuite) TestReorderCourtMovesAndRenumbers() {
	s.addPlayers("A", "B", "C", "D")
	for i := 0; i < 3; i++ {
		_, err := s.controller.AddCourt()
		s.Require().NoError(err)
	}
	occupiedSlots := s.controller.Courts()[0].Slots

	s.Require().NoError(s.controller.ReorderCourt(0, 2))

	courts := s.controller.Courts()
	s.Equal([]int{1, 2, 3}, []int{courts[0].Number, courts[1].Number, courts[2].Number})
	s.Equal(occupiedSlots, courts[2].Slots)
}

func (s *ControllerSuite) TestReorderCourtSameIndexIsNoOp() {
	_, err := s.controller.AddCourt()
	s.Require().NoError(err)
	s.NoError(s.controller.ReorderCourt(0, 0))
}

func (s *ControllerSuite) TestReorderCourtOutOfRange() {
	s.ErrorIs(s.controller.ReorderCourt(0, 5), model.ErrCourtNotFound)
}

// Snapshot tests

func (s *ControllerSuite) TestSnapshotRoundTrip() {
	ids := s.addPlayers("Alice", "Bob", "Cara", "Drew", "Eve")
	_, err := s.controller.AddCourt()
	s.Require().NoError(err)
	s.Require().NoError(s.controller.PausePlayer(ids[4]))

	snap := s.controller.Snapshot()

	s.random.QueueString("SESSB2")
	restored := NewController(memory.New(), s.clock, s.random, cooldown.New(s.clock, 0), discardLogger())
	s.Require().NoError(restored.LoadSnapshot(snap))

	s.Equal([4]model.PlayerID{ids[0], ids[1], ids[2], ids[3]}, restored.Courts()[0].Slots)
	s.Len(restored.PausedPlayers(), 1)
	s.Equal("Eve", restored.PausedPlayers()[0].FirstName)
}

func (s *ControllerSuite) TestLoadEmptySnapshotRejected() {
	s.ErrorIs(s.controller.LoadSnapshot(&model.Snapshot{}), model.ErrEmptySnapshot)
	s.ErrorIs(s.controller.LoadSnapshot(nil), model.ErrEmptySnapshot)
}

func (s *ControllerSuite) TestRestoreFromStorageToleratesMissingState() {
	s.NoError(s.controller.RestoreFromStorage(context.Background()))
	s.Empty(s.controller.Players())
}

func (s *ControllerSuite) TestSaveAndRestoreThroughStorage() {
	s.addPlayers("Alice", "Bob")
	s.Require().NoError(s.controller.SaveToStorage(context.Background()))

	s.random.QueueString("SESSB2")
	restored := NewController(s.storage, s.clock, s.random, cooldown.New(s.clock, 0), discardLogger())
	s.Require().NoError(restored.RestoreFromStorage(context.Background()))

	s.Len(restored.Players(), 2)
}

func (s *ControllerSuite) TestTerminateStartsFreshSession() {
	s.addPlayers("Alice", "Bob")
	s.Require().NoError(s.controller.SaveToStorage(context.Background()))

	s.random.QueueString("SESSC3")
	s.Require().NoError(s.controller.Terminate(context.Background()))

	s.Empty(s.controller.Players())
	s.Equal(model.SessionID("SESSC3"), s.controller.SessionID())
	_, err := s.storage.LoadSnapshot(context.Background())
	s.ErrorIs(err, model.ErrSessionNotFound)
}

// Listener tests

func (s *ControllerSuite) TestListenerSeesSettledState() {
	var events []model.EventType
	s.controller.AddListener(func(e model.Event) {
		events = append(events, e.Type)
	})

	s.addPlayers("Alice")
	_, err := s.controller.AddCourt()
	s.Require().NoError(err)

	s.Equal([]model.EventType{model.EventPlayerAdded, model.EventCourtAdded}, events)
}

// ImportRoster tests

func (s *ControllerSuite) TestImportRosterAddsNewPlayersOnly() {
	s.addPlayers("Alice")

	added := s.controller.ImportRoster([]model.Player{
		{FirstName: "Alice", Payment: model.PaymentOnline},
		{FirstName: "Bob", Payment: model.PaymentCash},
	})

	s.Equal(1, added)
	s.Equal([]string{"Alice", "Bob"}, s.queueNames())
	s.Len(s.controller.Snapshot().UploadedPlayers, 2)
}
