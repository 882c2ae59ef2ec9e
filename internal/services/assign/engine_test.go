package assign

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/openplay/courtqueue/internal/model"
)

type EngineSuite struct {
	suite.Suite
	session *model.Session
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.session = model.NewSession("test", time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
}

func (s *EngineSuite) addPlayers(names ...string) []model.PlayerID {
	ids := make([]model.PlayerID, len(names))
	for i, name := range names {
		p := model.Player{
			ID:        model.PlayerID(fmt.Sprintf("id-%s", name)),
			FirstName: name,
			Payment:   model.PaymentCash,
			AddedAt:   s.session.CreatedAt.Add(time.Duration(i) * time.Second),
		}
		s.session.Players = append(s.session.Players, p)
		ids[i] = p.ID
	}
	return ids
}

func (s *EngineSuite) addCourts(n int) {
	for i := 0; i < n; i++ {
		s.session.Courts = append(s.session.Courts, model.NewCourt(len(s.session.Courts)+1))
	}
}

func (s *EngineSuite) TestFillsCourtInArrivalOrder() {
	ids := s.addPlayers("a", "b", "c", "d", "e")
	s.addCourts(1)

	Run(s.session)

	s.Equal([4]model.PlayerID{ids[0], ids[1], ids[2], ids[3]}, s.session.Courts[0].Slots)
	s.Equal([]model.PlayerID{ids[4]}, CandidateIDs(s.session))
}

func (s *EngineSuite) TestLeavesCourtEmptyWhenFewerThanFourCandidates() {
	s.addPlayers("a", "b", "c")
	s.addCourts(1)

	Run(s.session)

	s.True(s.session.Courts[0].IsEmpty())
	s.Len(CandidateIDs(s.session), 3)
}

func (s *EngineSuite) TestFullCourtsAreUntouched() {
	ids := s.addPlayers("a", "b", "c", "d", "e", "f", "g", "h")
	s.addCourts(1)
	Run(s.session)

	// New court added while the first is mid-game
	s.addCourts(1)
	Run(s.session)

	s.Equal([4]model.PlayerID{ids[0], ids[1], ids[2], ids[3]}, s.session.Courts[0].Slots)
	s.Equal([4]model.PlayerID{ids[4], ids[5], ids[6], ids[7]}, s.session.Courts[1].Slots)
}

func (s *EngineSuite) TestPausedPlayersAreSkipped() {
	ids := s.addPlayers("a", "b", "c", "d", "e")
	s.session.Paused[s.session.Players[1].IdentityKey()] = struct{}{}
	s.addCourts(1)

	Run(s.session)

	s.Equal([4]model.PlayerID{ids[0], ids[2], ids[3], ids[4]}, s.session.Courts[0].Slots)
	s.Empty(CandidateIDs(s.session))
}

func (s *EngineSuite) TestIdempotent() {
	s.addPlayers("a", "b", "c", "d", "e", "f")
	s.addCourts(2)

	Run(s.session)
	settled := append([]model.Court{}, s.session.Courts...)
	Run(s.session)

	s.Equal(settled, s.session.Courts)
}

func (s *EngineSuite) TestNoPlayerAppearsTwice() {
	s.addPlayers("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	s.addCourts(2)

	Run(s.session)

	seen := map[model.PlayerID]int{}
	for _, c := range s.session.Courts {
		for _, id := range c.PlayerIDs() {
			seen[id]++
		}
	}
	for _, id := range CandidateIDs(s.session) {
		seen[id]++
	}
	s.Len(seen, 10)
	for id, count := range seen {
		s.Equalf(1, count, "player %s appears %d times", id, count)
	}
}

func (s *EngineSuite) TestPartialCourtIsResolvedToEmpty() {
	ids := s.addPlayers("a", "b", "c")
	s.addCourts(1)
	s.session.Courts[0].Slots[0] = ids[0]
	s.session.Courts[0].Slots[1] = ids[1]

	Run(s.session)

	s.True(s.session.Courts[0].IsEmpty())
	s.Equal(ids, CandidateIDs(s.session))
}

func (s *EngineSuite) TestAllOrNothingAcrossManyCourts() {
	s.addPlayers("a", "b", "c", "d", "e", "f", "g")
	s.addCourts(3)

	Run(s.session)

	s.Equal(4, s.session.Courts[0].Occupancy())
	s.Equal(0, s.session.Courts[1].Occupancy())
	s.Equal(0, s.session.Courts[2].Occupancy())
}
