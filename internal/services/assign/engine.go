// Package assign implements the court assignment engine: a pure
// recomputation that runs after every session mutation and fills open
// courts with groups of four candidates in arrival order.
package assign

import (
	"github.com/openplay/courtqueue/internal/model"
)

// CandidateIDs returns the candidate pool: registry players that are
// neither paused nor on a court, in registry order.
func CandidateIDs(s *model.Session) []model.PlayerID {
	players := CandidatePlayers(s)
	ids := make([]model.PlayerID, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	return ids
}

// CandidatePlayers returns the candidate pool as full player records, in
// registry order.
func CandidatePlayers(s *model.Session) []model.Player {
	assigned := s.AssignedSet()
	pool := make([]model.Player, 0, len(s.Players))
	for i := range s.Players {
		p := s.Players[i]
		if _, ok := assigned[p.ID]; ok {
			continue
		}
		if _, ok := s.Paused[p.IdentityKey()]; ok {
			continue
		}
		pool = append(pool, p)
	}
	return pool
}

// Run settles the session's courts. Courts already holding four players
// are left untouched; every other court either receives the next four
// candidates from the front of the pool or ends up fully empty. The pass
// is deterministic and idempotent: running it twice with no intervening
// mutation is a no-op.
func Run(s *model.Session) {
	// Transient partial courts (a mutation mid-resolution) release their
	// players back into the pool; they keep their registry positions.
	for i := range s.Courts {
		if !s.Courts[i].IsFull() {
			s.Courts[i].Clear()
		}
	}

	pool := CandidateIDs(s)

	for i := range s.Courts {
		court := &s.Courts[i]
		if court.IsFull() || len(pool) < model.CourtSlots {
			continue
		}
		for slot := 0; slot < model.CourtSlots; slot++ {
			court.Slots[slot] = pool[slot]
		}
		pool = pool[model.CourtSlots:]
	}
}
