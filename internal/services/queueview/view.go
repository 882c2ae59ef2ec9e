// Package queueview derives the "next up" and "general queue" views from
// a settled session. Views are recomputed on demand and never stored.
package queueview

import (
	"github.com/openplay/courtqueue/internal/model"
	"github.com/openplay/courtqueue/internal/services/assign"
)

// NextUpSize is how many candidates the next-up section shows
const NextUpSize = 8

// GroupSize is how many players form one next-up group
const GroupSize = 4

// Entry is one queue row with its user-facing position. Positions are
// 1-based and continuous from the first next-up player through the end of
// the general queue.
type Entry struct {
	Position int
	Player   model.Player
}

// View is the derived queue presentation
type View struct {
	NextUp  []Entry // first group, candidate pool indices 0-3
	NextUp2 []Entry // second group, indices 4-7
	General []Entry // the remainder, numbered from len(nextUp)+1
}

// Derive computes the queue view from the session's candidate pool
func Derive(s *model.Session) View {
	pool := assign.CandidatePlayers(s)

	entries := make([]Entry, len(pool))
	for i, p := range pool {
		entries[i] = Entry{Position: i + 1, Player: p}
	}

	v := View{NextUp: []Entry{}, NextUp2: []Entry{}, General: []Entry{}}
	for _, e := range entries {
		switch {
		case e.Position <= GroupSize:
			v.NextUp = append(v.NextUp, e)
		case e.Position <= NextUpSize:
			v.NextUp2 = append(v.NextUp2, e)
		default:
			v.General = append(v.General, e)
		}
	}
	return v
}

// PlayerAt resolves a candidate-pool index to a player ID, or "" when the
// index is out of range. Swap resolution goes through here so stale drag
// positions degrade to no-ops.
func PlayerAt(s *model.Session, index int) model.PlayerID {
	pool := assign.CandidateIDs(s)
	if index < 0 || index >= len(pool) {
		return ""
	}
	return pool[index]
}
