package response

import (
	"time"

	"github.com/openplay/courtqueue/internal/model"
	"github.com/openplay/courtqueue/internal/services/queueview"
)

// Player represents a player in API responses
type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Payment string `json:"payment"`
	Paused  bool   `json:"paused,omitempty"`
	AddedAt string `json:"added_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p model.Player, paused bool) Player {
	return Player{
		ID:      string(p.ID),
		Name:    p.FullName(),
		Phone:   p.Phone,
		Payment: string(p.Payment),
		Paused:  paused,
		AddedAt: p.AddedAt.Format(time.RFC3339),
	}
}

// Court represents a court and its current game
type Court struct {
	Number  int      `json:"number"`
	Players []Player `json:"players"`
}

// QueueEntry is one queue position in a derived view
type QueueEntry struct {
	Position int    `json:"position"`
	Player   Player `json:"player"`
}

// Queue holds the derived queue views: two next-up groups of four and
// the general queue behind them
type Queue struct {
	NextUp  []QueueEntry `json:"next_up"`
	NextUp2 []QueueEntry `json:"next_up_2"`
	General []QueueEntry `json:"general"`
}

// SessionView is the full derived state returned by GET /session
type SessionView struct {
	SessionID string   `json:"session_id"`
	Players   []Player `json:"players"`
	Courts    []Court  `json:"courts"`
	Queue     Queue    `json:"queue"`
}

// CourtResult is the response for add-court
type CourtResult struct {
	Number int `json:"number"`
}

// RosterResult is the response for a roster upload
type RosterResult struct {
	Parsed int `json:"parsed"`
	Added  int `json:"added"`
}

// SessionViewFrom assembles the full derived view
func SessionViewFrom(
	id model.SessionID,
	players []model.Player,
	paused []model.Player,
	courts []model.Court,
	view queueview.View,
) SessionView {
	pausedIDs := make(map[model.PlayerID]struct{}, len(paused))
	for _, p := range paused {
		pausedIDs[p.ID] = struct{}{}
	}

	byID := make(map[model.PlayerID]model.Player, len(players))
	respPlayers := make([]Player, len(players))
	for i, p := range players {
		byID[p.ID] = p
		_, isPaused := pausedIDs[p.ID]
		respPlayers[i] = PlayerFromModel(p, isPaused)
	}

	respCourts := make([]Court, len(courts))
	for i, c := range courts {
		court := Court{Number: c.Number, Players: []Player{}}
		for _, id := range c.PlayerIDs() {
			if p, ok := byID[id]; ok {
				court.Players = append(court.Players, PlayerFromModel(p, false))
			}
		}
		respCourts[i] = court
	}

	return SessionView{
		SessionID: string(id),
		Players:   respPlayers,
		Courts:    respCourts,
		Queue: Queue{
			NextUp:  queueEntries(view.NextUp),
			NextUp2: queueEntries(view.NextUp2),
			General: queueEntries(view.General),
		},
	}
}

func queueEntries(entries []queueview.Entry) []QueueEntry {
	out := make([]QueueEntry, len(entries))
	for i, e := range entries {
		out[i] = QueueEntry{
			Position: e.Position,
			Player:   PlayerFromModel(e.Player, false),
		}
	}
	return out
}
