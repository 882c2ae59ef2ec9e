package model

import "time"

// Snapshot is the serialized form of a session consumed by the persistence
// and export collaborators. Field names match the legacy snapshot format.
type Snapshot struct {
	SessionPlayers  []Player  `json:"sessionPlayers"`
	PausedPlayers   []Player  `json:"pausedPlayers"`
	DeletedPlayers  []Player  `json:"deletedPlayers"`
	UploadedPlayers []Player  `json:"uploadedPlayers"`
	Courts          []Court   `json:"courts"`
	Timestamp       time.Time `json:"timestamp"`
}

// IsEmpty reports whether the snapshot holds no saved state. A snapshot
// with no session, paused, or uploaded players and no courts is treated as
// "nothing to restore" regardless of its timestamp.
func (s *Snapshot) IsEmpty() bool {
	return len(s.SessionPlayers) == 0 &&
		len(s.PausedPlayers) == 0 &&
		len(s.UploadedPlayers) == 0 &&
		len(s.Courts) == 0
}

// SnapshotOf captures the session's current state. Paused players stay in
// SessionPlayers (they keep their registry position) and are additionally
// listed in PausedPlayers so the pause set survives a round trip.
func SnapshotOf(s *Session, now time.Time) *Snapshot {
	snap := &Snapshot{
		SessionPlayers:  append([]Player{}, s.Players...),
		PausedPlayers:   []Player{},
		DeletedPlayers:  append([]Player{}, s.Deleted...),
		UploadedPlayers: append([]Player{}, s.Uploaded...),
		Courts:          append([]Court{}, s.Courts...),
		Timestamp:       now,
	}
	for i := range s.Players {
		if _, ok := s.Paused[s.Players[i].IdentityKey()]; ok {
			snap.PausedPlayers = append(snap.PausedPlayers, s.Players[i])
		}
	}
	return snap
}

// Restore rebuilds session state from the snapshot. Missing arrays are
// treated as empty. Paused players absent from the registry (legacy
// snapshots stored them separately) are appended at the back.
func (s *Session) Restore(snap *Snapshot) {
	s.Players = append([]Player{}, snap.SessionPlayers...)
	s.Deleted = append([]Player{}, snap.DeletedPlayers...)
	s.Uploaded = append([]Player{}, snap.UploadedPlayers...)
	s.Courts = append([]Court{}, snap.Courts...)
	s.Paused = make(map[string]struct{}, len(snap.PausedPlayers))
	for _, p := range snap.PausedPlayers {
		key := p.IdentityKey()
		s.Paused[key] = struct{}{}
		if !s.HasIdentity(key) {
			s.Players = append(s.Players, p)
		}
	}
	s.RenumberCourts()
}
