package model

import "time"

// SessionID identifies an open-play session
type SessionID string

// Session is the explicit state container for one open-play session.
// Players holds the registry in queue order and is the single source of
// truth for queue position; paused membership, court assignment, and the
// next-up views are all derived from or keyed against it.
type Session struct {
	ID        SessionID
	Players   []Player            // registry, arrival order except explicit reorders
	Paused    map[string]struct{} // identity keys excluded from rotation
	Deleted   []Player            // soft-delete audit log
	Uploaded  []Player            // pre-registration roster
	Courts    []Court             // numbered 1..len contiguously
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession creates an empty session
func NewSession(id SessionID, now time.Time) *Session {
	return &Session{
		ID:        id,
		Players:   []Player{},
		Paused:    make(map[string]struct{}),
		Deleted:   []Player{},
		Uploaded:  []Player{},
		Courts:    []Court{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PlayerByID returns the registry player with the given ID, or nil
func (s *Session) PlayerByID(id PlayerID) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// IndexOf returns the registry index of the given player, or -1
func (s *Session) IndexOf(id PlayerID) int {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return i
		}
	}
	return -1
}

// HasIdentity reports whether any registry player has the given identity key
func (s *Session) HasIdentity(key string) bool {
	for i := range s.Players {
		if s.Players[i].IdentityKey() == key {
			return true
		}
	}
	return false
}

// IsPaused reports whether the player with the given ID is paused
func (s *Session) IsPaused(id PlayerID) bool {
	p := s.PlayerByID(id)
	if p == nil {
		return false
	}
	_, ok := s.Paused[p.IdentityKey()]
	return ok
}

// AssignedSet returns the IDs currently occupying any court slot
func (s *Session) AssignedSet() map[PlayerID]struct{} {
	assigned := make(map[PlayerID]struct{})
	for i := range s.Courts {
		for _, id := range s.Courts[i].Slots {
			if id != "" {
				assigned[id] = struct{}{}
			}
		}
	}
	return assigned
}

// CourtOf returns the index of the court holding the given player, or -1
func (s *Session) CourtOf(id PlayerID) int {
	for i := range s.Courts {
		if s.Courts[i].SlotOf(id) >= 0 {
			return i
		}
	}
	return -1
}

// CourtByNumber returns the court with the given 1-based number, or nil
func (s *Session) CourtByNumber(number int) *Court {
	for i := range s.Courts {
		if s.Courts[i].Number == number {
			return &s.Courts[i]
		}
	}
	return nil
}

// RenumberCourts restores contiguous 1-based court numbering
func (s *Session) RenumberCourts() {
	for i := range s.Courts {
		s.Courts[i].Number = i + 1
	}
}
