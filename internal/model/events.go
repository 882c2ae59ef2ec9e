package model

import "time"

// EventType identifies the type of change event
type EventType string

const (
	EventPlayerAdded     EventType = "player_added"
	EventPlayerDeleted   EventType = "player_deleted"
	EventPlayerPaused    EventType = "player_paused"
	EventPlayerResumed   EventType = "player_resumed"
	EventCourtAdded      EventType = "court_added"
	EventCourtRemoved    EventType = "court_removed"
	EventGameCompleted   EventType = "game_completed"
	EventSwapApplied     EventType = "swap_applied"
	EventCourtsReordered EventType = "courts_reordered"
	EventSessionLoaded   EventType = "session_loaded"
	EventSessionReset    EventType = "session_reset"
)

// Event describes a settled mutation. It is emitted after the assignment
// engine has re-settled, so listeners always observe consistent state.
type Event struct {
	Type      EventType
	Timestamp time.Time
	SessionID SessionID
	PlayerID  PlayerID // empty for court-only events
	Court     int      // 1-based court number, 0 when not applicable
}

// Listener receives change events from the session controller. Callbacks
// run synchronously inside the operation; implementations must not call
// back into the controller.
type Listener func(Event)
