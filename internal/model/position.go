package model

// PositionKind tags the variants of a resolved drag position
type PositionKind string

const (
	// PositionQueue addresses a player by candidate-pool index. The next-up
	// groups and the general queue are contiguous views of the same pool,
	// so a single index covers all three.
	PositionQueue PositionKind = "queue"
	// PositionCourt addresses a specific slot on a specific court
	PositionCourt PositionKind = "court"
	// PositionCourtReorder addresses a whole court by its index in the
	// court list. Court-reorder positions only pair with each other.
	PositionCourtReorder PositionKind = "court_reorder"
)

// Position is the tagged union the core receives from the UI boundary once
// an opaque drag token has been resolved. Field use depends on Kind:
// queue uses Index (candidate-pool index); court uses Court (1-based
// number) and Slot; court_reorder uses Index (court list index).
type Position struct {
	Kind  PositionKind `json:"kind"`
	Index int          `json:"index,omitempty"`
	Court int          `json:"court,omitempty"`
	Slot  int          `json:"slot,omitempty"`
}

// QueuePosition builds a queue position
func QueuePosition(index int) Position {
	return Position{Kind: PositionQueue, Index: index}
}

// CourtPosition builds a court-slot position
func CourtPosition(court, slot int) Position {
	return Position{Kind: PositionCourt, Court: court, Slot: slot}
}

// CourtReorderPosition builds a whole-court reorder position
func CourtReorderPosition(index int) Position {
	return Position{Kind: PositionCourtReorder, Index: index}
}

// Valid reports whether the position's kind is known and its indices are
// non-negative. Bounds against the live session are checked at resolve time.
func (p Position) Valid() bool {
	switch p.Kind {
	case PositionQueue, PositionCourtReorder:
		return p.Index >= 0
	case PositionCourt:
		return p.Court >= 1 && p.Slot >= 0 && p.Slot < CourtSlots
	default:
		return false
	}
}
