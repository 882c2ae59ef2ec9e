package model

// CourtSlots is the fixed number of player slots on a court
const CourtSlots = 4

// MaxCourts is the maximum number of courts in a session
const MaxCourts = 8

// Court is a fixed set of four slots. After the assignment engine settles,
// a court is either fully empty or fully occupied; slots hold player IDs,
// with the empty string marking a free slot.
type Court struct {
	Number int                 `json:"number"`
	Slots  [CourtSlots]PlayerID `json:"slots"`
}

// NewCourt creates an empty court with the given 1-based number
func NewCourt(number int) Court {
	return Court{Number: number}
}

// Occupancy returns the number of filled slots
func (c *Court) Occupancy() int {
	n := 0
	for _, id := range c.Slots {
		if id != "" {
			n++
		}
	}
	return n
}

// IsFull reports whether all four slots are occupied
func (c *Court) IsFull() bool {
	return c.Occupancy() == CourtSlots
}

// IsEmpty reports whether no slots are occupied
func (c *Court) IsEmpty() bool {
	return c.Occupancy() == 0
}

// SlotOf returns the slot index holding the given player, or -1
func (c *Court) SlotOf(id PlayerID) int {
	for i, slot := range c.Slots {
		if slot == id {
			return i
		}
	}
	return -1
}

// PlayerIDs returns the occupied slots in slot order
func (c *Court) PlayerIDs() []PlayerID {
	ids := make([]PlayerID, 0, CourtSlots)
	for _, id := range c.Slots {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Clear empties all slots
func (c *Court) Clear() {
	c.Slots = [CourtSlots]PlayerID{}
}
