package request

// AddPlayerRequest is the body for POST /session/players
type AddPlayerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Payment   string `json:"payment"`
}

// Position names a draggable spot: a queue index, a court slot, or a
// whole court in the reorder strip
type Position struct {
	Kind  string `json:"kind"`
	Index int    `json:"index,omitempty"`
	Court int    `json:"court,omitempty"`
	Slot  int    `json:"slot,omitempty"`
}

// SwapRequest is the body for POST /session/swap
type SwapRequest struct {
	Source Position `json:"source"`
	Target Position `json:"target"`
}

// ReorderCourtsRequest is the body for POST /session/courts/reorder
type ReorderCourtsRequest struct {
	SourceIndex int `json:"source_index"`
	TargetIndex int `json:"target_index"`
}

// RosterUploadRequest is the body for POST /session/roster
type RosterUploadRequest struct {
	Text string `json:"text"`
}
