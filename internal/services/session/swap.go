package session

import (
	"sort"

	"github.com/openplay/courtqueue/internal/model"
	"github.com/openplay/courtqueue/internal/services/queueview"
)

// ApplySwap exchanges the players at two resolved drag positions. Swap
// behavior depends on the pair of position kinds:
//
//   - queue/queue: the players exchange registry positions directly.
//   - court/court on the same court: the slots exchange contents and the
//     registry order of the four in-court players is reconciled to match
//     slot order, so a later CompleteGame recycles them in that order.
//   - court/court across courts: slots exchange contents only.
//   - court/queue: the queue player takes the slot; the court player takes
//     the queue player's exact registry index. A manual swap-out must not
//     send the outgoing player to the back of the line.
//
// Court-reorder positions only pair with each other; any mixed pair, a
// target equal to the source, or a stale position resolving to no player
// is a no-op.
func (c *Controller) ApplySwap(source, target model.Position) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !source.Valid() || !target.Valid() {
		return model.ErrInvalidPosition
	}
	if source == target {
		return nil
	}

	if source.Kind == model.PositionCourtReorder || target.Kind == model.PositionCourtReorder {
		if source.Kind != target.Kind {
			return model.ErrInvalidPosition
		}
		return c.reorderCourtLocked(source.Index, target.Index)
	}

	sourceID := c.resolve(source)
	targetID := c.resolve(target)
	if sourceID == "" || targetID == "" || sourceID == targetID {
		return model.ErrInvalidPosition
	}

	switch {
	case source.Kind == model.PositionQueue && target.Kind == model.PositionQueue:
		c.swapRegistry(sourceID, targetID)

	case source.Kind == model.PositionCourt && target.Kind == model.PositionCourt:
		c.swapSlots(source, target)
		if source.Court == target.Court {
			c.reconcileCourtOrder(c.session.CourtByNumber(source.Court))
		}

	default:
		// court/queue in either orientation
		courtPos, queueID, courtID := source, targetID, sourceID
		if source.Kind == model.PositionQueue {
			courtPos, queueID, courtID = target, sourceID, targetID
		}
		c.swapRegistry(courtID, queueID)
		court := c.session.CourtByNumber(courtPos.Court)
		court.Slots[courtPos.Slot] = queueID
	}

	c.settle(model.EventSwapApplied, sourceID, 0)
	return nil
}

// resolve maps a position to the player occupying it, or "" when the
// position is stale (out-of-range index, missing court, empty slot).
func (c *Controller) resolve(pos model.Position) model.PlayerID {
	switch pos.Kind {
	case model.PositionQueue:
		return queueview.PlayerAt(c.session, pos.Index)
	case model.PositionCourt:
		court := c.session.CourtByNumber(pos.Court)
		if court == nil {
			return ""
		}
		return court.Slots[pos.Slot]
	default:
		return ""
	}
}

// swapRegistry exchanges two players' registry positions. Their AddedAt
// travels with them; only the array order changes.
func (c *Controller) swapRegistry(a, b model.PlayerID) {
	i := c.session.IndexOf(a)
	j := c.session.IndexOf(b)
	if i < 0 || j < 0 {
		return
	}
	c.session.Players[i], c.session.Players[j] = c.session.Players[j], c.session.Players[i]
}

// swapSlots exchanges the contents of two court slots
func (c *Controller) swapSlots(a, b model.Position) {
	courtA := c.session.CourtByNumber(a.Court)
	courtB := c.session.CourtByNumber(b.Court)
	courtA.Slots[a.Slot], courtB.Slots[b.Slot] = courtB.Slots[b.Slot], courtA.Slots[a.Slot]
}

// reconcileCourtOrder rewrites the registry so the court's players appear
// in the same relative order as their slots, using the registry positions
// the four already occupy.
func (c *Controller) reconcileCourtOrder(court *model.Court) {
	ids := court.PlayerIDs()
	indices := make([]int, 0, len(ids))
	for _, id := range ids {
		if idx := c.session.IndexOf(id); idx >= 0 {
			indices = append(indices, idx)
		}
	}
	if len(indices) != len(ids) {
		return
	}
	sort.Ints(indices)

	players := make([]model.Player, len(ids))
	for i, id := range ids {
		players[i] = *c.session.PlayerByID(id)
	}
	for i, idx := range indices {
		c.session.Players[idx] = players[i]
	}
}
