// Package session implements the rotation operations for an open-play
// session: the only mutators of the player registry, pause set, and court
// set. Every operation settles the assignment engine before returning, so
// callers always observe courts at full or empty occupancy.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/openplay/courtqueue/internal/dependencies/clock"
	"github.com/openplay/courtqueue/internal/dependencies/random"
	"github.com/openplay/courtqueue/internal/model"
	"github.com/openplay/courtqueue/internal/services/assign"
	"github.com/openplay/courtqueue/internal/services/cooldown"
	"github.com/openplay/courtqueue/internal/services/queueview"
	"github.com/openplay/courtqueue/internal/storage"
)

const (
	// SessionCodeLength is the length of generated session codes
	SessionCodeLength = 6
	// SessionCodeAlphabet is the characters used in session codes (avoid confusing chars)
	SessionCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Controller owns the live session state and serializes all rotation
// operations under one lock. The assignment pass runs inside the critical
// section, strictly after the mutation and before any view is read.
type Controller struct {
	mu        sync.Mutex
	storage   storage.Storage
	clock     clock.Clock
	random    random.Random
	cooldowns *cooldown.Table
	logger    *slog.Logger
	session   *model.Session
	listeners []model.Listener
}

// NewController creates a session controller with a fresh empty session
func NewController(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	cooldowns *cooldown.Table,
	logger *slog.Logger,
) *Controller {
	c := &Controller{
		storage:   store,
		clock:     clk,
		random:    rnd,
		cooldowns: cooldowns,
		logger:    logger,
	}
	c.session = c.freshSession()
	return c
}

func (c *Controller) freshSession() *model.Session {
	code := c.random.String(SessionCodeLength, SessionCodeAlphabet)
	return model.NewSession(model.SessionID(code), c.clock.Now())
}

// AddListener registers a change listener. Listeners run synchronously
// inside the operation and must not call back into the controller.
func (c *Controller) AddListener(l model.Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

// settle runs the assignment engine and notifies listeners. Callers must
// hold the lock.
func (c *Controller) settle(eventType model.EventType, playerID model.PlayerID, court int) {
	assign.Run(c.session)
	now := c.clock.Now()
	c.session.UpdatedAt = now

	event := model.Event{
		Type:      eventType,
		Timestamp: now,
		SessionID: c.session.ID,
		PlayerID:  playerID,
		Court:     court,
	}
	for _, l := range c.listeners {
		l(event)
	}
}

// AddPlayer validates and appends a new player to the back of the queue.
// Name collisions get a numeric suffix rather than being rejected.
func (c *Controller) AddPlayer(firstName, lastName, phone, payment string) (*model.Player, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" {
		return nil, model.ErrEmptyName
	}
	pm, err := model.ParsePaymentMethod(payment)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	player := model.Player{
		ID:        model.PlayerID(uuid.NewString()),
		FirstName: firstName,
		LastName:  lastName,
		Phone:     strings.TrimSpace(phone),
		Payment:   pm,
		AddedAt:   c.clock.Now(),
	}

	full := player.FullName()
	resolved := model.DisambiguateName(full, c.session.HasIdentity)
	if resolved != full {
		suffix := resolved[len(full):]
		if lastName == "" {
			player.FirstName += suffix
		} else {
			player.LastName += suffix
		}
	}

	c.session.Players = append(c.session.Players, player)
	c.settle(model.EventPlayerAdded, player.ID, 0)
	return &player, nil
}

// DeletePlayer soft-deletes a player: removed from the registry and pause
// set, retained in the deleted log for export. Players on a court cannot
// be deleted.
func (c *Controller) DeletePlayer(id model.PlayerID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	player := c.session.PlayerByID(id)
	if player == nil {
		return model.ErrPlayerNotFound
	}
	if c.session.CourtOf(id) >= 0 {
		return model.ErrPlayerOnCourt
	}

	removed := *player
	delete(c.session.Paused, removed.IdentityKey())
	idx := c.session.IndexOf(id)
	c.session.Players = append(c.session.Players[:idx], c.session.Players[idx+1:]...)
	c.session.Deleted = append(c.session.Deleted, removed)

	c.settle(model.EventPlayerDeleted, id, 0)
	return nil
}

// PausePlayer excludes a player from rotation. Their registry position is
// kept; derived views simply skip them. Players on a court cannot pause.
func (c *Controller) PausePlayer(id model.PlayerID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	player := c.session.PlayerByID(id)
	if player == nil {
		return model.ErrPlayerNotFound
	}
	if c.session.CourtOf(id) >= 0 {
		return model.ErrPlayerOnCourt
	}

	c.session.Paused[player.IdentityKey()] = struct{}{}
	c.settle(model.EventPlayerPaused, id, 0)
	return nil
}

// ResumePlayer returns a paused player to rotation at the back of the
// line: fresh AddedAt, moved after the last registry entry.
func (c *Controller) ResumePlayer(id model.PlayerID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	player := c.session.PlayerByID(id)
	if player == nil {
		return model.ErrPlayerNotFound
	}
	key := player.IdentityKey()
	if _, ok := c.session.Paused[key]; !ok {
		return nil
	}

	delete(c.session.Paused, key)
	resumed := *player
	resumed.AddedAt = c.clock.Now()
	idx := c.session.IndexOf(id)
	c.session.Players = append(c.session.Players[:idx], c.session.Players[idx+1:]...)
	c.session.Players = append(c.session.Players, resumed)

	c.settle(model.EventPlayerResumed, id, 0)
	return nil
}

// AddCourt appends an empty court and returns its number. The assignment
// pass fills it immediately when four candidates are waiting.
func (c *Controller) AddCourt() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.session.Courts) >= model.MaxCourts {
		return 0, model.ErrCourtLimit
	}

	number := len(c.session.Courts) + 1
	c.session.Courts = append(c.session.Courts, model.NewCourt(number))
	c.settle(model.EventCourtAdded, "", number)
	return number, nil
}

// RemoveCourt deletes a court. A full court's four players return to the
// back of the queue in slot order first. Remaining courts are renumbered
// contiguously and their cooldowns follow the renumbering.
func (c *Controller) RemoveCourt(number int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	court := c.session.CourtByNumber(number)
	if court == nil {
		return model.ErrCourtNotFound
	}

	if court.IsFull() {
		c.moveToEnd(court.PlayerIDs())
	}

	idx := number - 1
	c.session.Courts = append(c.session.Courts[:idx], c.session.Courts[idx+1:]...)
	c.cooldowns.Cancel(number)
	c.remapCooldownsAfterRenumber()

	c.settle(model.EventCourtRemoved, "", number)
	return nil
}

// CompleteGame recycles a full court's players to the back of the queue
// in slot order and lets the assignment pass backfill the court. The
// court enters a cooldown; completing again before it expires is a no-op
// precondition failure, so a double click cannot clear a fresh game.
func (c *Controller) CompleteGame(number int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	court := c.session.CourtByNumber(number)
	if court == nil {
		return model.ErrCourtNotFound
	}
	if c.cooldowns.Active(number) {
		return model.ErrCourtCoolingDown
	}
	if !court.IsFull() {
		return model.ErrCourtNotFull
	}

	c.moveToEnd(court.PlayerIDs())
	court.Clear()
	c.cooldowns.Start(number)

	c.settle(model.EventGameCompleted, "", number)
	return nil
}

// ReorderCourt moves a whole court from one index to another in the court
// list, then renumbers contiguously. Equal indices are a no-op.
func (c *Controller) ReorderCourt(sourceIndex, targetIndex int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reorderCourtLocked(sourceIndex, targetIndex)
}

func (c *Controller) reorderCourtLocked(sourceIndex, targetIndex int) error {
	courts := c.session.Courts
	if sourceIndex < 0 || sourceIndex >= len(courts) || targetIndex < 0 || targetIndex >= len(courts) {
		return model.ErrCourtNotFound
	}
	if sourceIndex == targetIndex {
		return nil
	}

	moved := courts[sourceIndex]
	courts = append(courts[:sourceIndex], courts[sourceIndex+1:]...)
	courts = append(courts[:targetIndex], append([]model.Court{moved}, courts[targetIndex:]...)...)
	c.session.Courts = courts
	c.remapCooldownsAfterRenumber()

	c.settle(model.EventCourtsReordered, "", targetIndex+1)
	return nil
}

// moveToEnd removes the given players from their registry positions and
// re-appends them at the back, preserving the order of ids. AddedAt is
// not refreshed: position defines queue order, the timestamp is
// informational only.
func (c *Controller) moveToEnd(ids []model.PlayerID) {
	moving := make(map[model.PlayerID]struct{}, len(ids))
	tail := make([]model.Player, 0, len(ids))
	for _, id := range ids {
		if p := c.session.PlayerByID(id); p != nil {
			moving[id] = struct{}{}
			tail = append(tail, *p)
		}
	}

	rest := make([]model.Player, 0, len(c.session.Players))
	for _, p := range c.session.Players {
		if _, ok := moving[p.ID]; !ok {
			rest = append(rest, p)
		}
	}
	c.session.Players = append(rest, tail...)
}

// remapCooldownsAfterRenumber renumbers courts 1..n and moves any active
// cooldowns along with the courts they belong to.
func (c *Controller) remapCooldownsAfterRenumber() {
	mapping := make(map[int]int, len(c.session.Courts))
	for i := range c.session.Courts {
		mapping[c.session.Courts[i].Number] = i + 1
	}
	c.session.RenumberCourts()
	c.cooldowns.Remap(mapping)
}

// ImportRoster records an uploaded pre-registration roster and adds its
// players to the queue. Players whose identity already exists in the
// registry are kept as-is; the uploaded record is retained for export
// comparison either way. Returns the number of players added.
func (c *Controller) ImportRoster(players []model.Player) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	uploadedKeys := make(map[string]struct{}, len(c.session.Uploaded))
	for _, p := range c.session.Uploaded {
		uploadedKeys[p.IdentityKey()] = struct{}{}
	}

	added := 0
	for _, p := range players {
		if p.ID == "" {
			p.ID = model.PlayerID(uuid.NewString())
		}
		if p.AddedAt.IsZero() {
			p.AddedAt = c.clock.Now()
		}
		if _, ok := uploadedKeys[p.IdentityKey()]; !ok {
			c.session.Uploaded = append(c.session.Uploaded, p)
			uploadedKeys[p.IdentityKey()] = struct{}{}
		}
		if !c.session.HasIdentity(p.IdentityKey()) {
			c.session.Players = append(c.session.Players, p)
			added++
		}
	}

	c.settle(model.EventPlayerAdded, "", 0)
	return added
}

// Snapshot captures the current settled state for persistence or export
func (c *Controller) Snapshot() *model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return model.SnapshotOf(c.session, c.clock.Now())
}

// LoadSnapshot replaces session state from a snapshot and settles once.
// Snapshots holding no state are rejected; missing arrays are tolerated.
func (c *Controller) LoadSnapshot(snap *model.Snapshot) error {
	if snap == nil || snap.IsEmpty() {
		return model.ErrEmptySnapshot
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.session.Restore(snap)
	c.cooldowns.Reset()
	c.settle(model.EventSessionLoaded, "", 0)
	return nil
}

// SaveToStorage persists the current snapshot
func (c *Controller) SaveToStorage(ctx context.Context) error {
	return c.storage.SaveSnapshot(ctx, c.Snapshot())
}

// RestoreFromStorage loads the persisted snapshot if one exists. Missing,
// empty, or corrupt saved state leaves the fresh session in place.
func (c *Controller) RestoreFromStorage(ctx context.Context) error {
	snap, err := c.storage.LoadSnapshot(ctx)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) || errors.Is(err, model.ErrEmptySnapshot) {
			return nil
		}
		c.logger.Warn("discarding unreadable session snapshot", slog.String("error", err.Error()))
		return nil
	}
	return c.LoadSnapshot(snap)
}

// Terminate ends the session: persisted state is cleared and a fresh
// empty session takes over. The caller is responsible for PIN-gating.
func (c *Controller) Terminate(ctx context.Context) error {
	if err := c.storage.ClearSnapshot(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cooldowns.Reset()
	c.session = c.freshSession()
	c.settle(model.EventSessionReset, "", 0)
	return nil
}

// SessionID returns the current session's code
func (c *Controller) SessionID() model.SessionID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.ID
}

// Courts returns a copy of the current court list
func (c *Controller) Courts() []model.Court {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.Court{}, c.session.Courts...)
}

// Players returns a copy of the registry in queue order
func (c *Controller) Players() []model.Player {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.Player{}, c.session.Players...)
}

// PausedPlayers returns the paused players in registry order
func (c *Controller) PausedPlayers() []model.Player {
	c.mu.Lock()
	defer c.mu.Unlock()

	paused := []model.Player{}
	for _, p := range c.session.Players {
		if _, ok := c.session.Paused[p.IdentityKey()]; ok {
			paused = append(paused, p)
		}
	}
	return paused
}

// QueueView derives the next-up groups and general queue
func (c *Controller) QueueView() queueview.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return queueview.Derive(c.session)
}

// Interface for dependency injection
type ControllerInterface interface {
	AddPlayer(firstName, lastName, phone, payment string) (*model.Player, error)
	DeletePlayer(id model.PlayerID) error
	PausePlayer(id model.PlayerID) error
	ResumePlayer(id model.PlayerID) error
	AddCourt() (int, error)
	RemoveCourt(number int) error
	CompleteGame(number int) error
	ApplySwap(source, target model.Position) error
	ReorderCourt(sourceIndex, targetIndex int) error
	ImportRoster(players []model.Player) int
	Snapshot() *model.Snapshot
	LoadSnapshot(snap *model.Snapshot) error
	Terminate(ctx context.Context) error
}

var _ ControllerInterface = (*Controller)(nil)
