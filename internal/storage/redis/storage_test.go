package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openplay/courtqueue/internal/model"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewWithClient(client, DefaultConfig())
}

func sampleSnapshot() *model.Snapshot {
	court := model.NewCourt(1)
	court.Slots = [4]model.PlayerID{"p1", "p2", "p3", "p4"}
	return &model.Snapshot{
		SessionPlayers: []model.Player{
			{ID: "p1", FirstName: "Alice", Payment: model.PaymentCash},
			{ID: "p2", FirstName: "Bob", Payment: model.PaymentOnline},
			{ID: "p3", FirstName: "Cara", Payment: model.PaymentCash},
			{ID: "p4", FirstName: "Drew", Payment: model.PaymentUnpaid},
		},
		Courts:    []model.Court{court},
		Timestamp: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSnapshot(ctx, sampleSnapshot()))

	snap, err := s.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.SessionPlayers, 4)
	assert.Equal(t, [4]model.PlayerID{"p1", "p2", "p3", "p4"}, snap.Courts[0].Slots)
}

func TestLoadMissingSnapshot(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.LoadSnapshot(context.Background())
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestEmptySnapshotRejected(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSnapshot(ctx, &model.Snapshot{Timestamp: time.Now()}))

	_, err := s.LoadSnapshot(ctx)
	assert.ErrorIs(t, err, model.ErrEmptySnapshot)
}

func TestCorruptSnapshotReturnsError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	s := NewWithClient(client, DefaultConfig())
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, snapshotKey(), "not json", 0).Err())

	_, err := s.LoadSnapshot(ctx)
	assert.Error(t, err)
}

func TestClearSnapshot(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSnapshot(ctx, sampleSnapshot()))
	require.NoError(t, s.ClearSnapshot(ctx))

	_, err := s.LoadSnapshot(ctx)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}
