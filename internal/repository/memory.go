package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

type memoryEntry struct {
	game      *entity.GameState
	expiresAt time.Time
}

type memGame struct {
	mu    sync.Mutex
	games map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryGameRepository - process local sessions with the same expiry rules as redis.
// Stored games are copies, so callers never share state with the repository.
func NewMemoryGameRepository(ttl time.Duration) GameRepository {
	return newMemoryGameRepository(ttl, time.Now)
}

func newMemoryGameRepository(ttl time.Duration, now func() time.Time) *memGame {
	return &memGame{
		games: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   now,
	}
}

func (that *memGame) CreateOrUpdate(_ context.Context, game *entity.GameState) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.evictExpired()
	that.games[game.ID] = memoryEntry{game: game.Clone(), expiresAt: that.expiry()}

	return nil
}

func (that *memGame) GetByID(_ context.Context, id string) (*entity.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.lookup(id)
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	entry.expiresAt = that.expiry()
	that.games[id] = entry

	return entry.game.Clone(), nil
}

func (that *memGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.lookup(id); !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}

// lookup - caller holds the lock.
func (that *memGame) lookup(id string) (memoryEntry, bool) {
	entry, ok := that.games[id]
	if !ok {
		return memoryEntry{}, false
	}

	if that.ttl > 0 && !that.now().Before(entry.expiresAt) {
		delete(that.games, id)
		return memoryEntry{}, false
	}

	return entry, true
}

func (that *memGame) evictExpired() {
	if that.ttl <= 0 {
		return
	}

	now := that.now()
	for id, entry := range that.games {
		if !now.Before(entry.expiresAt) {
			delete(that.games, id)
		}
	}
}

func (that *memGame) expiry() time.Time {
	return that.now().Add(that.ttl)
}
