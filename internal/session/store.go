package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/tradiehq/tradiehq/internal/clock"
	"go.uber.org/zap"
)

const (
	// TTL matches the cookie max age.
	TTL = 7 * 24 * time.Hour

	pruneInterval     = 24 * time.Hour
	defaultMaxEntries = 100_000

	idBytes = 32
)

var ErrStoreFull = errors.New("session store full")

// Store is the process-local session state store. It is volatile across
// restarts; every active session logs out when the process dies. That is
// an accepted tradeoff at this deployment tier, not something to fix
// with persistence.
type Store interface {
	Create(state State) (string, error)
	Get(id string) (State, bool)
	Save(id string, state State) error
	Delete(id string)
	Len() int
}

type entry struct {
	state State
}

// MemoryStore is a bounded in-memory Store keyed by opaque random ids.
// Sessions are disjoint by key, so a single mutex around the map is all
// the locking this needs.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry

	maxEntries int
	clk        clock.Clock
	log        *zap.Logger

	onPrune func(removed, remaining int)
}

// SetPruneHook installs a callback invoked after each background sweep.
func (m *MemoryStore) SetPruneHook(fn func(removed, remaining int)) {
	m.onPrune = fn
}

func NewMemoryStore(clk clock.Clock, log *zap.Logger) *MemoryStore {
	return &MemoryStore{
		entries:    make(map[string]entry),
		maxEntries: defaultMaxEntries,
		clk:        clk,
		log:        log.Named("session.store"),
	}
}

func (m *MemoryStore) Create(state State) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}

	now := m.clk.Now()
	state.ExpiresAt = now.Add(TTL)

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.entries) >= m.maxEntries {
		m.pruneLocked(now)
		if len(m.entries) >= m.maxEntries {
			return "", ErrStoreFull
		}
	}

	m.entries[id] = entry{state: state}
	return id, nil
}

func (m *MemoryStore) Get(id string) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok {
		return State{Kind: KindAnonymous}, false
	}
	if m.clk.Now().After(e.state.ExpiresAt) {
		delete(m.entries, id)
		return State{Kind: KindAnonymous}, false
	}
	return e.state, true
}

func (m *MemoryStore) Save(id string, state State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok {
		return errors.New("session not found")
	}
	// Expiry is fixed at creation; Save never extends it.
	state.ExpiresAt = e.state.ExpiresAt
	m.entries[id] = entry{state: state}
	return nil
}

func (m *MemoryStore) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
}

func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Prune removes expired entries. Called by the background sweeper and
// opportunistically when the store is at capacity.
func (m *MemoryStore) Prune() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pruneLocked(m.clk.Now())
}

func (m *MemoryStore) pruneLocked(now time.Time) int {
	removed := 0
	for id, e := range m.entries {
		if now.After(e.state.ExpiresAt) {
			delete(m.entries, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions until ctx is cancelled.
func (m *MemoryStore) Run(ctx context.Context) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := m.Prune()
			remaining := m.Len()
			if removed > 0 {
				m.log.Info("pruned expired sessions", zap.Int("removed", removed), zap.Int("remaining", remaining))
			}
			if m.onPrune != nil {
				m.onPrune(removed, remaining)
			}
		}
	}
}

func newSessionID() (string, error) {
	buf := make([]byte, idBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
