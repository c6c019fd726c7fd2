package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
	"github.com/cory-johannsen/paperdoll/internal/game/presentation"
	"github.com/cory-johannsen/paperdoll/internal/game/stats"
)

// Deps are the shared collaborators of every session a Manager opens.
type Deps struct {
	Repo    Repository
	Catalog *catalog.Registry
	Layout  inventory.Layout
	// Loadout seeds slots that have no save yet; nil starts them empty.
	Loadout *inventory.StartingLoadout
	Engine  *presentation.Engine
	Reactor Reactor
	Logger  *zap.Logger
	// IdleTimeout is how long a session may go unused before EvictIdle
	// saves and closes it; 0 disables eviction.
	IdleTimeout time.Duration
	// Now is the clock; nil uses time.Now.
	Now func() time.Time
}

// Manager tracks the open sessions.
// All methods are safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	deps     Deps
}

// NewManager creates an empty Manager.
//
// Precondition: deps.Repo, deps.Engine and deps.Logger non-nil; deps.Layout valid.
func NewManager(deps Deps) *Manager {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Manager{sessions: make(map[string]*Session), deps: deps}
}

// Get returns the open session for slot and marks it used.
func (m *Manager) Get(slot string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[slot]
	if ok {
		s.touch(m.deps.Now())
	}
	return s, ok
}

// Open returns the session for slot, loading it from the repository or,
// when no save exists, seeding it from the starting loadout.
//
// Postcondition: at most one Session exists per slot.
func (m *Manager) Open(ctx context.Context, slot string) (*Session, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}
	if s, ok := m.Get(slot); ok {
		return s, nil
	}

	save, err := m.deps.Repo.Load(ctx, slot)
	switch {
	case errors.Is(err, ErrSaveNotFound):
		save, err = m.fresh(slot)
		if err != nil {
			return nil, err
		}
	case err != nil:
		m.deps.Logger.Error("loading save", zap.String("slot", slot), zap.Error(err))
		return nil, fmt.Errorf("session: Open %q: %w", slot, err)
	}
	if save.Inventory == nil {
		save.Inventory = inventory.NewState(m.deps.Layout)
	}
	if save.Stats == nil {
		save.Stats = stats.NewSheet()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[slot]; ok {
		s.touch(m.deps.Now())
		return s, nil
	}
	s := New(slot, save, m.deps.Layout, m.deps.Engine, m.deps.Reactor, m.deps.Logger)
	s.touch(m.deps.Now())
	m.sessions[slot] = s
	m.deps.Logger.Info("session opened", zap.String("slot", slot))
	return s, nil
}

func (m *Manager) fresh(slot string) (*Save, error) {
	state := inventory.NewState(m.deps.Layout)
	if m.deps.Loadout != nil {
		store := inventory.NewStore(state, m.deps.Layout, m.deps.Catalog, m.deps.Logger)
		if _, err := store.Seed(m.deps.Loadout, m.deps.Catalog); err != nil {
			return nil, fmt.Errorf("session: seeding %q: %w", slot, err)
		}
	}
	return &Save{Inventory: state, Stats: stats.NewSheet()}, nil
}

// Save writes the open session for slot to the repository.
func (m *Manager) Save(ctx context.Context, slot string) error {
	s, ok := m.Get(slot)
	if !ok {
		return fmt.Errorf("session: Save %q: %w", slot, ErrSaveNotFound)
	}
	var snap *Save
	_ = s.Do(func(s *Session) error {
		snap = s.Snapshot()
		return nil
	})
	if err := m.deps.Repo.Save(ctx, slot, snap); err != nil {
		m.deps.Logger.Error("writing save", zap.String("slot", slot), zap.Error(err))
		return fmt.Errorf("session: Save %q: %w", slot, err)
	}
	return nil
}

// Close saves and forgets the session for slot. Closing an unopened slot is
// a no-op.
func (m *Manager) Close(ctx context.Context, slot string) error {
	if _, ok := m.Get(slot); !ok {
		return nil
	}
	if err := m.Save(ctx, slot); err != nil {
		return err
	}
	m.mu.Lock()
	s, ok := m.sessions[slot]
	delete(m.sessions, slot)
	m.mu.Unlock()
	if ok {
		_ = s.Do(func(s *Session) error {
			s.close()
			return nil
		})
	}
	return nil
}

// CloseAll saves and closes every open session, returning the first error.
func (m *Manager) CloseAll(ctx context.Context) error {
	var first error
	for _, slot := range m.Slots() {
		if err := m.Close(ctx, slot); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// EvictIdle saves and closes every session not looked up within the idle
// timeout and returns how many it closed. A session whose save fails stays
// open and the first such error is returned.
//
// The manager lock is held throughout so a concurrent Open either sees the
// session before it is evicted or loads the save written here.
func (m *Manager) EvictIdle(ctx context.Context) (int, error) {
	if m.deps.IdleTimeout <= 0 {
		return 0, nil
	}
	cutoff := m.deps.Now().Add(-m.deps.IdleTimeout)

	m.mu.Lock()
	defer m.mu.Unlock()
	var (
		evicted int
		first   error
	)
	for slot, s := range m.sessions {
		if !s.idleSince(cutoff) {
			continue
		}
		var snap *Save
		_ = s.Do(func(s *Session) error {
			snap = s.Snapshot()
			return nil
		})
		if err := m.deps.Repo.Save(ctx, slot, snap); err != nil {
			m.deps.Logger.Error("writing idle save", zap.String("slot", slot), zap.Error(err))
			if first == nil {
				first = fmt.Errorf("session: evicting %q: %w", slot, err)
			}
			continue
		}
		delete(m.sessions, slot)
		_ = s.Do(func(s *Session) error {
			s.close()
			return nil
		})
		evicted++
		m.deps.Logger.Info("session evicted", zap.String("slot", slot))
	}
	return evicted, first
}

// Sweep calls EvictIdle every interval until ctx ends. With eviction
// disabled it only waits for ctx.
func (m *Manager) Sweep(ctx context.Context, interval time.Duration) error {
	if m.deps.IdleTimeout <= 0 || interval <= 0 {
		<-ctx.Done()
		return nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := m.EvictIdle(ctx); err != nil {
				m.deps.Logger.Warn("idle sweep incomplete", zap.Error(err))
			}
		}
	}
}

// Slots returns the open slot names in lexical order.
func (m *Manager) Slots() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	slots := make([]string, 0, len(m.sessions))
	for slot := range m.sessions {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots
}
