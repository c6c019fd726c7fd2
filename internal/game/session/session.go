// Package session owns the live saves: one inventory aggregate, character
// sheet and presentation cache per slot, serialized behind a mutex.
package session

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
	"github.com/cory-johannsen/paperdoll/internal/game/presentation"
	"github.com/cory-johannsen/paperdoll/internal/game/stats"
	"github.com/cory-johannsen/paperdoll/internal/scripting"
)

// Reactor produces a line of character dialogue for a read change.
type Reactor interface {
	React(info scripting.ReactionInfo) (string, error)
}

// Session is one open save.
//
// Every method except Do assumes the caller is inside Do or otherwise owns
// the session exclusively.
type Session struct {
	mu sync.Mutex

	slot    string
	store   *inventory.Store
	sheet   *stats.Sheet
	engine  *presentation.Engine
	cache   *presentation.Cache
	reactor Reactor
	logger  *zap.Logger
	stop    func()

	public    bool
	lastLabel presentation.Label

	// lastUsed is the unix-nano time of the latest Manager lookup.
	lastUsed atomic.Int64
}

// New assembles a session around an already normalized save.
//
// Precondition: save.Inventory and save.Stats non-nil; engine and logger non-nil.
// Postcondition: the presentation cache observes the store.
func New(slot string, save *Save, layout inventory.Layout, engine *presentation.Engine, reactor Reactor, logger *zap.Logger) *Session {
	store := inventory.NewStore(save.Inventory, layout, engine.Catalog(), logger.With(zap.String("slot", slot)))
	save.Stats.Normalize()
	s := &Session{
		slot:    slot,
		store:   store,
		sheet:   save.Stats,
		engine:  engine,
		reactor: reactor,
		logger:  logger,
	}
	s.cache = presentation.NewCache(engine, func() []string { return []string(store.State().Equipped) })
	s.stop = s.cache.Observe(store)
	return s
}

// Do runs fn with exclusive access to the session.
func (s *Session) Do(fn func(*Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

// Slot returns the save slot name.
func (s *Session) Slot() string { return s.slot }

// Store returns the inventory store.
func (s *Session) Store() *inventory.Store { return s.store }

// Stats returns the character sheet.
func (s *Session) Stats() *stats.Sheet { return s.sheet }

// Engine returns the presentation engine.
func (s *Session) Engine() *presentation.Engine { return s.engine }

// Cache returns the presentation cache.
func (s *Session) Cache() *presentation.Cache { return s.cache }

// Public reports whether the character is out in public.
func (s *Session) Public() bool { return s.public }

// SetPublic moves the character in or out of public.
func (s *Session) SetPublic(public bool) { s.public = public }

// Context returns the evaluation context for the current sheet and place.
func (s *Session) Context() presentation.Context {
	return presentation.Context{Public: s.public, Stats: s.sheet.Presentation()}
}

// Presentation returns the cached result for what is currently worn.
func (s *Session) Presentation() presentation.Result {
	return s.cache.Get(s.Context())
}

// Use consumes the item at loc and applies its effects to the sheet.
func (s *Session) Use(loc inventory.Location) (inventory.UseResult, error) {
	return s.store.Use(loc, s.sheet)
}

// Reaction fires the reaction hook when the read label changed since the
// previous call. The first call only records the label. A failing hook is
// logged and yields "".
func (s *Session) Reaction() string {
	r := s.Presentation()
	prev := s.lastLabel
	if r.ReadLabel == prev {
		return ""
	}
	s.lastLabel = r.ReadLabel
	if prev == "" || s.reactor == nil {
		return ""
	}
	line, err := s.reactor.React(scripting.ReactionInfo{
		Label:         string(r.ReadLabel),
		PreviousLabel: string(prev),
		Score:         r.Score,
		DisplayScore:  r.DisplayScore,
		PassChance:    r.PassChance,
		Exposed:       r.IsExposedPublic,
		Outfit:        string(s.engine.Outfit([]string(s.store.State().Equipped)).State),
	})
	if err != nil {
		s.logger.Warn("reaction failed", zap.String("slot", s.slot), zap.Error(err))
		return ""
	}
	return line
}

// Snapshot copies the persistable state.
func (s *Session) Snapshot() *Save {
	return &Save{Inventory: s.store.State().Clone(), Stats: s.sheet.Clone()}
}

func (s *Session) touch(now time.Time) { s.lastUsed.Store(now.UnixNano()) }

func (s *Session) idleSince(cutoff time.Time) bool {
	return s.lastUsed.Load() < cutoff.UnixNano()
}

func (s *Session) close() {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}
