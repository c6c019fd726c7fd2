package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
	"github.com/cory-johannsen/paperdoll/internal/game/stats"
)

var (
	// ErrSaveNotFound is returned by a Repository when no save exists for a slot.
	ErrSaveNotFound = errors.New("save not found")
	// ErrInvalidSlot is returned for a slot name outside [A-Za-z0-9_-]{1,64}.
	ErrInvalidSlot = errors.New("invalid save slot")
)

var slotPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidateSlot reports whether slot is usable as a save key.
func ValidateSlot(slot string) error {
	if !slotPattern.MatchString(slot) {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	return nil
}

// Save is the persisted document of one save slot: raw item ids, sets and
// filter, plus the character sheet. Derived presentation data is never stored.
type Save struct {
	Inventory *inventory.State `json:"inventory"`
	Stats     *stats.Sheet     `json:"stats"`
}

// Repository loads and stores saves by slot.
type Repository interface {
	// Load returns ErrSaveNotFound (possibly wrapped) when slot has no save.
	Load(ctx context.Context, slot string) (*Save, error)
	Save(ctx context.Context, slot string, s *Save) error
}

// MemoryRepository keeps saves in process. Documents are stored encoded so
// callers never share memory with the repository.
type MemoryRepository struct {
	mu    sync.RWMutex
	saves map[string][]byte
}

// NewMemoryRepository creates an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{saves: make(map[string][]byte)}
}

// Load implements Repository.
func (r *MemoryRepository) Load(_ context.Context, slot string) (*Save, error) {
	r.mu.RLock()
	raw, ok := r.saves[slot]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session: Load %q: %w", slot, ErrSaveNotFound)
	}
	var s Save
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("session: Load %q: %w", slot, err)
	}
	return &s, nil
}

// Save implements Repository.
func (r *MemoryRepository) Save(_ context.Context, slot string, s *Save) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: Save %q: %w", slot, err)
	}
	r.mu.Lock()
	r.saves[slot] = raw
	r.mu.Unlock()
	return nil
}

// List returns the stored slots in lexical order.
func (r *MemoryRepository) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	slots := make([]string, 0, len(r.saves))
	for slot := range r.saves {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots, nil
}
