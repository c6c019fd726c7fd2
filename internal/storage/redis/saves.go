package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/cory-johannsen/paperdoll/internal/game/session"
)

const (
	saveKeyPrefix = "save:"
	indexKey      = "saves"
)

// SaveRepository keeps each save under <prefix>save:<slot> and indexes the
// slots in the set <prefix>saves.
type SaveRepository struct {
	client Client
	prefix string
}

// NewSaveRepository creates a SaveRepository. prefix namespaces every key.
//
// Precondition: client must be non-nil.
func NewSaveRepository(client Client, prefix string) *SaveRepository {
	return &SaveRepository{client: client, prefix: prefix}
}

func (r *SaveRepository) key(slot string) string { return r.prefix + saveKeyPrefix + slot }
func (r *SaveRepository) index() string          { return r.prefix + indexKey }

// Load implements session.Repository.
func (r *SaveRepository) Load(ctx context.Context, slot string) (*session.Save, error) {
	raw, err := r.client.Get(ctx, r.key(slot)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("redis: Load %q: %w", slot, session.ErrSaveNotFound)
		}
		return nil, fmt.Errorf("redis: Load %q: %w", slot, err)
	}
	var s session.Save
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("redis: Load %q: decoding: %w", slot, err)
	}
	return &s, nil
}

// Save implements session.Repository. The document and index are written
// in one MULTI/EXEC.
func (r *SaveRepository) Save(ctx context.Context, slot string, s *session.Save) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("redis: Save %q: %w", slot, err)
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(slot), raw, 0)
		pipe.SAdd(ctx, r.index(), slot)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis: Save %q: %w", slot, err)
	}
	return nil
}

// List returns every indexed slot in lexical order.
func (r *SaveRepository) List(ctx context.Context) ([]string, error) {
	slots, err := r.client.SMembers(ctx, r.index()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: List: %w", err)
	}
	sort.Strings(slots)
	return slots, nil
}

// Delete removes a save and its index entry.
func (r *SaveRepository) Delete(ctx context.Context, slot string) error {
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, r.key(slot))
		pipe.SRem(ctx, r.index(), slot)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis: Delete %q: %w", slot, err)
	}
	if del.Val() == 0 {
		return fmt.Errorf("redis: Delete %q: %w", slot, session.ErrSaveNotFound)
	}
	return nil
}
