package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
	"github.com/cory-johannsen/paperdoll/internal/game/session"
	"github.com/cory-johannsen/paperdoll/internal/game/stats"
)

// SaveRepository stores saves in the saves and item_sets tables.
type SaveRepository struct {
	db *pgxpool.Pool
}

// NewSaveRepository creates a SaveRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool with the schema migrated.
func NewSaveRepository(db *pgxpool.Pool) *SaveRepository {
	return &SaveRepository{db: db}
}

// Load implements session.Repository.
//
// Postcondition: Returns the save or an error wrapping session.ErrSaveNotFound.
func (r *SaveRepository) Load(ctx context.Context, slot string) (*session.Save, error) {
	var equipped, inv, wardrobe, filter, sheet []byte
	err := r.db.QueryRow(ctx, `
		SELECT equipped, inventory, wardrobe, filter, stats
		FROM saves WHERE slot = $1`,
		slot,
	).Scan(&equipped, &inv, &wardrobe, &filter, &sheet)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("postgres: Load %q: %w", slot, session.ErrSaveNotFound)
		}
		return nil, fmt.Errorf("postgres: Load %q: %w", slot, err)
	}

	state := &inventory.State{}
	out := &session.Save{Inventory: state, Stats: &stats.Sheet{}}
	for _, col := range []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"equipped", equipped, &state.Equipped},
		{"inventory", inv, &state.Inventory},
		{"wardrobe", wardrobe, &state.Wardrobe},
		{"filter", filter, &state.Filter},
		{"stats", sheet, out.Stats},
	} {
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return nil, fmt.Errorf("postgres: Load %q: decoding %s: %w", slot, col.name, err)
		}
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, items FROM item_sets
		WHERE slot = $1 ORDER BY position ASC`,
		slot,
	)
	if err != nil {
		return nil, fmt.Errorf("postgres: Load %q: listing sets: %w", slot, err)
	}
	defer rows.Close()

	state.Sets = []inventory.ItemSet{}
	for rows.Next() {
		var set inventory.ItemSet
		var items []byte
		if err := rows.Scan(&set.ID, &set.Name, &items); err != nil {
			return nil, fmt.Errorf("postgres: Load %q: scanning set: %w", slot, err)
		}
		if err := json.Unmarshal(items, &set.Items); err != nil {
			return nil, fmt.Errorf("postgres: Load %q: decoding set %q: %w", slot, set.ID, err)
		}
		state.Sets = append(state.Sets, set)
	}
	return out, rows.Err()
}

// Save implements session.Repository. The save row is upserted and its sets
// replaced in one transaction.
func (r *SaveRepository) Save(ctx context.Context, slot string, s *session.Save) error {
	cols := make([][]byte, 0, 5)
	for _, v := range []any{s.Inventory.Equipped, s.Inventory.Inventory, s.Inventory.Wardrobe, s.Inventory.Filter, s.Stats} {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("postgres: Save %q: %w", slot, err)
		}
		cols = append(cols, raw)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: Save %q: begin: %w", slot, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `
		INSERT INTO saves (slot, equipped, inventory, wardrobe, filter, stats, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (slot) DO UPDATE SET
			equipped = EXCLUDED.equipped,
			inventory = EXCLUDED.inventory,
			wardrobe = EXCLUDED.wardrobe,
			filter = EXCLUDED.filter,
			stats = EXCLUDED.stats,
			updated_at = NOW()`,
		slot, cols[0], cols[1], cols[2], cols[3], cols[4],
	); err != nil {
		return fmt.Errorf("postgres: Save %q: upserting save: %w", slot, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM item_sets WHERE slot = $1`, slot); err != nil {
		return fmt.Errorf("postgres: Save %q: clearing sets: %w", slot, err)
	}

	batch := &pgx.Batch{}
	for i, set := range s.Inventory.Sets {
		items, err := json.Marshal(set.Items)
		if err != nil {
			return fmt.Errorf("postgres: Save %q: %w", slot, err)
		}
		batch.Queue(`INSERT INTO item_sets (slot, id, name, items, position) VALUES ($1, $2, $3, $4, $5)`,
			slot, set.ID, set.Name, items, i)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("postgres: Save %q: inserting sets: %w", slot, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: Save %q: commit: %w", slot, err)
	}
	return nil
}

// List returns every stored slot in lexical order.
func (r *SaveRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT slot FROM saves ORDER BY slot ASC`)
	if err != nil {
		return nil, fmt.Errorf("postgres: List: %w", err)
	}
	defer rows.Close()
	slots, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("postgres: List: %w", err)
	}
	return slots, nil
}

// Delete removes a save and its sets.
//
// Postcondition: Returns an error wrapping session.ErrSaveNotFound if no row was deleted.
func (r *SaveRepository) Delete(ctx context.Context, slot string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM saves WHERE slot = $1`, slot)
	if err != nil {
		return fmt.Errorf("postgres: Delete %q: %w", slot, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("postgres: Delete %q: %w", slot, session.ErrSaveNotFound)
	}
	return nil
}
