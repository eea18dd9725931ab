package store

import (
	"context"
	"fmt"

	"github.com/fweber/routine/internal/model"
)

// GetAllLists retrieves every list, ascending by sort order.
func (s *SQLiteStore) GetAllLists(ctx context.Context) ([]model.List, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, title, color, sort_order FROM lists ORDER BY sort_order",
	)
	if err != nil {
		return nil, fmt.Errorf("querying lists: %w", err)
	}
	defer rows.Close()

	var lists []model.List
	for rows.Next() {
		var l model.List
		if err := rows.Scan(&l.ID, &l.Title, &l.Color, &l.Order); err != nil {
			return nil, fmt.Errorf("scanning list row: %w", err)
		}
		lists = append(lists, l)
	}

	return lists, rows.Err()
}

// PutList inserts or replaces a list by id.
func (s *SQLiteStore) PutList(ctx context.Context, l model.List) error {
	if l.ID == "" {
		return fmt.Errorf("list id must not be empty")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO lists (id, title, color, sort_order)
		VALUES (?, ?, ?, ?)`,
		l.ID, l.Title, l.Color, l.Order,
	)
	if err != nil {
		return fmt.Errorf("putting list %s: %w", l.ID, err)
	}
	return nil
}

// DeleteList removes a list and every item belonging to it in a single
// transaction. Attachments of those items cascade with them.
func (s *SQLiteStore) DeleteList(ctx context.Context, id string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM items WHERE list_id = ?", id,
	); err != nil {
		return fmt.Errorf("deleting items of list %s: %w", id, err)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM lists WHERE id = ?", id,
	); err != nil {
		return fmt.Errorf("deleting list %s: %w", id, err)
	}

	return tx.Commit()
}
