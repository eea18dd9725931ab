package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fweber/routine/internal/model"
)

// GetItemsForList retrieves all items of one list, ascending by sort
// order, with their attachments populated in insertion order.
func (s *SQLiteStore) GetItemsForList(
	ctx context.Context,
	listID string,
) ([]model.Item, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, list_id, parent_id, depth, sort_order, text,
		       completed, timer_enabled, last_duration_sec
		FROM items WHERE list_id = ? ORDER BY sort_order`,
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying items for list %s: %w", listID, err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Load attachments for each item.
	for i := range items {
		atts, err := s.getAttachments(ctx, items[i].ID)
		if err != nil {
			return nil, fmt.Errorf("loading attachments for item %s: %w", items[i].ID, err)
		}
		items[i].Attachments = atts
	}

	return items, nil
}

// PutItem inserts or replaces an item record by id, including its
// attachment sequence, in a single transaction.
func (s *SQLiteStore) PutItem(ctx context.Context, it model.Item) error {
	if it.ID == "" {
		return fmt.Errorf("item id must not be empty")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO items (
			id, list_id, parent_id, depth, sort_order, text,
			completed, timer_enabled, last_duration_sec
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.ListID, it.ParentID, it.Depth, it.Order, it.Text,
		boolToInt(it.Completed), boolToInt(it.TimerEnabled), it.LastDurationSec,
	)
	if err != nil {
		return fmt.Errorf("putting item %s: %w", it.ID, err)
	}

	// The attachment sequence is part of the record: replace it wholesale.
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM attachments WHERE item_id = ?", it.ID,
	); err != nil {
		return fmt.Errorf("clearing attachments of item %s: %w", it.ID, err)
	}

	for pos, a := range it.Attachments {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO attachments (id, item_id, kind, name, mime, data, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.ID, it.ID, a.Kind, a.Name, a.Mime, a.Data, pos,
		)
		if err != nil {
			return fmt.Errorf("putting attachment %s: %w", a.ID, err)
		}
	}

	return tx.Commit()
}

// DeleteItem removes a single item by id. Its attachments cascade with it.
// Deleting an unknown id is acknowledged without error.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM items WHERE id = ?", id,
	); err != nil {
		return fmt.Errorf("deleting item %s: %w", id, err)
	}
	return nil
}

// getAttachments returns the attachment sequence of one item in insertion
// order.
func (s *SQLiteStore) getAttachments(
	ctx context.Context,
	itemID string,
) ([]model.Attachment, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, kind, name, mime, data
		FROM attachments WHERE item_id = ? ORDER BY position`,
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying attachments: %w", err)
	}
	defer rows.Close()

	var atts []model.Attachment
	for rows.Next() {
		var a model.Attachment
		if err := rows.Scan(&a.ID, &a.Kind, &a.Name, &a.Mime, &a.Data); err != nil {
			return nil, fmt.Errorf("scanning attachment row: %w", err)
		}
		atts = append(atts, a)
	}

	return atts, rows.Err()
}

// scanItem scans an item row from a sqlx.Rows result set.
func scanItem(rows *sqlx.Rows) (model.Item, error) {
	var (
		it           model.Item
		parentID     *string
		completed    int
		timerEnabled int
	)

	err := rows.Scan(
		&it.ID, &it.ListID, &parentID, &it.Depth, &it.Order, &it.Text,
		&completed, &timerEnabled, &it.LastDurationSec,
	)
	if err != nil {
		return model.Item{}, fmt.Errorf("scanning item row: %w", err)
	}

	it.ParentID = parentID
	it.Completed = completed != 0
	it.TimerEnabled = timerEnabled != 0

	return it, nil
}
