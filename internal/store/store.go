package store

import (
	"context"

	"github.com/fweber/routine/internal/model"
)

// Store is the persistence gateway consumed by the tree engine, catalog,
// and settings consumers. It exposes three independent record collections
// (lists, items, settings) keyed by id, with a secondary lookup of items
// by owning list.
//
// Put operations are insert-or-replace by id. Delete operations
// acknowledge without error when the id is unknown; not-found handling is
// the caller's concern. Read/write failures of the underlying store are
// returned to the caller, which owns any retry policy.
type Store interface {
	// Lists, ascending by order.
	GetAllLists(ctx context.Context) ([]model.List, error)
	PutList(ctx context.Context, l model.List) error

	// DeleteList removes the list together with every item whose ListID
	// matches, and their attachments, in a single transaction.
	DeleteList(ctx context.Context, id string) error

	// Items of one list, ascending by order, attachments populated.
	GetItemsForList(ctx context.Context, listID string) ([]model.Item, error)
	PutItem(ctx context.Context, it model.Item) error
	DeleteItem(ctx context.Context, id string) error

	// Settings. GetSetting returns fallback when the key has never been
	// written.
	GetSetting(ctx context.Context, key, fallback string) (string, error)
	SetSetting(ctx context.Context, key, value string) error

	Close() error
}
