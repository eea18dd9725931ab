// Package catalog provides CRUD over top-level lists and first-run
// seeding. Deleting a list cascades to its items at the gateway.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/fweber/routine/internal/model"
	"github.com/fweber/routine/internal/store"
)

// Settings owned by the catalog.
const (
	SettingAlarmSound = "alarm_sound"
	DefaultAlarmSound = "soft"
)

// Fallbacks for blank list fields.
const (
	defaultTitle = "Untitled"
	defaultColor = "#4aa3ff"
)

// Catalog manages the collection of lists.
type Catalog struct {
	store store.Store
}

// New creates a Catalog backed by the given store.
func New(st store.Store) *Catalog {
	return &Catalog{store: st}
}

// Lists returns every list, ascending by order.
func (c *Catalog) Lists(ctx context.Context) ([]model.List, error) {
	return c.store.GetAllLists(ctx)
}

// Create inserts a new list at the end of the catalog order.
func (c *Catalog) Create(ctx context.Context, title, color string) (model.List, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = defaultTitle
	}
	color = strings.TrimSpace(color)
	if color == "" {
		color = defaultColor
	}

	lists, err := c.store.GetAllLists(ctx)
	if err != nil {
		return model.List{}, fmt.Errorf("loading lists: %w", err)
	}

	order := 1
	if len(lists) > 0 {
		order = lists[len(lists)-1].Order + 1
	}

	l := model.List{
		ID:    store.NewID(),
		Title: title,
		Color: color,
		Order: order,
	}
	if err := c.store.PutList(ctx, l); err != nil {
		return model.List{}, fmt.Errorf("creating list: %w", err)
	}
	return l, nil
}

// Update replaces the list record, falling back to defaults for blank
// display fields.
func (c *Catalog) Update(ctx context.Context, l model.List) error {
	if strings.TrimSpace(l.Title) == "" {
		l.Title = defaultTitle
	}
	if strings.TrimSpace(l.Color) == "" {
		l.Color = defaultColor
	}
	return c.store.PutList(ctx, l)
}

// Delete removes the list and, via the gateway cascade, every item that
// belongs to it.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	return c.store.DeleteList(ctx, id)
}

// Seed creates the two default lists on a first run (when no lists exist)
// and makes sure the alarm sound setting is present.
func (c *Catalog) Seed(ctx context.Context) error {
	lists, err := c.store.GetAllLists(ctx)
	if err != nil {
		return fmt.Errorf("loading lists: %w", err)
	}

	if len(lists) == 0 {
		defaults := []model.List{
			{ID: store.NewID(), Title: "To-dos", Color: "#4aa3ff", Order: 1},
			{ID: store.NewID(), Title: "Sport", Color: "#78d353", Order: 2},
		}
		for _, l := range defaults {
			if err := c.store.PutList(ctx, l); err != nil {
				return fmt.Errorf("seeding list %s: %w", l.Title, err)
			}
		}
	}

	sound, err := c.store.GetSetting(ctx, SettingAlarmSound, "")
	if err != nil {
		return fmt.Errorf("reading alarm sound setting: %w", err)
	}
	if sound == "" {
		if err := c.store.SetSetting(ctx, SettingAlarmSound, DefaultAlarmSound); err != nil {
			return fmt.Errorf("seeding alarm sound setting: %w", err)
		}
	}

	return nil
}
