// Package listpicker is the lists overview: the catalog rendered as a
// selectable list of colored entries.
package listpicker

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fweber/routine/internal/catalog"
	"github.com/fweber/routine/internal/keys"
	"github.com/fweber/routine/internal/model"
	"github.com/fweber/routine/internal/theme"
)

// ListsLoadedMsg is sent when the catalog has been loaded.
type ListsLoadedMsg struct {
	Lists []model.List
}

// SelectedListMsg is sent when the user opens a list.
type SelectedListMsg struct {
	List model.List
}

// Model is the lists overview component.
type Model struct {
	list    list.Model
	catalog *catalog.Catalog
	keys    *keys.KeyMap
	width   int
	height  int
}

// New creates a new lists overview model.
func New(c *catalog.Catalog, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, EntryDelegate{}, width, height-2)
	l.Title = "Lists"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	return Model{
		list:    l,
		catalog: c,
		keys:    k,
		width:   width,
		height:  height,
	}
}

// Init returns a command that loads the catalog.
func (m Model) Init() tea.Cmd {
	return m.LoadLists()
}

// LoadLists returns a command that reads every list from the catalog.
func (m Model) LoadLists() tea.Cmd {
	c := m.catalog
	return func() tea.Msg {
		lists, err := c.Lists(context.Background())
		if err != nil {
			return ListsLoadedMsg{}
		}
		return ListsLoadedMsg{Lists: lists}
	}
}

// Update handles messages for the lists overview.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ListsLoadedMsg:
		items := make([]list.Item, len(msg.Lists))
		for i, l := range msg.Lists {
			items[i] = ListEntry{List: l}
		}
		return m, m.list.SetItems(items)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Select) {
			entry, ok := m.list.SelectedItem().(ListEntry)
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg {
				return SelectedListMsg{List: entry.List}
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// Selected returns the currently highlighted list, if any.
func (m Model) Selected() (model.List, bool) {
	entry, ok := m.list.SelectedItem().(ListEntry)
	if !ok {
		return model.List{}, false
	}
	return entry.List, true
}

// SetSize resizes the component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
}

// View renders the lists overview.
func (m Model) View() string {
	return m.list.View()
}
