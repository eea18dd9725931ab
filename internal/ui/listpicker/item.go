package listpicker

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fweber/routine/internal/model"
	"github.com/fweber/routine/internal/theme"
)

// ListEntry wraps a model.List so it can be used in a bubbles/list.
type ListEntry struct {
	List model.List
}

// FilterValue returns the string used for fuzzy filtering.
func (e ListEntry) FilterValue() string { return e.List.Title }

// EntryDelegate implements list.ItemDelegate for rendering list entries.
type EntryDelegate struct{}

// Height returns the number of lines each entry takes.
func (d EntryDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between entries.
func (d EntryDelegate) Spacing() int { return 0 }

// Update handles per-entry messages (unused).
func (d EntryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single list entry line: color dot plus title.
func (d EntryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(ListEntry)
	if !ok {
		return
	}

	line := fmt.Sprintf("%s %s", theme.ListDot(entry.List.Color), entry.List.Title)

	if index == m.Index() {
		line = theme.SelectedRowStyle.Render(line)
	} else {
		line = theme.RowStyle.Render(line)
	}

	fmt.Fprint(w, line)
}
