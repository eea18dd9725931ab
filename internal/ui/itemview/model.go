// Package itemview renders one open list: the visible item sequence with
// depth indentation, inline text editing, and per-item countdown pills.
package itemview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fweber/routine/internal/keys"
	"github.com/fweber/routine/internal/model"
	"github.com/fweber/routine/internal/theme"
	"github.com/fweber/routine/internal/timer"
	"github.com/fweber/routine/internal/tree"
)

// BackMsg is sent when the user leaves the item view.
type BackMsg struct{}

// DurationRequestMsg asks the app to open the duration form for an item.
type DurationRequestMsg struct {
	ItemID  string
	Minutes int
	Seconds int
}

// AttachRequestMsg asks the app to open the attachment form for an item.
type AttachRequestMsg struct {
	ItemID string
}

// Model is the open-list view component.
type Model struct {
	session *tree.Session
	timers  *timer.Runner
	keys    *keys.KeyMap

	cursor  int
	editing bool
	// chainNew keeps rapid entry going: committing a freshly created
	// item spawns the next sibling and stays in edit mode.
	chainNew bool
	input    textinput.Model

	status string
	width  int
	height int
}

// New creates an item view over an opened session.
func New(s *tree.Session, t *timer.Runner, k *keys.KeyMap, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "New item"
	ti.Prompt = ""

	return Model{
		session: s,
		timers:  t,
		keys:    k,
		input:   ti,
		width:   width,
		height:  height,
	}
}

// Session exposes the underlying tree session.
func (m Model) Session() *tree.Session {
	return m.session
}

// Status returns the last operation feedback line, if any.
func (m Model) Status() string {
	return m.status
}

// Editing reports whether an inline text edit is in progress.
func (m Model) Editing() bool {
	return m.editing
}

// SetSize resizes the component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 10
}

// Update handles messages for the item view. Tree mutations run
// synchronously: the session is owned by this view and operations are
// sequenced one per key event, so no second mutation is issued before
// the previous write completed.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.handleEditKeys(keyMsg)
	}
	return m.handleNormalKeys(keyMsg)
}

// handleEditKeys processes key input while editing an item's text.
func (m Model) handleEditKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		ctx := context.Background()
		it, ok := m.cursorItem()
		if !ok {
			m.editing = false
			return m, nil
		}
		text := m.input.Value()
		if m.fail(m.session.Update(ctx, it.ID, tree.Patch{Text: &text})) {
			m.editing = false
			return m, nil
		}
		if m.chainNew && text != "" {
			next, err := m.session.Create(ctx, it.ParentID, it.Depth)
			if m.fail(err) {
				m.editing = false
				return m, nil
			}
			m.focusOn(next.ID)
			m.input.SetValue("")
			return m, m.input.Focus()
		}
		m.editing = false
		m.chainNew = false
		return m, nil

	case "esc":
		m.editing = false
		m.chainNew = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleNormalKeys processes key input in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	ctx := context.Background()
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.session.Visible())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Select):
		it, ok := m.cursorItem()
		if !ok {
			return m, nil
		}
		m.editing = true
		m.chainNew = false
		m.input.SetValue(it.Text)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.New):
		// New sibling of the focused item, or a root item when the
		// list is empty.
		var parentID *string
		depth := 0
		if it, ok := m.cursorItem(); ok {
			parentID = it.ParentID
			depth = it.Depth
		}
		created, err := m.session.Create(ctx, parentID, depth)
		if m.fail(err) {
			return m, nil
		}
		m.focusOn(created.ID)
		m.editing = true
		m.chainNew = true
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.cursorItem(); ok {
			done := !it.Completed
			m.fail(m.session.Update(ctx, it.ID, tree.Patch{Completed: &done}))
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.cursorItem(); ok {
			m.timers.Stop(it.ID)
			m.fail(m.session.DeleteDeep(ctx, it.ID))
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.Indent):
		if it, ok := m.cursorItem(); ok {
			m.fail(m.session.Indent(ctx, it.ID))
			m.focusOn(it.ID)
		}

	case key.Matches(msg, m.keys.Outdent):
		if it, ok := m.cursorItem(); ok {
			m.fail(m.session.Outdent(ctx, it.ID))
			m.focusOn(it.ID)
		}

	case key.Matches(msg, m.keys.MoveUp):
		if it, ok := m.cursorItem(); ok {
			m.fail(m.session.Move(ctx, it.ID, -1))
			m.focusOn(it.ID)
		}

	case key.Matches(msg, m.keys.MoveDown):
		if it, ok := m.cursorItem(); ok {
			m.fail(m.session.Move(ctx, it.ID, 1))
			m.focusOn(it.ID)
		}

	case key.Matches(msg, m.keys.TimerToggle):
		if it, ok := m.cursorItem(); ok {
			enabled := !it.TimerEnabled
			if !enabled {
				m.timers.Stop(it.ID)
			}
			m.fail(m.session.Update(ctx, it.ID, tree.Patch{TimerEnabled: &enabled}))
		}

	case key.Matches(msg, m.keys.TimerStart):
		if it, ok := m.cursorItem(); ok && it.TimerEnabled {
			m.timers.Start(it.ID, durationOf(it))
		}

	case key.Matches(msg, m.keys.TimerStop):
		if it, ok := m.cursorItem(); ok {
			m.timers.Stop(it.ID)
		}

	case key.Matches(msg, m.keys.Duration):
		if it, ok := m.cursorItem(); ok && it.TimerEnabled {
			req := DurationRequestMsg{
				ItemID:  it.ID,
				Minutes: it.LastDurationSec / 60,
				Seconds: it.LastDurationSec % 60,
			}
			return m, func() tea.Msg { return req }
		}

	case key.Matches(msg, m.keys.Attach):
		if it, ok := m.cursorItem(); ok {
			req := AttachRequestMsg{ItemID: it.ID}
			return m, func() tea.Msg { return req }
		}

	case key.Matches(msg, m.keys.ShowCompleted):
		m.session.SetShowCompleted(!m.session.ShowCompleted())
		m.clampCursor()

	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return BackMsg{} }
	}

	return m, nil
}

// cursorItem returns the visible item under the cursor.
func (m Model) cursorItem() (model.Item, bool) {
	visible := m.session.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return model.Item{}, false
	}
	return visible[m.cursor], true
}

// focusOn places the cursor on the item with the given id, when visible.
func (m *Model) focusOn(id string) {
	for i, it := range m.session.Visible() {
		if it.ID == id {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

// clampCursor keeps the cursor inside the visible sequence.
func (m *Model) clampCursor() {
	n := len(m.session.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// fail records an operation error in the status line. It returns true
// when err is non-nil so callers can bail out.
func (m *Model) fail(err error) bool {
	if err != nil {
		m.status = err.Error()
		return true
	}
	return false
}

// View renders the visible item sequence.
func (m Model) View() string {
	visible := m.session.Visible()

	var b strings.Builder
	b.WriteString(m.summaryLine(visible))
	b.WriteString("\n")

	if len(visible) == 0 {
		b.WriteString(theme.HelpStyle.Render("  No items yet. Press n"))
		return b.String()
	}

	for i, row := range m.window(visible) {
		idx := i + m.windowStart(len(visible))
		b.WriteString(m.renderRow(row, idx == m.cursor))
		b.WriteString("\n")
	}

	return b.String()
}

// summaryLine renders the active/done counts and the completed filter
// state.
func (m Model) summaryLine(visible []model.Item) string {
	done := 0
	for _, it := range m.session.Items() {
		if it.Completed {
			done++
		}
	}

	label := "H show done"
	if m.session.ShowCompleted() {
		label = "H hide done"
	}
	return theme.HelpStyle.Render(
		fmt.Sprintf("  %d shown • %d done • %s", len(visible), done, label),
	)
}

// window returns the slice of visible rows that fits the viewport.
func (m Model) window(visible []model.Item) []model.Item {
	limit := m.height - 2
	if limit <= 0 || len(visible) <= limit {
		return visible
	}
	start := m.windowStart(len(visible))
	return visible[start : start+limit]
}

// windowStart returns the first visible row index of the viewport,
// keeping the cursor in view.
func (m Model) windowStart(total int) int {
	limit := m.height - 2
	if limit <= 0 || total <= limit {
		return 0
	}
	start := m.cursor - limit/2
	if start < 0 {
		start = 0
	}
	if start > total-limit {
		start = total - limit
	}
	return start
}

// renderRow draws a single item row: indentation, checkbox, text, and
// the countdown/attachment markers.
func (m Model) renderRow(it model.Item, selected bool) string {
	indent := strings.Repeat("  ", it.Depth)

	check := "[ ]"
	if it.Completed {
		check = "[x]"
	}

	text := it.Text
	if selected && m.editing {
		text = m.input.View()
	} else if it.Completed {
		text = theme.CompletedStyle.Render(text)
	}

	line := fmt.Sprintf("%s%s %s", indent, check, text)

	if it.TimerEnabled {
		line += " " + m.timerPill(it)
	}
	if n := len(it.Attachments); n > 0 {
		line += " " + theme.AttachmentStyle.Render(fmt.Sprintf("📎%d", n))
	}

	if selected && !m.editing {
		return theme.SelectedRowStyle.Render(line)
	}
	return theme.RowStyle.Render(line)
}

// timerPill renders the countdown fragment of a row. A running countdown
// shows the live remaining time derived from its deadline; an armed one
// shows the stored duration.
func (m Model) timerPill(it model.Item) string {
	if rem, ok := m.timers.Remaining(it.ID); ok {
		return theme.TimerRunningStyle.Render("⏱ " + fmtSec(rem))
	}
	return theme.TimerPillStyle.Render("⏱ " + fmtSec(it.LastDurationSec))
}

// durationOf returns the item's stored countdown duration.
func durationOf(it model.Item) time.Duration {
	return time.Duration(it.LastDurationSec) * time.Second
}

// fmtSec formats whole seconds as m:ss.
func fmtSec(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}
