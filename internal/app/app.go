package app

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fweber/routine/internal/alarm"
	"github.com/fweber/routine/internal/catalog"
	"github.com/fweber/routine/internal/keys"
	"github.com/fweber/routine/internal/model"
	"github.com/fweber/routine/internal/store"
	"github.com/fweber/routine/internal/theme"
	"github.com/fweber/routine/internal/timer"
	"github.com/fweber/routine/internal/tree"
	"github.com/fweber/routine/internal/ui"
	"github.com/fweber/routine/internal/ui/attachform"
	"github.com/fweber/routine/internal/ui/durationform"
	"github.com/fweber/routine/internal/ui/itemview"
	"github.com/fweber/routine/internal/ui/listform"
	"github.com/fweber/routine/internal/ui/listpicker"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewLists ViewState = iota
	ViewItems
	ViewListForm
	ViewDurationForm
	ViewAttachForm
)

// Model is the root Bubble Tea model that manages view routing, layout,
// the open list session, and the countdown runner.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	store        *store.SQLiteStore
	catalog      *catalog.Catalog
	cfg          *model.AppConfig
	keys         *keys.KeyMap

	picker       listpicker.Model
	items        itemview.Model
	listFormView listform.Model
	durationView durationform.Model
	attachView   attachform.Model

	timers *timer.Runner
	bell   *alarm.Bell

	// editingList holds the list being edited so the submit handler can
	// preserve fields the form does not expose.
	editingList model.List

	// pendingDelete holds the list awaiting y/n delete confirmation.
	pendingDelete model.List
	confirmDelete bool

	hasSession bool
	ready      bool
	status     string
}

// New creates the root application model.
func New(s *store.SQLiteStore, cfg *model.AppConfig, bell *alarm.Bell) Model {
	k := keys.DefaultKeyMap()
	c := catalog.New(s)
	interval := time.Duration(cfg.Timer.TickIntervalMs) * time.Millisecond

	return Model{
		currentView:  ViewLists,
		store:        s,
		catalog:      c,
		cfg:          cfg,
		keys:         k,
		picker:       listpicker.New(c, k, 80, 24),
		listFormView: listform.New(80, 24),
		durationView: durationform.New(80, 24),
		attachView:   attachform.New(80, 24),
		timers:       timer.NewRunner(interval),
		bell:         bell,
	}
}

// Init loads the catalog and arms the countdown event pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.picker.Init(),
		m.timers.WaitForNextEvent(),
	)
}

// Update handles messages and dispatches to the active view. Tree and
// catalog mutations run synchronously inside Update, so every operation
// observes the previous one's completed write.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
		m.picker.SetSize(w, h)
		m.listFormView.SetSize(w, h)
		m.durationView.SetSize(w, h)
		m.attachView.SetSize(w, h)
		if m.hasSession {
			m.items.SetSize(w, h)
		}
		// Forward to the active view so huh forms can size themselves.
		return m.updateActiveView(msg)

	case listpicker.SelectedListMsg:
		return m.openList(msg.List.ID)

	case itemview.BackMsg:
		// Leaving a list cancels its countdowns; stored durations stay.
		m.timers.StopAll()
		m.hasSession = false
		m.currentView = ViewLists
		m.status = ""
		return m, m.picker.LoadLists()

	case itemview.DurationRequestMsg:
		m.previousView = m.currentView
		m.currentView = ViewDurationForm
		return m, m.durationView.Start(msg.ItemID, msg.Minutes, msg.Seconds)

	case itemview.AttachRequestMsg:
		m.previousView = m.currentView
		m.currentView = ViewAttachForm
		return m, m.attachView.Start(msg.ItemID)

	case durationform.DurationSubmittedMsg:
		m.currentView = ViewItems
		if m.hasSession {
			err := m.items.Session().EditDuration(
				context.Background(), msg.ItemID, msg.Minutes, msg.Seconds,
			)
			if err != nil {
				m.status = err.Error()
			}
		}
		return m, nil

	case durationform.DurationFormCancelMsg:
		m.currentView = ViewItems
		return m, nil

	case attachform.AttachSubmittedMsg:
		m.currentView = ViewItems
		m.attachFile(msg)
		return m, nil

	case attachform.AttachFormCancelMsg:
		m.currentView = ViewItems
		return m, nil

	case listform.ListCreatedMsg:
		m.currentView = ViewLists
		if _, err := m.catalog.Create(context.Background(), msg.Title, msg.Color); err != nil {
			m.status = err.Error()
		}
		return m, m.picker.LoadLists()

	case listform.ListUpdatedMsg:
		m.currentView = ViewLists
		updated := m.editingList
		updated.Title = msg.Title
		updated.Color = msg.Color
		if err := m.catalog.Update(context.Background(), updated); err != nil {
			m.status = err.Error()
		}
		return m, m.picker.LoadLists()

	case listform.ListFormCancelMsg:
		m.currentView = ViewLists
		return m, nil

	case timer.TickMsg:
		// Remaining time is read straight off the runner at render time;
		// the tick only forces a redraw and re-arms the pump.
		return m, m.timers.WaitForNextEvent()

	case timer.ExpiredMsg:
		m.bell.Ring()
		if m.hasSession {
			if it, ok := m.items.Session().Get(msg.ItemID); ok {
				m.status = fmt.Sprintf("Time's up: %s", it.Text)
			}
		}
		return m, m.timers.WaitForNextEvent()

	case tea.KeyMsg:
		if m.confirmDelete {
			return m.updateDeleteConfirm(msg.String())
		}

		// Global keys that work regardless of current view.
		switch msg.String() {
		case "ctrl+c":
			m.timers.StopAll()
			return m, tea.Quit

		case "q":
			if m.currentView == ViewLists {
				m.timers.StopAll()
				return m, tea.Quit
			}

		case "n":
			if m.currentView == ViewLists {
				m.previousView = m.currentView
				m.currentView = ViewListForm
				return m, m.listFormView.StartCreate()
			}

		case "e":
			if m.currentView == ViewLists {
				l, ok := m.picker.Selected()
				if !ok {
					return m, nil
				}
				m.editingList = l
				m.previousView = m.currentView
				m.currentView = ViewListForm
				return m, m.listFormView.StartEdit(l)
			}

		case "d":
			if m.currentView == ViewLists {
				l, ok := m.picker.Selected()
				if !ok {
					return m, nil
				}
				m.pendingDelete = l
				m.confirmDelete = true
				m.status = fmt.Sprintf("Delete %q and all its items? (y/n)", l.Title)
				return m, nil
			}
		}
	}

	return m.updateActiveView(msg)
}

// updateDeleteConfirm resolves a pending list deletion on y/n input.
func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		m.confirmDelete = false
		if err := m.catalog.Delete(context.Background(), m.pendingDelete.ID); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("Deleted %q", m.pendingDelete.Title)
		}
		m.pendingDelete = model.List{}
		return m, m.picker.LoadLists()
	case "n", "N", "esc":
		m.confirmDelete = false
		m.pendingDelete = model.List{}
		m.status = "Delete cancelled"
		return m, nil
	default:
		return m, nil
	}
}

// openList loads the list's item tree and switches to the item view.
func (m Model) openList(listID string) (tea.Model, tea.Cmd) {
	s, err := tree.Open(context.Background(), m.store, listID)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	s.SetShowCompleted(m.cfg.Display.ShowCompleted)

	m.items = itemview.New(s, m.timers, m.keys,
		m.layout.ContentWidth(), m.layout.ContentHeight())
	m.hasSession = true
	m.currentView = ViewItems
	m.status = ""
	return m, nil
}

// attachFile reads the submitted file and stores it on the item. A path
// that cannot be read surfaces in the status bar without modifying the
// item.
func (m *Model) attachFile(msg attachform.AttachSubmittedMsg) {
	if !m.hasSession {
		return
	}

	path := expandPath(msg.Path)
	data, err := os.ReadFile(path)
	if err != nil {
		m.status = fmt.Sprintf("cannot read %s", path)
		return
	}

	att := model.Attachment{
		Kind: msg.Kind,
		Name: filepath.Base(path),
		Mime: mime.TypeByExtension(filepath.Ext(path)),
		Data: data,
	}
	err = m.items.Session().AddAttachment(context.Background(), msg.ItemID, att)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("Attached %s", att.Name)
}

// expandPath resolves a leading ~ to the user's home directory.
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewLists:
		m.picker, cmd = m.picker.Update(msg)
	case ViewItems:
		if m.hasSession {
			m.items, cmd = m.items.Update(msg)
		}
	case ViewListForm:
		m.listFormView, cmd = m.listFormView.Update(msg)
	case ViewDurationForm:
		m.durationView, cmd = m.durationView.Update(msg)
	case ViewAttachForm:
		m.attachView, cmd = m.attachView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader(m.headerTitle(), m.timerStatus())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.statusLine())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// headerTitle names the current view: the open list, or the app itself.
func (m Model) headerTitle() string {
	if m.currentView == ViewItems && m.hasSession {
		l := m.items.Session().List()
		return fmt.Sprintf("%s %s", theme.ListDot(l.Color), l.Title)
	}
	return "Routine"
}

// timerStatus summarizes running countdowns for the header's right side.
func (m Model) timerStatus() string {
	n := m.timers.ActiveCount()
	if n == 0 {
		return ""
	}
	if n == 1 {
		return "1 timer"
	}
	return fmt.Sprintf("%d timers", n)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewLists:
		return m.picker.View()
	case ViewItems:
		if m.hasSession {
			return m.items.View()
		}
		return ""
	case ViewListForm:
		return m.listFormView.View()
	case ViewDurationForm:
		return m.durationView.View()
	case ViewAttachForm:
		return m.attachView.View()
	default:
		return ""
	}
}

// statusLine picks the most relevant feedback for the status bar:
// operation feedback first, key hints otherwise.
func (m Model) statusLine() string {
	if m.status != "" {
		return m.status
	}
	if m.currentView == ViewItems && m.items.Status() != "" {
		return m.items.Status()
	}
	return m.keyHints()
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewItems:
		if m.items.Editing() {
			return "enter save | esc cancel"
		}
		return "n new | enter edit | x done | tab indent | t/s/S/m timer | a attach | d delete | esc back"
	case ViewListForm, ViewDurationForm, ViewAttachForm:
		return "enter submit | esc cancel"
	default:
		return "enter open | n new | e edit | d delete | q quit"
	}
}
