// Package durationform edits an item's countdown duration as a
// minutes/seconds pair. The submitted pair is clamped to the supported
// range before it is persisted.
package durationform

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/fweber/routine/internal/theme"
)

// DurationSubmittedMsg is dispatched when the user confirms a new
// duration for an item.
type DurationSubmittedMsg struct {
	ItemID  string
	Minutes int
	Seconds int
}

// DurationFormCancelMsg is dispatched when the user cancels the form.
type DurationFormCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	minutes string
	seconds string
}

// Model is the Bubble Tea model for the duration form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	itemID string
	width  int
	height int
}

// New creates a new duration form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start initializes the form for the given item, pre-filled with its
// current duration.
func (m *Model) Start(itemID string, minutes, seconds int) tea.Cmd {
	m.itemID = itemID
	m.fb.minutes = strconv.Itoa(minutes)
	m.fb.seconds = strconv.Itoa(seconds)
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the duration form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return DurationFormCancelMsg{} }
	}

	return m, cmd
}

// View renders the duration form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render("Timer Duration") + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minutes").
				Value(&m.fb.minutes).
				Validate(validateNumber),
			huh.NewInput().
				Title("Seconds").
				Value(&m.fb.seconds).
				Validate(validateNumber),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	minutes, _ := strconv.Atoi(strings.TrimSpace(m.fb.minutes))
	seconds, _ := strconv.Atoi(strings.TrimSpace(m.fb.seconds))
	itemID := m.itemID

	return func() tea.Msg {
		return DurationSubmittedMsg{ItemID: itemID, Minutes: minutes, Seconds: seconds}
	}
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 60 {
		w = 60
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 8 {
		h = 8
	}
	return h
}

func validateNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("must be a whole number")
	}
	return nil
}
