// Package attachform collects a file path and kind for a new item
// attachment. Reading the file and enforcing the per-item cap happen in
// the tree layer, not here.
package attachform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/fweber/routine/internal/model"
	"github.com/fweber/routine/internal/theme"
)

// AttachSubmittedMsg is dispatched when the user confirms an attachment.
type AttachSubmittedMsg struct {
	ItemID string
	Kind   string
	Path   string
}

// AttachFormCancelMsg is dispatched when the user cancels the form.
type AttachFormCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	path string
	kind string
}

// Model is the Bubble Tea model for the attachment form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	itemID string
	width  int
	height int
}

// New creates a new attachment form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{kind: model.KindImage},
		width:  width,
		height: height,
	}
}

// Start initializes the form for the given item.
func (m *Model) Start(itemID string) tea.Cmd {
	m.itemID = itemID
	m.fb.path = ""
	m.fb.kind = model.KindImage
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the attachment form.
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
		return m, func() tea.Msg { return AttachFormCancelMsg{} }
	}

	return m, cmd
}

// View renders the attachment form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render("Add Attachment") + "\n" + m.form.View()

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
				Title("File path").
				Placeholder("~/Pictures/recipe.jpg").
				Value(&m.fb.path).
				Validate(validateRequired("File path")),
			huh.NewSelect[string]().
				Title("Kind").
				Options(
					huh.NewOption("Image", model.KindImage),
					huh.NewOption("Audio", model.KindAudio),
				).
				Value(&m.fb.kind),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	itemID := m.itemID
	kind := m.fb.kind
	path := strings.TrimSpace(m.fb.path)

	return func() tea.Msg {
		return AttachSubmittedMsg{ItemID: itemID, Kind: kind, Path: path}
	}
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
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

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}
