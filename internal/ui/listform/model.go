package listform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/fweber/routine/internal/model"
	"github.com/fweber/routine/internal/theme"
)

// ListCreatedMsg is dispatched when a new list is created via the form.
type ListCreatedMsg struct {
	Title string
	Color string
}

// ListUpdatedMsg is dispatched when an existing list is renamed or
// recolored via the form.
type ListUpdatedMsg struct {
	ListID string
	Title  string
	Color  string
}

// ListFormCancelMsg is dispatched when the user cancels the form.
type ListFormCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title string
	color string
}

// Model is the Bubble Tea model for the list create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editID   string
	width    int
	height   int
}

// New creates a new list form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{color: theme.ListPalette[0].Value},
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form for creating a new list.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.editID = ""
	m.fb.title = ""
	m.fb.color = theme.ListPalette[0].Value
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form for editing an existing list.
func (m *Model) StartEdit(l model.List) tea.Cmd {
	m.editMode = true
	m.editID = l.ID
	m.fb.title = l.Title
	m.fb.color = l.Color
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the list form.
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
		return m, func() tea.Msg { return ListFormCancelMsg{} }
	}

	return m, cmd
}

// View renders the list form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New List"
	if m.editMode {
		titleText = "Edit List"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

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
	colorOpts := make([]huh.Option[string], len(theme.ListPalette))
	for i, c := range theme.ListPalette {
		colorOpts[i] = huh.NewOption(c.Name, c.Value)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("e.g. Groceries").
				Value(&m.fb.title).
				Validate(validateRequired("Title")),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOpts...).
				Value(&m.fb.color),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	title := strings.TrimSpace(m.fb.title)
	color := m.fb.color

	if m.editMode {
		id := m.editID
		return func() tea.Msg { return ListUpdatedMsg{ListID: id, Title: title, Color: color} }
	}
	return func() tea.Msg { return ListCreatedMsg{Title: title, Color: color} }
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
