package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/pickx/internal/models"
	"github.com/desertthunder/pickx/internal/picker"
	"github.com/desertthunder/pickx/internal/selection"
	"github.com/desertthunder/pickx/internal/shared"
	"github.com/desertthunder/pickx/internal/transition"
)

// ViewState represents the current view of the form.
type ViewState int

const (
	FormView ViewState = iota
	PickerView
	DoneView
)

// FieldValue is the final value of one form field.
type FieldValue struct {
	Name  string
	Value selection.Choice
	Label string
}

// Model is the form program: a list of fields, each opening its own picker.
type Model struct {
	view      ViewState
	title     string
	fields    []*field
	active    int
	list      list.Model
	width     int
	height    int
	submitted bool
	help      help.Model
	keys      keyMap
	logger    *log.Logger
}

// NewModel creates the program for form. base supplies the labels, style and timing shared by every field's picker;
// its Items and Title are replaced per field. opts are applied to every picker.
func NewModel(form *shared.Form, base picker.Config, logger *log.Logger, opts ...picker.Option) *Model {
	if logger == nil {
		logger = shared.DiscardLogger()
	}

	m := &Model{
		view:   FormView,
		title:  form.Title,
		active: -1,
		help:   help.New(),
		keys:   newKeyMap(),
		logger: logger,
	}

	items := make([]list.Item, len(form.Fields))
	for i, fs := range form.Fields {
		f := &field{
			name:  fs.Name,
			title: fs.Title,
			items: fs.Items,
			value: selection.FromPointer(fs.Value),
		}
		if f.title == "" {
			f.title = fs.Name
		}

		cfg := base
		cfg.Items = fs.Items
		cfg.Title = f.title

		fieldOpts := append([]picker.Option{
			picker.WithValue(f.value),
			picker.WithRef(func(h picker.Handle) { f.handle = h }),
			picker.WithOnValueChange(func(label string, index int) {
				f.value = selection.Selected(index)
				f.picker.SetValue(f.value)
				logger.Info("field changed", "field", f.name, "label", label, "index", index)
			}),
			picker.WithOnCancel(func() {
				logger.Debug("field unchanged", "field", f.name)
			}),
		}, opts...)
		f.picker = picker.New(cfg, fieldOpts...)

		m.fields = append(m.fields, f)
		items[i] = fieldItem{field: f}
	}

	m.list = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.list.Title = m.title
	m.list.SetShowHelp(false)
	m.list.SetShowStatusBar(false)
	m.list.SetFilteringEnabled(false)
	m.list.KeyMap.Quit.SetEnabled(false)
	return m
}

// Init does nothing; pickers are only opened by the user.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, max(0, msg.Height-2))
		for _, f := range m.fields {
			f.picker.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case transition.FrameMsg:
		cmds := make([]tea.Cmd, 0, len(m.fields))
		for _, f := range m.fields {
			var cmd tea.Cmd
			f.picker, cmd = f.picker.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case picker.ClosedMsg:
		return m, m.closed(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.unmount()
			return m, tea.Quit
		}

		switch m.view {
		case FormView:
			return m.handleFormKeys(msg)
		case PickerView:
			return m.handlePickerKeys(msg)
		case DoneView:
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.unmount()
		return m, tea.Quit
	case key.Matches(msg, m.keys.submit):
		m.submitted = true
		m.view = DoneView
		m.unmount()
		m.logger.Info("form submitted", "fields", len(m.fields))
		return m, tea.Quit
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.open):
		return m, m.open(m.list.Index())
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.active < 0 {
		m.view = FormView
		return m, nil
	}

	f := m.fields[m.active]
	var cmd tea.Cmd
	f.picker, cmd = f.picker.Update(msg)
	return m, cmd
}

// open shows the picker of field i through its handle.
func (m *Model) open(i int) tea.Cmd {
	if i < 0 || i >= len(m.fields) {
		return nil
	}

	f := m.fields[i]
	if f.handle == nil {
		m.logger.Warn("field has no picker handle", "field", f.name)
		return nil
	}

	m.active = i
	m.view = PickerView
	m.logger.Debug("open field", "field", f.name)
	return f.handle.Show()
}

func (m *Model) closed(msg picker.ClosedMsg) tea.Cmd {
	for i, f := range m.fields {
		if f.picker.ID() != msg.ID {
			continue
		}
		if i == m.active {
			m.active = -1
			m.view = FormView
		}
		if msg.Outcome == models.OutcomeConfirmed {
			return m.list.SetItem(i, fieldItem{field: f})
		}
		return nil
	}
	return nil
}

func (m *Model) unmount() {
	for _, f := range m.fields {
		f.picker.Unmount()
	}
	m.active = -1
}

// Submitted reports whether the user submitted the form rather than quitting.
func (m *Model) Submitted() bool {
	return m.submitted
}

// Values returns the committed value of every field, in order.
func (m *Model) Values() []FieldValue {
	values := make([]FieldValue, len(m.fields))
	for i, f := range m.fields {
		values[i] = FieldValue{Name: f.name, Value: f.value, Label: f.label()}
	}
	return values
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if len(m.fields) == 0 {
		return styles.unset.Render("This form has no fields.\n\nPress q to quit")
	}

	switch m.view {
	case PickerView:
		if m.active >= 0 {
			return m.fields[m.active].picker.Overlay(m.renderForm())
		}
		return m.renderForm()
	case DoneView:
		return m.renderDone()
	default:
		return m.renderForm()
	}
}

func (m *Model) renderForm() string {
	return fmt.Sprintf("%s\n%s", m.list.View(), styles.help.Render(m.help.View(m.keys)))
}

func (m *Model) renderDone() string {
	var b strings.Builder
	b.WriteString(styles.title.Render(m.title))
	b.WriteString("\n")
	for _, v := range m.Values() {
		if v.Label == "" {
			fmt.Fprintf(&b, "%s: %s\n", styles.name.Render(v.Name), styles.unset.Render("not set"))
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", styles.name.Render(v.Name), styles.value.Render(v.Label))
	}
	return b.String()
}
