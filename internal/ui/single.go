package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/pickx/internal/models"
	"github.com/desertthunder/pickx/internal/picker"
)

// Single runs one picker full-screen. The picker opens on start and the program quits when it closes.
type Single struct {
	picker    *picker.Model
	outcome   models.Outcome
	selection models.Selection
}

// NewSingle wraps p in a program.
func NewSingle(p *picker.Model) *Single {
	return &Single{picker: p}
}

// Init opens the picker.
func (s *Single) Init() tea.Cmd {
	return s.picker.Show()
}

func (s *Single) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			s.picker.Unmount()
			s.outcome = models.OutcomeCanceled
			return s, tea.Quit
		}
	case picker.ClosedMsg:
		if msg.ID != s.picker.ID() {
			return s, nil
		}
		s.outcome = msg.Outcome
		s.selection = msg.Selection
		return s, tea.Quit
	}

	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)
	return s, cmd
}

// View renders the picker until it has closed.
func (s *Single) View() string {
	if s.outcome != models.OutcomeNone {
		return ""
	}
	return s.picker.View()
}

// Result returns how the picker closed and, when confirmed, the selection.
func (s *Single) Result() (models.Selection, models.Outcome) {
	return s.selection, s.outcome
}
