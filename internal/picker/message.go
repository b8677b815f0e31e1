package picker

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/pickx/internal/models"
)

var (
	_ tea.Msg = ClosedMsg{}
)

// ClosedMsg is emitted once the close animation of a picker has settled and the picker is hidden.
//
// Selection is the committed value for [models.OutcomeConfirmed] and zero for [models.OutcomeCanceled].
type ClosedMsg struct {
	ID        string
	Outcome   models.Outcome
	Selection models.Selection
}

// Handle is the capability an owner holds to open a picker.
type Handle interface {
	Show() tea.Cmd
}
