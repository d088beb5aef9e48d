package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeclock"
	"github.com/timeflowhq/timeflow/internal/timeutil"
)

// entry form field indexes
const (
	fieldDate = iota
	fieldTime
	fieldNote
	fieldCount
)

// formTypes is the selection order for the type picker.
var formTypes = []models.EntryType{
	models.ClockIn,
	models.ClockOut,
	models.BreakStart,
	models.BreakEnd,
	models.OthersOut,
	models.OthersIn,
}

// EntryFormModel is the manual-entry form: pick a type, then date,
// time and note inputs. Submission runs the full validation path and
// surfaces rejections inline.
type EntryFormModel struct {
	width  int
	height int

	service *timeclock.Service
	userID  string

	typeIdx int
	inputs  []textinput.Model
	focus   int // -1 while the type picker has focus

	validationErr string
	saved         *models.TimeEntry
	cancelled     bool
	err           error
}

type savedMsg struct {
	entry *models.TimeEntry
	// invalid holds a user-correctable input problem, shown inline;
	// err is an infrastructure failure that closes the form.
	invalid string
	err     error
}

// NewEntryFormModel creates the manual-entry form model
func NewEntryFormModel(svc *timeclock.Service, userID string) EntryFormModel {
	now := time.Now()

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	}

	inputs[fieldDate].Placeholder = now.Format("2006-01-02")
	inputs[fieldDate].CharLimit = 10
	inputs[fieldTime].Placeholder = now.Format("15:04")
	inputs[fieldTime].CharLimit = 5
	inputs[fieldNote].Placeholder = "Reason (required for others entries)"
	inputs[fieldNote].CharLimit = 120

	return EntryFormModel{
		service: svc,
		userID:  userID,
		inputs:  inputs,
		focus:   -1,
	}
}

// Init initializes the form
func (m EntryFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EntryFormModel) focusField(idx int) tea.Cmd {
	m.focus = idx
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if idx >= 0 && idx < len(m.inputs) {
		return m.inputs[idx].Focus()
	}
	return nil
}

func (m EntryFormModel) submit() tea.Cmd {
	svc, uid := m.service, m.userID
	typ := formTypes[m.typeIdx]
	dateStr := m.inputs[fieldDate].Value()
	timeStr := m.inputs[fieldTime].Value()
	note := m.inputs[fieldNote].Value()

	return func() tea.Msg {
		now := time.Now()
		occurredAt := now
		if timeStr != "" {
			parsed, err := timeutil.ParseDayTime(dateStr, timeStr, now)
			if err != nil {
				return savedMsg{invalid: err.Error()}
			}
			occurredAt = parsed
		}
		entry, err := svc.SubmitAction(uid, typ, occurredAt, note)
		if err != nil {
			if timeclock.IsRejection(err) {
				return savedMsg{invalid: err.Error()}
			}
			return savedMsg{err: err}
		}
		return savedMsg{entry: entry}
	}
}

// Update handles messages
func (m EntryFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		if msg.invalid != "" {
			m.validationErr = msg.invalid
			return m, nil
		}
		m.saved = msg.entry
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "tab", "down":
			if m.focus < fieldCount-1 {
				return m, m.focusField(m.focus + 1)
			}
			return m, m.focusField(-1)

		case "shift+tab", "up":
			if m.focus >= 0 {
				return m, m.focusField(m.focus - 1)
			}
			return m, nil

		case "left":
			if m.focus == -1 {
				m.typeIdx = (m.typeIdx + len(formTypes) - 1) % len(formTypes)
				return m, nil
			}

		case "right":
			if m.focus == -1 {
				m.typeIdx = (m.typeIdx + 1) % len(formTypes)
				return m, nil
			}

		case "enter":
			if m.focus == fieldNote || m.focus == -1 && m.inputs[fieldTime].Value() != "" {
				m.validationErr = ""
				return m, m.submit()
			}
			return m, m.focusField(m.focus + 1)
		}
	}

	if m.focus >= 0 && m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the form
func (m EntryFormModel) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)

	var lines []string
	lines = append(lines, valueStyle.Render("Add manual entry"), "")

	// Type picker
	var picker string
	for i, typ := range formTypes {
		label := typ.Label()
		if i == m.typeIdx {
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(modeColor(typ.Mode()))).
				Bold(true)
			if m.focus == -1 {
				label = "[" + label + "]"
			}
			picker += style.Render(label)
		} else {
			picker += labelStyle.Render(label)
		}
		if i < len(formTypes)-1 {
			picker += labelStyle.Render("  ·  ")
		}
	}
	lines = append(lines, labelStyle.Render("Type  (←/→)"), picker, "")

	lines = append(lines, labelStyle.Render("Date"), m.inputs[fieldDate].View())
	lines = append(lines, labelStyle.Render("Time"), m.inputs[fieldTime].View())
	lines = append(lines, labelStyle.Render("Note"), m.inputs[fieldNote].View())

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		lines = append(lines, "", errStyle.Render("✗ "+m.validationErr))
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	lines = append(lines, "", helpStyle.Render("tab next field • enter save • esc cancel"))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(content)
}
