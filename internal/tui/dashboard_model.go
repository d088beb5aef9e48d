package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeclock"
	"github.com/timeflowhq/timeflow/internal/timeutil"
)

// DashboardModel is the live status screen: current mode, a ticking
// elapsed clock, today's totals, and key-bound quick actions.
type DashboardModel struct {
	width  int
	height int

	service *timeclock.Service
	userID  string

	status timeclock.Status
	totals timeclock.Totals

	// Last action feedback
	notice    string
	noticeErr bool

	loadErr error
	exiting bool
}

// tickMsg is sent every second to refresh the elapsed clock
type tickMsg struct{}

// refreshMsg carries freshly derived state from the store
type refreshMsg struct {
	status timeclock.Status
	totals timeclock.Totals
	err    error
}

// actionDoneMsg reports the outcome of a key-bound quick action
type actionDoneMsg struct {
	label string
	err   error
}

// NewDashboardModel creates the dashboard TUI model
func NewDashboardModel(svc *timeclock.Service, userID string) DashboardModel {
	return DashboardModel{
		service: svc,
		userID:  userID,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m DashboardModel) refresh() tea.Cmd {
	svc, uid := m.service, m.userID
	return func() tea.Msg {
		status, err := svc.Status(uid)
		if err != nil {
			return refreshMsg{err: err}
		}
		totals, err := svc.DailyTotals(uid, time.Now())
		return refreshMsg{status: status, totals: totals, err: err}
	}
}

func (m DashboardModel) perform(typ models.EntryType) tea.Cmd {
	svc, uid := m.service, m.userID
	return func() tea.Msg {
		_, err := svc.SubmitAction(uid, typ, time.Time{}, "")
		return actionDoneMsg{label: typ.Label(), err: err}
	}
}

// Init starts the ticker and the first state load
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(tick(), m.refresh())
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.exiting {
			return m, nil
		}
		return m, tick()

	case refreshMsg:
		m.loadErr = msg.err
		if msg.err == nil {
			m.status = msg.status
			m.totals = msg.totals
		}
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.notice = msg.err.Error()
			m.noticeErr = true
			// Store failures also land here; either way the state on
			// screen must come from a fresh query.
		} else {
			m.notice = fmt.Sprintf("%s recorded", msg.label)
			m.noticeErr = false
		}
		return m, m.refresh()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "i":
			return m, m.perform(models.ClockIn)
		case "o":
			return m, m.perform(models.ClockOut)
		case "b":
			return m, m.perform(models.BreakStart)
		case "e":
			return m, m.perform(models.BreakEnd)
		case "r":
			return m, m.refresh()
		case "ctrl+c", "esc", "q":
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func modeColor(mode models.Mode) string {
	switch mode {
	case models.ModeWorking:
		return ColorWorking
	case models.ModeBreak:
		return ColorBreak
	case models.ModeOthers:
		return ColorOthers
	default:
		return ColorOut
	}
}

func modeTitle(mode models.Mode) string {
	switch mode {
	case models.ModeWorking:
		return "WORKING"
	case models.ModeBreak:
		return "ON BREAK"
	case models.ModeOthers:
		return "ON PERMISSION"
	default:
		return "CLOCKED OUT"
	}
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	width := m.width
	var components []string

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, titleStyle.Render("T I M E F L O W"))
	components = append(components, "")

	modeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(modeColor(m.status.Mode))).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, modeStyle.Render(modeTitle(m.status.Mode)))

	elapsed := time.Duration(0)
	if !m.status.Since.IsZero() {
		elapsed = time.Since(m.status.Since)
	}
	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, clockStyle.Render(timeutil.FormatClock(elapsed)))

	sinceText := "no entries yet"
	if !m.status.Since.IsZero() {
		sinceText = "since " + m.status.Since.Format("15:04:05")
	}
	subStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, subStyle.Render(sinceText))
	components = append(components, "")

	totalsLine := fmt.Sprintf("Today  •  work %s  •  break %s  •  others %s",
		timeutil.FormatHoursMinutes(m.totals.Working),
		timeutil.FormatHoursMinutes(m.totals.Break),
		timeutil.FormatHoursMinutes(m.totals.Others))
	components = append(components, subStyle.Render(totalsLine))

	if m.loadErr != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, "", errStyle.Render("store error: "+m.loadErr.Error()))
	} else if m.notice != "" {
		color := ColorSuccess
		if m.noticeErr {
			color = ColorError
		}
		noticeStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(color)).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, "", noticeStyle.Render(m.notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, components...)

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width - 2).
		Height(m.height - 3).
		AlignVertical(lipgloss.Center).
		Render(content)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	helpBar := helpStyle.Render("  i clock in • o clock out • b break • e end break • r refresh • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, panel, helpBar)
}
