package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/timeflowhq/timeflow/internal/timeclock"
)

// RunDashboardTUI starts the live status dashboard
func RunDashboardTUI(svc *timeclock.Service, userID string) error {
	p := tea.NewProgram(NewDashboardModel(svc, userID), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunEntryFormTUI starts the interactive manual-entry form
func RunEntryFormTUI(svc *timeclock.Service, userID string) error {
	p := tea.NewProgram(NewEntryFormModel(svc, userID), tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(EntryFormModel); ok {
		if m.cancelled {
			fmt.Println("❌ Entry cancelled.")
		} else if m.saved != nil {
			fmt.Printf("✅ %s recorded at %s - ID: %s\n",
				m.saved.EntryType.Label(),
				m.saved.EffectiveTime().Format("2006-01-02 15:04"),
				m.saved.ID)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}
