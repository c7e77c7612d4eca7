package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theimpacts/impacts/internal/preference"
)

// Run opens the preference file at prefsPath and runs the contact form until
// the user quits.
func Run(ctx context.Context, client Submitter, prefsPath string) error {
	backend, err := preference.OpenBunt(prefsPath)
	if err != nil {
		return err
	}
	defer backend.Close()

	m := New(client, preference.NewStore(backend), WithContext(ctx))
	defer m.Close()

	if _, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run contact form: %w", err)
	}
	return nil
}
