package tui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/flowlist/internal/app"
)

// Run starts the interactive program and blocks until the user quits or ctx
// is cancelled
func Run(ctx context.Context, a *app.App) error {
	p := tea.NewProgram(InitialModel(ctx, a), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
