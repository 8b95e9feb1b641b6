package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/klauscode/anki-gacha/internal/engine"
)

// RunCollection opens the interactive collection browser.
func RunCollection(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newCollectionModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
