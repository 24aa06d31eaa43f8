package views

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/holocron/internal/holocron"
)

// Catalog is the data source the views read from.
type Catalog interface {
	FetchCharacters(ctx context.Context) ([]holocron.Character, error)
	FetchHomeWorld(ctx context.Context, ref string) (*holocron.HomeWorld, error)
}

// CardArt renders the decorative picture for a card index at cols x rows cells.
type CardArt func(ctx context.Context, index, cols, rows int) (string, error)

// CloseOverlayMsg asks the browse view to dismiss the detail overlay.
type CloseOverlayMsg struct{}

// closeOverlay is the close callback handed to the overlay.
func closeOverlay() tea.Msg {
	return CloseOverlayMsg{}
}

type charactersLoadedMsg struct {
	characters []holocron.Character
	err        error
}

type homeWorldLoadedMsg struct {
	ref       string
	homeWorld *holocron.HomeWorld
	err       error
}

type cardArtMsg struct {
	index int
	art   string
	err   error
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}
