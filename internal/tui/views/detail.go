package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/holocron/internal/holocron"
	"github.com/rs/zerolog"
)

// DetailModel is the modal overlay showing one character and its home-world.
type DetailModel struct {
	character holocron.Character
	catalog   Catalog
	onClose   tea.Cmd
	logger    zerolog.Logger

	// Home-world fetch, keyed by the reference it was issued for
	ref       string
	cancel    context.CancelFunc
	homeWorld *holocron.HomeWorld
	err       error
	closed    bool

	// Screen size; the overlay covers the whole terminal
	width  int
	height int
}

// NewDetailModel creates an overlay for c. onClose is invoked on dismissal.
func NewDetailModel(c holocron.Character, catalog Catalog, onClose tea.Cmd, logger zerolog.Logger) *DetailModel {
	return &DetailModel{
		character: c,
		catalog:   catalog,
		onClose:   onClose,
		logger:    logger,
		ref:       c.HomeWorld,
	}
}

// Init is the attach hook: it starts the home-world fetch.
func (m *DetailModel) Init() tea.Cmd {
	return m.fetch()
}

// SetCharacter replaces the shown character. The home-world is refetched only
// when its reference changed; any in-flight fetch for the old one is cancelled.
func (m *DetailModel) SetCharacter(c holocron.Character) tea.Cmd {
	m.character = c
	if c.HomeWorld == m.ref {
		return nil
	}
	m.stop()
	m.ref = c.HomeWorld
	m.homeWorld = nil
	m.err = nil
	return m.fetch()
}

// Close is the detach hook. Results arriving afterwards are dropped.
func (m *DetailModel) Close() {
	m.closed = true
	m.stop()
}

// Character returns the character on display.
func (m *DetailModel) Character() holocron.Character {
	return m.character
}

// SetSize updates the screen dimensions.
func (m *DetailModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *DetailModel) stop() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *DetailModel) fetch() tea.Cmd {
	if m.ref == "" || m.catalog == nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	catalog, ref := m.catalog, m.ref
	return func() tea.Msg {
		hw, err := catalog.FetchHomeWorld(ctx, ref)
		return homeWorldLoadedMsg{ref: ref, homeWorld: hw, err: err}
	}
}

// Update handles messages routed to the overlay.
func (m *DetailModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case homeWorldLoadedMsg:
		if m.closed || msg.ref != m.ref {
			return nil
		}
		m.cancel = nil
		if msg.err != nil {
			if errors.Is(msg.err, context.Canceled) {
				return nil
			}
			m.logger.Warn().Err(msg.err).Str("ref", msg.ref).Msg("homeworld fetch failed")
			m.err = msg.err
			return nil
		}
		m.homeWorld = msg.homeWorld
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "c":
			return m.onClose
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		// Clicks inside the panel stop here; the backdrop dismisses.
		if m.InPanel(msg.X, msg.Y) {
			return nil
		}
		return m.onClose
	}

	return nil
}

// HomeWorld returns the loaded home-world, or nil while loading or on failure.
func (m *DetailModel) HomeWorld() *holocron.HomeWorld {
	return m.homeWorld
}

// Err returns the home-world fetch error, if any.
func (m *DetailModel) Err() error {
	return m.err
}

// Bounds returns the panel rectangle in screen cells as x0, y0, x1, y1 (exclusive).
func (m *DetailModel) Bounds() (int, int, int, int) {
	panel := m.renderPanel()
	pw := lipgloss.Width(panel)
	ph := lipgloss.Height(panel)

	x0 := max(0, (m.width-pw)/2)
	y0 := max(0, (m.height-ph)/2)
	return x0, y0, x0 + pw, y0 + ph
}

// InPanel reports whether the screen cell (x, y) falls inside the panel.
func (m *DetailModel) InPanel(x, y int) bool {
	x0, y0, x1, y1 := m.Bounds()
	return x >= x0 && x < x1 && y >= y0 && y < y1
}

// View renders the panel centered over a dimmed backdrop.
func (m *DetailModel) View() string {
	panel := m.renderPanel()
	if m.width == 0 || m.height == 0 {
		return panel
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(backdropColor),
	)
}

func (m *DetailModel) renderPanel() string {
	var b strings.Builder
	c := m.character

	b.WriteString(titleStyle.Render(c.Name))
	b.WriteString("\n\n")
	b.WriteString(m.renderRow("Height:", holocron.FormatHeight(c.Height)))
	b.WriteString(m.renderRow("Mass:", holocron.FormatMass(c.Mass)))
	b.WriteString(m.renderRow("Date Added:", holocron.FormatCreated(c.Created)))
	b.WriteString(m.renderRow("Films Count:", fmt.Sprintf("%d", holocron.FilmCount(c))))
	b.WriteString(m.renderRow("Birth Year:", c.BirthYear))
	b.WriteString("\n")

	switch {
	case m.homeWorld != nil:
		hw := m.homeWorld
		b.WriteString(subtitleStyle.Render("Homeworld Details"))
		b.WriteString("\n")
		b.WriteString(m.renderRow("Name:", hw.Name))
		b.WriteString(m.renderRow("Terrain:", hw.Terrain))
		b.WriteString(m.renderRow("Climate:", hw.Climate))
		b.WriteString(m.renderRow("Population:", hw.Population))
	case m.err != nil:
		b.WriteString(errorStyle.Render(wordWrap("Homeworld unavailable: "+m.err.Error(), panelTextWidth)))
		b.WriteString("\n")
	case m.ref == "":
		b.WriteString(helpStyle.Render("No homeworld on record."))
		b.WriteString("\n")
	default:
		b.WriteString(loadingStyle.Render("Loading homeworld..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(closeButtonStyle.Render("Close"))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("esc/c: close"))

	return panelStyle.Render(b.String())
}

func (m *DetailModel) renderRow(label, value string) string {
	return labelStyle.Render(label) + " " + valueStyle.Render(value) + "\n"
}
