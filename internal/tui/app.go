package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/holocron/internal/holocron"
	"github.com/f3rmion/holocron/internal/tui/views"
)

const sidebarWidth = 22

// AppModel is the root TUI model: a sidebar summary next to the browse view,
// with the detail overlay taking the whole screen while open.
type AppModel struct {
	browse views.BrowseModel

	// Layout state
	width  int
	height int
	ready  bool

	// Help overlay
	showHelp bool
}

// NewApp creates the application around a browse view.
func NewApp(browse views.BrowseModel) AppModel {
	return AppModel{browse: browse}
}

// Browse returns the browse view.
func (m AppModel) Browse() views.BrowseModel {
	return m.browse
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return m.browse.Init()
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Global keys, unless the search box owns the keyboard
		if !m.browse.Capturing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			}
		}

	case tea.MouseMsg:
		// The help overlay hides everything underneath it.
		if m.showHelp {
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// The browse view wraps its own lines at the width inside the padding.
		contentWidth := m.width - sidebarWidth - 4 - ContentStyle.GetHorizontalPadding()
		contentHeight := m.height - 2 - ContentStyle.GetVerticalPadding()
		m.browse.SetSize(contentWidth, contentHeight, m.width, m.height)
		return m, nil
	}

	// The overlay works in screen coordinates; the card in content coordinates.
	if mouse, ok := msg.(tea.MouseMsg); ok && m.browse.Detail() == nil {
		x, y := m.contentOrigin()
		mouse.X -= x
		mouse.Y -= y
		msg = mouse
	}

	var cmd tea.Cmd
	m.browse, cmd = m.browse.Update(msg)
	return m, cmd
}

// contentOrigin returns the screen cell where the browse view starts.
func (m AppModel) contentOrigin() (int, int) {
	return lipgloss.Width(m.renderSidebar()) + ContentStyle.GetPaddingLeft(), ContentStyle.GetPaddingTop()
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if detail := m.browse.Detail(); detail != nil {
		return detail.View()
	}

	sidebar := m.renderSidebar()

	contentWidth := m.width - sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(m.browse.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar shows collection counts and the active filters.
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render(" HOLOCRON "))
	items = append(items, "")

	if !m.browse.Loading() {
		items = append(items,
			SidebarLabelStyle.Render("Showing"),
			SidebarCountStyle.Render(fmt.Sprintf("%d of %d", len(m.browse.Filtered()), m.browse.Total())),
			"",
		)

		criteria := m.browse.Criteria()
		if criteria.IsZero() {
			items = append(items, SidebarValueStyle.Render("No filters"))
		} else {
			items = append(items, SidebarLabelStyle.Render("Filters"))
			if criteria.Search != "" {
				items = append(items, SidebarActiveStyle.Render(fmt.Sprintf("name ~ %q", criteria.Search)))
			}
			for _, kind := range []holocron.FilterKind{holocron.FilterHomeWorld, holocron.FilterFilm, holocron.FilterSpecies} {
				if label := m.browse.FilterLabel(kind); label != "" {
					items = append(items, SidebarActiveStyle.Render(strings.ToLower(kind.String())+": "+label))
				}
			}
		}
	}

	// Spacer
	usedHeight := len(items) + 4
	for i := 0; i < m.height-usedHeight-2; i++ {
		items = append(items, "")
	}

	items = append(items, SidebarHelpStyle.Render("? Help  q Quit"))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	row := func(key, desc string) string {
		return helpKeyStyle.Render(key) + helpDescStyle.Render(desc) + "\n"
	}

	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Holocron - Star Wars Characters") + "\n\n")

	b.WriteString(helpSectionStyle.Render("Global Keys") + "\n")
	b.WriteString(row("?", "Show this help"))
	b.WriteString(row("q", "Quit"))

	b.WriteString(helpSectionStyle.Render("Browse") + "\n")
	b.WriteString(row("←/→ h/l", "Prev/next card"))
	b.WriteString(row("enter", "Open details (or click the card)"))
	b.WriteString(row("/", "Search by name"))
	b.WriteString(row("w f s", "Cycle homeworld, film, species"))
	b.WriteString(row("x", "Clear search and filters"))
	b.WriteString(row("y", "Copy name and URL"))

	b.WriteString(helpSectionStyle.Render("Details") + "\n")
	b.WriteString(row("esc c", "Close"))
	b.WriteString(row("click", "Close when outside the panel"))

	b.WriteString("\n" + helpFooterStyle.Render("Press any key to close"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBoxStyle.Render(b.String()))
}
