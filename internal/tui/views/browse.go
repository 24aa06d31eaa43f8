package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/holocron/internal/config"
	"github.com/f3rmion/holocron/internal/holocron"
	"github.com/f3rmion/holocron/internal/tui/monogram"
	"github.com/rs/zerolog"
)

const (
	cardArtCols = 28
	cardArtRows = 12
)

var filterKinds = []holocron.FilterKind{
	holocron.FilterHomeWorld,
	holocron.FilterFilm,
	holocron.FilterSpecies,
}

// BrowseModel is the character browser: one card at a time from the filtered view.
type BrowseModel struct {
	catalog Catalog
	art     CardArt
	filters config.FiltersConfig
	logger  zerolog.Logger
	clip    func(string) error

	// State containers
	characters []holocron.Character
	criteria   holocron.FilterCriteria
	filtered   []holocron.Character
	index      int
	detail     *DetailModel // selection; nil when no overlay is open

	// Initial load
	loading bool
	err     error
	spinner spinner.Model

	// Search and filter controls
	searchInput textinput.Model
	searching   bool
	filterPos   map[holocron.FilterKind]int // 0 = any, i = options[i-1]

	// Card picture, keyed by the index it was fetched for
	cardArt      string
	cardArtIndex int

	copied bool

	width        int
	height       int
	screenWidth  int
	screenHeight int
}

// BrowseOption configures a BrowseModel.
type BrowseOption func(*BrowseModel)

// WithCardArt enables the decorative card picture.
func WithCardArt(art CardArt) BrowseOption {
	return func(m *BrowseModel) {
		m.art = art
	}
}

// WithLogger attaches a logger.
func WithLogger(l zerolog.Logger) BrowseOption {
	return func(m *BrowseModel) {
		m.logger = l
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(write func(string) error) BrowseOption {
	return func(m *BrowseModel) {
		m.clip = write
	}
}

// NewBrowseModel creates a new browse view model.
func NewBrowseModel(catalog Catalog, filters config.FiltersConfig, opts ...BrowseOption) BrowseModel {
	si := textinput.New()
	si.Placeholder = "Search by name..."
	si.CharLimit = 50
	si.Width = 30
	si.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	si.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	m := BrowseModel{
		catalog:      catalog,
		filters:      filters,
		logger:       zerolog.Nop(),
		clip:         clipboard.WriteAll,
		loading:      true,
		spinner:      sp,
		searchInput:  si,
		filterPos:    make(map[holocron.FilterKind]int),
		cardArtIndex: -1,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init is the attach hook: it issues the single collection fetch.
func (m BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCharacters())
}

func (m BrowseModel) fetchCharacters() tea.Cmd {
	catalog := m.catalog
	return func() tea.Msg {
		chars, err := catalog.FetchCharacters(context.Background())
		return charactersLoadedMsg{characters: chars, err: err}
	}
}

// SetSize updates the content area and the full screen dimensions.
func (m *BrowseModel) SetSize(width, height, screenWidth, screenHeight int) {
	m.width = width
	m.height = height
	m.screenWidth = screenWidth
	m.screenHeight = screenHeight
	if m.detail != nil {
		m.detail.SetSize(screenWidth, screenHeight)
	}
}

// Capturing reports whether keystrokes are being typed into the search box.
func (m BrowseModel) Capturing() bool {
	return m.searching
}

// Detail returns the open overlay, or nil.
func (m BrowseModel) Detail() *DetailModel {
	return m.detail
}

// Selected returns the character shown in the overlay, if any.
func (m BrowseModel) Selected() (holocron.Character, bool) {
	if m.detail == nil {
		return holocron.Character{}, false
	}
	return m.detail.Character(), true
}

// Current returns the character on the card, if the filtered view has one at the index.
func (m BrowseModel) Current() (holocron.Character, bool) {
	if m.index < 0 || m.index >= len(m.filtered) {
		return holocron.Character{}, false
	}
	return m.filtered[m.index], true
}

// Index returns the pagination index into the filtered view.
func (m BrowseModel) Index() int {
	return m.index
}

// Total returns the size of the unfiltered collection.
func (m BrowseModel) Total() int {
	return len(m.characters)
}

// FilterLabel returns the display label of the active option for kind, or "".
func (m BrowseModel) FilterLabel(kind holocron.FilterKind) string {
	pos := m.filterPos[kind]
	if pos == 0 {
		return ""
	}
	return m.filters.Options(kind)[pos-1].Label
}

// Loading reports whether the initial fetch is still outstanding.
func (m BrowseModel) Loading() bool {
	return m.loading
}

// Filtered returns the filtered view.
func (m BrowseModel) Filtered() []holocron.Character {
	return m.filtered
}

// Criteria returns the active search and filters.
func (m BrowseModel) Criteria() holocron.FilterCriteria {
	return m.criteria
}

// Update handles messages.
func (m BrowseModel) Update(msg tea.Msg) (BrowseModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case charactersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("loading characters failed")
			m.err = msg.err
			return m, nil
		}
		m.logger.Info().Int("count", len(msg.characters)).Msg("characters loaded")
		m.characters = msg.characters
		m.err = nil
		m.refilter()
		return m, m.loadCardArt()

	case cardArtMsg:
		if msg.index != m.index {
			return m, nil
		}
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Int("index", msg.index).Msg("card image unavailable")
			return m, nil
		}
		m.cardArt = msg.art
		m.cardArtIndex = msg.index
		return m, nil

	case homeWorldLoadedMsg:
		if m.detail != nil {
			return m, m.detail.Update(msg)
		}
		return m, nil

	case CloseOverlayMsg:
		m.closeDetail()
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	if m.loading || m.err != nil {
		return m, nil
	}

	// The overlay is modal: it sees input first and nothing reaches the card.
	if m.detail != nil {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			return m, m.detail.Update(msg)
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		// Coordinates are relative to the browse view's origin.
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.onCard(msg.X, msg.Y) {
			return m.Open()
		}
	}

	return m, nil
}

func (m BrowseModel) handleKey(msg tea.KeyMsg) (BrowseModel, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			return m.setSearch("")
		default:
			var cmd, artCmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m, artCmd = m.setSearch(m.searchInput.Value())
			return m, tea.Batch(cmd, artCmd)
		}
	}

	switch msg.String() {
	case "/":
		m.searching = true
		return m, m.searchInput.Focus()
	case "w":
		return m.cycleFilter(holocron.FilterHomeWorld)
	case "f":
		return m.cycleFilter(holocron.FilterFilm)
	case "s":
		return m.cycleFilter(holocron.FilterSpecies)
	case "x":
		m.searchInput.SetValue("")
		m.filterPos = make(map[holocron.FilterKind]int)
		if m.criteria.IsZero() {
			return m, nil
		}
		m.criteria = holocron.FilterCriteria{}
		m.refilter()
		return m, m.loadCardArt()
	case "right", "l", "n":
		return m.Next()
	case "left", "h", "p":
		return m.Prev()
	case "enter":
		return m.Open()
	case "y":
		if c, ok := m.Current(); ok {
			if err := m.clip(c.Name + " " + c.URL); err != nil {
				m.logger.Warn().Err(err).Msg("clipboard write failed")
				return m, nil
			}
			m.copied = true
			return m, clearCopiedAfter(2 * time.Second)
		}
	}

	return m, nil
}

// Next advances one card; a no-op on the last one.
func (m BrowseModel) Next() (BrowseModel, tea.Cmd) {
	if m.index >= len(m.filtered)-1 {
		return m, nil
	}
	m.index++
	return m, m.loadCardArt()
}

// Prev goes back one card; a no-op on the first one.
func (m BrowseModel) Prev() (BrowseModel, tea.Cmd) {
	if m.index <= 0 {
		return m, nil
	}
	m.index--
	return m, m.loadCardArt()
}

// Open selects the current card and shows the detail overlay. An overlay that
// is already open switches to the new selection and keeps its home-world when
// the reference is unchanged.
func (m BrowseModel) Open() (BrowseModel, tea.Cmd) {
	c, ok := m.Current()
	if !ok {
		return m, nil
	}
	if m.detail != nil {
		return m, m.detail.SetCharacter(c)
	}
	m.detail = NewDetailModel(c, m.catalog, closeOverlay, m.logger)
	m.detail.SetSize(m.screenWidth, m.screenHeight)
	return m, m.detail.Init()
}

func (m *BrowseModel) closeDetail() {
	if m.detail != nil {
		m.detail.Close()
		m.detail = nil
	}
}

func (m BrowseModel) setSearch(term string) (BrowseModel, tea.Cmd) {
	if term == m.criteria.Search {
		return m, nil
	}
	m.criteria.Search = term
	m.refilter()
	return m, m.loadCardArt()
}

func (m BrowseModel) cycleFilter(kind holocron.FilterKind) (BrowseModel, tea.Cmd) {
	options := m.filters.Options(kind)
	pos := (m.filterPos[kind] + 1) % (len(options) + 1)

	filterPos := make(map[holocron.FilterKind]int, len(m.filterPos))
	for k, v := range m.filterPos {
		filterPos[k] = v
	}
	filterPos[kind] = pos
	m.filterPos = filterPos

	value := ""
	if pos > 0 {
		value = options[pos-1].Value
	}
	m.criteria = m.criteria.With(kind, value)
	m.refilter()
	return m, m.loadCardArt()
}

// refilter recomputes the filtered view and resets the index to the first card.
func (m *BrowseModel) refilter() {
	m.filtered = holocron.Filter(m.characters, m.criteria)
	m.index = 0
	m.cardArt = ""
	m.cardArtIndex = -1
}

func (m BrowseModel) loadCardArt() tea.Cmd {
	if m.art == nil || len(m.filtered) == 0 {
		return nil
	}
	art, index := m.art, m.index
	return func() tea.Msg {
		s, err := art(context.Background(), index, cardArtCols, cardArtRows)
		return cardArtMsg{index: index, art: s, err: err}
	}
}

// View renders the browse view.
func (m BrowseModel) View() string {
	if m.loading {
		return m.spinner.View() + " " + loadingStyle.Render("Loading...")
	}
	if m.err != nil {
		return errorStyle.Render(wordWrap("Error: "+m.err.Error(), max(m.width, 40)))
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())

	c, ok := m.Current()
	if ok {
		b.WriteString(m.renderCard(c))
		b.WriteString("\n")
	} else {
		b.WriteString(helpStyle.Render("No characters found."))
		b.WriteString("\n")
	}

	if len(m.filtered) > 0 {
		b.WriteString(m.renderPagination())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "←/→: prev/next • enter: details • /: search • w/f/s: filters • x: clear"
	if ok {
		help += " • y: copy"
	}
	if m.copied {
		help += "  " + copiedStyle.Render("Copied!")
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// renderHeader wraps at the view width so CardBounds sees the same rows View draws.
func (m BrowseModel) renderHeader() string {
	header := titleStyle.Render("Star Wars Characters") + "\n\n" + m.renderControls()
	if m.width > 0 {
		header = lipgloss.NewStyle().Width(m.width).Render(header)
	}
	return header + "\n\n"
}

// CardBounds returns the card rectangle relative to the view origin as
// x0, y0, x1, y1 (exclusive). ok is false when no card is shown.
func (m BrowseModel) CardBounds() (x0, y0, x1, y1 int, ok bool) {
	c, ok := m.Current()
	if !ok || m.loading || m.err != nil {
		return 0, 0, 0, 0, false
	}
	card := m.renderCard(c)
	y0 = lipgloss.Height(m.renderHeader()) - 1
	return 0, y0, lipgloss.Width(card), y0 + lipgloss.Height(card), true
}

func (m BrowseModel) onCard(x, y int) bool {
	x0, y0, x1, y1, ok := m.CardBounds()
	return ok && x >= x0 && x < x1 && y >= y0 && y < y1
}

func (m BrowseModel) renderControls() string {
	var search string
	if m.searching {
		search = searchBoxStyle.Render(m.searchInput.View())
	} else if m.criteria.Search != "" {
		search = filterLabelStyle.Render("Search: ") + filterActiveStyle.Render(fmt.Sprintf("%q", m.criteria.Search))
	} else {
		search = filterLabelStyle.Render("Search: ") + filterIdleStyle.Render("press /")
	}

	var selects []string
	for _, kind := range filterKinds {
		label := m.FilterLabel(kind)
		style := filterActiveStyle
		if label == "" {
			label = "any"
			style = filterIdleStyle
		}
		selects = append(selects, filterLabelStyle.Render(kind.String()+": ")+style.Render(label))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		search,
		strings.Join(selects, "   "),
	)
}

func (m BrowseModel) renderCard(c holocron.Character) string {
	picture := m.cardArt
	if picture == "" || m.cardArtIndex != m.index {
		mark := monogram.Cached(initials(c.Name), cardArtCols, cardArtRows)
		if mark == "" {
			mark = initials(c.Name)
		}
		picture = cardFallbackStyle.
			Width(cardArtCols).
			Height(cardArtRows).
			Render(mark)
	}

	name := nameStyle.Render(truncate(c.Name, cardArtCols))
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, picture, "", name))
}

func (m BrowseModel) renderPagination() string {
	prev := navEnabledStyle.Render("◀ Prev")
	if m.index == 0 {
		prev = navDisabledStyle.Render("◀ Prev")
	}
	next := navEnabledStyle.Render("Next ▶")
	if m.index >= len(m.filtered)-1 {
		next = navDisabledStyle.Render("Next ▶")
	}
	counter := counterStyle.Render(fmt.Sprintf("%d / %d", m.index+1, len(m.filtered)))

	return lipgloss.JoinHorizontal(lipgloss.Center, prev, counter, next)
}
