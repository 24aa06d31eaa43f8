package tui

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/f3rmion/holocron/internal/config"
	"github.com/f3rmion/holocron/internal/holocron"
	"github.com/f3rmion/holocron/internal/tui/halfblock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	chars []holocron.Character
}

func (s stubCatalog) FetchCharacters(ctx context.Context) ([]holocron.Character, error) {
	return s.chars, nil
}

func (s stubCatalog) FetchHomeWorld(ctx context.Context, ref string) (*holocron.HomeWorld, error) {
	return &holocron.HomeWorld{Name: "Tatooine", Terrain: "desert", Climate: "arid", Population: "200000"}, nil
}

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	return newSizedApp(t, 120, 40)
}

func newSizedApp(t *testing.T, width, height int) AppModel {
	t.Helper()
	cfg := config.Default()
	cfg.Images.Enabled = false

	cat := stubCatalog{chars: []holocron.Character{
		{Name: "Luke Skywalker", HomeWorld: "https://swapi.dev/api/planets/1/"},
		{Name: "Leia Organa", HomeWorld: "https://swapi.dev/api/planets/2/"},
	}}

	app := NewApp(NewBrowse(cfg, cat, zerolog.Nop()))
	model, _ := app.Update(tea.WindowSizeMsg{Width: width, Height: height})
	app = model.(AppModel)

	cmd := app.Init()
	require.NotNil(t, cmd)
	// Init batches the spinner with the fetch; deliver both results once.
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if c == nil {
			continue
		}
		model, _ = app.Update(c())
		app = model.(AppModel)
	}
	require.False(t, app.Browse().Loading())
	return app
}

func send(app AppModel, msgs ...tea.Msg) (AppModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var model tea.Model
		model, cmd = app.Update(msg)
		app = model.(AppModel)
	}
	return app, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppModel_NotReadyUntilSized(t *testing.T) {
	app := NewApp(NewBrowse(config.Default(), stubCatalog{}, zerolog.Nop()))
	assert.Equal(t, "Loading...", app.View())
}

func TestAppModel_Layout(t *testing.T) {
	app := newTestApp(t)
	view := app.View()
	assert.Contains(t, view, "HOLOCRON")
	assert.Contains(t, view, "2 of 2")
	assert.Contains(t, view, "No filters")
	assert.Contains(t, view, "Luke Skywalker")

	app, _ = send(app, runes("w"))
	view = app.View()
	assert.Contains(t, view, "1 of 2")
	assert.Contains(t, view, "Tatooine")
}

func TestAppModel_Quit(t *testing.T) {
	app := newTestApp(t)

	_, cmd := send(app, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = send(app, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppModel_SearchCapturesQuitKey(t *testing.T) {
	app := newTestApp(t)
	app, _ = send(app, runes("/"), runes("q"))
	assert.True(t, app.Browse().Capturing())
	assert.Equal(t, "q", app.Browse().Criteria().Search)
}

func TestAppModel_Help(t *testing.T) {
	app := newTestApp(t)
	app, _ = send(app, runes("?"))
	assert.Contains(t, app.View(), "Press any key to close")

	app, cmd := send(app, runes("q"))
	assert.Nil(t, cmd)
	assert.NotContains(t, app.View(), "Press any key to close")
}

func TestAppModel_OverlayTakesTheScreen(t *testing.T) {
	app := newTestApp(t)
	app, cmd := send(app, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app, _ = send(app, cmd())

	view := app.View()
	assert.Contains(t, view, "Homeworld Details")
	assert.NotContains(t, view, "HOLOCRON")

	// the backdrop corner is outside the panel
	app, cmd = send(app, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	app, _ = send(app, cmd())
	assert.Nil(t, app.Browse().Detail())
	assert.Contains(t, app.View(), "HOLOCRON")
}

func TestNewCardArt(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "3", r.URL.Query().Get("random"))
		img := image.NewRGBA(image.Rect(0, 0, 4, 4))
		for x := 0; x < 4; x++ {
			for y := 0; y < 4; y++ {
				img.Set(x, y, color.RGBA{R: 200, A: 255})
			}
		}
		w.Header().Set("Content-Type", "image/png")
		_ = png.Encode(w, img)
	}))
	defer srv.Close()

	art := NewCardArt(srv.Client(), srv.URL, halfblock.NewCache())

	first, err := art(context.Background(), 3, 4, 2)
	require.NoError(t, err)
	assert.Contains(t, first, "▀")

	second, err := art(context.Background(), 3, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), hits.Load())
}

func TestAppModel_ClickCardOpensOverlay(t *testing.T) {
	app := newTestApp(t)
	ox, oy := app.contentOrigin()
	x0, y0, x1, y1, ok := app.Browse().CardBounds()
	require.True(t, ok)

	// a click on the sidebar is not a click on the card
	app, cmd := send(app, tea.MouseMsg{X: 1, Y: oy + y0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	assert.Nil(t, app.Browse().Detail())

	app, cmd = send(app, tea.MouseMsg{X: ox + (x0+x1)/2, Y: oy + (y0+y1)/2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	require.NotNil(t, app.Browse().Detail())
	assert.Equal(t, "Luke Skywalker", app.Browse().Detail().Character().Name)
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestAppModel_CardBoundsMatchWrappedContent(t *testing.T) {
	// 40 columns inside the padding: the filter row wraps onto a second line.
	app := newSizedApp(t, 70, 40)
	ox, oy := app.contentOrigin()
	_, y0, _, y1, ok := app.Browse().CardBounds()
	require.True(t, ok)

	lines := strings.Split(ansi.Strip(app.View()), "\n")
	require.Greater(t, len(lines), oy+y1)
	cell := func(row int) string {
		r := []rune(lines[row])
		require.Greater(t, len(r), ox)
		return string(r[ox])
	}
	assert.Equal(t, "╭", cell(oy+y0))
	assert.Equal(t, "╰", cell(oy+y1-1))
	assert.Equal(t, " ", cell(oy+y0-1))

	// the blank row above the card does nothing
	app, cmd := send(app, leftClick(ox+1, oy+y0-1))
	assert.Nil(t, cmd)
	assert.Nil(t, app.Browse().Detail())

	// the bottom border row is part of the card
	app, cmd = send(app, leftClick(ox+1, oy+y1-1))
	require.NotNil(t, cmd)
	require.NotNil(t, app.Browse().Detail())
}

func TestAppModel_HelpSwallowsMouse(t *testing.T) {
	app := newTestApp(t)
	ox, oy := app.contentOrigin()
	x0, y0, x1, y1, ok := app.Browse().CardBounds()
	require.True(t, ok)

	app, _ = send(app, runes("?"))
	app, cmd := send(app, leftClick(ox+(x0+x1)/2, oy+(y0+y1)/2))
	assert.Nil(t, cmd)
	assert.Nil(t, app.Browse().Detail())
	assert.Contains(t, app.View(), "Press any key to close")
}
