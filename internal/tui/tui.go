package tui

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/holocron/internal/config"
	"github.com/f3rmion/holocron/internal/placeholder"
	"github.com/f3rmion/holocron/internal/tui/halfblock"
	"github.com/f3rmion/holocron/internal/tui/views"
	"github.com/rs/zerolog"
)

// NewCardArt returns a card picture source backed by the placeholder service.
// Renderings are cached per index for the life of the process.
func NewCardArt(client *http.Client, baseURL string, cache *halfblock.Cache) views.CardArt {
	if cache == nil {
		cache = halfblock.NewCache()
	}
	return func(ctx context.Context, index, cols, rows int) (string, error) {
		return cache.Get(strconv.Itoa(index), cols, rows, func() (image.Image, error) {
			return placeholder.Fetch(ctx, client, placeholder.URL(baseURL, index))
		})
	}
}

// NewBrowse wires a browse view from configuration.
func NewBrowse(cfg *config.Config, catalog views.Catalog, logger zerolog.Logger) views.BrowseModel {
	opts := []views.BrowseOption{views.WithLogger(logger)}
	if cfg.Images.Enabled {
		hc := &http.Client{Timeout: cfg.API.Timeout}
		opts = append(opts, views.WithCardArt(NewCardArt(hc, cfg.Images.BaseURL, nil)))
	}
	return views.NewBrowseModel(catalog, cfg.Filters, opts...)
}

// Run starts the full-screen browser and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, cfg *config.Config, catalog views.Catalog, logger zerolog.Logger) error {
	app := NewApp(NewBrowse(cfg, catalog, logger))

	p := tea.NewProgram(
		app,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	logger.Info().Str("api", cfg.API.BaseURL).Bool("images", cfg.Images.Enabled).Msg("starting browser")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
