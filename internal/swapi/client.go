// Package swapi provides a client for the public Star Wars catalog API.
package swapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/f3rmion/holocron/internal/holocron"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public catalog endpoint.
	DefaultBaseURL = "https://swapi.dev/api"
	defaultTimeout = 15 * time.Second
)

// ErrNoHomeWorld is returned when a character carries no home-world reference.
var ErrNoHomeWorld = errors.New("character has no homeworld reference")

// StatusError reports a non-2xx response from the catalog.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.URL)
}

// Client is a catalog API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the catalog base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// peopleResponse is the envelope of the people listing.
type peopleResponse struct {
	Count    int                  `json:"count"`
	Next     *string              `json:"next"`
	Previous *string              `json:"previous"`
	Results  []holocron.Character `json:"results"`
}

// NewClient creates a new catalog client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the catalog base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchCharacters fetches the first page of the people listing.
func (c *Client) FetchCharacters(ctx context.Context) ([]holocron.Character, error) {
	var resp peopleResponse
	if err := c.getJSON(ctx, c.baseURL+"/people/", &resp); err != nil {
		return nil, fmt.Errorf("fetching characters: %w", err)
	}
	if resp.Results == nil {
		resp.Results = []holocron.Character{}
	}
	c.logger.Debug().Int("count", len(resp.Results)).Msg("characters loaded")
	return resp.Results, nil
}

// FetchHomeWorld fetches the planet behind a home-world reference.
// Relative references are resolved against the base URL.
func (c *Client) FetchHomeWorld(ctx context.Context, ref string) (*holocron.HomeWorld, error) {
	if strings.TrimSpace(ref) == "" {
		return nil, ErrNoHomeWorld
	}

	target, err := c.resolve(ref)
	if err != nil {
		return nil, fmt.Errorf("resolving homeworld reference: %w", err)
	}

	var hw holocron.HomeWorld
	if err := c.getJSON(ctx, target, &hw); err != nil {
		return nil, fmt.Errorf("fetching homeworld: %w", err)
	}
	return &hw, nil
}

func (c *Client) resolve(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	if u.IsAbs() {
		return ref, nil
	}
	base, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return "", err
	}
	return base.ResolveReference(&url.URL{Path: strings.TrimLeft(u.Path, "/")}).String(), nil
}

func (c *Client) getJSON(ctx context.Context, target string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", target).Msg("request failed")
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("catalog request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode, URL: target}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("unmarshaling response: %w", err)
	}
	return nil
}
