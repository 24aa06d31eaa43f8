// Package export writes a snapshot of characters to JSON, YAML or SQLite.
package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/f3rmion/holocron/internal/holocron"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	_ "modernc.org/sqlite"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatSQLite:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "db", "sqlite3":
		return FormatSQLite, nil
	}
	return "", fmt.Errorf("unknown export format %q (want json, yaml or sqlite)", s)
}

// Record is one exported character.
type Record struct {
	ID           string              `json:"id" yaml:"id"`
	Name         string              `json:"name" yaml:"name"`
	Height       string              `json:"height" yaml:"height"`
	Mass         string              `json:"mass" yaml:"mass"`
	BirthYear    string              `json:"birth_year,omitempty" yaml:"birth_year,omitempty"`
	Created      string              `json:"created,omitempty" yaml:"created,omitempty"`
	URL          string              `json:"url,omitempty" yaml:"url,omitempty"`
	HomeWorldRef string              `json:"homeworld_ref,omitempty" yaml:"homeworld_ref,omitempty"`
	HomeWorld    *holocron.HomeWorld `json:"homeworld,omitempty" yaml:"homeworld,omitempty"`
	Films        []string            `json:"films" yaml:"films"`
	Species      []string            `json:"species,omitempty" yaml:"species,omitempty"`
}

// Records converts characters to export records, attaching resolved
// home-worlds where homeWorlds has them. homeWorlds may be nil.
func Records(chars []holocron.Character, homeWorlds map[string]*holocron.HomeWorld) []Record {
	out := make([]Record, 0, len(chars))
	for _, c := range chars {
		films := c.Films
		if films == nil {
			films = []string{}
		}
		out = append(out, Record{
			ID:           holocron.ResourceID(c.URL),
			Name:         c.Name,
			Height:       c.Height,
			Mass:         c.Mass,
			BirthYear:    c.BirthYear,
			Created:      c.Created,
			URL:          c.URL,
			HomeWorldRef: c.HomeWorld,
			HomeWorld:    homeWorlds[c.HomeWorld],
			Films:        films,
			Species:      c.Species,
		})
	}
	return out
}

// HomeWorldFetcher resolves a home-world reference.
type HomeWorldFetcher interface {
	FetchHomeWorld(ctx context.Context, ref string) (*holocron.HomeWorld, error)
}

// ResolveHomeWorlds fetches every distinct home-world referenced by chars,
// at most limit at a time. The first failure cancels the rest.
func ResolveHomeWorlds(ctx context.Context, f HomeWorldFetcher, chars []holocron.Character, limit int) (map[string]*holocron.HomeWorld, error) {
	seen := make(map[string]bool)
	var refs []string
	for _, c := range chars {
		if c.HomeWorld == "" || seen[c.HomeWorld] {
			continue
		}
		seen[c.HomeWorld] = true
		refs = append(refs, c.HomeWorld)
	}

	var (
		mu  sync.Mutex
		out = make(map[string]*holocron.HomeWorld, len(refs))
	)

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, ref := range refs {
		ref := ref
		g.Go(func() error {
			hw, err := f.FetchHomeWorld(ctx, ref)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", ref, err)
			}
			mu.Lock()
			out[ref] = hw
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteJSON writes records as an indented JSON array.
func WriteJSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// WriteYAML writes records as a YAML sequence.
func WriteYAML(w io.Writer, records []Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE characters (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	height        TEXT,
	mass          TEXT,
	birth_year    TEXT,
	created       TEXT,
	url           TEXT,
	homeworld_ref TEXT
);
CREATE TABLE character_films (
	character_id TEXT NOT NULL REFERENCES characters(id),
	film_ref     TEXT NOT NULL
);
CREATE TABLE character_species (
	character_id TEXT NOT NULL REFERENCES characters(id),
	species_ref  TEXT NOT NULL
);
CREATE TABLE homeworlds (
	ref        TEXT PRIMARY KEY,
	name       TEXT,
	terrain    TEXT,
	climate    TEXT,
	population TEXT
);
`

// WriteSQLite writes records into a fresh SQLite database at path,
// replacing any existing file.
func WriteSQLite(path string, records []Record) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing old database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	for i, r := range records {
		id := r.ID
		if id == "" {
			id = fmt.Sprintf("row-%d", i+1)
		}

		_, err := tx.Exec(`
			INSERT INTO characters (id, name, height, mass, birth_year, created, url, homeworld_ref)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, id, r.Name, r.Height, r.Mass, r.BirthYear, r.Created, r.URL, r.HomeWorldRef)
		if err != nil {
			return fmt.Errorf("inserting character %q: %w", r.Name, err)
		}

		for _, film := range r.Films {
			if _, err := tx.Exec("INSERT INTO character_films (character_id, film_ref) VALUES (?, ?)", id, film); err != nil {
				return fmt.Errorf("inserting film for %q: %w", r.Name, err)
			}
		}
		for _, sp := range r.Species {
			if _, err := tx.Exec("INSERT INTO character_species (character_id, species_ref) VALUES (?, ?)", id, sp); err != nil {
				return fmt.Errorf("inserting species for %q: %w", r.Name, err)
			}
		}

		if hw := r.HomeWorld; hw != nil {
			_, err := tx.Exec(`
				INSERT OR IGNORE INTO homeworlds (ref, name, terrain, climate, population)
				VALUES (?, ?, ?, ?, ?)
			`, r.HomeWorldRef, hw.Name, hw.Terrain, hw.Climate, hw.Population)
			if err != nil {
				return fmt.Errorf("inserting homeworld %q: %w", hw.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// WriteFile writes records to path in the given format.
func WriteFile(path string, format Format, records []Record) error {
	if format == FormatSQLite {
		return WriteSQLite(path, records)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	switch format {
	case FormatJSON:
		err = WriteJSON(f, records)
	case FormatYAML:
		err = WriteYAML(f, records)
	default:
		err = fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return err
	}
	return f.Close()
}
