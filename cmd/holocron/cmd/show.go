package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/f3rmion/holocron/internal/holocron"
	"github.com/f3rmion/holocron/internal/swapi"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one character with its homeworld",
	Long: `Find a character by name (exact match first, then partial) and print the
same details as the browser's overlay, including the homeworld.

Example:
  holocron show luke
  holocron show "Leia Organa"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newConsoleLogger(cfg)
	client := newClient(cfg, logger)

	chars, err := client.FetchCharacters(cmd.Context())
	if err != nil {
		return err
	}

	name := strings.Join(args, " ")
	c, ok := holocron.FindByName(chars, name)
	if !ok {
		return fmt.Errorf("no character matching %q", name)
	}

	hw, err := client.FetchHomeWorld(cmd.Context(), c.HomeWorld)
	if err != nil && !errors.Is(err, swapi.ErrNoHomeWorld) {
		logger.Warn().Err(err).Str("ref", c.HomeWorld).Msg("homeworld fetch failed")
	}

	printCharacter(cmd.OutOrStdout(), c, hw, err)
	return nil
}

// printCharacter writes the detail block for c. hwErr is the home-world
// fetch outcome when hw is nil.
func printCharacter(w io.Writer, c holocron.Character, hw *holocron.HomeWorld, hwErr error) {
	field := func(label, value string) {
		fmt.Fprintf(w, "%-13s %s\n", label, value)
	}

	fmt.Fprintln(w, c.Name)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(c.Name))))
	field("Height:", holocron.FormatHeight(c.Height))
	field("Mass:", holocron.FormatMass(c.Mass))
	field("Date Added:", holocron.FormatCreated(c.Created))
	field("Films Count:", fmt.Sprintf("%d", holocron.FilmCount(c)))
	field("Birth Year:", c.BirthYear)
	fmt.Fprintln(w)

	switch {
	case hw != nil:
		fmt.Fprintln(w, "Homeworld Details")
		field("Name:", hw.Name)
		field("Terrain:", hw.Terrain)
		field("Climate:", hw.Climate)
		field("Population:", hw.Population)
	case errors.Is(hwErr, swapi.ErrNoHomeWorld):
		fmt.Fprintln(w, "No homeworld on record.")
	case hwErr != nil:
		fmt.Fprintf(w, "Homeworld unavailable: %v\n", hwErr)
	}
}
