package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/f3rmion/holocron/internal/holocron"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the characters matching the filters",
	Long: `Fetch the character catalog and print the filtered view as a table.

Example:
  holocron list
  holocron list --search sky
  holocron list --homeworld Tatooine --film "A New Hope"`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	addFilterFlags(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newConsoleLogger(cfg)

	chars, err := newClient(cfg, logger).FetchCharacters(cmd.Context())
	if err != nil {
		return err
	}

	criteria := criteriaFromFlags(cmd, cfg.Filters)
	filtered := holocron.Filter(chars, criteria)
	logger.Debug().Int("total", len(chars)).Int("shown", len(filtered)).Msg("filtered characters")

	out := cmd.OutOrStdout()
	if len(filtered) == 0 {
		fmt.Fprintln(out, "No characters found.")
		return nil
	}
	printTable(out, filtered)
	return nil
}

var tableColumns = []struct {
	title string
	width int
}{
	{"#", 4},
	{"NAME", 24},
	{"HEIGHT", 8},
	{"MASS", 8},
	{"BORN", 8},
	{"FILMS", 5},
	{"HOMEWORLD", 9},
}

// printTable writes one row per character, padded by display width.
func printTable(w io.Writer, chars []holocron.Character) {
	row := func(cells ...string) {
		var b strings.Builder
		for i, cell := range cells {
			width := tableColumns[i].width
			b.WriteString(runewidth.FillRight(runewidth.Truncate(cell, width, "…"), width))
			if i < len(cells)-1 {
				b.WriteString("  ")
			}
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}

	titles := make([]string, len(tableColumns))
	for i, c := range tableColumns {
		titles[i] = c.title
	}
	row(titles...)

	for i, c := range chars {
		row(
			strconv.Itoa(i+1),
			c.Name,
			holocron.FormatHeight(c.Height),
			holocron.FormatMass(c.Mass),
			c.BirthYear,
			strconv.Itoa(holocron.FilmCount(c)),
			holocron.ResourceID(c.HomeWorld),
		)
	}
	fmt.Fprintf(w, "\n%d character(s)\n", len(chars))
}
