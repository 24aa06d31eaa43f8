package cmd

import (
	"strings"

	"github.com/f3rmion/holocron/internal/config"
	"github.com/f3rmion/holocron/internal/holocron"
	"github.com/spf13/cobra"
)

// addFilterFlags registers the search and categorical filter flags on c.
func addFilterFlags(c *cobra.Command) {
	c.Flags().String("search", "", "case-insensitive substring of the name")
	c.Flags().String("homeworld", "", "homeworld option label or id (e.g. Tatooine or 1)")
	c.Flags().String("film", "", "film option label or id (e.g. \"A New Hope\" or 1)")
	c.Flags().String("species", "", "species option label or id (e.g. Droid or 2)")
}

// criteriaFromFlags builds filter criteria from the flags added by addFilterFlags.
func criteriaFromFlags(c *cobra.Command, filters config.FiltersConfig) holocron.FilterCriteria {
	search, _ := c.Flags().GetString("search")
	criteria := holocron.FilterCriteria{Search: search}

	for kind, flag := range map[holocron.FilterKind]string{
		holocron.FilterHomeWorld: "homeworld",
		holocron.FilterFilm:      "film",
		holocron.FilterSpecies:   "species",
	} {
		v, _ := c.Flags().GetString(flag)
		criteria = criteria.With(kind, resolveOption(filters.Options(kind), v))
	}
	return criteria
}

// resolveOption maps a configured option label to its value. Anything else is
// used as given.
func resolveOption(options []config.FilterOption, input string) string {
	input = strings.TrimSpace(input)
	for _, o := range options {
		if strings.EqualFold(o.Label, input) {
			return o.Value
		}
	}
	return input
}
