package cmd

import (
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive character browser",
	Long: `Launch the full-screen character browser.

Keys:
  ←/→  previous/next card        enter  open details
  /    search by name            w f s  cycle homeworld, film, species
  x    clear search and filters  y      copy name and URL
  esc  close details             q      quit

Clicking outside the details panel also closes it.`,
	RunE: runBrowser,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
