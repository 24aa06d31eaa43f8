package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/holocron/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write config.yaml with the built-in defaults into your config directory.

The file sets the catalog URL, the request timeout, the card picture service,
the options offered by the homeworld, film and species filters, and logging.
Edit it to add filter options or point at a mirror of the API.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.Save(configDir, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit the filter options to taste")
	fmt.Fprintln(out, "  2. Run 'holocron' to start browsing")
	return nil
}
