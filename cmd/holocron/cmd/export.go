package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/f3rmion/holocron/internal/export"
	"github.com/f3rmion/holocron/internal/holocron"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered characters to a JSON, YAML or SQLite file",
	Long: `Fetch the character catalog, apply the filters and write the result.

The format defaults to the output file's extension (.json, .yaml/.yml,
.db/.sqlite). With --with-homeworlds every distinct homeworld is fetched
concurrently and embedded in the output.

Example:
  holocron export --out characters.json
  holocron export --out tatooine.db --homeworld Tatooine --with-homeworlds`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addFilterFlags(exportCmd)

	exportCmd.Flags().StringP("out", "o", "", "output file (required)")
	exportCmd.Flags().StringP("format", "f", "", "json, yaml or sqlite (default from --out extension)")
	exportCmd.Flags().Bool("with-homeworlds", false, "resolve and embed each character's homeworld")
	exportCmd.Flags().Int("concurrency", 4, "parallel homeworld requests")
	exportCmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	formatName, _ := cmd.Flags().GetString("format")
	withHomeWorlds, _ := cmd.Flags().GetBool("with-homeworlds")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	if formatName == "" {
		formatName = strings.TrimPrefix(filepath.Ext(out), ".")
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

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
	filtered := holocron.Filter(chars, criteriaFromFlags(cmd, cfg.Filters))

	var homeWorlds map[string]*holocron.HomeWorld
	if withHomeWorlds {
		homeWorlds, err = export.ResolveHomeWorlds(cmd.Context(), client, filtered, concurrency)
		if err != nil {
			return fmt.Errorf("resolving homeworlds: %w", err)
		}
		logger.Debug().Int("homeworlds", len(homeWorlds)).Msg("resolved homeworlds")
	}

	if err := export.WriteFile(out, format, export.Records(filtered, homeWorlds)); err != nil {
		return err
	}

	logger.Info().Str("path", out).Str("format", string(format)).Int("characters", len(filtered)).Msg("export written")
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d character(s) to %s\n", len(filtered), out)
	return nil
}
