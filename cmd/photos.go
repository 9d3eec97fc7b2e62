package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"elemex/internal/config"
	"elemex/internal/db"
	"elemex/internal/elements"
	"elemex/internal/photos"
	"elemex/internal/progress"
)

var photosCmd = &cobra.Command{
	Use:   "photos",
	Short: "Check photo availability for every element",
	Long: `Probes the image host for each element in the dataset and records
which photos exist. The viewer uses the recorded results to decide
between a real photo and the placeholder image.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		database, err := db.Open(filepath.Join(cfg.DataDir, "elemex.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		loader := elements.NewLoader(cfg.UpstreamURL, cfg.FetchTimeout(), cfg.CacheTTL(), elements.NewStore(database))
		ds := loader.Load(cmd.Context())

		client := photos.New(cfg.ImageHost, cfg.FetchTimeout())
		available, err := client.Prefetch(cmd.Context(), ds, photos.NewStore(database), progress.NewReporter())
		if err != nil {
			return err
		}

		fmt.Printf("%d of %d element photos available\n", available, ds.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(photosCmd)
}
