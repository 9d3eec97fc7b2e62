package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"elemex/internal/config"
	"elemex/internal/db"
	"elemex/internal/elements"
)

var fetchForce bool

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the element dataset and warm the local cache",
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
		if fetchForce {
			loader.Refresh()
		}

		ds := loader.Load(cmd.Context())
		switch {
		case ds.Fallback:
			fmt.Printf("Upstream unavailable, using built-in fallback (%d elements)\n", ds.Len())
		case ds.Stale:
			fmt.Printf("Upstream unavailable, using stale cache (%d elements, fetched %s)\n", ds.Len(), ds.FetchedAt.Format("2006-01-02 15:04"))
		default:
			fmt.Printf("Cached %d elements from %s\n", ds.Len(), cfg.UpstreamURL)
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().BoolVarP(&fetchForce, "force", "f", false, "ignore the cache window and refetch")
	rootCmd.AddCommand(fetchCmd)
}
