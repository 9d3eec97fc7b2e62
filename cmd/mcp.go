package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"elemex/internal/config"
	"elemex/internal/db"
	"elemex/internal/elements"
	"elemex/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP server exposing element lookup tools",
	Long: `Starts a Model Context Protocol server on stdio. The server exposes
tools for looking up a single element, searching the dataset, and
listing the elements of a category.`,
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
		mcp.Version = Version
		return mcp.NewServer(loader).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
