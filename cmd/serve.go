package cmd

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"elemex/internal/config"
	"elemex/internal/db"
	"elemex/internal/elements"
	"elemex/internal/photos"
	"elemex/internal/server"
	"elemex/internal/viewer"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the periodic table web server",
	Long: `Starts the HTTP server that renders the periodic table viewer,
exposes the JSON API, and accepts element click events over a
websocket. The element dataset is fetched on first use and cached
in the data directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Port = servePort
		}

		database, err := db.Open(filepath.Join(cfg.DataDir, "elemex.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		loader := elements.NewLoader(cfg.UpstreamURL, cfg.FetchTimeout(), cfg.CacheTTL(), elements.NewStore(database))
		photoClient := photos.New(cfg.ImageHost, cfg.FetchTimeout())

		srv := server.New(server.Config{Port: cfg.Port, AllowAll: cfg.AllowAllOrigins})
		viewer.New(loader, photoClient, cfg.InitialSelection).RegisterRoutes(srv.Router())

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			log.Println("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
