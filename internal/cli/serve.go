package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/agencyflow/agencyflow/internal/api"
	"github.com/agencyflow/agencyflow/internal/app/planner"
	"github.com/agencyflow/agencyflow/internal/infra/caption"
	"github.com/agencyflow/agencyflow/internal/infra/sqlite"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the AgencyFlow HTTP API",
	Long: `Start the HTTP API the browser views talk to. The planner state is
loaded from the local database (or seeded on first run) and persisted after
every mutation.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := sqlite.Open(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}
	defer store.Close()

	// Over HTTP the consent decision rides the request context.
	p := planner.New(context.Background(), store, api.RequestConfirmer())

	captions := caption.New(caption.Config{
		APIKey:  cfg.CaptionAPIKey(),
		Model:   cfg.Caption.Model,
		Timeout: cfg.CaptionTimeout(),
	})

	server := api.NewServer(p, captions)
	if cfg.Metrics.Enabled {
		server.EnableMetrics()
	}

	log.Printf("agencyflow: listening on %s (data dir %s)", cfg.Addr(), cfg.Storage.DataDir)
	return server.Run(cfg.Addr())
}
