package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/sundial/wellness/internal/config"
	"github.com/sundial/wellness/internal/normalize"
	"github.com/sundial/wellness/internal/server"
	"github.com/sundial/wellness/internal/source"
	"github.com/sundial/wellness/internal/storage/sqlite"
	"github.com/sundial/wellness/internal/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve insights over HTTP",
	Long: `Start the HTTP read surface:

  GET  /insights          full wellness bundle
  GET  /wellness-score    score and trends only
  GET  /recommendations   priorities and action plan
  POST /refresh           re-run the pipeline (rate limited)

Examples:
  wellness serve --addr :8080 --demo
  wellness serve --addr :8080 --input week.json --db wellness.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger()

		engine, err := newEngine(cfg, logger)
		if err != nil {
			return err
		}

		provider, err := snapshotProvider(cmd, cfg)
		if err != nil {
			return err
		}

		opts := server.Options{Logger: logger}
		if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
			store, err := sqlite.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()
			opts.Store = store
		}
		if perMin, _ := cmd.Flags().GetFloat64("refresh-per-minute"); perMin > 0 {
			opts.RefreshPerMinute = perMin
		}

		srv, err := server.New(context.Background(), engine, provider, opts)
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		fmt.Printf("Serving wellness insights on %s\n", addr)

		httpServer := &http.Server{
			Addr:              addr,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		return httpServer.ListenAndServe()
	},
}

// snapshotProvider turns the input flags into a provider the server can
// call again on every refresh. Demo mode re-seeds per refresh so runs
// stay reproducible; file mode re-reads the file so edits are picked up.
func snapshotProvider(cmd *cobra.Command, cfg *config.Config) (server.SnapshotProvider, error) {
	inputPath, _ := cmd.Flags().GetString("input")
	demo, _ := cmd.Flags().GetBool("demo")

	if !demo && inputPath == "" {
		return nil, fmt.Errorf("no data source: pass --input FILE or --demo")
	}

	if demo {
		days, _ := cmd.Flags().GetInt("days")
		seed, _ := cmd.Flags().GetInt64("seed")
		return func(ctx context.Context) (*types.Snapshot, error) {
			end := time.Now().UTC().Truncate(24 * time.Hour)
			metrics, journal := source.NewGenerator(seed).Days(end, days)
			return normalize.New(cfg).Normalize(metrics, journal)
		}, nil
	}

	return func(ctx context.Context) (*types.Snapshot, error) {
		return readInputFile(inputPath, cfg)
	}, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addInputFlags(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("db", "", "optional history database path")
	serveCmd.Flags().Float64("refresh-per-minute", 2, "POST /refresh rate limit")
}
