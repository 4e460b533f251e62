// Command ycweather is the Yellowstone Club weather-station collector CLI.
//
// Usage:
//
//	ycweather fetch
//	ycweather fetch --data-dir data --hours 168
//	ycweather serve
//	ycweather stations
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/api"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/browser"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/collect"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/config"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/logging"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/provider/mtavalanche"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/provider/nws"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/store"
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "ycweather",
		Short: "Yellowstone Club weather-station collector",
	}

	root.AddCommand(fetchCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(stationsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// fetch command
// --------------------------------------------------------------------------

func fetchCmd() *cobra.Command {
	var (
		dataDir     string
		hours       int
		noSecondary bool
	)
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch observations for every station and write the data files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
				if dataDir != "" {
					cfg.DataDir = dataDir
				}
				if hours > 0 {
					cfg.LookbackHours = hours
				}
				if noSecondary {
					cfg.MTAvalancheEnabled = false
				}

				st, err := store.New(cfg.DataDir)
				if err != nil {
					return err
				}

				sess, err := browser.New(ctx, cfg, logger)
				if err != nil {
					return fmt.Errorf("browser session: %w", err)
				}
				defer sess.Close()

				deps := &collect.Deps{
					Primary: nws.NewHandler(sess, cfg, logger),
					Store:   st,
					Screens: sess,
				}
				if cfg.MTAvalancheEnabled {
					deps.Secondary = mtavalanche.NewHandler(sess, cfg, logger)
				}

				start := time.Now()
				result := collect.Run(ctx, deps, cfg, logger)
				logger.Info("fetch finished",
					"duration", time.Since(start).Round(time.Second),
					"summary", result.Summary())
				if len(result.Errors) > 0 {
					for _, e := range result.Errors {
						logger.Error("fetch error", "error", e)
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Output directory (default from env/DATA_DIR, then \"data\")")
	cmd.Flags().IntVar(&hours, "hours", 0, "Hours of history to request (default from env/LOOKBACK_HOURS, then 168)")
	cmd.Flags().BoolVar(&noSecondary, "no-secondary", false, "Skip the avalanche-center source")
	return cmd
}

// --------------------------------------------------------------------------
// serve command
// --------------------------------------------------------------------------

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the collected data files over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
				st, err := store.New(cfg.DataDir)
				if err != nil {
					return err
				}

				srv := &http.Server{
					Addr:         fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort),
					Handler:      api.NewRouter(st, cfg, logger),
					ReadTimeout:  10 * time.Second,
					WriteTimeout: 10 * time.Second,
				}

				errCh := make(chan error, 1)
				go func() {
					logger.Info("server starting", "addr", srv.Addr, "data_dir", st.Dir())
					errCh <- srv.ListenAndServe()
				}()

				select {
				case err := <-errCh:
					if err != nil && !errors.Is(err, http.ErrServerClosed) {
						return fmt.Errorf("server: %w", err)
					}
					return nil
				case <-ctx.Done():
				}

				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
		},
	}
	return cmd
}

// --------------------------------------------------------------------------
// stations command
// --------------------------------------------------------------------------

func stationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stations",
		Short: "List the configured station registry",
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range config.StationRegistry {
				fmt.Printf("%-6s %-16s %s\n", s.ID, s.Name, s.MTAvalanchePath)
			}
		},
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// run handles config loading, logger construction, and context cancellation.
func run(fn func(ctx context.Context, cfg *config.Config, logger *slog.Logger) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	return fn(ctx, cfg, logging.New(cfg))
}
