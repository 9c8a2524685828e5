package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/myusername/records-dashboard/internal/dashboard"
	"github.com/myusername/records-dashboard/internal/metrics"
	"github.com/myusername/records-dashboard/internal/snapshot"
	"github.com/myusername/records-dashboard/pkg/models"
	"github.com/myusername/records-dashboard/pkg/parser"
)

const shutdownTimeout = 10 * time.Second

var (
	serveAddr   string
	serveRoster string
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: listen_addr from config)")
	serveCmd.Flags().StringVar(&serveRoster, "roster", "", "Roster file to serve at /roster")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve [--addr :8080] [--roster <path>]",
	Short: "Serves the interactive records dashboard over HTTP.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		addr := serveAddr
		if addr == "" {
			addr = cfg.ListenAddr
		}

		var roster *models.Dataset
		if serveRoster != "" {
			var err error
			roster, err = parser.LoadRoster(serveRoster)
			if err != nil {
				return err
			}
		}

		m := metrics.NewManager()
		store := snapshot.New(func(ctx context.Context) (*models.Dataset, error) {
			return fetchRecords(ctx, cfg, cfg.RecordsURL)
		}, m, snapshot.WithLoadTimeout(cfg.HTTPTimeout))

		mux := http.NewServeMux()
		dashboard.NewServer(store, roster, m).Register(mux)

		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			slog.Info("dashboard listening", "addr", addr)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		slog.Info("shutting down dashboard")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
