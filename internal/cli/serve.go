package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/turismocol/turismocol/internal/api"
	"github.com/turismocol/turismocol/internal/app/catalog"
	"github.com/turismocol/turismocol/internal/app/engagement"
	"github.com/turismocol/turismocol/internal/app/recommend"
	"github.com/turismocol/turismocol/internal/daemon"
	"github.com/turismocol/turismocol/internal/infra/seed"
	"github.com/turismocol/turismocol/internal/infra/sqlite"
)

var serveSeed bool

func init() {
	serveCmd.Flags().BoolVar(&serveSeed, "seed", false,
		"Load the sample catalog and rewards before serving")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := daemon.Load(configPath)
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	db, err := sqlite.Open(cfg.Storage.Dir)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	if serveSeed {
		if err := seed.Load(db); err != nil {
			return fmt.Errorf("load seed data: %w", err)
		}
		log.Info("seed data loaded")
	}

	ledger := engagement.NewLedgerService(db)
	srv := api.NewServer(
		catalog.NewService(db),
		engagement.NewTrackerService(db, ledger, cfg.Points),
		ledger,
		engagement.NewRewardService(db),
		recommend.NewEngine(db),
		api.Limits{
			DefaultPageSize: cfg.Limits.DefaultPageSize,
			MaxPageSize:     cfg.Limits.MaxPageSize,
			HistoryLimit:    cfg.Limits.HistoryLimit,
		},
		log,
	)
	if cfg.API.EnableMetrics {
		srv.EnableMetrics()
	}

	addr := net.JoinHostPort(cfg.API.Host, strconv.Itoa(cfg.API.Port))
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", addr, "metrics", cfg.API.EnableMetrics)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
