package commands

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codecamp/config"
	httpdelivery "codecamp/internal/delivery/http"
	"codecamp/internal/delivery/http/controllers"
	"codecamp/internal/repository/postgres"
	"codecamp/internal/services"

	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Run the HTTP API server.

Connects to DATABASE_URL, applies pending migrations when AUTO_MIGRATE is true,
and serves until SIGINT or SIGTERM, then drains in-flight requests for up to
SHUTDOWN_TIMEOUT.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Listen port (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}
	logger := config.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, db, logger, postgres.MigrateUp); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newHandler(logger, db, cfg),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// newHandler wires repositories, services and controllers over db into the router.
func newHandler(logger *slog.Logger, db *sql.DB, cfg *config.Config) http.Handler {
	campRepo := postgres.NewCampRepository(db)
	talkRepo := postgres.NewTalkRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)

	campService := services.NewCampService(campRepo, talkRepo, cfg.ContextTimeout)
	talkService := services.NewTalkService(campRepo, talkRepo, speakerRepo, cfg.ContextTimeout)
	speakerService := services.NewSpeakerService(speakerRepo, cfg.ContextTimeout)

	return httpdelivery.NewRouter(logger, httpdelivery.Controllers{
		Camps:    controllers.NewCampController(logger, campService),
		Talks:    controllers.NewTalkController(logger, talkService),
		Speakers: controllers.NewSpeakerController(logger, speakerService),
	}, cfg.CORSOrigins)
}
