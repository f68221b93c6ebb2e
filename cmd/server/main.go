package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/kinematics-suite/backend/internal/api"
	"github.com/kinematics-suite/backend/internal/infrastructure/config"

	_ "github.com/kinematics-suite/backend/docs" // generated swagger docs
)

// @title           Kinematics Suite API
// @version         1.0
// @description     Themes, tasks, student attempts and teacher grading for a kinematics problem book.

// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the access token.

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root := &cobra.Command{
		Use:           "server",
		Short:         "Kinematics Suite backend services",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		authCmd(logger),
		tasksCmd(logger),
		solutionsCmd(logger),
		answersCmd(logger),
		cleanTokensCmd(logger),
	)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// serve runs one service until SIGINT or SIGTERM, then drains it within the
// configured shutdown timeout. onShutdown hooks run when draining starts.
func serve(cfg config.Server, logger *slog.Logger, register func(*http.ServeMux), onShutdown ...func()) error {
	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	register(mux)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(cfg.CORSOrigins)(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	for _, f := range onShutdown {
		server.RegisterOnShutdown(f)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-done
	return nil
}
