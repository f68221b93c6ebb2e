package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/kinematics-suite/backend/internal/api"
	"github.com/kinematics-suite/backend/internal/auth"
	"github.com/kinematics-suite/backend/internal/client"
	"github.com/kinematics-suite/backend/internal/grader"
	"github.com/kinematics-suite/backend/internal/images"
	"github.com/kinematics-suite/backend/internal/infrastructure/config"
	"github.com/kinematics-suite/backend/internal/notify"
	"github.com/kinematics-suite/backend/internal/service"
	"github.com/kinematics-suite/backend/internal/store"
)

const hubBuffer = 32

func newAccountService(cfg *config.Auth, logger *slog.Logger) (*service.AccountService, *store.AuthStore, error) {
	db, err := store.NewAuthSQLite(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open auth database: %w", err)
	}
	issuer := auth.NewIssuer(cfg.SecretKey, cfg.AccessTokenTTL)
	img := images.NewStore(cfg.UploadDir, cfg.MaxImageSize)
	return service.NewAccountService(db, issuer, img, cfg.TokenType, cfg.RefreshTokenTTL, logger), db, nil
}

func authCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Run the auth service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadAuth()
			accounts, db, err := newAccountService(cfg, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go accounts.RunTokenCleanup(ctx, cfg.TokenCleanupInterval)

			handler := api.NewAuthHandler(accounts, logger)
			return serve(cfg.Server, logger, func(mux *http.ServeMux) {
				api.RegisterAuthRoutes(mux, handler)
			}, cancel)
		},
	}
}

func cleanTokensCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "clean-tokens",
		Short: "Delete issued tokens older than the refresh lifetime",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, db, err := newAccountService(config.LoadAuth(), logger)
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := accounts.CleanExpiredTokens(cmd.Context())
			if err != nil {
				return fmt.Errorf("clean tokens: %w", err)
			}
			logger.Info("expired tokens removed", "count", n)
			return nil
		},
	}
}

func tasksCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "Run the task and theme service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadTasks()
			db, err := store.NewCatalogSQLite(cfg.DatabasePath)
			if err != nil {
				return fmt.Errorf("open tasks database: %w", err)
			}
			defer db.Close()

			users := client.NewAuthClient(cfg.AuthServiceURL, cfg.UpstreamTimeout)
			answers := client.NewSolutionClient(cfg.SolutionServiceURL, cfg.UpstreamTimeout)
			catalog := service.NewCatalogService(db, users, answers, logger)

			handler := api.NewCatalogHandler(catalog, logger)
			return serve(cfg.Server, logger, func(mux *http.ServeMux) {
				api.RegisterCatalogRoutes(mux, handler)
			})
		},
	}
}

func solutionsCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "solutions",
		Short: "Run the solution and attempt service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadSolutions()
			db, err := store.NewSolutionSQLite(cfg.DatabasePath)
			if err != nil {
				return fmt.Errorf("open solutions database: %w", err)
			}
			defer db.Close()

			users := client.NewAuthClient(cfg.AuthServiceURL, cfg.UpstreamTimeout)
			tasks := client.NewTaskClient(cfg.TaskServiceURL, cfg.UpstreamTimeout)
			img := images.NewStore(cfg.UploadDir, cfg.MaxImageSize)
			hub := notify.NewHub(hubBuffer)
			attempts := service.NewAttemptService(db, users, tasks, grader.ExactMatch{}, img, hub, cfg.EnrichWorkers, logger)

			handler := api.NewSolutionHandler(attempts, cfg.NotifyPollInterval, cfg.CORSOrigins, logger)
			// Hijacked feed connections are not drained by Shutdown; closing
			// the hub ends them.
			return serve(cfg.Server, logger, func(mux *http.ServeMux) {
				api.RegisterSolutionRoutes(mux, handler)
			}, hub.Close)
		},
	}
}

func answersCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "answers",
		Short: "Run the answer submission service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadAnswers()
			db, err := store.NewSubmissionSQLite(cfg.DatabasePath)
			if err != nil {
				return fmt.Errorf("open answers database: %w", err)
			}
			defer db.Close()

			users := client.NewAuthClient(cfg.AuthServiceURL, cfg.UpstreamTimeout)
			tasks := client.NewTaskClient(cfg.TaskServiceURL, cfg.UpstreamTimeout)
			submissions := service.NewSubmissionService(db, users, tasks, grader.ExactMatch{}, logger)

			handler := api.NewSubmissionHandler(submissions, logger)
			return serve(cfg.Server, logger, func(mux *http.ServeMux) {
				api.RegisterSubmissionRoutes(mux, handler)
			})
		},
	}
}
