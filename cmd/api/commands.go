package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"estimaciones_obra/internal/config"

	"github.com/spf13/cobra"
)

const (
	version         = "1.0.0"
	shutdownTimeout = 10 * time.Second
)

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "estimaciones-api",
		Short:         "Estimation approval workflow service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "optional config file (yaml, json, toml or env)")

	serve := newServeCommand(&configPath)
	root.AddCommand(serve, newMigrateCommand(&configPath))
	// Running the binary without a subcommand serves the API.
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())
	return root
}

func newServeCommand(configPath *string) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "create tables or apply migrations before serving")
	return cmd
}

func newMigrateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create DynamoDB tables or apply Postgres migrations, then exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			store, err := openStorage(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}
			store.close()
			log.Printf("[main] migrations applied driver=%s", cfg.StorageDriver)
			return nil
		},
	}
}

func serve(ctx context.Context, cfg config.Config, migrate bool) error {
	app, err := buildApp(ctx, cfg, migrate)
	if err != nil {
		return err
	}
	defer app.close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[main] listening addr=%s driver=%s", srv.Addr, cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("[main] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
