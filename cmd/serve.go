package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sm8ta/motodash/internal/app"
	"github.com/sm8ta/motodash/internal/config"
)

const shutdownTimeout = 30 * time.Second

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API on HTTP_PORT after applying pending migrations.

Migrations are read from MIGRATIONS_DIR, which defaults to
./internal/adapter/sqlite/migrations relative to the working directory.
Set it when starting the server from anywhere but the repository root.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Loading environment
			cfg, err := config.New()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}

			// Create app
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			application, err := app.New(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to create app: %w", err)
			}

			serveErr := make(chan error, 1)
			go func() {
				serveErr <- application.Run()
			}()

			// Graceful shutdown
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
			defer signal.Stop(stop)

			select {
			case <-stop:
			case err := <-serveErr:
				if err != nil {
					_ = application.Stop(context.Background())
					return err
				}
			}

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer shutdownCancel()

			if err := application.Stop(shutdownCtx); err != nil {
				return fmt.Errorf("failed to stop app: %w", err)
			}
			return nil
		},
	}
}
