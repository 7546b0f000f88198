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

	"restaurant/cmd"
	"restaurant/internal/adapters/out/memory"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "restaurant",
		Short:         "Dishes and orders API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newValidateSeedCommand())
	return root
}

func newServeCommand() *cobra.Command {
	var flags cmd.Config

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(c *cobra.Command, _ []string) error {
			configs := getConfigs()
			if c.Flags().Changed("port") {
				configs.HTTPPort = flags.HTTPPort
			}
			if c.Flags().Changed("log-level") {
				configs.LogLevel = flags.LogLevel
			}
			if c.Flags().Changed("seed") {
				configs.SeedFile = flags.SeedFile
			}
			if c.Flags().Changed("status-policy") {
				configs.OrderStatusPolicy = flags.OrderStatusPolicy
			}
			if c.Flags().Changed("report-schedule") {
				configs.OrderReportSchedule = flags.OrderReportSchedule
			}
			return serveApp(c.Context(), configs)
		},
	}

	serve.Flags().StringVar(&flags.HTTPPort, "port", cmd.DefaultHTTPPort, "HTTP port (HTTP_PORT)")
	serve.Flags().StringVar(&flags.LogLevel, "log-level", cmd.DefaultLogLevel, "debug, info, warn or error (LOG_LEVEL)")
	serve.Flags().StringVar(&flags.SeedFile, "seed", "", "YAML file with dishes and orders to load (SEED_FILE)")
	serve.Flags().StringVar(&flags.OrderStatusPolicy, "status-policy", "any", "order status transitions: any or forward (ORDER_STATUS_POLICY)")
	serve.Flags().StringVar(&flags.OrderReportSchedule, "report-schedule", "", "cron schedule with seconds for the order report (ORDER_REPORT_SCHEDULE)")
	return serve
}

func newValidateSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-seed <file>",
		Short: "Check a seed file without starting the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			seed, err := memory.LoadSeed(args[0])
			if err != nil {
				return err
			}
			dishes, orders, err := seed.Build()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.OutOrStdout(), "%s: %d dishes, %d orders\n", args[0], len(dishes), len(orders))
			return err
		},
	}
}

func getConfigs() cmd.Config {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:            os.Getenv("HTTP_PORT"),
		LogLevel:            os.Getenv("LOG_LEVEL"),
		SeedFile:            os.Getenv("SEED_FILE"),
		OrderStatusPolicy:   os.Getenv("ORDER_STATUS_POLICY"),
		OrderReportSchedule: os.Getenv("ORDER_REPORT_SCHEDULE"),
	}
	return config.WithDefaults()
}

func serveApp(ctx context.Context, configs cmd.Config) error {
	level, err := configs.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, configs, logger)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, &app, logger)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, logger *slog.Logger) error {
	e, err := app.CreateRouter(ctx)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		address := fmt.Sprintf("0.0.0.0:%s", app.Config().HTTPPort)
		logger.InfoContext(ctx, "HTTP server listening", "address", address)
		errCh <- e.Start(address)
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.InfoContext(shutdownCtx, "HTTP server shutting down")
	return e.Shutdown(shutdownCtx)
}
