package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"market-sync/core/config"
	"market-sync/core/logger"
	"market-sync/core/metrics"
	"market-sync/core/middleware/auth"
	"market-sync/core/middleware/rayid"
	"market-sync/feature/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "market-sync/docs/swagger"
)

// @title Market Sync API
// @version 1.0
// @description Stock and price synchronization for marketplace campaigns.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sync server",
	Long: `Starts the HTTP server and runs sync cycles on the configured interval.
The server exposes run status, a manual trigger and Prometheus metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Wire the sync service
		svc, err := buildService(cmd.Context(), cfg, cfg.Market.Campaigns(), logg)
		if err != nil {
			logg.Fatal("Failed to build sync service", zap.Error(err))
		}
		if len(svc.Campaigns()) == 0 {
			logg.Warn("No campaigns configured; scheduled runs are disabled")
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Public endpoints: swagger docs and Prometheus metrics
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", metrics.Handler())

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 4. Routes
		handler := sync.NewHandler(svc, logg)
		handler.RegisterRoutes(app)

		// 5. Scheduler (first run fires immediately)
		schedCtx, stopScheduler := context.WithCancel(context.Background())
		go runScheduler(schedCtx, svc, cfg.Sync, logg)

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		stopScheduler()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

// runScheduler triggers sync cycles on the configured interval until the
// context is cancelled. A cycle already started through the API is not an
// error; the scheduled one is simply skipped.
func runScheduler(ctx context.Context, svc *sync.Service, cfg sync.Config, logg *zap.Logger) {
	if len(svc.Campaigns()) == 0 {
		return
	}

	interval := time.Duration(cfg.IntervalMinutes) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		_, err := svc.Run(ctx, sync.RunOptions{})
		switch {
		case errors.Is(err, sync.ErrAlreadyRunning):
			logg.Info("Scheduled sync skipped; a run is already in progress")
		case err != nil && ctx.Err() == nil:
			logg.Error("Scheduled sync failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
