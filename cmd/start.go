package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"nomo-governance/core/config"
	"nomo-governance/core/database"
	"nomo-governance/core/loader"
	"nomo-governance/core/logger"
	"nomo-governance/core/middleware/auth"
	"nomo-governance/core/middleware/rayid"
	"nomo-governance/feature/plan"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "nomo-governance/docs/swagger"
)

// @title Nomo Governance API
// @version 1.0
// @description Dry-run reports and timelock proposals for the oracle governance of each network.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the governance report server",
	Long:  `Starts the HTTP server serving dry-run reports and proposal payloads.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		skipApplied, _ := cmd.Flags().GetBool("skip-applied")
		svc, err := newPlanService(cfg, logg, skipApplied, true)
		if err != nil {
			logg.Fatal("Failed to create plan service", zap.Error(err))
		}

		// Plan history is optional
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			store := plan.NewGormStore(db)
			if migrated, err := store.EnsureSchema(); err != nil {
				logg.Warn("Plan history disabled", zap.Error(err))
			} else {
				if migrated {
					logg.Info("Plan history table migrated")
				}
				svc.WithStore(store)
				logg.Info("Connected to plan history database")
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(plan.NewFeature(svc))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger documentation is public
		app.Get("/swagger/*", swagger.HandlerDefault)

		if !cfg.Server.IsProtected() {
			logg.Warn("No API key configured, the API is unprotected")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	startCmd.Flags().Bool("skip-applied", false, "Drop price-feed commands already reflected on chain")
	RootCmd.AddCommand(startCmd)
}
