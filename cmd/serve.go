package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vogiahuy257/GoldDataProject/internal/interaction/vendors"
	"github.com/vogiahuy257/GoldDataProject/internal/repository/prices"
	"github.com/vogiahuy257/GoldDataProject/internal/scheduler"
	"github.com/vogiahuy257/GoldDataProject/internal/server"
	"github.com/vogiahuy257/GoldDataProject/internal/storage"
	"github.com/vogiahuy257/GoldDataProject/internal/usecases"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gold-prices API and the periodic vendor scraper",
	Run: func(cmd *cobra.Command, _ []string) {
		log := logger.With("package", "cmd")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Initialize database connection
		postgresConnection := storage.MustNewPostgresConnection(logger, cnf.Database.ConnString(), cnf.Logger.ParsedGORMLevel)
		defer postgresConnection.MustClose()

		postgresConnection.MustMigration()

		// Initialize repository
		pricesRepository := prices.NewRepository(postgresConnection.DB)

		// Initialize vendor interactions
		vendorClient := &http.Client{Timeout: time.Duration(cnf.Scraper.TimeoutSeconds) * time.Second}
		interactions := []usecases.VendorInteraction{
			vendors.NewSJC(logger, vendorClient),
			vendors.NewDOJI(logger, vendorClient),
			vendors.NewPNJ(logger, vendorClient),
		}

		// Initialize usecases
		updatePricesUC := usecases.NewUpdatePricesUseCase(logger, pricesRepository, interactions, loc)

		// Initialize scheduler
		sched := scheduler.New(ctx, loc)
		sched.Add(cnf.Scraper.Cron, func(ctx context.Context) {
			log.Info("running vendor scrape")
			updatePricesUC.UpdatePrices(ctx)
		})
		go sched.Start()

		log.Info("starting API server")
		if err := server.New(logger, cnf.Server.Addr(), pricesRepository).Run(ctx); err != nil {
			log.Error("server stopped", "error", err)
		}
	},
}
