package cmd

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/vogiahuy257/GoldDataProject/internal/interaction/vendors"
	"github.com/vogiahuy257/GoldDataProject/internal/repository/prices"
	"github.com/vogiahuy257/GoldDataProject/internal/storage"
	"github.com/vogiahuy257/GoldDataProject/internal/usecases"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetch the current vendor quotes once and exit",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		postgresConnection := storage.MustNewPostgresConnection(logger, cnf.Database.ConnString(), cnf.Logger.ParsedGORMLevel)
		defer postgresConnection.MustClose()

		postgresConnection.MustMigration()

		pricesRepository := prices.NewRepository(postgresConnection.DB)

		vendorClient := &http.Client{Timeout: time.Duration(cnf.Scraper.TimeoutSeconds) * time.Second}
		interactions := []usecases.VendorInteraction{
			vendors.NewSJC(logger, vendorClient),
			vendors.NewDOJI(logger, vendorClient),
			vendors.NewPNJ(logger, vendorClient),
		}

		usecases.NewUpdatePricesUseCase(logger, pricesRepository, interactions, loc).UpdatePrices(ctx)
	},
}
