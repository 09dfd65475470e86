package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vogiahuy257/GoldDataProject/internal/config"
)

var (
	rootCmd = &cobra.Command{
		Use: "golddata",
	}

	cnf    *config.Config
	logger *slog.Logger

	// All vendors publish their quotes in Vietnam time.
	loc = time.FixedZone("Asia/Ho_Chi_Minh", 7*3600)
)

func Execute() {
	initConfig()
	initLogger()

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(dashboardCmd)
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig() {
	cnf = config.MustLoad("./config.yml")
}

func initLogger() {
	opts := &slog.HandlerOptions{Level: cnf.Logger.ParsedSlogLevel}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
