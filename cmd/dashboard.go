package cmd

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vogiahuy257/GoldDataProject/internal/dashboard"
	"github.com/vogiahuy257/GoldDataProject/internal/model"
	"github.com/vogiahuy257/GoldDataProject/locales"
	"github.com/vogiahuy257/GoldDataProject/pkg/goldapi"
)

var (
	dashboardAPI    string
	dashboardView   string
	dashboardSource string
	dashboardSearch string
	dashboardDate   string
	dashboardSort   string
	dashboardRange  string
	dashboardType   string
	dashboardLang   string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render the price table or the overview chart in the terminal",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		client := goldapi.New(dashboardAPI, &http.Client{Timeout: time.Minute})

		if dashboardView == "overview" {
			renderOverview(cmd, client)
			return
		}

		bundle, err := locales.GetBundle("./")
		cobra.CheckErr(err)

		source := strings.ToUpper(dashboardSource)
		table := dashboard.NewTable(client, source)
		table.Load(ctx)
		if msg := table.Err(); msg != "" {
			_, _ = fmt.Fprintln(os.Stderr, msg)
			os.Exit(1)
		}

		labels := dashboard.Labels(bundle, dashboardLang, source)
		rows := table.Rows(dashboard.Query{
			Search: dashboardSearch,
			Date:   dashboardDate,
			Sort:   dashboard.SortOption(dashboardSort),
		})

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, labels.Title)
		_, _ = fmt.Fprintf(out, "%-8s %-30s %-14s %-14s %-12s %-10s\n",
			labels.Source, labels.GoldType, labels.BuyPrice, labels.SellPrice, labels.Date, labels.Time)

		for _, row := range rows {
			_, _ = fmt.Fprintf(out, "%-8s %-30s %-14s %-14s %-12s %-10s\n",
				row.Source, strOr(row.GoldType), strOr(row.BuyPrice), strOr(row.SellPrice), strOr(row.Date), strOr(row.Time))
		}

		if len(rows) == 0 {
			_, _ = fmt.Fprintln(out, labels.NoData)
		}
	},
}

func renderOverview(cmd *cobra.Command, client *goldapi.Client) {
	chart := dashboard.NewOverviewChart(client, loc)
	chart.Range = dashboard.TimeRange(dashboardRange)
	chart.Kind = dashboard.PriceKind(dashboardType)

	chart.Load(cmd.Context())
	if msg := chart.Err(); msg != "" {
		_, _ = fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	for _, point := range chart.Points() {
		_, _ = fmt.Fprintf(out, "%s %s", point.Date, point.Time)
		for _, source := range model.Sources {
			_, _ = fmt.Fprintf(out, "  %s=%.0f", source, point.Prices[source])
		}
		_, _ = fmt.Fprintln(out)
	}
}

func strOr(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardAPI, "api", "http://localhost:8080/api", "base URL of the gold-prices API")
	dashboardCmd.Flags().StringVar(&dashboardView, "view", "table", "view to render: table or overview")
	dashboardCmd.Flags().StringVar(&dashboardSource, "source", model.SourceSJC, "vendor for the table view")
	dashboardCmd.Flags().StringVar(&dashboardSearch, "search", "", "filter rows by gold type")
	dashboardCmd.Flags().StringVar(&dashboardDate, "date", "", "only show rows of this date (2006-01-02)")
	dashboardCmd.Flags().StringVar(&dashboardSort, "sort", string(dashboard.SortBuyAsc), "sort mode: buy_asc, buy_desc, sell_asc, sell_desc")
	dashboardCmd.Flags().StringVar(&dashboardRange, "range", string(dashboard.Range30d), "overview window: 7d, 30d, 90d")
	dashboardCmd.Flags().StringVar(&dashboardType, "type", string(dashboard.KindBuy), "overview price type: buy or sell")
	dashboardCmd.Flags().StringVar(&dashboardLang, "lang", "en", "label language: en or vi")
}
