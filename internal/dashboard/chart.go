package dashboard

import (
	"github.com/vogiahuy257/GoldDataProject/internal/model"
)

// SeriesPoint is one point of the per-vendor buy/sell chart.
type SeriesPoint struct {
	Time string  `json:"time"`
	Buy  float64 `json:"buy"`
	Sell float64 `json:"sell"`
}

// BuySellSeries maps one vendor's rows onto chart points. Rows missing the
// time or either price are excluded; the x value is the raw time string, the
// series is not re-bucketed by calendar time.
func BuySellSeries(rows []model.GoldPrice) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(rows))

	for _, row := range rows {
		if row.Time == nil || *row.Time == "" {
			continue
		}
		if row.BuyPrice == nil || *row.BuyPrice == "" {
			continue
		}
		if row.SellPrice == nil || *row.SellPrice == "" {
			continue
		}

		points = append(points, SeriesPoint{
			Time: *row.Time,
			Buy:  ParsePrice(*row.BuyPrice),
			Sell: ParsePrice(*row.SellPrice),
		})
	}

	return points
}
