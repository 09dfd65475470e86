package dashboard

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/vogiahuy257/GoldDataProject/internal/model"
	"github.com/vogiahuy257/GoldDataProject/pkg/goldapi"
)

// timestampLayout combines the stored date and time strings.
const timestampLayout = "2006-01-02 15:04:05"

type TimeRange string

const (
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"
	Range90d TimeRange = "90d"
)

func (r TimeRange) days() int {
	switch r {
	case Range7d:
		return 7
	case Range90d:
		return 90
	default:
		return 30
	}
}

type PriceKind string

const (
	KindBuy  PriceKind = "buy"
	KindSell PriceKind = "sell"
)

// TimelinePoint is one point of the cross-vendor chart: the carried price of
// every vendor at one observed timestamp.
type TimelinePoint struct {
	Date      string             `json:"date"`
	Time      string             `json:"time"`
	Timestamp int64              `json:"timestamp"`
	Prices    map[string]float64 `json:"prices"`
}

// Timeline builds the step-interpolated cross-vendor series: rows of the three
// canonical vendors inside the trailing window are merged onto one ascending
// timeline, and each vendor's line holds its last observed value until that
// vendor's next observation. Values start at 0; a parsed price that is not
// strictly positive never overwrites the carried value, so blank or zero price
// strings cannot reset a line.
func Timeline(rows []model.GoldPrice, rng TimeRange, kind PriceKind, now time.Time, loc *time.Location) []TimelinePoint {
	start := now.AddDate(0, 0, -rng.days())

	type observation struct {
		row model.GoldPrice
		ts  time.Time
		key string
	}

	filtered := make([]observation, 0, len(rows))
	for _, row := range rows {
		if row.Date == nil || *row.Date == "" || row.Time == nil || *row.Time == "" {
			continue
		}
		if !model.SupportedSource(row.Source) {
			continue
		}

		key := *row.Date + " " + *row.Time
		ts, err := time.ParseInLocation(timestampLayout, key, loc)
		if err != nil || ts.Before(start) {
			continue
		}

		filtered = append(filtered, observation{row: row, ts: ts, key: key})
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].ts.Before(filtered[j].ts)
	})

	carried := make(map[string]float64, len(model.Sources))
	for _, s := range model.Sources {
		carried[s] = 0
	}

	var points []TimelinePoint
	for i := 0; i < len(filtered); {
		ts := filtered[i].ts
		key := filtered[i].key

		// Apply every update at this exact timestamp before emitting a point.
		j := i
		for ; j < len(filtered) && filtered[j].key == key; j++ {
			raw := filtered[j].row.BuyPrice
			if kind == KindSell {
				raw = filtered[j].row.SellPrice
			}

			value := "0"
			if raw != nil {
				value = *raw
			}

			if v := parseFloatPrefix(strings.ReplaceAll(value, ",", "")); v > 0 {
				carried[filtered[j].row.Source] = v
			}
		}
		i = j

		snapshot := make(map[string]float64, len(carried))
		for s, v := range carried {
			snapshot[s] = v
		}

		date, clock, _ := strings.Cut(key, " ")
		points = append(points, TimelinePoint{
			Date:      date,
			Time:      clock,
			Timestamp: ts.UnixMilli(),
			Prices:    snapshot,
		})
	}

	return points
}

// OverviewChart is the cross-vendor chart view-model over the API gateway.
type OverviewChart struct {
	Range TimeRange
	Kind  PriceKind

	client *goldapi.Client
	loc    *time.Location
	now    func() time.Time
	rows   []model.GoldPrice
}

func NewOverviewChart(client *goldapi.Client, loc *time.Location) *OverviewChart {
	return &OverviewChart{
		Range:  Range30d,
		Kind:   KindBuy,
		client: client,
		loc:    loc,
		now:    time.Now,
	}
}

func (c *OverviewChart) Load(ctx context.Context) {
	c.rows = c.client.GetAll(ctx)
}

func (c *OverviewChart) Points() []TimelinePoint {
	return Timeline(c.rows, c.Range, c.Kind, c.now(), c.loc)
}

func (c *OverviewChart) Loading() bool {
	return c.client.Loading()
}

func (c *OverviewChart) Err() string {
	return c.client.Err()
}
