package dashboard

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/vogiahuy257/GoldDataProject/internal/model"
	"github.com/vogiahuy257/GoldDataProject/pkg/goldapi"
)

type SortOption string

const (
	SortBuyAsc   SortOption = "buy_asc"
	SortBuyDesc  SortOption = "buy_desc"
	SortSellAsc  SortOption = "sell_asc"
	SortSellDesc SortOption = "sell_desc"
)

// Query is the local table state: search term, selected date, sort mode.
type Query struct {
	Search string
	Date   string
	Sort   SortOption
}

// VisibleRows applies the table's display transformations: rows without a
// gold type are hidden entirely, then the search term and selected date
// narrow the set, then the chosen price sort orders it.
func VisibleRows(rows []model.GoldPrice, q Query) []model.GoldPrice {
	search := strings.ToLower(q.Search)

	out := make([]model.GoldPrice, 0, len(rows))
	for _, row := range rows {
		if row.GoldType == nil || *row.GoldType == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(*row.GoldType), search) {
			continue
		}
		if q.Date != "" && (row.Date == nil || *row.Date != q.Date) {
			continue
		}
		out = append(out, row)
	}

	switch q.Sort {
	case SortBuyAsc:
		sort.SliceStable(out, func(i, j int) bool { return sortValue(out[i].BuyPrice) < sortValue(out[j].BuyPrice) })
	case SortBuyDesc:
		sort.SliceStable(out, func(i, j int) bool { return sortValue(out[i].BuyPrice) > sortValue(out[j].BuyPrice) })
	case SortSellAsc:
		sort.SliceStable(out, func(i, j int) bool { return sortValue(out[i].SellPrice) < sortValue(out[j].SellPrice) })
	case SortSellDesc:
		sort.SliceStable(out, func(i, j int) bool { return sortValue(out[i].SellPrice) > sortValue(out[j].SellPrice) })
	}

	return out
}

// UniqueDates returns the distinct dates present, newest first, for the
// table's date filter dropdown.
func UniqueDates(rows []model.GoldPrice) []string {
	seen := make(map[string]struct{})

	var dates []string
	for _, row := range rows {
		if row.Date == nil || *row.Date == "" {
			continue
		}
		if _, ok := seen[*row.Date]; ok {
			continue
		}
		seen[*row.Date] = struct{}{}
		dates = append(dates, *row.Date)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// Form holds the user-editable fields of the create/edit dialog.
// The source is bound to the table and never part of the form.
type Form struct {
	GoldType  string
	BuyPrice  string
	SellPrice string
	Date      string
	Time      string
}

// Table is the per-vendor table view-model over the API gateway.
type Table struct {
	source string
	client *goldapi.Client
	rows   []model.GoldPrice
	now    func() time.Time
}

func NewTable(client *goldapi.Client, source string) *Table {
	return &Table{source: source, client: client, now: time.Now}
}

// Load fetches the bound vendor's rows. Errors surface via Err.
func (t *Table) Load(ctx context.Context) {
	t.rows = t.client.GetBySource(ctx, t.source)
}

func (t *Table) Rows(q Query) []model.GoldPrice {
	return VisibleRows(t.rows, q)
}

func (t *Table) Dates() []string {
	return UniqueDates(t.rows)
}

func (t *Table) Loading() bool {
	return t.client.Loading()
}

func (t *Table) Err() string {
	return t.client.Err()
}

// Create submits the form as a new quote for the bound source. The scraped_at
// field is stamped with the current instant, never taken from the form.
func (t *Table) Create(ctx context.Context, form Form) *model.GoldPrice {
	created := t.client.Create(ctx, t.fields(form))
	if created != nil {
		t.rows = append([]model.GoldPrice{*created}, t.rows...)
	}

	return created
}

// Edit submits the form against an existing quote.
func (t *Table) Edit(ctx context.Context, id int64, form Form) *model.GoldPrice {
	updated := t.client.Update(ctx, id, t.fields(form))
	if updated != nil {
		for i := range t.rows {
			if t.rows[i].ID == id {
				t.rows[i] = *updated
			}
		}
	}

	return updated
}

// Delete removes the row locally only after the API confirms.
func (t *Table) Delete(ctx context.Context, id int64) bool {
	if !t.client.Remove(ctx, id) {
		return false
	}

	kept := t.rows[:0]
	for _, row := range t.rows {
		if row.ID != id {
			kept = append(kept, row)
		}
	}
	t.rows = kept

	return true
}

func (t *Table) fields(form Form) goldapi.Fields {
	now := t.now()

	return goldapi.Fields{
		Source:    &t.source,
		GoldType:  &form.GoldType,
		BuyPrice:  &form.BuyPrice,
		SellPrice: &form.SellPrice,
		Date:      &form.Date,
		Time:      &form.Time,
		ScrapedAt: &now,
	}
}
