package vendors

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Quote is one row of a vendor's price table. Prices stay exactly as the
// vendor displays them (thousands separators included); nothing is parsed
// to a number here.
type Quote struct {
	GoldType  string
	BuyPrice  string
	SellPrice string
}

// PriceList is a snapshot of a vendor page.
type PriceList struct {
	// UpdatedAt is the page's own "last updated" timestamp.
	// Zero when the page shows none we can read.
	UpdatedAt time.Time
	Quotes    []Quote
}

// cleanPrice trims a table cell and collapses inner whitespace, keeping the
// vendor's separators: "7.400.000" and "74,000" survive untouched.
func cleanPrice(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// parseUpdatedAt reads a vendor's displayed update timestamp leniently.
// Vendors print these in assorted formats, so the parse is best-effort.
func parseUpdatedAt(raw string, loc *time.Location) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}

	ts, err := dateparse.ParseIn(raw, loc)
	if err != nil {
		return time.Time{}
	}

	return ts
}
