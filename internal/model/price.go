package model

import "time"

// Vendors the project tracks. Source-filtered reads only accept these three.
const (
	SourceSJC  = "SJC"
	SourceDOJI = "DOJI"
	SourcePNJ  = "PNJ"
)

// Sources lists the supported vendors in display order.
var Sources = []string{SourceSJC, SourceDOJI, SourcePNJ}

// SupportedSource reports whether source is one of the canonical vendor names.
func SupportedSource(source string) bool {
	for _, s := range Sources {
		if s == source {
			return true
		}
	}
	return false
}

// GoldPrice describes one observed vendor quote.
// Prices are kept as the vendor's display strings and never parsed in storage;
// numeric interpretation happens only at the dashboard edge.
// Date and Time are "2006-01-02" / "15:04:05" strings.
type GoldPrice struct {
	ID        int64      `gorm:"column:id;primaryKey" json:"id"`
	Source    string     `gorm:"column:source;size:20" json:"source"`
	GoldType  *string    `gorm:"column:gold_type;size:100;index:ix_gold_type_date" json:"gold_type"`
	BuyPrice  *string    `gorm:"column:buy_price;size:225" json:"buy_price"`
	SellPrice *string    `gorm:"column:sell_price;size:225" json:"sell_price"`
	Date      *string    `gorm:"column:date;size:10;index:ix_gold_type_date" json:"date"`
	Time      *string    `gorm:"column:time;size:8" json:"time"`
	ScrapedAt *time.Time `gorm:"column:scraped_at" json:"scraped_at"`
}

func (*GoldPrice) TableName() string {
	return "gold_prices"
}
