package vendors

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const pnjURL = "https://www.pnj.com.vn/blog/gia-vang/"

// ParsePNJ reads the PNJ gold price table (#content-price): each data row is
// gold type, buy, sell. The timestamp is in the .time-price element.
func ParsePNJ(html string, loc *time.Location) (*PriceList, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	list := &PriceList{
		UpdatedAt: parseUpdatedAt(doc.Find(".time-price").First().Text(), loc),
	}

	table := doc.Find("#content-price")
	if table.Length() == 0 {
		table = doc.Find("table")
	}

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		if tds.Length() < 3 {
			return
		}

		goldType := strings.TrimSpace(tds.Eq(0).Text())
		buy := cleanPrice(tds.Eq(1).Text())
		sell := cleanPrice(tds.Eq(2).Text())

		if goldType == "" || !hasDigit(buy) || !hasDigit(sell) {
			return
		}

		list.Quotes = append(list.Quotes, Quote{GoldType: goldType, BuyPrice: buy, SellPrice: sell})
	})

	return list, nil
}
