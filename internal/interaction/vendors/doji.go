package vendors

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const dojiURL = "http://giavang.doji.vn/"

// ParseDOJI reads the DOJI retail price table. Rows use th for the product
// name and td for the buy/sell cells; the update timestamp is printed in the
// .update block above the table.
func ParseDOJI(html string, loc *time.Location) (*PriceList, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	list := &PriceList{
		UpdatedAt: parseUpdatedAt(doc.Find(".update").First().Text(), loc),
	}

	doc.Find("table tr").Each(func(_ int, tr *goquery.Selection) {
		goldType := strings.TrimSpace(tr.Find("th").First().Text())
		if goldType == "" {
			goldType = strings.TrimSpace(tr.Find("td").First().Text())
		}

		cells := tr.Find("td.nowrap, td")
		if cells.Length() < 2 {
			return
		}

		buy := cleanPrice(cells.Eq(cells.Length() - 2).Text())
		sell := cleanPrice(cells.Eq(cells.Length() - 1).Text())

		if goldType == "" || !hasDigit(buy) || !hasDigit(sell) {
			return
		}

		list.Quotes = append(list.Quotes, Quote{GoldType: goldType, BuyPrice: buy, SellPrice: sell})
	})

	return list, nil
}
