package vendors

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const sjcURL = "https://sjc.com.vn/giavang/textContent.php"

// ParseSJC reads the SJC price widget: one table where each data row is
// gold type, buy, sell. The update timestamp sits in the .w350 header cell.
func ParseSJC(html string, loc *time.Location) (*PriceList, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	list := &PriceList{
		UpdatedAt: parseUpdatedAt(doc.Find(".w350").First().Text(), loc),
	}

	doc.Find("table tr").Each(func(_ int, tr *goquery.Selection) {
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
