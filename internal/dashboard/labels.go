package dashboard

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// TableLabels are the localized captions of the dashboard table.
type TableLabels struct {
	Title     string
	Source    string
	GoldType  string
	BuyPrice  string
	SellPrice string
	Date      string
	Time      string
	ScrapedAt string
	NoData    string
	Loading   string
}

// Labels resolves the table captions for a language, falling back to English.
func Labels(bundle *i18n.Bundle, languageCode, source string) TableLabels {
	localizer := i18n.NewLocalizer(bundle, languageCode)

	render := func(messageID string, data map[string]interface{}) string {
		msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID, TemplateData: data})
		if err != nil {
			return messageID
		}
		return msg
	}

	return TableLabels{
		Title:     render("tableTitle", map[string]interface{}{"Source": source}),
		Source:    render("columnSource", nil),
		GoldType:  render("columnGoldType", nil),
		BuyPrice:  render("columnBuy", nil),
		SellPrice: render("columnSell", nil),
		Date:      render("columnDate", nil),
		Time:      render("columnTime", nil),
		ScrapedAt: render("columnScrapedAt", nil),
		NoData:    render("noDataMessage", nil),
		Loading:   render("loadingMessage", nil),
	}
}
