package vendors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/vogiahuy257/GoldDataProject/internal/model"
)

type parseFunc func(html string, loc *time.Location) (*PriceList, error)

// Interaction fetches and parses one vendor's public price page.
type Interaction struct {
	logger *slog.Logger
	client *http.Client
	source string
	url    string
	parse  parseFunc
}

// NewSJC creates the interaction with the SJC price page.
func NewSJC(logger *slog.Logger, client *http.Client) *Interaction {
	return newInteraction(logger, client, model.SourceSJC, sjcURL, ParseSJC)
}

// NewDOJI creates the interaction with the DOJI price page.
func NewDOJI(logger *slog.Logger, client *http.Client) *Interaction {
	return newInteraction(logger, client, model.SourceDOJI, dojiURL, ParseDOJI)
}

// NewPNJ creates the interaction with the PNJ price page.
func NewPNJ(logger *slog.Logger, client *http.Client) *Interaction {
	return newInteraction(logger, client, model.SourcePNJ, pnjURL, ParsePNJ)
}

func newInteraction(logger *slog.Logger, client *http.Client, source, url string, parse parseFunc) *Interaction {
	return &Interaction{
		logger: logger.With("component", "vendors", "source", source),
		client: client,
		source: source,
		url:    url,
		parse:  parse,
	}
}

// Source returns the canonical vendor name stamped on scraped rows.
func (that *Interaction) Source() string {
	return that.source
}

// GetPrices downloads the vendor page and parses its quote table.
func (that *Interaction) GetPrices(ctx context.Context, loc *time.Location) (*PriceList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, that.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := that.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return that.parse(string(body), loc)
}
