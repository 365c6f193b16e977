package currency

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultFeedURL is the ECB euro foreign exchange reference rate feed,
// published once per business day.
const DefaultFeedURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"

// ECBClient fetches reference rates from the ECB daily XML feed.
type ECBClient struct {
	httpClient *http.Client
	feedURL    string
}

func NewECBClient(feedURL string) *ECBClient {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	return &ECBClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		feedURL:    feedURL,
	}
}

// envelope mirrors the feed structure: a Cube containing a dated Cube
// containing one Cube per currency.
type envelope struct {
	Cube struct {
		Day struct {
			Rates []cubeRate `xml:"Cube"`
		} `xml:"Cube"`
	} `xml:"Cube"`
}

type cubeRate struct {
	Currency string  `xml:"currency,attr"`
	Rate     float64 `xml:"rate,attr"`
}

// FetchRates downloads and parses the current feed.
func (c *ECBClient) FetchRates(ctx context.Context) ([]Rate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build rates request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch rates: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read rates response: %w", err)
	}

	return ParseFeed(body)
}

// ParseFeed extracts the currency/rate pairs from the feed XML.
func ParseFeed(data []byte) ([]Rate, error) {
	var env envelope
	if err := xml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse rates feed: %w", err)
	}

	rates := make([]Rate, 0, len(env.Cube.Day.Rates))
	for _, r := range env.Cube.Day.Rates {
		if r.Currency == "" || r.Rate <= 0 {
			continue
		}
		rates = append(rates, Rate{Currency: r.Currency, Rate: r.Rate})
	}

	if len(rates) == 0 {
		return nil, fmt.Errorf("parse rates feed: no rates found")
	}
	return rates, nil
}
