// Package market fetches quotes and price history from the Yahoo Finance chart API.
package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/guildbot/pkg/config"
)

// ErrNotFound is returned for unknown symbols
var ErrNotFound = errors.New("symbol not found")

// ValidRanges are accepted history ranges
var ValidRanges = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}

// ValidIntervals are accepted candle intervals
var ValidIntervals = []string{"1m", "5m", "15m", "30m", "1h", "1d", "1wk", "1mo"}

// Quote is a point-in-time price summary
type Quote struct {
	Symbol           string    `json:"symbol"`
	Name             string    `json:"name"`
	Currency         string    `json:"currency"`
	Exchange         string    `json:"exchange"`
	Price            float64   `json:"price"`
	PreviousClose    float64   `json:"previous_close"`
	Change           float64   `json:"change"`
	ChangePercent    float64   `json:"change_percent"`
	DayHigh          float64   `json:"day_high"`
	DayLow           float64   `json:"day_low"`
	FiftyTwoWeekHigh float64   `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  float64   `json:"fifty_two_week_low"`
	Volume           int64     `json:"volume"`
	Time             time.Time `json:"time"`
}

// Bar is one OHLCV candle
type Bar struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Client talks to the chart endpoint
type Client struct {
	http      *http.Client
	endpoint  string
	userAgent string
	retries   int
}

// NewClient makes a market data client
func NewClient(cfg config.MarketConfig) *Client {
	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		endpoint:  strings.TrimSuffix(cfg.Endpoint, "/"),
		userAgent: cfg.UserAgent,
		retries:   3,
	}
}

// chartResponse mirrors the parts of /v8/finance/chart we use
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol               string  `json:"symbol"`
				Currency             string  `json:"currency"`
				ExchangeName         string  `json:"exchangeName"`
				FullExchangeName     string  `json:"fullExchangeName"`
				LongName             string  `json:"longName"`
				ShortName            string  `json:"shortName"`
				RegularMarketPrice   float64 `json:"regularMarketPrice"`
				ChartPreviousClose   float64 `json:"chartPreviousClose"`
				PreviousClose        float64 `json:"previousClose"`
				RegularMarketDayHigh float64 `json:"regularMarketDayHigh"`
				RegularMarketDayLow  float64 `json:"regularMarketDayLow"`
				RegularMarketVolume  int64   `json:"regularMarketVolume"`
				FiftyTwoWeekHigh     float64 `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow      float64 `json:"fiftyTwoWeekLow"`
				RegularMarketTime    int64   `json:"regularMarketTime"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Quote returns the latest quote for a symbol
func (c *Client) Quote(ctx context.Context, symbol string) (*Quote, error) {
	resp, err := c.chart(ctx, symbol, "1d", "1d")
	if err != nil {
		return nil, err
	}
	meta := resp.Chart.Result[0].Meta
	prev := meta.PreviousClose
	if prev == 0 {
		prev = meta.ChartPreviousClose
	}
	q := &Quote{
		Symbol:           meta.Symbol,
		Name:             meta.LongName,
		Currency:         meta.Currency,
		Exchange:         meta.FullExchangeName,
		Price:            meta.RegularMarketPrice,
		PreviousClose:    prev,
		DayHigh:          meta.RegularMarketDayHigh,
		DayLow:           meta.RegularMarketDayLow,
		FiftyTwoWeekHigh: meta.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  meta.FiftyTwoWeekLow,
		Volume:           meta.RegularMarketVolume,
		Time:             time.Unix(meta.RegularMarketTime, 0).UTC(),
	}
	if q.Name == "" {
		q.Name = meta.ShortName
	}
	if q.Exchange == "" {
		q.Exchange = meta.ExchangeName
	}
	if prev != 0 {
		q.Change = q.Price - prev
		q.ChangePercent = q.Change / prev * 100
	}
	return q, nil
}

// History returns candles for the range and interval, null points are skipped
func (c *Client) History(ctx context.Context, symbol, rng, interval string) ([]Bar, error) {
	if !slices.Contains(ValidRanges, rng) {
		return nil, fmt.Errorf("invalid range %q, valid: %s", rng, strings.Join(ValidRanges, ", "))
	}
	if !slices.Contains(ValidIntervals, interval) {
		return nil, fmt.Errorf("invalid interval %q, valid: %s", interval, strings.Join(ValidIntervals, ", "))
	}

	resp, err := c.chart(ctx, symbol, rng, interval)
	if err != nil {
		return nil, err
	}
	res := resp.Chart.Result[0]
	if len(res.Indicators.Quote) == 0 {
		return []Bar{}, nil
	}
	q := res.Indicators.Quote[0]

	bars := make([]Bar, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		if i >= len(q.Close) || q.Close[i] == nil {
			continue
		}
		bar := Bar{Time: time.Unix(ts, 0).UTC(), Close: *q.Close[i]}
		bar.Open = valueAt(q.Open, i)
		bar.High = valueAt(q.High, i)
		bar.Low = valueAt(q.Low, i)
		if i < len(q.Volume) && q.Volume[i] != nil {
			bar.Volume = *q.Volume[i]
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

func valueAt(vals []*float64, i int) float64 {
	if i < len(vals) && vals[i] != nil {
		return *vals[i]
	}
	return 0
}

// chart fetches and decodes the chart endpoint, retrying on 5xx and 429
func (c *Client) chart(ctx context.Context, symbol, rng, interval string) (*chartResponse, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol")
	}

	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.endpoint, url.PathEscape(symbol),
		url.Values{"range": {rng}, "interval": {interval}}.Encode())

	var body []byte
	var status int
	errNotFound := fmt.Errorf("%w: %s", ErrNotFound, symbol)
	err := repeater.NewBackoff(c.retries, 200*time.Millisecond).Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		status = resp.StatusCode
		if status == http.StatusNotFound {
			return errNotFound
		}
		if status == http.StatusTooManyRequests || status >= 500 {
			return fmt.Errorf("market api status %d", status)
		}
		body, err = io.ReadAll(io.LimitReader(resp.Body, 4<<20))
		return err
	}, errNotFound)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, errNotFound
		}
		return nil, fmt.Errorf("fetch chart for %s: %w", symbol, err)
	}

	var cr chartResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("decode chart for %s (status %d): %w", symbol, status, err)
	}
	if cr.Chart.Error != nil {
		if cr.Chart.Error.Code == "Not Found" {
			return nil, errNotFound
		}
		return nil, fmt.Errorf("market api error for %s: %s", symbol, cr.Chart.Error.Description)
	}
	if len(cr.Chart.Result) == 0 {
		return nil, errNotFound
	}
	return &cr, nil
}
