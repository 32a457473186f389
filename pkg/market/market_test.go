package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/guildbot/pkg/config"
)

const chartJSON = `{"chart":{"result":[{"meta":{"currency":"USD","symbol":"AAPL","exchangeName":"NMS",
"fullExchangeName":"NasdaqGS","longName":"Apple Inc.","regularMarketPrice":110.0,"chartPreviousClose":100.0,
"regularMarketDayHigh":111.5,"regularMarketDayLow":99.5,"regularMarketVolume":123456,
"fiftyTwoWeekHigh":150.0,"fiftyTwoWeekLow":80.0,"regularMarketTime":1700000000},
"timestamp":[1700000000,1700086400,1700172800],
"indicators":{"quote":[{"open":[1.0,null,3.0],"high":[1.5,2.5,3.5],"low":[0.5,1.5,2.5],
"close":[1.2,null,3.2],"volume":[10,20,null]}]}}],"error":null}}`

func newTestClient(url string) *Client {
	return NewClient(config.MarketConfig{Endpoint: url + "/", Timeout: 5 * time.Second, UserAgent: "test-agent"})
}

func TestClient_Quote(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/AAPL", r.URL.Path)
		assert.Equal(t, "1d", r.URL.Query().Get("range"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(chartJSON))
	}))
	defer ts.Close()

	q, err := newTestClient(ts.URL).Quote(context.Background(), " aapl ")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", q.Symbol)
	assert.Equal(t, "Apple Inc.", q.Name)
	assert.Equal(t, "NasdaqGS", q.Exchange)
	assert.InDelta(t, 110.0, q.Price, 0.0001)
	assert.InDelta(t, 10.0, q.Change, 0.0001)
	assert.InDelta(t, 10.0, q.ChangePercent, 0.0001)
	assert.Equal(t, int64(123456), q.Volume)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), q.Time)
}

func TestClient_History(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1mo", r.URL.Query().Get("range"))
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		_, _ = w.Write([]byte(chartJSON))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)
	bars, err := c.History(context.Background(), "AAPL", "1mo", "1d")
	require.NoError(t, err)
	require.Len(t, bars, 2, "null close skipped")
	assert.InDelta(t, 1.2, bars[0].Close, 0.0001)
	assert.Equal(t, int64(10), bars[0].Volume)
	assert.InDelta(t, 3.2, bars[1].Close, 0.0001)
	assert.Equal(t, int64(0), bars[1].Volume)

	_, err = c.History(context.Background(), "AAPL", "7w", "1d")
	require.ErrorContains(t, err, "invalid range")
	_, err = c.History(context.Background(), "AAPL", "1y", "2h")
	require.ErrorContains(t, err, "invalid interval")
}

func TestClient_NotFound(t *testing.T) {
	t.Run("status 404", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()
		_, err := newTestClient(ts.URL).Quote(context.Background(), "NOPE")
		require.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "not found is not retried")
	})

	t.Run("error payload", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`))
		}))
		defer ts.Close()
		_, err := newTestClient(ts.URL).Quote(context.Background(), "NOPE")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(chartJSON))
	}))
	defer ts.Close()

	q, err := newTestClient(ts.URL).Quote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", q.Symbol)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
