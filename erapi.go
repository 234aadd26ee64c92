package ozpocket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
)

// This file contains functions to access the exchange-rate quote API.

// DefaultRateURL is the quote endpoint anchored on AUD.
// The expected response shape is {"result":"success","rates":{"TWD":...,"USD":...}}.
const DefaultRateURL = "https://open.er-api.com/v6/latest/AUD"

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure. Transient failures are retried with a short
// exponential backoff.
func jwget(ctx context.Context, client *http.Client, addr string, data interface{}) error {
	if client == nil {
		client = http.DefaultClient
	}
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
		}
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, resp.Body); err != nil {
			return err
		}
		if err := json.Unmarshal(buf.Bytes(), data); err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxElapsedTime = 10 * time.Second
	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(b, 2), ctx))
}

// FetchRates queries the quote endpoint and returns a fresh rate table.
//
// Only a "success" result updates anything; any other result or a missing
// TWD or USD quote is an error and the caller keeps its previous rates. The
// endpoint is anchored on AUD, so the USD/TWD cross is derived once here at
// fetch time and stored independently thereafter.
func FetchRates(ctx context.Context, client *http.Client, addr string) (RateTable, error) {
	if addr == "" {
		addr = DefaultRateURL
	}
	var content struct {
		Result string                     `json:"result"`
		Rates  map[string]decimal.Decimal `json:"rates"`
	}
	if err := jwget(ctx, client, addr, &content); err != nil {
		return RateTable{}, err
	}
	if content.Result != "success" {
		return RateTable{}, fmt.Errorf("rate quote returned result %q", content.Result)
	}
	twd, ok := content.Rates["TWD"]
	if !ok {
		return RateTable{}, fmt.Errorf("rate quote has no TWD rate")
	}
	usd, ok := content.Rates["USD"]
	if !ok {
		return RateTable{}, fmt.Errorf("rate quote has no USD rate")
	}
	table := RateTable{AUDTWD: twd, AUDUSD: usd}
	if usd.IsPositive() {
		table.USDTWD = twd.Div(usd)
	}
	if err := table.Validate(); err != nil {
		return RateTable{}, fmt.Errorf("rate quote is unusable: %w", err)
	}
	return table, nil
}
