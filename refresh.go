package ozpocket

import (
	"context"
	"log"
	"net/http"
	"time"
)

// DefaultRefreshInterval is how often rates are refreshed in watch mode.
const DefaultRefreshInterval = 10 * time.Minute

// Refresher periodically replaces the rate table of a ledger with fresh
// quotes. A failed refresh keeps the previous rates and is only logged:
// stale rates are an acceptable degraded state.
type Refresher struct {
	Ledger   *Ledger
	Client   *http.Client
	URL      string
	Interval time.Duration
	// OnUpdate is called after every successful refresh, typically to
	// persist the snapshot and re-render.
	OnUpdate func()
}

// Run refreshes once immediately and then on every tick until ctx is done.
func (r *Refresher) Run(ctx context.Context) {
	interval := r.Interval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	r.RefreshOnce(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RefreshOnce(ctx)
		}
	}
}

// RefreshOnce performs a single refresh attempt.
// It returns true when the rate table was replaced.
func (r *Refresher) RefreshOnce(ctx context.Context) bool {
	table, err := FetchRates(ctx, r.Client, r.URL)
	if err != nil {
		log.Printf("rate refresh failed, keeping previous rates: %v", err)
		return false
	}
	if err := r.Ledger.SetRates(table); err != nil {
		log.Printf("rate refresh rejected: %v", err)
		return false
	}
	if r.OnUpdate != nil {
		r.OnUpdate()
	}
	return true
}
