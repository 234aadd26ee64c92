package ozpocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchRates_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"success","rates":{"AUD":1,"TWD":21.75,"USD":0.692,"EUR":0.61}}`))
	}))
	defer srv.Close()

	table, err := FetchRates(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("FetchRates() failed: %v", err)
	}
	if got := table.AUDTWD.String(); got != "21.75" {
		t.Errorf("AUD_TWD = %s, want 21.75", got)
	}
	if got := table.AUDUSD.String(); got != "0.692" {
		t.Errorf("AUD_USD = %s, want 0.692", got)
	}
	// The USD/TWD cross is derived from the AUD-anchored quotes at fetch time.
	if got := table.USDTWD.StringFixed(2); got != "31.43" {
		t.Errorf("USD_TWD = %s, want 31.43", got)
	}
}

func TestFetchRates_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"unsuccessful result", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result":"error","rates":{}}`))
		}},
		{"missing TWD", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result":"success","rates":{"USD":0.692}}`))
		}},
		{"missing USD", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result":"success","rates":{"TWD":21.75}}`))
		}},
		{"zero rate", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result":"success","rates":{"TWD":0,"USD":0.692}}`))
		}},
		{"not json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>down for maintenance</html>`))
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()
			if _, err := FetchRates(context.Background(), srv.Client(), srv.URL); err == nil {
				t.Error("FetchRates() accepted an unusable response")
			}
		})
	}
}

func TestRefresher_KeepsRatesOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	l := newTestLedger()
	before := l.Rates()
	called := false
	r := &Refresher{Ledger: l, Client: srv.Client(), URL: srv.URL, OnUpdate: func() { called = true }}

	if r.RefreshOnce(context.Background()) {
		t.Error("RefreshOnce() reported success against a failing endpoint")
	}
	if called {
		t.Error("OnUpdate fired on a failed refresh")
	}
	if got := l.Rates(); got != before {
		t.Errorf("rates changed on a failed refresh: %+v", got)
	}
}

func TestRefresher_UpdatesOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"success","rates":{"TWD":22.10,"USD":0.70}}`))
	}))
	defer srv.Close()

	l := newTestLedger()
	called := false
	r := &Refresher{Ledger: l, Client: srv.Client(), URL: srv.URL, OnUpdate: func() { called = true }}

	if !r.RefreshOnce(context.Background()) {
		t.Fatal("RefreshOnce() failed against a healthy endpoint")
	}
	if !called {
		t.Error("OnUpdate did not fire on a successful refresh")
	}
	if got := l.Rates().AUDTWD.String(); got != "22.1" {
		t.Errorf("AUD_TWD = %s after refresh, want 22.1", got)
	}
}
