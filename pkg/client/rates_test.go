package client

import (
	"context"
	"testing"

	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/internal/testutil"
)

// Rate endpoints are public: no token in the request and no signature.
func TestGetRatesIsUnsigned(t *testing.T) {
	tr := &testutil.Transport{Responses: []any{
		[]any{
			map[string]any{"name": "US Dollar", "code": "USD", "rate": 96240.18},
			map[string]any{"name": "Euro", "code": "EUR", "rate": 88021.75},
		},
	}}
	c := newTestClient(t, tr)

	rates, err := c.GetRates(context.Background())
	if err != nil {
		t.Fatalf("GetRates: %v", err)
	}
	if len(rates.All()) != 2 {
		t.Fatalf("got %d rates, want 2", len(rates.All()))
	}
	if v, err := rates.Rate("usd"); err != nil || v != 96240.18 {
		t.Fatalf("Rate(usd) = %v, %v", v, err)
	}

	call := tr.LastCall()
	if call.Signed {
		t.Fatal("rates request must not be signed")
	}
	if _, ok := call.Params["token"]; ok {
		t.Fatal("rates request must not carry a token")
	}
}

func TestGetCurrencyPairRate(t *testing.T) {
	tr := &testutil.Transport{Responses: []any{
		map[string]any{"name": "US Dollar", "code": "USD", "rate": 96240.18},
	}}
	c := newTestClient(t, tr)

	r, err := c.GetCurrencyPairRate(context.Background(), "BTC", "USD")
	if err != nil {
		t.Fatalf("GetCurrencyPairRate: %v", err)
	}
	if r.Code() != "USD" || r.Value() != 96240.18 {
		t.Fatalf("rate = %q/%v", r.Code(), r.Value())
	}
	if tr.LastCall().Path != "rates/BTC/USD" {
		t.Fatalf("path = %q", tr.LastCall().Path)
	}
}
