package client

import (
	"context"
	"errors"
	"testing"

	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/internal/testutil"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/apierror"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/config"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/facade"
)

func newTestClient(t *testing.T, tr *testutil.Transport) *Client {
	t.Helper()
	cfg := &config.Config{
		Environment:   config.Test,
		MerchantToken: "merchant-token",
		PayoutToken:   "payout-token",
	}
	c, err := New(cfg, tr)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRejectsNilTransport(t *testing.T) {
	_, err := New(&config.Config{Environment: config.Test}, nil)
	if err == nil {
		t.Fatal("expected error for nil transport")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(&config.Config{Environment: "staging"}, &testutil.Transport{})
	if err == nil {
		t.Fatal("expected error for unknown environment")
	}
}

// A client without the payout token must fail payout operations before any
// transport call happens.
func TestMissingTokenFailsBeforeTransport(t *testing.T) {
	tr := &testutil.Transport{}
	cfg := &config.Config{Environment: config.Test, MerchantToken: "merchant-token"}
	c, err := New(cfg, tr)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.GetPayout(context.Background(), "p1")
	if err == nil {
		t.Fatal("expected missing token error")
	}
	var missing *facade.MissingTokenError
	if !errors.As(err, &missing) {
		t.Fatalf("error %v does not wrap *facade.MissingTokenError", err)
	}
	if missing.Facade != facade.Payout {
		t.Fatalf("missing facade = %q, want %q", missing.Facade, facade.Payout)
	}
	if !errors.Is(err, apierror.PayoutQuery.Sentinel()) {
		t.Fatalf("error %v is not classified as payout query", err)
	}
	if len(tr.Calls) != 0 {
		t.Fatalf("transport was called %d times, want 0", len(tr.Calls))
	}
}

func TestTransportErrorIsClassified(t *testing.T) {
	tr := &testutil.Transport{Err: errors.New("connection refused")}
	c := newTestClient(t, tr)

	_, err := c.GetInvoice(context.Background(), "inv1")
	if !errors.Is(err, apierror.InvoiceQuery.Sentinel()) {
		t.Fatalf("error %v is not classified as invoice query", err)
	}
}

func TestUnexpectedResponseShape(t *testing.T) {
	tr := &testutil.Transport{Responses: []any{"not an object"}}
	c := newTestClient(t, tr)

	if _, err := c.GetInvoice(context.Background(), "inv1"); err == nil {
		t.Fatal("expected error for non-object response")
	}
}
