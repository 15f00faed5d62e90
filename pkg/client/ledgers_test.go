package client

import (
	"context"
	"testing"

	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/internal/testutil"
)

func TestGetLedgers(t *testing.T) {
	tr := &testutil.Transport{Responses: []any{
		[]any{
			map[string]any{"currency": "USD", "balance": 100.5},
			map[string]any{"currency": "BTC", "balance": 0.0},
		},
	}}
	c := newTestClient(t, tr)

	ledgers, err := c.GetLedgers(context.Background())
	if err != nil {
		t.Fatalf("GetLedgers: %v", err)
	}
	if len(ledgers) != 2 || ledgers[0].Currency() != "USD" || ledgers[0].Balance() != 100.5 {
		t.Fatalf("ledgers = %v", ledgers)
	}
}

func TestGetLedgerEntries(t *testing.T) {
	tr := &testutil.Transport{Responses: []any{
		[]any{
			map[string]any{
				"type":      "Invoice",
				"amount":    "1000",
				"timestamp": "2024-05-01T12:00:00.000Z",
				"buyerFields": map[string]any{
					"name": "Marcin",
				},
			},
		},
	}}
	c := newTestClient(t, tr)

	entries, err := c.GetLedgerEntries(context.Background(), "USD", "2024-05-01", "2024-05-31")
	if err != nil {
		t.Fatalf("GetLedgerEntries: %v", err)
	}
	if len(entries) != 1 || entries[0].Amount() != "1000" {
		t.Fatalf("entries = %v", entries)
	}
	if buyer := entries[0].BuyerFields(); buyer == nil || buyer.Name() != "Marcin" {
		t.Fatalf("buyer fields = %v", buyer)
	}

	call := tr.LastCall()
	if call.Path != "ledgers/USD" {
		t.Fatalf("path = %q", call.Path)
	}
	if call.Params["startDate"] != "2024-05-01" || call.Params["endDate"] != "2024-05-31" {
		t.Fatalf("params = %v", call.Params)
	}
}
