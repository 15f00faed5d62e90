package ledger

import (
	"reflect"
	"testing"
)

// TestEntryRoundTrip verifies an entry with a nested buyer snapshot parses
// and renders back to the original document.
func TestEntryRoundTrip(t *testing.T) {
	doc := map[string]any{
		"type":        "invoice",
		"amount":      "2389253",
		"code":        1000.0,
		"timestamp":   "2026-01-12T18:54:35.754Z",
		"invoiceId":   "Hpqc63wvE1ZjzeeH4kEycF",
		"txType":      "sale",
		"buyerFields": map[string]any{"name": "Satoshi", "country": "JP"},
	}
	e, err := NewEntryFromWire(doc)
	if err != nil {
		t.Fatalf("NewEntryFromWire returned error: %v", err)
	}
	if e.Amount() != "2389253" || e.Code() != 1000.0 {
		t.Fatalf("parsed wrong: amount=%q code=%v", e.Amount(), e.Code())
	}
	if e.BuyerFields() == nil || e.BuyerFields().Name() != "Satoshi" {
		t.Fatalf("buyer fields = %+v", e.BuyerFields())
	}
	if got := e.ToWire(); !reflect.DeepEqual(got, doc) {
		t.Fatalf("round trip diverged: %#v", got)
	}
}

// TestLedgerBalance verifies the per-currency balance model.
func TestLedgerBalance(t *testing.T) {
	l, err := NewFromWire(map[string]any{"currency": "USD", "balance": 2389.82})
	if err != nil {
		t.Fatalf("NewFromWire returned error: %v", err)
	}
	if l.Currency() != "USD" || l.Balance() != 2389.82 {
		t.Fatalf("parsed wrong: %q %v", l.Currency(), l.Balance())
	}
}
