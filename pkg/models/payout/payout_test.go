package payout

import (
	"reflect"
	"testing"
)

// TestLabelOnlyRender verifies a freshly constructed payout with only label
// set renders to exactly that one key.
func TestLabelOnlyRender(t *testing.T) {
	p := &Payout{}
	p.SetLabel("march contractor run")
	got := p.ToWire()
	want := map[string]any{"label": "march contractor run"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ToWire = %#v, want %#v", got, want)
	}
}

// TestPayoutRoundTrip verifies a response-shaped payout with transactions
// renders back to its original wire form.
func TestPayoutRoundTrip(t *testing.T) {
	doc := map[string]any{
		"id":             "JMwv8wQCXANoU2ZZQ9a9GH",
		"amount":         10.0,
		"currency":       "USD",
		"ledgerCurrency": "GBP",
		"status":         "complete",
		"recipientId":    "LDxRZCGq174SF8AnQpdBPB",
		"transactions": []any{
			map[string]any{"txid": "db53d7e2bf3385a31257ce09396202d9c2823370a5ca186db315c45e24594057", "amount": 0.000254, "confirmations": 6.0},
		},
	}
	p, err := NewFromWire(doc)
	if err != nil {
		t.Fatalf("NewFromWire returned error: %v", err)
	}
	if p.LedgerCurrency() != "GBP" || p.Status() != "complete" {
		t.Fatalf("parsed wrong: %q %q", p.LedgerCurrency(), p.Status())
	}
	txs := p.Transactions()
	if len(txs) != 1 || txs[0].Confirmations() != 6.0 {
		t.Fatalf("transactions parsed wrong: %v", txs)
	}
	if got := p.ToWire(); !reflect.DeepEqual(got, doc) {
		t.Fatalf("round trip diverged: %#v", got)
	}
}

// TestRecipientsEnvelope verifies the batch envelope renders its nested
// recipient list in order.
func TestRecipientsEnvelope(t *testing.T) {
	rs := NewRecipients([]*Recipient{
		NewRecipient("alice@example.com"),
		NewRecipient("bob@example.com"),
	})
	rs.SetToken("payout-token")
	got := rs.ToWire()
	want := map[string]any{
		"recipients": []any{
			map[string]any{"email": "alice@example.com"},
			map[string]any{"email": "bob@example.com"},
		},
		"token": "payout-token",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ToWire = %#v, want %#v", got, want)
	}
}

// TestGroupFromWire verifies the created/failed split of a group response.
func TestGroupFromWire(t *testing.T) {
	doc := map[string]any{
		"created": []any{
			map[string]any{"id": "ok-1", "amount": 5.0},
		},
		"failed": []any{
			map[string]any{"errMessage": "Ledger currency is required", "payee": "john@example.com"},
		},
	}
	g, err := NewGroupFromWire(doc)
	if err != nil {
		t.Fatalf("NewGroupFromWire returned error: %v", err)
	}
	created := g.Created()
	if len(created) != 1 || created[0].ID() != "ok-1" {
		t.Fatalf("created parsed wrong: %v", created)
	}
	failed := g.Failed()
	if len(failed) != 1 || failed[0].Payee() != "john@example.com" {
		t.Fatalf("failed parsed wrong: %v", failed)
	}
	if failed[0].ErrMessage() != "Ledger currency is required" {
		t.Fatalf("errMessage = %q", failed[0].ErrMessage())
	}
}
