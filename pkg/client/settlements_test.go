package client

import (
	"context"
	"testing"

	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/internal/testutil"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/models/settlement"
)

func TestGetSettlements(t *testing.T) {
	tr := &testutil.Transport{Responses: []any{
		[]any{
			map[string]any{"id": "s1", "status": "processing", "currency": "USD"},
		},
	}}
	c := newTestClient(t, tr)

	settlements, err := c.GetSettlements(context.Background(), map[string]string{"status": "processing"})
	if err != nil {
		t.Fatalf("GetSettlements: %v", err)
	}
	if len(settlements) != 1 || settlements[0].ID() != "s1" {
		t.Fatalf("settlements = %v", settlements)
	}
	call := tr.LastCall()
	if call.Params["status"] != "processing" || call.Params["token"] != "merchant-token" {
		t.Fatalf("params = %v", call.Params)
	}
}

// The reconciliation report authenticates with the settlement's own resource
// token rather than the merchant token.
func TestGetSettlementReconciliationReport(t *testing.T) {
	tr := &testutil.Transport{Responses: []any{
		map[string]any{"id": "s1", "totalAmount": 22.09},
	}}
	c := newTestClient(t, tr)

	s, err := settlement.NewFromWire(map[string]any{"id": "s1", "token": "settlement-token"})
	if err != nil {
		t.Fatalf("NewFromWire: %v", err)
	}

	report, err := c.GetSettlementReconciliationReport(context.Background(), s)
	if err != nil {
		t.Fatalf("GetSettlementReconciliationReport: %v", err)
	}
	if report.ID() != "s1" {
		t.Fatalf("report id = %q", report.ID())
	}

	call := tr.LastCall()
	if call.Path != "settlements/s1/reconciliationReport" {
		t.Fatalf("path = %q", call.Path)
	}
	if call.Params["token"] != "settlement-token" {
		t.Fatalf("token param = %q, want settlement-token", call.Params["token"])
	}
}

func TestReconciliationReportNeedsResourceToken(t *testing.T) {
	tr := &testutil.Transport{}
	c := newTestClient(t, tr)

	s, err := settlement.NewFromWire(map[string]any{"id": "s1"})
	if err != nil {
		t.Fatalf("NewFromWire: %v", err)
	}
	if _, err := c.GetSettlementReconciliationReport(context.Background(), s); err == nil {
		t.Fatal("expected error for settlement without a token")
	}
	if len(tr.Calls) != 0 {
		t.Fatalf("transport was called %d times, want 0", len(tr.Calls))
	}
}
