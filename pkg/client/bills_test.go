package client

import (
	"context"
	"errors"
	"testing"

	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/internal/testutil"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/apierror"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/models/bill"
)

func TestCreateBill(t *testing.T) {
	tr := &testutil.Transport{Responses: []any{
		map[string]any{"id": "b1", "status": "draft", "token": "bill-token"},
	}}
	c := newTestClient(t, tr)

	b := bill.New("1001", "USD", "john@doe.com")
	b.SetItems([]*bill.Item{bill.NewItem("consulting", 100, 2)})

	created, err := c.CreateBill(context.Background(), b)
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}
	if created.ID() != "b1" || created.Token() != "bill-token" {
		t.Fatalf("created = %q/%q", created.ID(), created.Token())
	}

	call := tr.LastCall()
	if call.Verb != "POST" || call.Path != "bills" {
		t.Fatalf("call = %s %s", call.Verb, call.Path)
	}
	if call.Body["token"] != "merchant-token" {
		t.Fatalf("body token = %v", call.Body["token"])
	}
	items, ok := call.Body["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("items = %v", call.Body["items"])
	}
}

func TestGetBillsFiltersByStatus(t *testing.T) {
	tr := &testutil.Transport{Responses: []any{
		[]any{map[string]any{"id": "b1", "status": "sent"}},
	}}
	c := newTestClient(t, tr)

	bills, err := c.GetBills(context.Background(), "sent")
	if err != nil {
		t.Fatalf("GetBills: %v", err)
	}
	if len(bills) != 1 || bills[0].Status() != "sent" {
		t.Fatalf("bills = %v", bills)
	}
	if tr.LastCall().Params["status"] != "sent" {
		t.Fatalf("params = %v", tr.LastCall().Params)
	}
}

func TestUpdateBill(t *testing.T) {
	tr := &testutil.Transport{Responses: []any{
		map[string]any{"id": "b1", "status": "draft", "email": "jane@doe.com"},
	}}
	c := newTestClient(t, tr)

	b := bill.New("1001", "USD", "jane@doe.com")
	b.SetToken("bill-token")

	updated, err := c.UpdateBill(context.Background(), b, "b1")
	if err != nil {
		t.Fatalf("UpdateBill: %v", err)
	}
	if updated.Email() != "jane@doe.com" {
		t.Fatalf("email = %q, want jane@doe.com", updated.Email())
	}

	call := tr.LastCall()
	if call.Verb != "UPDATE" || call.Path != "bills/b1" {
		t.Fatalf("call = %s %s, want UPDATE bills/b1", call.Verb, call.Path)
	}
	if call.Body["token"] != "bill-token" {
		t.Fatalf("body token = %v, want bill-token", call.Body["token"])
	}
}

// A bill without its resource token cannot be updated; the failure is
// reported before any transport call happens.
func TestUpdateBillWithoutTokenFailsBeforeTransport(t *testing.T) {
	tr := &testutil.Transport{}
	c := newTestClient(t, tr)

	_, err := c.UpdateBill(context.Background(), bill.New("1001", "USD", "jane@doe.com"), "b1")
	if err == nil {
		t.Fatal("expected error for bill without token")
	}
	if !errors.Is(err, apierror.BillUpdate.Sentinel()) {
		t.Fatalf("error %v is not classified as bill update", err)
	}
	if len(tr.Calls) != 0 {
		t.Fatalf("transport was called %d times, want 0", len(tr.Calls))
	}
}

// Bill delivery authenticates with the bill's own resource token and maps
// the API's bare "Success" string to a bool.
func TestDeliverBill(t *testing.T) {
	tr := &testutil.Transport{Responses: []any{"Success"}}
	c := newTestClient(t, tr)

	ok, err := c.DeliverBill(context.Background(), "b1", "bill-token")
	if err != nil {
		t.Fatalf("DeliverBill: %v", err)
	}
	if !ok {
		t.Fatal("expected delivery to report success")
	}

	call := tr.LastCall()
	if call.Path != "bills/b1/deliveries" {
		t.Fatalf("path = %q", call.Path)
	}
	if call.Body["token"] != "bill-token" {
		t.Fatalf("body token = %v, want bill-token", call.Body["token"])
	}
}
