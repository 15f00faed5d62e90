package bill

import (
	"reflect"
	"testing"
)

// TestRoundTripWithItems verifies bill population with a line-item list and
// that rendering preserves item order and values.
func TestRoundTripWithItems(t *testing.T) {
	doc := map[string]any{
		"id":       "X6KJbe9RxAGWNReCwd1xRw",
		"number":   "bill-1001",
		"currency": "USD",
		"email":    "billing@example.com",
		"status":   "draft",
		"items": []any{
			map[string]any{"description": "hosting", "price": 30.0, "quantity": 9.0},
			map[string]any{"description": "support", "price": 14.0, "quantity": 1.0},
		},
	}
	b, err := NewFromWire(doc)
	if err != nil {
		t.Fatalf("NewFromWire returned error: %v", err)
	}
	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Description() != "hosting" || items[1].Description() != "support" {
		t.Fatalf("item order lost: %q, %q", items[0].Description(), items[1].Description())
	}
	if got := b.ToWire(); !reflect.DeepEqual(got, doc) {
		t.Fatalf("round trip diverged: %#v", got)
	}
}

// TestBuildOutbound verifies a bill built by calling code renders only what
// was set, items included.
func TestBuildOutbound(t *testing.T) {
	b := New("bill-1002", "EUR", "client@example.com")
	b.SetItems([]*Item{
		NewItem("consulting", 120.0, 2),
	})
	got := b.ToWire()
	want := map[string]any{
		"number":   "bill-1002",
		"currency": "EUR",
		"email":    "client@example.com",
		"items": []any{
			map[string]any{"description": "consulting", "price": 120.0, "quantity": 2.0},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ToWire = %#v, want %#v", got, want)
	}
}
