package rate

import "testing"

func table(t *testing.T) *Rates {
	t.Helper()
	docs := []map[string]any{
		{"name": "US Dollar", "code": "USD", "rate": 96240.18},
		{"name": "Euro", "code": "EUR", "rate": 88254.73},
		{"name": "Bitcoin", "code": "BTC", "rate": 1.0},
	}
	rates := make([]*Rate, 0, len(docs))
	for _, doc := range docs {
		r, err := NewFromWire(doc)
		if err != nil {
			t.Fatalf("NewFromWire returned error: %v", err)
		}
		rates = append(rates, r)
	}
	return NewRates(rates)
}

// TestRateLookup verifies lookup by code, case-insensitively, and the error
// for unknown currencies.
func TestRateLookup(t *testing.T) {
	rates := table(t)
	got, err := rates.Rate("eur")
	if err != nil {
		t.Fatalf("Rate returned error: %v", err)
	}
	if got != 88254.73 {
		t.Fatalf("EUR rate = %v", got)
	}
	if _, err := rates.Rate("XYZ"); err == nil {
		t.Fatal("expected error for unknown currency")
	}
}

// TestConvertExact verifies conversion avoids float drift: 0.1 BTC at a
// two-decimal fiat rate must land exactly on a cent.
func TestConvertExact(t *testing.T) {
	rates := table(t)
	got, err := rates.Convert(0.1, "USD", 2)
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	// 0.1 * 96240.18 == 9624.018, rounds to 9624.02.
	if got != 9624.02 {
		t.Fatalf("Convert = %v, want 9624.02", got)
	}
}
