package facade

import (
	"errors"
	"testing"
)

// TestTokenContainerLookup verifies registered tokens resolve and missing
// facades yield a typed error.
func TestTokenContainerLookup(t *testing.T) {
	c := NewTokenContainer()
	c.Put(Merchant, "merchant-token")

	got, err := c.Token(Merchant)
	if err != nil {
		t.Fatalf("Token returned error: %v", err)
	}
	if got != "merchant-token" {
		t.Fatalf("token = %q", got)
	}

	_, err = c.Token(Payout)
	var missing *MissingTokenError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingTokenError, got %v", err)
	}
	if missing.Facade != Payout {
		t.Fatalf("error names facade %q", missing.Facade)
	}
}

// TestTokenContainerIgnoresEmpty verifies that an empty token does not
// register the facade.
func TestTokenContainerIgnoresEmpty(t *testing.T) {
	c := NewTokenContainer()
	c.Put(POS, "")
	if _, err := c.Token(POS); err == nil {
		t.Fatal("expected lookup to fail for empty token")
	}
}
