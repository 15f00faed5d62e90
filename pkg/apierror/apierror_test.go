package apierror

import (
	"errors"
	"fmt"
	"testing"
)

// TestWrapKeepsCause verifies the wrapped cause stays reachable through
// errors.Unwrap and that the message carries tag, class message and cause.
func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := PayoutCreate.Wrap(cause)

	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable via errors.Is")
	}
	want := "BITPAY-PAYOUT-CREATE: failed to create payout: boom"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
	if err.APICode != "000000" {
		t.Fatalf("APICode = %q", err.APICode)
	}
}

// TestClassSentinelMatching verifies errors.Is matches by class code across
// independently wrapped instances.
func TestClassSentinelMatching(t *testing.T) {
	err := fmt.Errorf("op: %w", InvoiceQuery.Wrap(errors.New("404")))
	if !errors.Is(err, InvoiceQuery.Sentinel()) {
		t.Fatal("sentinel did not match wrapped class")
	}
	if errors.Is(err, InvoiceCreate.Sentinel()) {
		t.Fatal("sentinel matched the wrong class")
	}
}

// TestWrapAPI verifies API-reported codes are carried through.
func TestWrapAPI(t *testing.T) {
	err := RefundCreate.WrapAPI("010207", errors.New("invalid token"))
	if err.APICode != "010207" {
		t.Fatalf("APICode = %q", err.APICode)
	}
	if err.Code != 162 {
		t.Fatalf("unexpected class code %d", err.Code)
	}
}
