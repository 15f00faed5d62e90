package wire

import "testing"

// TestCamelToSnake verifies wire-key to field-name conversion, including
// acronym runs and already-lowercase keys.
func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"guid", "guid"},
		{"orderId", "order_id"},
		{"buyerProvidedInfo", "buyer_provided_info"},
		{"notificationURL", "notification_url"},
		{"redirectURL", "redirect_url"},
		{"closeURL", "close_url"},
		{"nonPayProPaymentReceived", "non_pay_pro_payment_received"},
		{"price", "price"},
		{"itemizedDetails", "itemized_details"},
	}
	for _, tt := range tests {
		if got := CamelToSnake(tt.key); got != tt.want {
			t.Fatalf("CamelToSnake(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

// TestSnakeToCamel verifies field-name to wire-key conversion, the inverse
// direction of TestCamelToSnake.
func TestSnakeToCamel(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"guid", "guid"},
		{"order_id", "orderId"},
		{"buyer_provided_info", "buyerProvidedInfo"},
		{"notification_url", "notificationURL"},
		{"redirect_url", "redirectURL"},
		{"full_notifications", "fullNotifications"},
	}
	for _, tt := range tests {
		if got := SnakeToCamel(tt.name); got != tt.want {
			t.Fatalf("SnakeToCamel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// TestNameConversionRoundTrip verifies the two conversions invert each other
// for every wire key shape the API uses.
func TestNameConversionRoundTrip(t *testing.T) {
	keys := []string{
		"guid",
		"orderId",
		"buyerProvidedInfo",
		"notificationURL",
		"redirectURL",
		"transactionSpeed",
		"supportRequest",
		"acceptanceWindow",
	}
	for _, key := range keys {
		if got := SnakeToCamel(CamelToSnake(key)); got != key {
			t.Fatalf("round trip of %q produced %q", key, got)
		}
	}
}
