// Package config defines the runtime configuration for the SDK: target
// environment, API base URL, per-facade tokens, and operation timeouts. It
// also provides validation and defaulting helpers.
package config

import (
	"fmt"
	"time"
)

// Environment selects the API deployment the client talks to.
type Environment string

const (
	// Test targets the sandbox deployment.
	Test Environment = "test"
	// Prod targets the production deployment.
	Prod Environment = "prod"
)

const (
	// TestBaseURL is the sandbox API base URL.
	TestBaseURL = "https://test.bitpay.com/"
	// ProdBaseURL is the production API base URL.
	ProdBaseURL = "https://bitpay.com/"
)

// Config holds all settings required to construct a client. Use Validate to
// fill implicit defaults and to check for required fields.
type Config struct {
	// Environment selects the API deployment. Default: Test.
	Environment Environment `json:"environment" yaml:"environment"`
	// APIBaseURL overrides the base URL derived from Environment. Leave
	// empty unless pointing at a mock or proxy.
	APIBaseURL string `json:"api_base_url" yaml:"api_base_url"`
	// MerchantToken authorizes the merchant facade (invoices, bills,
	// ledgers, settlements). Optional; operations needing it fail with a
	// missing-token error when absent.
	MerchantToken string `json:"merchant_token" yaml:"merchant_token"`
	// PayoutToken authorizes the payout facade (payouts, recipients).
	PayoutToken string `json:"payout_token" yaml:"payout_token"`
	// POSToken authorizes the point-of-sale facade.
	POSToken string `json:"pos_token" yaml:"pos_token"`
	// Timeouts configures per-operation deadlines. See Timeouts.WithDefaults.
	Timeouts Timeouts `json:"timeouts" yaml:"timeouts"`
}

// Timeouts controls client operation deadlines. Zero values are replaced by
// defaults in WithDefaults.
type Timeouts struct {
	Connect time.Duration // transport dial/connect
	Request time.Duration // one round trip, body included
}

// Validate normalizes the configuration: Environment defaults to Test and
// APIBaseURL is derived from it when empty. An explicitly set unknown
// environment is rejected.
func (c *Config) Validate() error {
	if c.Environment == "" {
		c.Environment = Test
	}
	switch c.Environment {
	case Test:
		if c.APIBaseURL == "" {
			c.APIBaseURL = TestBaseURL
		}
	case Prod:
		if c.APIBaseURL == "" {
			c.APIBaseURL = ProdBaseURL
		}
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	return nil
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	Connect: 5s
//	Request: 15s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.Connect == 0 {
		tt.Connect = 5 * time.Second
	}
	if tt.Request == 0 {
		tt.Request = 15 * time.Second
	}
	return tt
}
