package client

import (
	"context"
	"testing"

	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/internal/testutil"
)

func TestGetSupportedWallets(t *testing.T) {
	tr := &testutil.Transport{Responses: []any{
		[]any{
			map[string]any{
				"key":         "bitpay",
				"displayName": "BitPay",
				"payPro":      true,
				"currencies": []any{
					map[string]any{
						"code":   "BTC",
						"p2p":    true,
						"payPro": true,
						"qr":     map[string]any{"type": "BIP72b", "collapsed": false},
					},
				},
			},
		},
	}}
	c := newTestClient(t, tr)

	wallets, err := c.GetSupportedWallets(context.Background())
	if err != nil {
		t.Fatalf("GetSupportedWallets: %v", err)
	}
	if len(wallets) != 1 {
		t.Fatalf("got %d wallets, want 1", len(wallets))
	}
	w := wallets[0]
	if w.Key() != "bitpay" || w.DisplayName() != "BitPay" || !w.PayPro() {
		t.Fatalf("wallet = %q/%q/%v", w.Key(), w.DisplayName(), w.PayPro())
	}
	currencies := w.Currencies()
	if len(currencies) != 1 || currencies[0].Code() != "BTC" {
		t.Fatalf("currencies = %v", currencies)
	}
	if qr := currencies[0].QR(); qr["type"] != "BIP72b" {
		t.Fatalf("qr = %v", qr)
	}

	call := tr.LastCall()
	if call.Path != "supportedwallets" || call.Signed {
		t.Fatalf("call = %q signed=%v", call.Path, call.Signed)
	}
}
