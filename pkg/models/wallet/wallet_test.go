package wallet

import "testing"

func TestWalletFromWire(t *testing.T) {
	doc := map[string]any{
		"key":         "bitpay",
		"displayName": "BitPay",
		"payPro":      true,
		"avatar":      "bitpay-wallet.png",
		"currencies": []any{
			map[string]any{
				"code":          "BTC",
				"p2p":           true,
				"dappBrowser":   false,
				"payPro":        true,
				"withdrawalFee": "0.0001",
				"qr":            map[string]any{"type": "BIP72b", "collapsed": false},
			},
			map[string]any{
				"code": "ETH",
			},
		},
	}

	w, err := NewFromWire(doc)
	if err != nil {
		t.Fatalf("NewFromWire: %v", err)
	}
	if w.Key() != "bitpay" || w.DisplayName() != "BitPay" || !w.PayPro() {
		t.Fatalf("wallet = %q/%q/%v", w.Key(), w.DisplayName(), w.PayPro())
	}

	currencies := w.Currencies()
	if len(currencies) != 2 {
		t.Fatalf("got %d currencies, want 2", len(currencies))
	}
	btc := currencies[0]
	if btc.Code() != "BTC" || !btc.P2P() || btc.WithdrawalFee() != "0.0001" {
		t.Fatalf("btc = %q/%v/%q", btc.Code(), btc.P2P(), btc.WithdrawalFee())
	}
	if qr := btc.QR(); qr["type"] != "BIP72b" || qr["collapsed"] != false {
		t.Fatalf("qr = %v", qr)
	}

	// Unset bool fields read as their zero value.
	if currencies[1].PayPro() {
		t.Fatal("unset payPro must read false")
	}

	out := w.ToWire()
	if out["displayName"] != "BitPay" {
		t.Fatalf("rendered displayName = %v", out["displayName"])
	}
	rendered, ok := out["currencies"].([]any)
	if !ok || len(rendered) != 2 {
		t.Fatalf("rendered currencies = %v", out["currencies"])
	}
}
