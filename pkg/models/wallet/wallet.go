// Package wallet defines the supported-wallet models returned by the public
// wallets endpoint.
package wallet

import "github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"

// Wallet is one wallet application buyers can pay with.
type Wallet struct {
	wire.Fields
}

var walletSchema = wire.Schema{
	"key":          {},
	"display_name": {},
	"avatar":       {},
	"pay_pro":      {},
	"image":        {},
	"currencies":   {Kind: wire.KindModelList, New: func() wire.Model { return &Currency{} }},
}

func (w *Wallet) Schema() wire.Schema { return walletSchema }

// NewFromWire populates a Wallet from a decoded JSON object.
func NewFromWire(doc map[string]any) (*Wallet, error) {
	w := &Wallet{}
	if err := wire.Populate(w, doc); err != nil {
		return nil, err
	}
	return w, nil
}

// ToWire renders the set fields as a JSON-encodable object.
func (w *Wallet) ToWire() map[string]any { return wire.Render(w) }

func (w *Wallet) Key() string            { return w.GetString("key") }
func (w *Wallet) SetKey(v string)        { w.Set("key", v) }
func (w *Wallet) DisplayName() string    { return w.GetString("display_name") }
func (w *Wallet) SetDisplayName(v string) { w.Set("display_name", v) }
func (w *Wallet) Avatar() string         { return w.GetString("avatar") }
func (w *Wallet) SetAvatar(v string)     { w.Set("avatar", v) }
func (w *Wallet) PayPro() bool           { return w.GetBool("pay_pro") }
func (w *Wallet) SetPayPro(v bool)       { w.Set("pay_pro", v) }
func (w *Wallet) Image() string          { return w.GetString("image") }
func (w *Wallet) SetImage(v string)      { w.Set("image", v) }

func (w *Wallet) Currencies() []*Currency {
	models := w.GetModels("currencies")
	if models == nil {
		return nil
	}
	out := make([]*Currency, 0, len(models))
	for _, m := range models {
		if c, ok := m.(*Currency); ok {
			out = append(out, c)
		}
	}
	return out
}

func (w *Wallet) SetCurrencies(cs []*Currency) {
	models := make([]wire.Model, len(cs))
	for n, c := range cs {
		models[n] = c
	}
	w.Set("currencies", models)
}

// Currency is one currency a wallet supports, with its payment capabilities.
type Currency struct {
	wire.Fields
}

var currencySchema = wire.Schema{
	"code":           {},
	"p2p":            {},
	"dapp_browser":   {},
	"pay_pro":        {},
	"image":          {},
	"withdrawal_fee": {},
	"wallet_connect": {},
	"qr":             {Kind: wire.KindMap},
}

func (c *Currency) Schema() wire.Schema { return currencySchema }

// ToWire renders the set fields as a JSON-encodable object.
func (c *Currency) ToWire() map[string]any { return wire.Render(c) }

func (c *Currency) Code() string              { return c.GetString("code") }
func (c *Currency) SetCode(v string)          { c.Set("code", v) }
func (c *Currency) P2P() bool                 { return c.GetBool("p2p") }
func (c *Currency) SetP2P(v bool)             { c.Set("p2p", v) }
func (c *Currency) DappBrowser() bool         { return c.GetBool("dapp_browser") }
func (c *Currency) SetDappBrowser(v bool)     { c.Set("dapp_browser", v) }
func (c *Currency) PayPro() bool              { return c.GetBool("pay_pro") }
func (c *Currency) SetPayPro(v bool)          { c.Set("pay_pro", v) }
func (c *Currency) Image() string             { return c.GetString("image") }
func (c *Currency) SetImage(v string)         { c.Set("image", v) }
func (c *Currency) WithdrawalFee() string     { return c.GetString("withdrawal_fee") }
func (c *Currency) SetWithdrawalFee(v string) { c.Set("withdrawal_fee", v) }
func (c *Currency) WalletConnect() bool       { return c.GetBool("wallet_connect") }
func (c *Currency) SetWalletConnect(v bool)   { c.Set("wallet_connect", v) }
func (c *Currency) QR() map[string]any        { return c.GetMap("qr") }
func (c *Currency) SetQR(v map[string]any)    { c.Set("qr", v) }
