// Package payout defines the payout resources: individual payouts, payout
// groups, and the recipients payouts are addressed to.
package payout

import "github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"

// Payout is a single payout instruction.
type Payout struct {
	wire.Fields
}

var payoutSchema = wire.Schema{
	"id":                 {},
	"token":              {},
	"amount":             {},
	"currency":           {},
	"ledger_currency":    {},
	"effective_date":     {},
	"reference":          {},
	"notification_email": {},
	"notification_url":   {},
	"recipient_id":       {},
	"shopper_id":         {},
	"label":              {},
	"email":              {},
	"request_date":       {},
	"status":             {},
	"group_id":           {},
	"code":               {},
	"ignore_emails":      {},
	"message":            {},
	"transactions":       {Kind: wire.KindModelList, New: func() wire.Model { return &Transaction{} }},
}

func (p *Payout) Schema() wire.Schema { return payoutSchema }

// New returns a payout for amount in currency, settled against the merchant
// ledger held in ledgerCurrency.
func New(amount float64, currency, ledgerCurrency string) *Payout {
	p := &Payout{}
	p.Set("amount", amount)
	p.Set("currency", currency)
	p.Set("ledger_currency", ledgerCurrency)
	return p
}

// NewFromWire populates a Payout from a decoded JSON object.
func NewFromWire(doc map[string]any) (*Payout, error) {
	p := &Payout{}
	if err := wire.Populate(p, doc); err != nil {
		return nil, err
	}
	return p, nil
}

// ToWire renders the set fields as a JSON-encodable object.
func (p *Payout) ToWire() map[string]any { return wire.Render(p) }

func (p *Payout) ID() string                    { return p.GetString("id") }
func (p *Payout) SetID(v string)                { p.Set("id", v) }
func (p *Payout) Token() string                 { return p.GetString("token") }
func (p *Payout) SetToken(v string)             { p.Set("token", v) }
func (p *Payout) Amount() float64               { return p.GetFloat("amount") }
func (p *Payout) SetAmount(v float64)           { p.Set("amount", v) }
func (p *Payout) Currency() string              { return p.GetString("currency") }
func (p *Payout) SetCurrency(v string)          { p.Set("currency", v) }
func (p *Payout) LedgerCurrency() string        { return p.GetString("ledger_currency") }
func (p *Payout) SetLedgerCurrency(v string)    { p.Set("ledger_currency", v) }
func (p *Payout) EffectiveDate() string         { return p.GetString("effective_date") }
func (p *Payout) SetEffectiveDate(v string)     { p.Set("effective_date", v) }
func (p *Payout) Reference() string             { return p.GetString("reference") }
func (p *Payout) SetReference(v string)         { p.Set("reference", v) }
func (p *Payout) NotificationEmail() string     { return p.GetString("notification_email") }
func (p *Payout) SetNotificationEmail(v string) { p.Set("notification_email", v) }
func (p *Payout) NotificationURL() string       { return p.GetString("notification_url") }
func (p *Payout) SetNotificationURL(v string)   { p.Set("notification_url", v) }
func (p *Payout) RecipientID() string           { return p.GetString("recipient_id") }
func (p *Payout) SetRecipientID(v string)       { p.Set("recipient_id", v) }
func (p *Payout) ShopperID() string             { return p.GetString("shopper_id") }
func (p *Payout) SetShopperID(v string)         { p.Set("shopper_id", v) }
func (p *Payout) Label() string                 { return p.GetString("label") }
func (p *Payout) SetLabel(v string)             { p.Set("label", v) }
func (p *Payout) Email() string                 { return p.GetString("email") }
func (p *Payout) SetEmail(v string)             { p.Set("email", v) }
func (p *Payout) RequestDate() string           { return p.GetString("request_date") }
func (p *Payout) SetRequestDate(v string)       { p.Set("request_date", v) }
func (p *Payout) Status() string                { return p.GetString("status") }
func (p *Payout) SetStatus(v string)            { p.Set("status", v) }
func (p *Payout) GroupID() string               { return p.GetString("group_id") }
func (p *Payout) SetGroupID(v string)           { p.Set("group_id", v) }
func (p *Payout) Code() float64                 { return p.GetFloat("code") }
func (p *Payout) SetCode(v float64)             { p.Set("code", v) }
func (p *Payout) IgnoreEmails() bool            { return p.GetBool("ignore_emails") }
func (p *Payout) SetIgnoreEmails(v bool)        { p.Set("ignore_emails", v) }
func (p *Payout) Message() string               { return p.GetString("message") }
func (p *Payout) SetMessage(v string)           { p.Set("message", v) }

func (p *Payout) Transactions() []*Transaction {
	models := p.GetModels("transactions")
	if models == nil {
		return nil
	}
	out := make([]*Transaction, 0, len(models))
	for _, m := range models {
		if tx, ok := m.(*Transaction); ok {
			out = append(out, tx)
		}
	}
	return out
}

func (p *Payout) SetTransactions(txs []*Transaction) {
	models := make([]wire.Model, len(txs))
	for n, tx := range txs {
		models[n] = tx
	}
	p.Set("transactions", models)
}

// Transaction is one on-chain movement fulfilling a payout.
type Transaction struct {
	wire.Fields
}

var transactionSchema = wire.Schema{
	"txid":          {},
	"amount":        {},
	"date":          {},
	"confirmations": {},
}

func (t *Transaction) Schema() wire.Schema { return transactionSchema }

// ToWire renders the set fields as a JSON-encodable object.
func (t *Transaction) ToWire() map[string]any { return wire.Render(t) }

func (t *Transaction) TxID() string               { return t.GetString("txid") }
func (t *Transaction) SetTxID(v string)           { t.Set("txid", v) }
func (t *Transaction) Amount() float64            { return t.GetFloat("amount") }
func (t *Transaction) SetAmount(v float64)        { t.Set("amount", v) }
func (t *Transaction) Date() string               { return t.GetString("date") }
func (t *Transaction) SetDate(v string)           { t.Set("date", v) }
func (t *Transaction) Confirmations() float64     { return t.GetFloat("confirmations") }
func (t *Transaction) SetConfirmations(v float64) { t.Set("confirmations", v) }
