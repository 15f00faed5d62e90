// Package ledger defines the merchant ledger models: per-currency balances
// and the entries recorded against them.
package ledger

import "github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"

// Ledger is one per-currency ledger balance.
type Ledger struct {
	wire.Fields
}

var ledgerSchema = wire.Schema{
	"currency": {},
	"balance":  {},
}

func (l *Ledger) Schema() wire.Schema { return ledgerSchema }

// NewFromWire populates a Ledger from a decoded JSON object.
func NewFromWire(doc map[string]any) (*Ledger, error) {
	l := &Ledger{}
	if err := wire.Populate(l, doc); err != nil {
		return nil, err
	}
	return l, nil
}

// ToWire renders the set fields as a JSON-encodable object.
func (l *Ledger) ToWire() map[string]any { return wire.Render(l) }

func (l *Ledger) Currency() string       { return l.GetString("currency") }
func (l *Ledger) SetCurrency(v string)   { l.Set("currency", v) }
func (l *Ledger) Balance() float64       { return l.GetFloat("balance") }
func (l *Ledger) SetBalance(v float64)   { l.Set("balance", v) }

// Entry is one ledger entry.
type Entry struct {
	wire.Fields
}

var entrySchema = wire.Schema{
	"type":                 {},
	"amount":               {},
	"code":                 {},
	"description":          {},
	"timestamp":            {},
	"tx_type":              {},
	"scale":                {},
	"id":                   {},
	"invoice_id":           {},
	"invoice_amount":       {},
	"invoice_currency":     {},
	"transaction_currency": {},
	"buyer_fields":         {Kind: wire.KindModel, New: func() wire.Model { return &Buyer{} }},
}

func (e *Entry) Schema() wire.Schema { return entrySchema }

// NewEntryFromWire populates an Entry from a decoded JSON object.
func NewEntryFromWire(doc map[string]any) (*Entry, error) {
	e := &Entry{}
	if err := wire.Populate(e, doc); err != nil {
		return nil, err
	}
	return e, nil
}

// ToWire renders the set fields as a JSON-encodable object.
func (e *Entry) ToWire() map[string]any { return wire.Render(e) }

func (e *Entry) Type() string                    { return e.GetString("type") }
func (e *Entry) SetType(v string)                { e.Set("type", v) }
func (e *Entry) Amount() string                  { return e.GetString("amount") }
func (e *Entry) SetAmount(v string)              { e.Set("amount", v) }
func (e *Entry) Code() float64                   { return e.GetFloat("code") }
func (e *Entry) SetCode(v float64)               { e.Set("code", v) }
func (e *Entry) Description() string             { return e.GetString("description") }
func (e *Entry) SetDescription(v string)         { e.Set("description", v) }
func (e *Entry) Timestamp() string               { return e.GetString("timestamp") }
func (e *Entry) SetTimestamp(v string)           { e.Set("timestamp", v) }
func (e *Entry) TxType() string                  { return e.GetString("tx_type") }
func (e *Entry) SetTxType(v string)              { e.Set("tx_type", v) }
func (e *Entry) Scale() float64                  { return e.GetFloat("scale") }
func (e *Entry) SetScale(v float64)              { e.Set("scale", v) }
func (e *Entry) ID() string                      { return e.GetString("id") }
func (e *Entry) SetID(v string)                  { e.Set("id", v) }
func (e *Entry) InvoiceID() string               { return e.GetString("invoice_id") }
func (e *Entry) SetInvoiceID(v string)           { e.Set("invoice_id", v) }
func (e *Entry) InvoiceAmount() float64          { return e.GetFloat("invoice_amount") }
func (e *Entry) SetInvoiceAmount(v float64)      { e.Set("invoice_amount", v) }
func (e *Entry) InvoiceCurrency() string         { return e.GetString("invoice_currency") }
func (e *Entry) SetInvoiceCurrency(v string)     { e.Set("invoice_currency", v) }
func (e *Entry) TransactionCurrency() string     { return e.GetString("transaction_currency") }
func (e *Entry) SetTransactionCurrency(v string) { e.Set("transaction_currency", v) }

func (e *Entry) BuyerFields() *Buyer {
	b, _ := e.GetModel("buyer_fields").(*Buyer)
	return b
}

func (e *Entry) SetBuyerFields(b *Buyer) { e.Set("buyer_fields", b) }

// Buyer is the buyer snapshot attached to invoice-backed ledger entries.
type Buyer struct {
	wire.Fields
}

var buyerSchema = wire.Schema{
	"name":     {},
	"address1": {},
	"address2": {},
	"city":     {},
	"state":    {},
	"zip":      {},
	"country":  {},
	"phone":    {},
	"notify":   {},
	"email":    {},
}

func (b *Buyer) Schema() wire.Schema { return buyerSchema }

// ToWire renders the set fields as a JSON-encodable object.
func (b *Buyer) ToWire() map[string]any { return wire.Render(b) }

func (b *Buyer) Name() string         { return b.GetString("name") }
func (b *Buyer) SetName(v string)     { b.Set("name", v) }
func (b *Buyer) Address1() string     { return b.GetString("address1") }
func (b *Buyer) SetAddress1(v string) { b.Set("address1", v) }
func (b *Buyer) Address2() string     { return b.GetString("address2") }
func (b *Buyer) SetAddress2(v string) { b.Set("address2", v) }
func (b *Buyer) City() string         { return b.GetString("city") }
func (b *Buyer) SetCity(v string)     { b.Set("city", v) }
func (b *Buyer) State() string        { return b.GetString("state") }
func (b *Buyer) SetState(v string)    { b.Set("state", v) }
func (b *Buyer) Zip() string          { return b.GetString("zip") }
func (b *Buyer) SetZip(v string)      { b.Set("zip", v) }
func (b *Buyer) Country() string      { return b.GetString("country") }
func (b *Buyer) SetCountry(v string)  { b.Set("country", v) }
func (b *Buyer) Phone() string        { return b.GetString("phone") }
func (b *Buyer) SetPhone(v string)    { b.Set("phone", v) }
func (b *Buyer) Notify() bool         { return b.GetBool("notify") }
func (b *Buyer) SetNotify(v bool)     { b.Set("notify", v) }
func (b *Buyer) Email() string        { return b.GetString("email") }
func (b *Buyer) SetEmail(v string)    { b.Set("email", v) }
