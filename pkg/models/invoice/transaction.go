package invoice

import "github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"

// Transaction is one ledger movement recorded against an invoice (payment,
// overpayment, refund).
type Transaction struct {
	wire.Fields
}

var transactionSchema = wire.Schema{
	"amount":        {},
	"confirmations": {},
	"time":          {},
	"received_time": {},
	"txid":          {},
	"ex_rates":      {Kind: wire.KindMap},
	"output_index":  {},
}

func (t *Transaction) Schema() wire.Schema { return transactionSchema }

// ToWire renders the set fields as a JSON-encodable object.
func (t *Transaction) ToWire() map[string]any { return wire.Render(t) }

func (t *Transaction) Amount() float64            { return t.GetFloat("amount") }
func (t *Transaction) SetAmount(v float64)        { t.Set("amount", v) }
func (t *Transaction) Confirmations() float64     { return t.GetFloat("confirmations") }
func (t *Transaction) SetConfirmations(v float64) { t.Set("confirmations", v) }
func (t *Transaction) Time() string               { return t.GetString("time") }
func (t *Transaction) SetTime(v string)           { t.Set("time", v) }
func (t *Transaction) ReceivedTime() string       { return t.GetString("received_time") }
func (t *Transaction) SetReceivedTime(v string)   { t.Set("received_time", v) }
func (t *Transaction) TxID() string               { return t.GetString("txid") }
func (t *Transaction) SetTxID(v string)           { t.Set("txid", v) }
func (t *Transaction) ExRates() map[string]any    { return t.GetMap("ex_rates") }
func (t *Transaction) SetExRates(v map[string]any) { t.Set("ex_rates", v) }
func (t *Transaction) OutputIndex() float64       { return t.GetFloat("output_index") }
func (t *Transaction) SetOutputIndex(v float64)   { t.Set("output_index", v) }
