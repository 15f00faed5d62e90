package settlement

import "github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"

// LedgerEntry is one ledger movement included in a settlement, with invoice
// detail attached when the entry settles an invoice.
type LedgerEntry struct {
	wire.Fields
}

var ledgerEntrySchema = wire.Schema{
	"code":         {},
	"invoice_id":   {},
	"amount":       {},
	"timestamp":    {},
	"description":  {},
	"reference":    {},
	"invoice_data": {Kind: wire.KindModel, New: func() wire.Model { return &InvoiceData{} }},
}

func (e *LedgerEntry) Schema() wire.Schema { return ledgerEntrySchema }

// ToWire renders the set fields as a JSON-encodable object.
func (e *LedgerEntry) ToWire() map[string]any { return wire.Render(e) }

func (e *LedgerEntry) Code() float64          { return e.GetFloat("code") }
func (e *LedgerEntry) SetCode(v float64)      { e.Set("code", v) }
func (e *LedgerEntry) InvoiceID() string      { return e.GetString("invoice_id") }
func (e *LedgerEntry) SetInvoiceID(v string)  { e.Set("invoice_id", v) }
func (e *LedgerEntry) Amount() float64        { return e.GetFloat("amount") }
func (e *LedgerEntry) SetAmount(v float64)    { e.Set("amount", v) }
func (e *LedgerEntry) Timestamp() string      { return e.GetString("timestamp") }
func (e *LedgerEntry) SetTimestamp(v string)  { e.Set("timestamp", v) }
func (e *LedgerEntry) Description() string    { return e.GetString("description") }
func (e *LedgerEntry) SetDescription(v string) { e.Set("description", v) }
func (e *LedgerEntry) Reference() string      { return e.GetString("reference") }
func (e *LedgerEntry) SetReference(v string)  { e.Set("reference", v) }

func (e *LedgerEntry) InvoiceData() *InvoiceData {
	d, _ := e.GetModel("invoice_data").(*InvoiceData)
	return d
}

func (e *LedgerEntry) SetInvoiceData(d *InvoiceData) { e.Set("invoice_data", d) }

// InvoiceData is the invoice snapshot embedded in a settlement ledger entry.
type InvoiceData struct {
	wire.Fields
}

var invoiceDataSchema = wire.Schema{
	"order_id":             {},
	"date":                 {},
	"price":                {},
	"currency":             {},
	"transaction_currency": {},
	"overpaid_amount":      {},
	"payout_percentage":    {Kind: wire.KindMap},
	"refund_info":          {Kind: wire.KindModel, New: func() wire.Model { return &RefundInfo{} }},
}

func (d *InvoiceData) Schema() wire.Schema { return invoiceDataSchema }

// ToWire renders the set fields as a JSON-encodable object.
func (d *InvoiceData) ToWire() map[string]any { return wire.Render(d) }

func (d *InvoiceData) OrderID() string                  { return d.GetString("order_id") }
func (d *InvoiceData) SetOrderID(v string)              { d.Set("order_id", v) }
func (d *InvoiceData) Date() string                     { return d.GetString("date") }
func (d *InvoiceData) SetDate(v string)                 { d.Set("date", v) }
func (d *InvoiceData) Price() float64                   { return d.GetFloat("price") }
func (d *InvoiceData) SetPrice(v float64)               { d.Set("price", v) }
func (d *InvoiceData) Currency() string                 { return d.GetString("currency") }
func (d *InvoiceData) SetCurrency(v string)             { d.Set("currency", v) }
func (d *InvoiceData) TransactionCurrency() string      { return d.GetString("transaction_currency") }
func (d *InvoiceData) SetTransactionCurrency(v string)  { d.Set("transaction_currency", v) }
func (d *InvoiceData) OverpaidAmount() float64          { return d.GetFloat("overpaid_amount") }
func (d *InvoiceData) SetOverpaidAmount(v float64)      { d.Set("overpaid_amount", v) }
func (d *InvoiceData) PayoutPercentage() map[string]any { return d.GetMap("payout_percentage") }
func (d *InvoiceData) SetPayoutPercentage(v map[string]any) { d.Set("payout_percentage", v) }

func (d *InvoiceData) RefundInfo() *RefundInfo {
	r, _ := d.GetModel("refund_info").(*RefundInfo)
	return r
}

func (d *InvoiceData) SetRefundInfo(r *RefundInfo) { d.Set("refund_info", r) }

// RefundInfo describes a refund executed against the settled invoice. The
// amounts map is keyed by currency code and deliberately stays a raw map.
type RefundInfo struct {
	wire.Fields
}

var refundInfoSchema = wire.Schema{
	"support_request": {},
	"currency":        {},
	"amounts":         {Kind: wire.KindMap},
}

func (r *RefundInfo) Schema() wire.Schema { return refundInfoSchema }

// ToWire renders the set fields as a JSON-encodable object.
func (r *RefundInfo) ToWire() map[string]any { return wire.Render(r) }

func (r *RefundInfo) SupportRequest() string        { return r.GetString("support_request") }
func (r *RefundInfo) SetSupportRequest(v string)    { r.Set("support_request", v) }
func (r *RefundInfo) Currency() string              { return r.GetString("currency") }
func (r *RefundInfo) SetCurrency(v string)          { r.Set("currency", v) }
func (r *RefundInfo) Amounts() map[string]any       { return r.GetMap("amounts") }
func (r *RefundInfo) SetAmounts(v map[string]any)   { r.Set("amounts", v) }
