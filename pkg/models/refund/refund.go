// Package refund defines the refund resource. Refunds are requested against
// a paid invoice and carry their own lifecycle (preview, created, pending,
// success, failure).
package refund

import "github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"

// Refund is the refund resource.
type Refund struct {
	wire.Fields
}

var refundSchema = wire.Schema{
	"guid":                      {},
	"id":                        {},
	"token":                     {},
	"invoice_id":                {},
	"reference":                 {},
	"amount":                    {},
	"currency":                  {},
	"transaction_currency":      {},
	"transaction_amount":        {},
	"transaction_refund_fee":    {},
	"refund_fee":                {},
	"immediate":                 {},
	"buyer_pays_refund_fee":     {},
	"request_date":              {},
	"last_refund_notification":  {},
	"status":                    {},
	"refund_address":            {},
	"support_request":           {},
	"notification_url":          {},
}

func (r *Refund) Schema() wire.Schema { return refundSchema }

// New returns a refund request for the given invoice and amount.
func New(invoiceID string, amount float64, currency string) *Refund {
	r := &Refund{}
	r.Set("invoice_id", invoiceID)
	r.Set("amount", amount)
	r.Set("currency", currency)
	return r
}

// NewFromWire populates a Refund from a decoded JSON object.
func NewFromWire(doc map[string]any) (*Refund, error) {
	r := &Refund{}
	if err := wire.Populate(r, doc); err != nil {
		return nil, err
	}
	return r, nil
}

// ToWire renders the set fields as a JSON-encodable object.
func (r *Refund) ToWire() map[string]any { return wire.Render(r) }

func (r *Refund) GUID() string                     { return r.GetString("guid") }
func (r *Refund) SetGUID(v string)                 { r.Set("guid", v) }
func (r *Refund) ID() string                       { return r.GetString("id") }
func (r *Refund) SetID(v string)                   { r.Set("id", v) }
func (r *Refund) Token() string                    { return r.GetString("token") }
func (r *Refund) SetToken(v string)                { r.Set("token", v) }
func (r *Refund) InvoiceID() string                { return r.GetString("invoice_id") }
func (r *Refund) SetInvoiceID(v string)            { r.Set("invoice_id", v) }
func (r *Refund) Reference() string                { return r.GetString("reference") }
func (r *Refund) SetReference(v string)            { r.Set("reference", v) }
func (r *Refund) Amount() float64                  { return r.GetFloat("amount") }
func (r *Refund) SetAmount(v float64)              { r.Set("amount", v) }
func (r *Refund) Currency() string                 { return r.GetString("currency") }
func (r *Refund) SetCurrency(v string)             { r.Set("currency", v) }
func (r *Refund) TransactionCurrency() string      { return r.GetString("transaction_currency") }
func (r *Refund) SetTransactionCurrency(v string)  { r.Set("transaction_currency", v) }
func (r *Refund) TransactionAmount() float64       { return r.GetFloat("transaction_amount") }
func (r *Refund) SetTransactionAmount(v float64)   { r.Set("transaction_amount", v) }
func (r *Refund) TransactionRefundFee() float64    { return r.GetFloat("transaction_refund_fee") }
func (r *Refund) SetTransactionRefundFee(v float64) { r.Set("transaction_refund_fee", v) }
func (r *Refund) RefundFee() float64               { return r.GetFloat("refund_fee") }
func (r *Refund) SetRefundFee(v float64)           { r.Set("refund_fee", v) }
func (r *Refund) Immediate() bool                  { return r.GetBool("immediate") }
func (r *Refund) SetImmediate(v bool)              { r.Set("immediate", v) }
func (r *Refund) BuyerPaysRefundFee() bool         { return r.GetBool("buyer_pays_refund_fee") }
func (r *Refund) SetBuyerPaysRefundFee(v bool)     { r.Set("buyer_pays_refund_fee", v) }
func (r *Refund) RequestDate() string              { return r.GetString("request_date") }
func (r *Refund) SetRequestDate(v string)          { r.Set("request_date", v) }
func (r *Refund) LastRefundNotification() string   { return r.GetString("last_refund_notification") }
func (r *Refund) SetLastRefundNotification(v string) { r.Set("last_refund_notification", v) }
func (r *Refund) Status() string                   { return r.GetString("status") }
func (r *Refund) SetStatus(v string)               { r.Set("status", v) }
func (r *Refund) RefundAddress() string            { return r.GetString("refund_address") }
func (r *Refund) SetRefundAddress(v string)        { r.Set("refund_address", v) }
func (r *Refund) SupportRequest() string           { return r.GetString("support_request") }
func (r *Refund) SetSupportRequest(v string)       { r.Set("support_request", v) }
func (r *Refund) NotificationURL() string          { return r.GetString("notification_url") }
func (r *Refund) SetNotificationURL(v string)      { r.Set("notification_url", v) }
