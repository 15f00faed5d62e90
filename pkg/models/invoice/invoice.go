// Package invoice defines the invoice resource and its nested models. An
// Invoice is created by the merchant with price, currency and optional
// buyer/notification settings; the API fills in payment state, totals per
// settlement currency, and what the buyer provided on the payment page.
package invoice

import "github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"

// Invoice is the invoice resource. Fields the merchant never sets (status,
// totals, transactions) only appear after population from an API response.
type Invoice struct {
	wire.Fields
}

var invoiceSchema = wire.Schema{
	// merchant-set
	"guid":                   {},
	"token":                  {},
	"price":                  {},
	"currency":               {},
	"order_id":               {},
	"item_desc":              {},
	"item_code":              {},
	"notification_email":     {},
	"notification_url":       {},
	"redirect_url":           {},
	"close_url":              {},
	"pos_data":               {},
	"transaction_speed":      {},
	"full_notifications":     {},
	"extended_notifications": {},
	"physical":               {},
	"payment_currencies":     {},
	"acceptance_window":      {},
	"auto_redirect":          {},
	"buyer":                  {Kind: wire.KindModel, New: func() wire.Model { return &Buyer{} }},
	"itemized_details":       {Kind: wire.KindModelList, New: func() wire.Model { return &ItemizedDetails{} }},

	// API-set
	"id":                             {},
	"url":                            {},
	"status":                         {},
	"low_fee_detected":               {},
	"invoice_time":                   {},
	"expiration_time":                {},
	"current_time":                   {},
	"exception_status":               {},
	"target_confirmations":           {},
	"refund_address_request_pending": {},
	"buyer_provided_email":           {},
	"bill_id":                        {},
	"is_cancelled":                   {},
	"amount_paid":                    {},
	"display_amount_paid":            {},
	"transaction_currency":           {},
	"buyer_provided_info":            {Kind: wire.KindModel, New: func() wire.Model { return &BuyerProvidedInfo{} }},
	"miner_fees":                     {Kind: wire.KindModel, New: func() wire.Model { return &MinerFees{} }},
	"shopper":                        {Kind: wire.KindModel, New: func() wire.Model { return &Shopper{} }},
	"transactions":                   {Kind: wire.KindModelList, New: func() wire.Model { return &Transaction{} }},
	"exchange_rates":                 {Kind: wire.KindMap},
	"payment_subtotals":              {Kind: wire.KindMap},
	"payment_totals":                 {Kind: wire.KindMap},
	"payment_display_totals":         {Kind: wire.KindMap},
	"payment_codes":                  {Kind: wire.KindMap},
}

func (i *Invoice) Schema() wire.Schema { return invoiceSchema }

// New returns an invoice with price and currency set, the two fields every
// create call requires.
func New(price float64, currency string) *Invoice {
	i := &Invoice{}
	i.Set("price", price)
	i.Set("currency", currency)
	return i
}

// NewFromWire populates an Invoice from a decoded JSON object.
func NewFromWire(doc map[string]any) (*Invoice, error) {
	i := &Invoice{}
	if err := wire.Populate(i, doc); err != nil {
		return nil, err
	}
	return i, nil
}

// ToWire renders the set fields as a JSON-encodable object.
func (i *Invoice) ToWire() map[string]any { return wire.Render(i) }

// Merchant-set fields.

func (i *Invoice) GUID() string                   { return i.GetString("guid") }
func (i *Invoice) SetGUID(v string)               { i.Set("guid", v) }
func (i *Invoice) Token() string                  { return i.GetString("token") }
func (i *Invoice) SetToken(v string)              { i.Set("token", v) }
func (i *Invoice) Price() float64                 { return i.GetFloat("price") }
func (i *Invoice) SetPrice(v float64)             { i.Set("price", v) }
func (i *Invoice) Currency() string               { return i.GetString("currency") }
func (i *Invoice) SetCurrency(v string)           { i.Set("currency", v) }
func (i *Invoice) OrderID() string                { return i.GetString("order_id") }
func (i *Invoice) SetOrderID(v string)            { i.Set("order_id", v) }
func (i *Invoice) ItemDesc() string               { return i.GetString("item_desc") }
func (i *Invoice) SetItemDesc(v string)           { i.Set("item_desc", v) }
func (i *Invoice) ItemCode() string               { return i.GetString("item_code") }
func (i *Invoice) SetItemCode(v string)           { i.Set("item_code", v) }
func (i *Invoice) NotificationEmail() string      { return i.GetString("notification_email") }
func (i *Invoice) SetNotificationEmail(v string)  { i.Set("notification_email", v) }
func (i *Invoice) NotificationURL() string        { return i.GetString("notification_url") }
func (i *Invoice) SetNotificationURL(v string)    { i.Set("notification_url", v) }
func (i *Invoice) RedirectURL() string            { return i.GetString("redirect_url") }
func (i *Invoice) SetRedirectURL(v string)        { i.Set("redirect_url", v) }
func (i *Invoice) CloseURL() string               { return i.GetString("close_url") }
func (i *Invoice) SetCloseURL(v string)           { i.Set("close_url", v) }
func (i *Invoice) PosData() string                { return i.GetString("pos_data") }
func (i *Invoice) SetPosData(v string)            { i.Set("pos_data", v) }
func (i *Invoice) TransactionSpeed() string       { return i.GetString("transaction_speed") }
func (i *Invoice) SetTransactionSpeed(v string)   { i.Set("transaction_speed", v) }
func (i *Invoice) FullNotifications() bool        { return i.GetBool("full_notifications") }
func (i *Invoice) SetFullNotifications(v bool)    { i.Set("full_notifications", v) }
func (i *Invoice) ExtendedNotifications() bool    { return i.GetBool("extended_notifications") }
func (i *Invoice) SetExtendedNotifications(v bool) { i.Set("extended_notifications", v) }
func (i *Invoice) Physical() bool                 { return i.GetBool("physical") }
func (i *Invoice) SetPhysical(v bool)             { i.Set("physical", v) }
func (i *Invoice) PaymentCurrencies() []string    { return i.GetStrings("payment_currencies") }
func (i *Invoice) SetPaymentCurrencies(v []string) { i.Set("payment_currencies", v) }
func (i *Invoice) AcceptanceWindow() float64      { return i.GetFloat("acceptance_window") }
func (i *Invoice) SetAcceptanceWindow(v float64)  { i.Set("acceptance_window", v) }
func (i *Invoice) AutoRedirect() bool             { return i.GetBool("auto_redirect") }
func (i *Invoice) SetAutoRedirect(v bool)         { i.Set("auto_redirect", v) }

func (i *Invoice) Buyer() *Buyer {
	b, _ := i.GetModel("buyer").(*Buyer)
	return b
}

func (i *Invoice) SetBuyer(b *Buyer) { i.Set("buyer", b) }

func (i *Invoice) ItemizedDetails() []*ItemizedDetails {
	models := i.GetModels("itemized_details")
	if models == nil {
		return nil
	}
	out := make([]*ItemizedDetails, 0, len(models))
	for _, m := range models {
		if d, ok := m.(*ItemizedDetails); ok {
			out = append(out, d)
		}
	}
	return out
}

func (i *Invoice) SetItemizedDetails(details []*ItemizedDetails) {
	models := make([]wire.Model, len(details))
	for n, d := range details {
		models[n] = d
	}
	i.Set("itemized_details", models)
}

// API-set fields.

func (i *Invoice) ID() string                       { return i.GetString("id") }
func (i *Invoice) SetID(v string)                   { i.Set("id", v) }
func (i *Invoice) URL() string                      { return i.GetString("url") }
func (i *Invoice) SetURL(v string)                  { i.Set("url", v) }
func (i *Invoice) Status() string                   { return i.GetString("status") }
func (i *Invoice) SetStatus(v string)               { i.Set("status", v) }
func (i *Invoice) LowFeeDetected() bool             { return i.GetBool("low_fee_detected") }
func (i *Invoice) SetLowFeeDetected(v bool)         { i.Set("low_fee_detected", v) }
func (i *Invoice) InvoiceTime() float64             { return i.GetFloat("invoice_time") }
func (i *Invoice) SetInvoiceTime(v float64)         { i.Set("invoice_time", v) }
func (i *Invoice) ExpirationTime() float64          { return i.GetFloat("expiration_time") }
func (i *Invoice) SetExpirationTime(v float64)      { i.Set("expiration_time", v) }
func (i *Invoice) CurrentTime() float64             { return i.GetFloat("current_time") }
func (i *Invoice) SetCurrentTime(v float64)         { i.Set("current_time", v) }
func (i *Invoice) TargetConfirmations() float64     { return i.GetFloat("target_confirmations") }
func (i *Invoice) SetTargetConfirmations(v float64) { i.Set("target_confirmations", v) }
func (i *Invoice) BuyerProvidedEmail() string       { return i.GetString("buyer_provided_email") }
func (i *Invoice) SetBuyerProvidedEmail(v string)   { i.Set("buyer_provided_email", v) }
func (i *Invoice) BillID() string                   { return i.GetString("bill_id") }
func (i *Invoice) SetBillID(v string)               { i.Set("bill_id", v) }
func (i *Invoice) IsCancelled() bool                { return i.GetBool("is_cancelled") }
func (i *Invoice) SetIsCancelled(v bool)            { i.Set("is_cancelled", v) }
func (i *Invoice) AmountPaid() float64              { return i.GetFloat("amount_paid") }
func (i *Invoice) SetAmountPaid(v float64)          { i.Set("amount_paid", v) }
func (i *Invoice) DisplayAmountPaid() string        { return i.GetString("display_amount_paid") }
func (i *Invoice) SetDisplayAmountPaid(v string)    { i.Set("display_amount_paid", v) }
func (i *Invoice) TransactionCurrency() string      { return i.GetString("transaction_currency") }
func (i *Invoice) SetTransactionCurrency(v string)  { i.Set("transaction_currency", v) }

// ExceptionStatus is false on the wire until an exception occurs, then a
// string like "paidPartial"; hence the untyped accessor.
func (i *Invoice) ExceptionStatus() any     { v, _ := i.Get("exception_status"); return v }
func (i *Invoice) SetExceptionStatus(v any) { i.Set("exception_status", v) }

func (i *Invoice) RefundAddressRequestPending() bool {
	return i.GetBool("refund_address_request_pending")
}

func (i *Invoice) SetRefundAddressRequestPending(v bool) {
	i.Set("refund_address_request_pending", v)
}

func (i *Invoice) BuyerProvidedInfo() *BuyerProvidedInfo {
	b, _ := i.GetModel("buyer_provided_info").(*BuyerProvidedInfo)
	return b
}

func (i *Invoice) SetBuyerProvidedInfo(b *BuyerProvidedInfo) { i.Set("buyer_provided_info", b) }

func (i *Invoice) MinerFees() *MinerFees {
	m, _ := i.GetModel("miner_fees").(*MinerFees)
	return m
}

func (i *Invoice) SetMinerFees(m *MinerFees) { i.Set("miner_fees", m) }

func (i *Invoice) Shopper() *Shopper {
	s, _ := i.GetModel("shopper").(*Shopper)
	return s
}

func (i *Invoice) SetShopper(s *Shopper) { i.Set("shopper", s) }

func (i *Invoice) Transactions() []*Transaction {
	models := i.GetModels("transactions")
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

func (i *Invoice) SetTransactions(txs []*Transaction) {
	models := make([]wire.Model, len(txs))
	for n, tx := range txs {
		models[n] = tx
	}
	i.Set("transactions", models)
}

func (i *Invoice) ExchangeRates() map[string]any           { return i.GetMap("exchange_rates") }
func (i *Invoice) SetExchangeRates(v map[string]any)       { i.Set("exchange_rates", v) }
func (i *Invoice) PaymentSubtotals() map[string]any        { return i.GetMap("payment_subtotals") }
func (i *Invoice) SetPaymentSubtotals(v map[string]any)    { i.Set("payment_subtotals", v) }
func (i *Invoice) PaymentTotals() map[string]any           { return i.GetMap("payment_totals") }
func (i *Invoice) SetPaymentTotals(v map[string]any)       { i.Set("payment_totals", v) }
func (i *Invoice) PaymentDisplayTotals() map[string]any    { return i.GetMap("payment_display_totals") }
func (i *Invoice) SetPaymentDisplayTotals(v map[string]any) { i.Set("payment_display_totals", v) }
func (i *Invoice) PaymentCodes() map[string]any            { return i.GetMap("payment_codes") }
func (i *Invoice) SetPaymentCodes(v map[string]any)        { i.Set("payment_codes", v) }
