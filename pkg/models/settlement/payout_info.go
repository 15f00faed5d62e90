package settlement

import "github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"

// PayoutInfo is the bank destination the settlement is paid out to.
type PayoutInfo struct {
	wire.Fields
}

var payoutInfoSchema = wire.Schema{
	"label":                  {},
	"bank_country":           {},
	"name":                   {},
	"bank":                   {},
	"swift":                  {},
	"address":                {},
	"city":                   {},
	"postal":                 {},
	"sort":                   {},
	"wire":                   {},
	"bank_name":              {},
	"bank_address":           {},
	"iban":                   {},
	"additional_information": {},
	"account_holder_name":    {},
	"account":                {},
	"routing":                {},
	"merchant_ein":           {},
	"account_holder_address": {},
	"currency":               {},
}

func (p *PayoutInfo) Schema() wire.Schema { return payoutInfoSchema }

// ToWire renders the set fields as a JSON-encodable object.
func (p *PayoutInfo) ToWire() map[string]any { return wire.Render(p) }

func (p *PayoutInfo) Label() string                     { return p.GetString("label") }
func (p *PayoutInfo) SetLabel(v string)                 { p.Set("label", v) }
func (p *PayoutInfo) BankCountry() string               { return p.GetString("bank_country") }
func (p *PayoutInfo) SetBankCountry(v string)           { p.Set("bank_country", v) }
func (p *PayoutInfo) Name() string                      { return p.GetString("name") }
func (p *PayoutInfo) SetName(v string)                  { p.Set("name", v) }
func (p *PayoutInfo) Bank() string                      { return p.GetString("bank") }
func (p *PayoutInfo) SetBank(v string)                  { p.Set("bank", v) }
func (p *PayoutInfo) Swift() string                     { return p.GetString("swift") }
func (p *PayoutInfo) SetSwift(v string)                 { p.Set("swift", v) }
func (p *PayoutInfo) Address() string                   { return p.GetString("address") }
func (p *PayoutInfo) SetAddress(v string)               { p.Set("address", v) }
func (p *PayoutInfo) City() string                      { return p.GetString("city") }
func (p *PayoutInfo) SetCity(v string)                  { p.Set("city", v) }
func (p *PayoutInfo) Postal() string                    { return p.GetString("postal") }
func (p *PayoutInfo) SetPostal(v string)                { p.Set("postal", v) }
func (p *PayoutInfo) Sort() string                      { return p.GetString("sort") }
func (p *PayoutInfo) SetSort(v string)                  { p.Set("sort", v) }
func (p *PayoutInfo) Wire() bool                        { return p.GetBool("wire") }
func (p *PayoutInfo) SetWire(v bool)                    { p.Set("wire", v) }
func (p *PayoutInfo) BankName() string                  { return p.GetString("bank_name") }
func (p *PayoutInfo) SetBankName(v string)              { p.Set("bank_name", v) }
func (p *PayoutInfo) BankAddress() string               { return p.GetString("bank_address") }
func (p *PayoutInfo) SetBankAddress(v string)           { p.Set("bank_address", v) }
func (p *PayoutInfo) IBAN() string                      { return p.GetString("iban") }
func (p *PayoutInfo) SetIBAN(v string)                  { p.Set("iban", v) }
func (p *PayoutInfo) AdditionalInformation() string     { return p.GetString("additional_information") }
func (p *PayoutInfo) SetAdditionalInformation(v string) { p.Set("additional_information", v) }
func (p *PayoutInfo) AccountHolderName() string         { return p.GetString("account_holder_name") }
func (p *PayoutInfo) SetAccountHolderName(v string)     { p.Set("account_holder_name", v) }
func (p *PayoutInfo) Account() string                   { return p.GetString("account") }
func (p *PayoutInfo) SetAccount(v string)               { p.Set("account", v) }
func (p *PayoutInfo) Routing() string                   { return p.GetString("routing") }
func (p *PayoutInfo) SetRouting(v string)               { p.Set("routing", v) }
func (p *PayoutInfo) MerchantEIN() string               { return p.GetString("merchant_ein") }
func (p *PayoutInfo) SetMerchantEIN(v string)           { p.Set("merchant_ein", v) }
func (p *PayoutInfo) AccountHolderAddress() string      { return p.GetString("account_holder_address") }
func (p *PayoutInfo) SetAccountHolderAddress(v string)  { p.Set("account_holder_address", v) }
func (p *PayoutInfo) Currency() string                  { return p.GetString("currency") }
func (p *PayoutInfo) SetCurrency(v string)              { p.Set("currency", v) }

// WithHoldings is one amount withheld from a settlement, e.g. pending
// refund coverage.
type WithHoldings struct {
	wire.Fields
}

var withHoldingsSchema = wire.Schema{
	"amount":       {},
	"code":         {},
	"description":  {},
	"notes":        {},
	"label":        {},
	"bank_country": {},
}

func (w *WithHoldings) Schema() wire.Schema { return withHoldingsSchema }

// ToWire renders the set fields as a JSON-encodable object.
func (w *WithHoldings) ToWire() map[string]any { return wire.Render(w) }

func (w *WithHoldings) Amount() float64        { return w.GetFloat("amount") }
func (w *WithHoldings) SetAmount(v float64)    { w.Set("amount", v) }
func (w *WithHoldings) Code() float64          { return w.GetFloat("code") }
func (w *WithHoldings) SetCode(v float64)      { w.Set("code", v) }
func (w *WithHoldings) Description() string    { return w.GetString("description") }
func (w *WithHoldings) SetDescription(v string) { w.Set("description", v) }
func (w *WithHoldings) Notes() string          { return w.GetString("notes") }
func (w *WithHoldings) SetNotes(v string)      { w.Set("notes", v) }
func (w *WithHoldings) Label() string          { return w.GetString("label") }
func (w *WithHoldings) SetLabel(v string)      { w.Set("label", v) }
func (w *WithHoldings) BankCountry() string    { return w.GetString("bank_country") }
func (w *WithHoldings) SetBankCountry(v string) { w.Set("bank_country", v) }
