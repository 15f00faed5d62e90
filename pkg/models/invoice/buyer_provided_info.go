package invoice

import "github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"

// BuyerProvidedInfo holds the information the buyer entered on the payment
// page. It is set by the API, never by the merchant.
type BuyerProvidedInfo struct {
	wire.Fields
}

var buyerProvidedInfoSchema = wire.Schema{
	"name":                          {},
	"phone_number":                  {},
	"selected_wallet":               {},
	"email_address":                 {},
	"selected_transaction_currency": {},
	"sms":                           {},
	"sms_verified":                  {},
}

func (b *BuyerProvidedInfo) Schema() wire.Schema { return buyerProvidedInfoSchema }

// NewBuyerProvidedInfoFromWire populates a BuyerProvidedInfo from a decoded
// JSON object.
func NewBuyerProvidedInfoFromWire(doc map[string]any) (*BuyerProvidedInfo, error) {
	b := &BuyerProvidedInfo{}
	if err := wire.Populate(b, doc); err != nil {
		return nil, err
	}
	return b, nil
}

// ToWire renders the set fields as a JSON-encodable object.
func (b *BuyerProvidedInfo) ToWire() map[string]any { return wire.Render(b) }

func (b *BuyerProvidedInfo) Name() string                   { return b.GetString("name") }
func (b *BuyerProvidedInfo) SetName(v string)               { b.Set("name", v) }
func (b *BuyerProvidedInfo) PhoneNumber() string            { return b.GetString("phone_number") }
func (b *BuyerProvidedInfo) SetPhoneNumber(v string)        { b.Set("phone_number", v) }
func (b *BuyerProvidedInfo) SelectedWallet() string         { return b.GetString("selected_wallet") }
func (b *BuyerProvidedInfo) SetSelectedWallet(v string)     { b.Set("selected_wallet", v) }
func (b *BuyerProvidedInfo) EmailAddress() string           { return b.GetString("email_address") }
func (b *BuyerProvidedInfo) SetEmailAddress(v string)       { b.Set("email_address", v) }
func (b *BuyerProvidedInfo) SMS() string                    { return b.GetString("sms") }
func (b *BuyerProvidedInfo) SetSMS(v string)                { b.Set("sms", v) }
func (b *BuyerProvidedInfo) SMSVerified() bool              { return b.GetBool("sms_verified") }
func (b *BuyerProvidedInfo) SetSMSVerified(v bool)          { b.Set("sms_verified", v) }

func (b *BuyerProvidedInfo) SelectedTransactionCurrency() string {
	return b.GetString("selected_transaction_currency")
}

func (b *BuyerProvidedInfo) SetSelectedTransactionCurrency(v string) {
	b.Set("selected_transaction_currency", v)
}
