package invoice

import "github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"

// Buyer carries the buyer details a merchant attaches when creating an
// invoice. All fields are optional.
type Buyer struct {
	wire.Fields
}

var buyerSchema = wire.Schema{
	"name":        {},
	"address1":    {},
	"address2":    {},
	"locality":    {},
	"region":      {},
	"postal_code": {},
	"country":     {},
	"email":       {},
	"phone":       {},
	"notify":      {},
}

func (b *Buyer) Schema() wire.Schema { return buyerSchema }

// NewBuyerFromWire populates a Buyer from a decoded JSON object.
func NewBuyerFromWire(doc map[string]any) (*Buyer, error) {
	b := &Buyer{}
	if err := wire.Populate(b, doc); err != nil {
		return nil, err
	}
	return b, nil
}

// ToWire renders the set fields as a JSON-encodable object.
func (b *Buyer) ToWire() map[string]any { return wire.Render(b) }

func (b *Buyer) Name() string            { return b.GetString("name") }
func (b *Buyer) SetName(v string)        { b.Set("name", v) }
func (b *Buyer) Address1() string        { return b.GetString("address1") }
func (b *Buyer) SetAddress1(v string)    { b.Set("address1", v) }
func (b *Buyer) Address2() string        { return b.GetString("address2") }
func (b *Buyer) SetAddress2(v string)    { b.Set("address2", v) }
func (b *Buyer) Locality() string        { return b.GetString("locality") }
func (b *Buyer) SetLocality(v string)    { b.Set("locality", v) }
func (b *Buyer) Region() string          { return b.GetString("region") }
func (b *Buyer) SetRegion(v string)      { b.Set("region", v) }
func (b *Buyer) PostalCode() string      { return b.GetString("postal_code") }
func (b *Buyer) SetPostalCode(v string)  { b.Set("postal_code", v) }
func (b *Buyer) Country() string         { return b.GetString("country") }
func (b *Buyer) SetCountry(v string)     { b.Set("country", v) }
func (b *Buyer) Email() string           { return b.GetString("email") }
func (b *Buyer) SetEmail(v string)       { b.Set("email", v) }
func (b *Buyer) Phone() string           { return b.GetString("phone") }
func (b *Buyer) SetPhone(v string)       { b.Set("phone", v) }
func (b *Buyer) Notify() bool            { return b.GetBool("notify") }
func (b *Buyer) SetNotify(v bool)        { b.Set("notify", v) }
