package invoice

import "github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"

// ItemizedDetails is one line of the itemized breakdown shown to the buyer.
type ItemizedDetails struct {
	wire.Fields
}

var itemizedDetailsSchema = wire.Schema{
	"amount":      {},
	"description": {},
	"is_fee":      {},
}

func (d *ItemizedDetails) Schema() wire.Schema { return itemizedDetailsSchema }

// ToWire renders the set fields as a JSON-encodable object.
func (d *ItemizedDetails) ToWire() map[string]any { return wire.Render(d) }

func (d *ItemizedDetails) Amount() float64        { return d.GetFloat("amount") }
func (d *ItemizedDetails) SetAmount(v float64)    { d.Set("amount", v) }
func (d *ItemizedDetails) Description() string    { return d.GetString("description") }
func (d *ItemizedDetails) SetDescription(v string) { d.Set("description", v) }
func (d *ItemizedDetails) IsFee() bool            { return d.GetBool("is_fee") }
func (d *ItemizedDetails) SetIsFee(v bool)        { d.Set("is_fee", v) }
