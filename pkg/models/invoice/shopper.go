package invoice

import "github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"

// Shopper identifies a logged-in BitPay shopper account associated with the
// payment, when there is one.
type Shopper struct {
	wire.Fields
}

var shopperSchema = wire.Schema{
	"user": {},
}

func (s *Shopper) Schema() wire.Schema { return shopperSchema }

// ToWire renders the set fields as a JSON-encodable object.
func (s *Shopper) ToWire() map[string]any { return wire.Render(s) }

func (s *Shopper) User() string     { return s.GetString("user") }
func (s *Shopper) SetUser(v string) { s.Set("user", v) }
