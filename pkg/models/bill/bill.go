// Package bill defines the bill resource: an emailed payment request
// composed of line items, closer to a classic invoice than the invoice
// resource itself.
package bill

import "github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"

// Bill is the bill resource.
type Bill struct {
	wire.Fields
}

var billSchema = wire.Schema{
	"id":                  {},
	"token":               {},
	"number":              {},
	"currency":            {},
	"name":                {},
	"address1":            {},
	"address2":            {},
	"city":                {},
	"state":               {},
	"zip":                 {},
	"country":             {},
	"email":               {},
	"cc":                  {},
	"phone":               {},
	"due_date":            {},
	"pass_processing_fee": {},
	"status":              {},
	"url":                 {},
	"created_date":        {},
	"delivered":           {},
	"items":               {Kind: wire.KindModelList, New: func() wire.Model { return &Item{} }},
}

func (b *Bill) Schema() wire.Schema { return billSchema }

// New returns a bill with its required fields: number, currency and the
// recipient email address.
func New(number, currency, email string) *Bill {
	b := &Bill{}
	b.Set("number", number)
	b.Set("currency", currency)
	b.Set("email", email)
	return b
}

// NewFromWire populates a Bill from a decoded JSON object.
func NewFromWire(doc map[string]any) (*Bill, error) {
	b := &Bill{}
	if err := wire.Populate(b, doc); err != nil {
		return nil, err
	}
	return b, nil
}

// ToWire renders the set fields as a JSON-encodable object.
func (b *Bill) ToWire() map[string]any { return wire.Render(b) }

func (b *Bill) ID() string                  { return b.GetString("id") }
func (b *Bill) SetID(v string)              { b.Set("id", v) }
func (b *Bill) Token() string               { return b.GetString("token") }
func (b *Bill) SetToken(v string)           { b.Set("token", v) }
func (b *Bill) Number() string              { return b.GetString("number") }
func (b *Bill) SetNumber(v string)          { b.Set("number", v) }
func (b *Bill) Currency() string            { return b.GetString("currency") }
func (b *Bill) SetCurrency(v string)        { b.Set("currency", v) }
func (b *Bill) Name() string                { return b.GetString("name") }
func (b *Bill) SetName(v string)            { b.Set("name", v) }
func (b *Bill) Address1() string            { return b.GetString("address1") }
func (b *Bill) SetAddress1(v string)        { b.Set("address1", v) }
func (b *Bill) Address2() string            { return b.GetString("address2") }
func (b *Bill) SetAddress2(v string)        { b.Set("address2", v) }
func (b *Bill) City() string                { return b.GetString("city") }
func (b *Bill) SetCity(v string)            { b.Set("city", v) }
func (b *Bill) State() string               { return b.GetString("state") }
func (b *Bill) SetState(v string)           { b.Set("state", v) }
func (b *Bill) Zip() string                 { return b.GetString("zip") }
func (b *Bill) SetZip(v string)             { b.Set("zip", v) }
func (b *Bill) Country() string             { return b.GetString("country") }
func (b *Bill) SetCountry(v string)         { b.Set("country", v) }
func (b *Bill) Email() string               { return b.GetString("email") }
func (b *Bill) SetEmail(v string)           { b.Set("email", v) }
func (b *Bill) CC() []string                { return b.GetStrings("cc") }
func (b *Bill) SetCC(v []string)            { b.Set("cc", v) }
func (b *Bill) Phone() string               { return b.GetString("phone") }
func (b *Bill) SetPhone(v string)           { b.Set("phone", v) }
func (b *Bill) DueDate() string             { return b.GetString("due_date") }
func (b *Bill) SetDueDate(v string)         { b.Set("due_date", v) }
func (b *Bill) PassProcessingFee() bool     { return b.GetBool("pass_processing_fee") }
func (b *Bill) SetPassProcessingFee(v bool) { b.Set("pass_processing_fee", v) }
func (b *Bill) Status() string              { return b.GetString("status") }
func (b *Bill) SetStatus(v string)          { b.Set("status", v) }
func (b *Bill) URL() string                 { return b.GetString("url") }
func (b *Bill) SetURL(v string)             { b.Set("url", v) }
func (b *Bill) CreatedDate() string         { return b.GetString("created_date") }
func (b *Bill) SetCreatedDate(v string)     { b.Set("created_date", v) }
func (b *Bill) Delivered() bool             { return b.GetBool("delivered") }
func (b *Bill) SetDelivered(v bool)         { b.Set("delivered", v) }

func (b *Bill) Items() []*Item {
	models := b.GetModels("items")
	if models == nil {
		return nil
	}
	out := make([]*Item, 0, len(models))
	for _, m := range models {
		if it, ok := m.(*Item); ok {
			out = append(out, it)
		}
	}
	return out
}

func (b *Bill) SetItems(items []*Item) {
	models := make([]wire.Model, len(items))
	for n, it := range items {
		models[n] = it
	}
	b.Set("items", models)
}

// Item is one line of a bill.
type Item struct {
	wire.Fields
}

var itemSchema = wire.Schema{
	"id":          {},
	"description": {},
	"price":       {},
	"quantity":    {},
}

func (i *Item) Schema() wire.Schema { return itemSchema }

// NewItem returns a bill line with description, unit price and quantity set.
func NewItem(description string, price float64, quantity float64) *Item {
	i := &Item{}
	i.Set("description", description)
	i.Set("price", price)
	i.Set("quantity", quantity)
	return i
}

// ToWire renders the set fields as a JSON-encodable object.
func (i *Item) ToWire() map[string]any { return wire.Render(i) }

func (i *Item) ID() string             { return i.GetString("id") }
func (i *Item) SetID(v string)         { i.Set("id", v) }
func (i *Item) Description() string    { return i.GetString("description") }
func (i *Item) SetDescription(v string) { i.Set("description", v) }
func (i *Item) Price() float64         { return i.GetFloat("price") }
func (i *Item) SetPrice(v float64)     { i.Set("price", v) }
func (i *Item) Quantity() float64      { return i.GetFloat("quantity") }
func (i *Item) SetQuantity(v float64)  { i.Set("quantity", v) }
