package payout

import "github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"

// Recipient is a payout recipient: an email invitation that becomes an
// active recipient once the person completes BitPay onboarding.
type Recipient struct {
	wire.Fields
}

var recipientSchema = wire.Schema{
	"email":            {},
	"label":            {},
	"notification_url": {},
	"status":           {},
	"id":               {},
	"shopper_id":       {},
	"token":            {},
	"guid":             {},
}

func (r *Recipient) Schema() wire.Schema { return recipientSchema }

// NewRecipient returns a recipient invitation for email.
func NewRecipient(email string) *Recipient {
	r := &Recipient{}
	r.Set("email", email)
	return r
}

// NewRecipientFromWire populates a Recipient from a decoded JSON object.
func NewRecipientFromWire(doc map[string]any) (*Recipient, error) {
	r := &Recipient{}
	if err := wire.Populate(r, doc); err != nil {
		return nil, err
	}
	return r, nil
}

// ToWire renders the set fields as a JSON-encodable object.
func (r *Recipient) ToWire() map[string]any { return wire.Render(r) }

func (r *Recipient) Email() string              { return r.GetString("email") }
func (r *Recipient) SetEmail(v string)          { r.Set("email", v) }
func (r *Recipient) Label() string              { return r.GetString("label") }
func (r *Recipient) SetLabel(v string)          { r.Set("label", v) }
func (r *Recipient) NotificationURL() string    { return r.GetString("notification_url") }
func (r *Recipient) SetNotificationURL(v string) { r.Set("notification_url", v) }
func (r *Recipient) Status() string             { return r.GetString("status") }
func (r *Recipient) SetStatus(v string)         { r.Set("status", v) }
func (r *Recipient) ID() string                 { return r.GetString("id") }
func (r *Recipient) SetID(v string)             { r.Set("id", v) }
func (r *Recipient) ShopperID() string          { return r.GetString("shopper_id") }
func (r *Recipient) SetShopperID(v string)      { r.Set("shopper_id", v) }
func (r *Recipient) Token() string              { return r.GetString("token") }
func (r *Recipient) SetToken(v string)          { r.Set("token", v) }
func (r *Recipient) GUID() string               { return r.GetString("guid") }
func (r *Recipient) SetGUID(v string)           { r.Set("guid", v) }

// Recipients is the submission envelope for a batch of recipient
// invitations.
type Recipients struct {
	wire.Fields
}

var recipientsSchema = wire.Schema{
	"guid":       {},
	"token":      {},
	"recipients": {Kind: wire.KindModelList, New: func() wire.Model { return &Recipient{} }},
}

func (r *Recipients) Schema() wire.Schema { return recipientsSchema }

// NewRecipients wraps a batch of recipients for submission.
func NewRecipients(recipients []*Recipient) *Recipients {
	rs := &Recipients{}
	rs.SetRecipients(recipients)
	return rs
}

// ToWire renders the set fields as a JSON-encodable object.
func (r *Recipients) ToWire() map[string]any { return wire.Render(r) }

func (r *Recipients) GUID() string      { return r.GetString("guid") }
func (r *Recipients) SetGUID(v string)  { r.Set("guid", v) }
func (r *Recipients) Token() string     { return r.GetString("token") }
func (r *Recipients) SetToken(v string) { r.Set("token", v) }

func (r *Recipients) Recipients() []*Recipient {
	models := r.GetModels("recipients")
	if models == nil {
		return nil
	}
	out := make([]*Recipient, 0, len(models))
	for _, m := range models {
		if rec, ok := m.(*Recipient); ok {
			out = append(out, rec)
		}
	}
	return out
}

func (r *Recipients) SetRecipients(recipients []*Recipient) {
	models := make([]wire.Model, len(recipients))
	for n, rec := range recipients {
		models[n] = rec
	}
	r.Set("recipients", models)
}
