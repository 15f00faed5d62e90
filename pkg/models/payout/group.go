package payout

import "github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"

// Group is the API response to a payout group submission or cancellation:
// the payouts that went through and the ones that were rejected.
type Group struct {
	wire.Fields
}

var groupSchema = wire.Schema{
	"created":   {Kind: wire.KindModelList, New: func() wire.Model { return &Payout{} }},
	"cancelled": {Kind: wire.KindModelList, New: func() wire.Model { return &Payout{} }},
	"failed":    {Kind: wire.KindModelList, New: func() wire.Model { return &GroupFailed{} }},
}

func (g *Group) Schema() wire.Schema { return groupSchema }

// NewGroupFromWire populates a Group from a decoded JSON object.
func NewGroupFromWire(doc map[string]any) (*Group, error) {
	g := &Group{}
	if err := wire.Populate(g, doc); err != nil {
		return nil, err
	}
	return g, nil
}

// ToWire renders the set fields as a JSON-encodable object.
func (g *Group) ToWire() map[string]any { return wire.Render(g) }

func (g *Group) payouts(name string) []*Payout {
	models := g.GetModels(name)
	if models == nil {
		return nil
	}
	out := make([]*Payout, 0, len(models))
	for _, m := range models {
		if p, ok := m.(*Payout); ok {
			out = append(out, p)
		}
	}
	return out
}

func (g *Group) Created() []*Payout   { return g.payouts("created") }
func (g *Group) Cancelled() []*Payout { return g.payouts("cancelled") }

func (g *Group) Failed() []*GroupFailed {
	models := g.GetModels("failed")
	if models == nil {
		return nil
	}
	out := make([]*GroupFailed, 0, len(models))
	for _, m := range models {
		if f, ok := m.(*GroupFailed); ok {
			out = append(out, f)
		}
	}
	return out
}

// GroupFailed describes one payout rejected from a group submission.
type GroupFailed struct {
	wire.Fields
}

var groupFailedSchema = wire.Schema{
	"err_message": {},
	"payout_id":   {},
	"payee":       {},
}

func (f *GroupFailed) Schema() wire.Schema { return groupFailedSchema }

// ToWire renders the set fields as a JSON-encodable object.
func (f *GroupFailed) ToWire() map[string]any { return wire.Render(f) }

func (f *GroupFailed) ErrMessage() string { return f.GetString("err_message") }
func (f *GroupFailed) PayoutID() string   { return f.GetString("payout_id") }
func (f *GroupFailed) Payee() string      { return f.GetString("payee") }
