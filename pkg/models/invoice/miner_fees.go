package invoice

import "github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"

// MinerFees lists the miner fee the buyer pays per settlement currency.
type MinerFees struct {
	wire.Fields
}

var minerFeesSchema = wire.Schema{
	"btc":  {Kind: wire.KindModel, New: func() wire.Model { return &MinerFeesItem{} }},
	"bch":  {Kind: wire.KindModel, New: func() wire.Model { return &MinerFeesItem{} }},
	"eth":  {Kind: wire.KindModel, New: func() wire.Model { return &MinerFeesItem{} }},
	"ltc":  {Kind: wire.KindModel, New: func() wire.Model { return &MinerFeesItem{} }},
	"doge": {Kind: wire.KindModel, New: func() wire.Model { return &MinerFeesItem{} }},
}

func (m *MinerFees) Schema() wire.Schema { return minerFeesSchema }

// ToWire renders the set fields as a JSON-encodable object.
func (m *MinerFees) ToWire() map[string]any { return wire.Render(m) }

func (m *MinerFees) item(name string) *MinerFeesItem {
	it, _ := m.GetModel(name).(*MinerFeesItem)
	return it
}

func (m *MinerFees) BTC() *MinerFeesItem      { return m.item("btc") }
func (m *MinerFees) SetBTC(v *MinerFeesItem)  { m.Set("btc", v) }
func (m *MinerFees) BCH() *MinerFeesItem      { return m.item("bch") }
func (m *MinerFees) SetBCH(v *MinerFeesItem)  { m.Set("bch", v) }
func (m *MinerFees) ETH() *MinerFeesItem      { return m.item("eth") }
func (m *MinerFees) SetETH(v *MinerFeesItem)  { m.Set("eth", v) }
func (m *MinerFees) LTC() *MinerFeesItem      { return m.item("ltc") }
func (m *MinerFees) SetLTC(v *MinerFeesItem)  { m.Set("ltc", v) }
func (m *MinerFees) DOGE() *MinerFeesItem     { return m.item("doge") }
func (m *MinerFees) SetDOGE(v *MinerFeesItem) { m.Set("doge", v) }

// MinerFeesItem is the fee detail for one settlement currency.
type MinerFeesItem struct {
	wire.Fields
}

var minerFeesItemSchema = wire.Schema{
	"satoshis_per_byte": {},
	"total_fee":         {},
	"fiat_amount":       {},
}

func (m *MinerFeesItem) Schema() wire.Schema { return minerFeesItemSchema }

// ToWire renders the set fields as a JSON-encodable object.
func (m *MinerFeesItem) ToWire() map[string]any { return wire.Render(m) }

func (m *MinerFeesItem) SatoshisPerByte() float64     { return m.GetFloat("satoshis_per_byte") }
func (m *MinerFeesItem) SetSatoshisPerByte(v float64) { m.Set("satoshis_per_byte", v) }
func (m *MinerFeesItem) TotalFee() float64            { return m.GetFloat("total_fee") }
func (m *MinerFeesItem) SetTotalFee(v float64)        { m.Set("total_fee", v) }
func (m *MinerFeesItem) FiatAmount() float64          { return m.GetFloat("fiat_amount") }
func (m *MinerFeesItem) SetFiatAmount(v float64)      { m.Set("fiat_amount", v) }
