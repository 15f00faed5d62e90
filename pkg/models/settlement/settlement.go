// Package settlement defines the settlement report models: the settlement
// itself, its ledger entries with per-invoice detail, withholdings, and the
// payout destination on file.
package settlement

import "github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"

// Settlement is one settlement report.
type Settlement struct {
	wire.Fields
}

var settlementSchema = wire.Schema{
	"id":                 {},
	"account_id":         {},
	"currency":           {},
	"status":             {},
	"date_created":       {},
	"date_executed":      {},
	"date_completed":     {},
	"opening_date":       {},
	"closing_date":       {},
	"opening_balance":    {},
	"ledger_entries_sum": {},
	"with_holdings_sum":  {},
	"total_amount":       {},
	"token":              {},
	"payout_info":        {Kind: wire.KindModel, New: func() wire.Model { return &PayoutInfo{} }},
	"with_holdings":      {Kind: wire.KindModelList, New: func() wire.Model { return &WithHoldings{} }},
	"ledger_entries":     {Kind: wire.KindModelList, New: func() wire.Model { return &LedgerEntry{} }},
}

func (s *Settlement) Schema() wire.Schema { return settlementSchema }

// NewFromWire populates a Settlement from a decoded JSON object.
func NewFromWire(doc map[string]any) (*Settlement, error) {
	s := &Settlement{}
	if err := wire.Populate(s, doc); err != nil {
		return nil, err
	}
	return s, nil
}

// ToWire renders the set fields as a JSON-encodable object.
func (s *Settlement) ToWire() map[string]any { return wire.Render(s) }

func (s *Settlement) ID() string                   { return s.GetString("id") }
func (s *Settlement) SetID(v string)               { s.Set("id", v) }
func (s *Settlement) AccountID() string            { return s.GetString("account_id") }
func (s *Settlement) SetAccountID(v string)        { s.Set("account_id", v) }
func (s *Settlement) Currency() string             { return s.GetString("currency") }
func (s *Settlement) SetCurrency(v string)         { s.Set("currency", v) }
func (s *Settlement) Status() string               { return s.GetString("status") }
func (s *Settlement) SetStatus(v string)           { s.Set("status", v) }
func (s *Settlement) DateCreated() string          { return s.GetString("date_created") }
func (s *Settlement) SetDateCreated(v string)      { s.Set("date_created", v) }
func (s *Settlement) DateExecuted() string         { return s.GetString("date_executed") }
func (s *Settlement) SetDateExecuted(v string)     { s.Set("date_executed", v) }
func (s *Settlement) DateCompleted() string        { return s.GetString("date_completed") }
func (s *Settlement) SetDateCompleted(v string)    { s.Set("date_completed", v) }
func (s *Settlement) OpeningDate() string          { return s.GetString("opening_date") }
func (s *Settlement) SetOpeningDate(v string)      { s.Set("opening_date", v) }
func (s *Settlement) ClosingDate() string          { return s.GetString("closing_date") }
func (s *Settlement) SetClosingDate(v string)      { s.Set("closing_date", v) }
func (s *Settlement) OpeningBalance() float64      { return s.GetFloat("opening_balance") }
func (s *Settlement) SetOpeningBalance(v float64)  { s.Set("opening_balance", v) }
func (s *Settlement) LedgerEntriesSum() float64    { return s.GetFloat("ledger_entries_sum") }
func (s *Settlement) SetLedgerEntriesSum(v float64) { s.Set("ledger_entries_sum", v) }
func (s *Settlement) WithHoldingsSum() float64     { return s.GetFloat("with_holdings_sum") }
func (s *Settlement) SetWithHoldingsSum(v float64) { s.Set("with_holdings_sum", v) }
func (s *Settlement) TotalAmount() float64         { return s.GetFloat("total_amount") }
func (s *Settlement) SetTotalAmount(v float64)     { s.Set("total_amount", v) }
func (s *Settlement) Token() string                { return s.GetString("token") }
func (s *Settlement) SetToken(v string)            { s.Set("token", v) }

func (s *Settlement) PayoutInfo() *PayoutInfo {
	p, _ := s.GetModel("payout_info").(*PayoutInfo)
	return p
}

func (s *Settlement) SetPayoutInfo(p *PayoutInfo) { s.Set("payout_info", p) }

func (s *Settlement) WithHoldings() []*WithHoldings {
	models := s.GetModels("with_holdings")
	if models == nil {
		return nil
	}
	out := make([]*WithHoldings, 0, len(models))
	for _, m := range models {
		if w, ok := m.(*WithHoldings); ok {
			out = append(out, w)
		}
	}
	return out
}

func (s *Settlement) SetWithHoldings(ws []*WithHoldings) {
	models := make([]wire.Model, len(ws))
	for n, w := range ws {
		models[n] = w
	}
	s.Set("with_holdings", models)
}

func (s *Settlement) LedgerEntries() []*LedgerEntry {
	models := s.GetModels("ledger_entries")
	if models == nil {
		return nil
	}
	out := make([]*LedgerEntry, 0, len(models))
	for _, m := range models {
		if e, ok := m.(*LedgerEntry); ok {
			out = append(out, e)
		}
	}
	return out
}

func (s *Settlement) SetLedgerEntries(es []*LedgerEntry) {
	models := make([]wire.Model, len(es))
	for n, e := range es {
		models[n] = e
	}
	s.Set("ledger_entries", models)
}
