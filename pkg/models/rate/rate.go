// Package rate defines exchange rate models and exact-arithmetic conversion
// over a fetched rate table.
package rate

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/wire"
)

// Rate is one exchange rate relative to the base currency the table was
// fetched for.
type Rate struct {
	wire.Fields
}

var rateSchema = wire.Schema{
	"name": {},
	"code": {},
	"rate": {},
}

func (r *Rate) Schema() wire.Schema { return rateSchema }

// NewFromWire populates a Rate from a decoded JSON object.
func NewFromWire(doc map[string]any) (*Rate, error) {
	r := &Rate{}
	if err := wire.Populate(r, doc); err != nil {
		return nil, err
	}
	return r, nil
}

// ToWire renders the set fields as a JSON-encodable object.
func (r *Rate) ToWire() map[string]any { return wire.Render(r) }

func (r *Rate) Name() string       { return r.GetString("name") }
func (r *Rate) SetName(v string)   { r.Set("name", v) }
func (r *Rate) Code() string       { return r.GetString("code") }
func (r *Rate) SetCode(v string)   { r.Set("code", v) }
func (r *Rate) Value() float64     { return r.GetFloat("rate") }
func (r *Rate) SetValue(v float64) { r.Set("rate", v) }

// Rates is a fetched rate table. It is a view over the parsed list, not a
// wire model itself.
type Rates struct {
	rates []*Rate
}

// NewRates wraps a parsed rate list.
func NewRates(rates []*Rate) *Rates {
	return &Rates{rates: rates}
}

// All returns the underlying rates in wire order.
func (r *Rates) All() []*Rate { return r.rates }

// Rate returns the rate for the given currency code, case-insensitively.
func (r *Rates) Rate(code string) (float64, error) {
	for _, rate := range r.rates {
		if strings.EqualFold(rate.Code(), code) {
			return rate.Value(), nil
		}
	}
	return 0, fmt.Errorf("no rate for currency %q", code)
}

// Convert converts amount from the table's base currency into code using
// exact decimal arithmetic, rounded half-up to precision digits. Float
// multiplication drifts on amounts like 0.1 * rate; payments cannot.
func (r *Rates) Convert(amount float64, code string, precision int32) (float64, error) {
	rateValue, err := r.Rate(code)
	if err != nil {
		return 0, err
	}
	converted := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(rateValue)).
		Round(precision)
	out, _ := converted.Float64()
	return out, nil
}
