package client

import (
	"context"

	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/apierror"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/models/rate"
)

// GetRates fetches the full exchange rate table. The endpoint is public and
// needs no token.
func (c *Client) GetRates(ctx context.Context) (*rate.Rates, error) {
	raw, err := c.transport.Get(ctx, "rates", nil, false)
	if err != nil {
		return nil, apierror.RateQuery.Wrap(err)
	}
	return parseRates(raw)
}

// GetCurrencyRates fetches the rate table relative to baseCurrency, e.g.
// "BTC".
func (c *Client) GetCurrencyRates(ctx context.Context, baseCurrency string) (*rate.Rates, error) {
	raw, err := c.transport.Get(ctx, "rates/"+baseCurrency, nil, false)
	if err != nil {
		return nil, apierror.RateQuery.Wrap(err)
	}
	return parseRates(raw)
}

// GetCurrencyPairRate fetches the single rate for one currency pair, e.g.
// ("BTC", "USD").
func (c *Client) GetCurrencyPairRate(ctx context.Context, baseCurrency, currency string) (*rate.Rate, error) {
	raw, err := c.transport.Get(ctx, "rates/"+baseCurrency+"/"+currency, nil, false)
	if err != nil {
		return nil, apierror.RateQuery.Wrap(err)
	}
	doc, err := asObject(raw)
	if err != nil {
		return nil, apierror.RateQuery.Wrap(err)
	}
	r, err := rate.NewFromWire(doc)
	if err != nil {
		return nil, apierror.RateQuery.Wrap(err)
	}
	return r, nil
}

func parseRates(raw any) (*rate.Rates, error) {
	list, err := asList(raw)
	if err != nil {
		return nil, apierror.RateQuery.Wrap(err)
	}
	rates := make([]*rate.Rate, 0, len(list))
	for _, el := range list {
		doc, err := asObject(el)
		if err != nil {
			return nil, apierror.RateQuery.Wrap(err)
		}
		r, err := rate.NewFromWire(doc)
		if err != nil {
			return nil, apierror.RateQuery.Wrap(err)
		}
		rates = append(rates, r)
	}
	return rate.NewRates(rates), nil
}
