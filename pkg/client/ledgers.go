package client

import (
	"context"

	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/apierror"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/facade"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/models/ledger"
)

// GetLedgers lists the account's per-currency ledger balances.
func (c *Client) GetLedgers(ctx context.Context) ([]*ledger.Ledger, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.LedgerQuery.Wrap(err)
	}
	raw, err := c.transport.Get(ctx, "ledgers", map[string]string{"token": token}, true)
	if err != nil {
		return nil, apierror.LedgerQuery.Wrap(err)
	}
	list, err := asList(raw)
	if err != nil {
		return nil, apierror.LedgerQuery.Wrap(err)
	}
	out := make([]*ledger.Ledger, 0, len(list))
	for _, el := range list {
		doc, err := asObject(el)
		if err != nil {
			return nil, apierror.LedgerQuery.Wrap(err)
		}
		l, err := ledger.NewFromWire(doc)
		if err != nil {
			return nil, apierror.LedgerQuery.Wrap(err)
		}
		out = append(out, l)
	}
	return out, nil
}

// GetLedgerEntries lists one currency's ledger entries in a date window.
// Dates are formatted yyyy-mm-dd.
func (c *Client) GetLedgerEntries(ctx context.Context, currency, dateStart, dateEnd string) ([]*ledger.Entry, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.LedgerQuery.Wrap(err)
	}
	params := map[string]string{
		"token":     token,
		"startDate": dateStart,
		"endDate":   dateEnd,
	}

	raw, err := c.transport.Get(ctx, "ledgers/"+currency, params, true)
	if err != nil {
		return nil, apierror.LedgerQuery.Wrap(err)
	}
	list, err := asList(raw)
	if err != nil {
		return nil, apierror.LedgerQuery.Wrap(err)
	}
	out := make([]*ledger.Entry, 0, len(list))
	for _, el := range list {
		doc, err := asObject(el)
		if err != nil {
			return nil, apierror.LedgerQuery.Wrap(err)
		}
		e, err := ledger.NewEntryFromWire(doc)
		if err != nil {
			return nil, apierror.LedgerQuery.Wrap(err)
		}
		out = append(out, e)
	}
	return out, nil
}
