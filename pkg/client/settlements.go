package client

import (
	"context"
	"errors"

	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/apierror"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/facade"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/models/settlement"
)

// GetSettlements lists settlements matching params (startDate, endDate,
// status, currency, limit, offset — all optional).
func (c *Client) GetSettlements(ctx context.Context, params map[string]string) ([]*settlement.Settlement, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.SettlementQuery.Wrap(err)
	}
	if params == nil {
		params = make(map[string]string)
	}
	params["token"] = token

	raw, err := c.transport.Get(ctx, "settlements", params, true)
	if err != nil {
		return nil, apierror.SettlementQuery.Wrap(err)
	}
	list, err := asList(raw)
	if err != nil {
		return nil, apierror.SettlementQuery.Wrap(err)
	}
	out := make([]*settlement.Settlement, 0, len(list))
	for _, el := range list {
		doc, err := asObject(el)
		if err != nil {
			return nil, apierror.SettlementQuery.Wrap(err)
		}
		s, err := settlement.NewFromWire(doc)
		if err != nil {
			return nil, apierror.SettlementQuery.Wrap(err)
		}
		out = append(out, s)
	}
	return out, nil
}

// GetSettlement fetches one settlement by its API id.
func (c *Client) GetSettlement(ctx context.Context, settlementID string) (*settlement.Settlement, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.SettlementQuery.Wrap(err)
	}
	raw, err := c.transport.Get(ctx, "settlements/"+settlementID, map[string]string{"token": token}, true)
	if err != nil {
		return nil, apierror.SettlementQuery.Wrap(err)
	}
	return parseSettlement(raw)
}

// GetSettlementReconciliationReport fetches the detailed reconciliation
// report of a settlement. The report endpoint authenticates with the
// settlement's own resource token, not the merchant token, so s must have
// been fetched through GetSettlement or GetSettlements first.
func (c *Client) GetSettlementReconciliationReport(ctx context.Context, s *settlement.Settlement) (*settlement.Settlement, error) {
	if s.Token() == "" {
		return nil, apierror.SettlementQuery.Wrap(errors.New("settlement carries no resource token"))
	}
	params := map[string]string{"token": s.Token()}

	raw, err := c.transport.Get(ctx, "settlements/"+s.ID()+"/reconciliationReport", params, true)
	if err != nil {
		return nil, apierror.SettlementQuery.Wrap(err)
	}
	return parseSettlement(raw)
}

func parseSettlement(raw any) (*settlement.Settlement, error) {
	doc, err := asObject(raw)
	if err != nil {
		return nil, apierror.SettlementQuery.Wrap(err)
	}
	s, err := settlement.NewFromWire(doc)
	if err != nil {
		return nil, apierror.SettlementQuery.Wrap(err)
	}
	return s, nil
}
