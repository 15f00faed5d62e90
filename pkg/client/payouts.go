package client

import (
	"context"

	"go.uber.org/zap"

	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/apierror"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/facade"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/models/payout"
)

// SubmitPayout submits p on the payout facade and returns the accepted
// payout.
func (c *Client) SubmitPayout(ctx context.Context, p *payout.Payout) (*payout.Payout, error) {
	token, err := c.tokens.Token(facade.Payout)
	if err != nil {
		return nil, apierror.PayoutCreate.Wrap(err)
	}
	p.SetToken(token)

	raw, err := c.transport.Post(ctx, "payouts", p.ToWire(), true)
	if err != nil {
		return nil, apierror.PayoutCreate.Wrap(err)
	}
	created, err := parsePayout(raw, apierror.PayoutCreate)
	if err != nil {
		return nil, err
	}
	zap.L().Debug("payout submitted", zap.String("id", created.ID()))
	return created, nil
}

// GetPayout fetches one payout by its API id.
func (c *Client) GetPayout(ctx context.Context, payoutID string) (*payout.Payout, error) {
	token, err := c.tokens.Token(facade.Payout)
	if err != nil {
		return nil, apierror.PayoutQuery.Wrap(err)
	}
	raw, err := c.transport.Get(ctx, "payouts/"+payoutID, map[string]string{"token": token}, true)
	if err != nil {
		return nil, apierror.PayoutQuery.Wrap(err)
	}
	return parsePayout(raw, apierror.PayoutQuery)
}

// GetPayouts lists payouts matching params (startDate, endDate, status,
// reference, limit, offset — all optional).
func (c *Client) GetPayouts(ctx context.Context, params map[string]string) ([]*payout.Payout, error) {
	token, err := c.tokens.Token(facade.Payout)
	if err != nil {
		return nil, apierror.PayoutQuery.Wrap(err)
	}
	if params == nil {
		params = make(map[string]string)
	}
	params["token"] = token

	raw, err := c.transport.Get(ctx, "payouts", params, true)
	if err != nil {
		return nil, apierror.PayoutQuery.Wrap(err)
	}
	list, err := asList(raw)
	if err != nil {
		return nil, apierror.PayoutQuery.Wrap(err)
	}
	out := make([]*payout.Payout, 0, len(list))
	for _, el := range list {
		doc, err := asObject(el)
		if err != nil {
			return nil, apierror.PayoutQuery.Wrap(err)
		}
		p, err := payout.NewFromWire(doc)
		if err != nil {
			return nil, apierror.PayoutQuery.Wrap(err)
		}
		out = append(out, p)
	}
	return out, nil
}

// CancelPayout cancels a pending payout.
func (c *Client) CancelPayout(ctx context.Context, payoutID string) (bool, error) {
	token, err := c.tokens.Token(facade.Payout)
	if err != nil {
		return false, apierror.PayoutCancel.Wrap(err)
	}
	raw, err := c.transport.Delete(ctx, "payouts/"+payoutID, map[string]string{"token": token})
	if err != nil {
		return false, apierror.PayoutCancel.Wrap(err)
	}
	doc, err := asObject(raw)
	if err != nil {
		return false, apierror.PayoutCancel.Wrap(err)
	}
	status, _ := doc["status"].(string)
	return status == "success", nil
}

// SubmitPayoutGroup submits a batch of payouts in one request. The response
// splits the batch into accepted payouts and per-item failures.
func (c *Client) SubmitPayoutGroup(ctx context.Context, payouts []*payout.Payout) (*payout.Group, error) {
	token, err := c.tokens.Token(facade.Payout)
	if err != nil {
		return nil, apierror.PayoutCreate.Wrap(err)
	}
	instructions := make([]any, len(payouts))
	for n, p := range payouts {
		instructions[n] = p.ToWire()
	}
	body := map[string]any{"instructions": instructions, "token": token}

	raw, err := c.transport.Post(ctx, "payouts/group", body, true)
	if err != nil {
		return nil, apierror.PayoutCreate.Wrap(err)
	}
	return parsePayoutGroup(raw, apierror.PayoutCreate)
}

// CancelPayoutGroup cancels every cancellable payout of a group.
func (c *Client) CancelPayoutGroup(ctx context.Context, groupID string) (*payout.Group, error) {
	token, err := c.tokens.Token(facade.Payout)
	if err != nil {
		return nil, apierror.PayoutCancel.Wrap(err)
	}
	raw, err := c.transport.Delete(ctx, "payouts/group/"+groupID, map[string]string{"token": token})
	if err != nil {
		return nil, apierror.PayoutCancel.Wrap(err)
	}
	return parsePayoutGroup(raw, apierror.PayoutCancel)
}

// RequestPayoutNotification asks the API to replay the payout webhook.
func (c *Client) RequestPayoutNotification(ctx context.Context, payoutID string) (bool, error) {
	token, err := c.tokens.Token(facade.Payout)
	if err != nil {
		return false, apierror.PayoutNotification.Wrap(err)
	}
	body := map[string]any{"token": token}

	raw, err := c.transport.Post(ctx, "payouts/"+payoutID+"/notifications", body, true)
	if err != nil {
		return false, apierror.PayoutNotification.Wrap(err)
	}
	doc, err := asObject(raw)
	if err != nil {
		return false, apierror.PayoutNotification.Wrap(err)
	}
	status, _ := doc["status"].(string)
	return status == "success", nil
}

func parsePayout(raw any, class apierror.Class) (*payout.Payout, error) {
	doc, err := asObject(raw)
	if err != nil {
		return nil, class.Wrap(err)
	}
	p, err := payout.NewFromWire(doc)
	if err != nil {
		return nil, class.Wrap(err)
	}
	return p, nil
}

func parsePayoutGroup(raw any, class apierror.Class) (*payout.Group, error) {
	doc, err := asObject(raw)
	if err != nil {
		return nil, class.Wrap(err)
	}
	g, err := payout.NewGroupFromWire(doc)
	if err != nil {
		return nil, class.Wrap(err)
	}
	return g, nil
}
