package client

import (
	"context"

	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/apierror"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/facade"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/models/refund"
)

// CreateRefund requests a refund against a paid invoice on the merchant
// facade. A request GUID is generated when r does not carry one.
func (c *Client) CreateRefund(ctx context.Context, r *refund.Refund) (*refund.Refund, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.RefundCreate.Wrap(err)
	}
	r.SetToken(token)
	if r.GUID() == "" {
		r.SetGUID(c.newGUID())
	}

	raw, err := c.transport.Post(ctx, "refunds", r.ToWire(), true)
	if err != nil {
		return nil, apierror.RefundCreate.Wrap(err)
	}
	return c.parseRefund(raw, apierror.RefundCreate)
}

// GetRefund fetches one refund by its API id.
func (c *Client) GetRefund(ctx context.Context, refundID string) (*refund.Refund, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.RefundQuery.Wrap(err)
	}
	raw, err := c.transport.Get(ctx, "refunds/"+refundID, map[string]string{"token": token}, true)
	if err != nil {
		return nil, apierror.RefundQuery.Wrap(err)
	}
	return c.parseRefund(raw, apierror.RefundQuery)
}

// GetRefundByGUID fetches one refund by the request GUID it was created with.
func (c *Client) GetRefundByGUID(ctx context.Context, refundGUID string) (*refund.Refund, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.RefundQuery.Wrap(err)
	}
	raw, err := c.transport.Get(ctx, "refunds/guid/"+refundGUID, map[string]string{"token": token}, true)
	if err != nil {
		return nil, apierror.RefundQuery.Wrap(err)
	}
	return c.parseRefund(raw, apierror.RefundQuery)
}

// GetRefunds lists the refunds of one invoice.
func (c *Client) GetRefunds(ctx context.Context, invoiceID string) ([]*refund.Refund, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.RefundQuery.Wrap(err)
	}
	params := map[string]string{"token": token, "invoiceId": invoiceID}

	raw, err := c.transport.Get(ctx, "refunds", params, true)
	if err != nil {
		return nil, apierror.RefundQuery.Wrap(err)
	}
	list, err := asList(raw)
	if err != nil {
		return nil, apierror.RefundQuery.Wrap(err)
	}
	out := make([]*refund.Refund, 0, len(list))
	for _, el := range list {
		doc, err := asObject(el)
		if err != nil {
			return nil, apierror.RefundQuery.Wrap(err)
		}
		r, err := refund.NewFromWire(doc)
		if err != nil {
			return nil, apierror.RefundQuery.Wrap(err)
		}
		out = append(out, r)
	}
	return out, nil
}

// UpdateRefund sets the status of a refund ("created", "cancelled", …).
func (c *Client) UpdateRefund(ctx context.Context, refundID, status string) (*refund.Refund, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.RefundUpdate.Wrap(err)
	}
	body := map[string]any{"token": token, "status": status}

	raw, err := c.transport.Update(ctx, "refunds/"+refundID, body)
	if err != nil {
		return nil, apierror.RefundUpdate.Wrap(err)
	}
	return c.parseRefund(raw, apierror.RefundUpdate)
}

// CancelRefund cancels a pending refund request.
func (c *Client) CancelRefund(ctx context.Context, refundID string) (*refund.Refund, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.RefundCancel.Wrap(err)
	}
	raw, err := c.transport.Delete(ctx, "refunds/"+refundID, map[string]string{"token": token})
	if err != nil {
		return nil, apierror.RefundCancel.Wrap(err)
	}
	return c.parseRefund(raw, apierror.RefundCancel)
}

// RequestRefundNotification asks the API to replay the refund webhook.
func (c *Client) RequestRefundNotification(ctx context.Context, refundID string) (bool, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return false, apierror.RefundNotification.Wrap(err)
	}
	body := map[string]any{"token": token}

	raw, err := c.transport.Post(ctx, "refunds/"+refundID+"/notifications", body, true)
	if err != nil {
		return false, apierror.RefundNotification.Wrap(err)
	}
	doc, err := asObject(raw)
	if err != nil {
		return false, apierror.RefundNotification.Wrap(err)
	}
	status, _ := doc["status"].(string)
	return status == "success", nil
}

func (c *Client) parseRefund(raw any, class apierror.Class) (*refund.Refund, error) {
	doc, err := asObject(raw)
	if err != nil {
		return nil, class.Wrap(err)
	}
	r, err := refund.NewFromWire(doc)
	if err != nil {
		return nil, class.Wrap(err)
	}
	return r, nil
}
