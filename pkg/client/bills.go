package client

import (
	"context"
	"errors"

	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/apierror"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/facade"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/models/bill"
)

// CreateBill submits b on the merchant facade and returns the created bill.
func (c *Client) CreateBill(ctx context.Context, b *bill.Bill) (*bill.Bill, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.BillCreate.Wrap(err)
	}
	b.SetToken(token)

	raw, err := c.transport.Post(ctx, "bills", b.ToWire(), true)
	if err != nil {
		return nil, apierror.BillCreate.Wrap(err)
	}
	return parseBill(raw, apierror.BillCreate)
}

// GetBill fetches one bill by its API id.
func (c *Client) GetBill(ctx context.Context, billID string) (*bill.Bill, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.BillQuery.Wrap(err)
	}
	raw, err := c.transport.Get(ctx, "bills/"+billID, map[string]string{"token": token}, true)
	if err != nil {
		return nil, apierror.BillQuery.Wrap(err)
	}
	return parseBill(raw, apierror.BillQuery)
}

// GetBills lists bills, optionally filtered by status.
func (c *Client) GetBills(ctx context.Context, status string) ([]*bill.Bill, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.BillQuery.Wrap(err)
	}
	params := map[string]string{"token": token}
	if status != "" {
		params["status"] = status
	}

	raw, err := c.transport.Get(ctx, "bills", params, true)
	if err != nil {
		return nil, apierror.BillQuery.Wrap(err)
	}
	list, err := asList(raw)
	if err != nil {
		return nil, apierror.BillQuery.Wrap(err)
	}
	out := make([]*bill.Bill, 0, len(list))
	for _, el := range list {
		doc, err := asObject(el)
		if err != nil {
			return nil, apierror.BillQuery.Wrap(err)
		}
		b, err := bill.NewFromWire(doc)
		if err != nil {
			return nil, apierror.BillQuery.Wrap(err)
		}
		out = append(out, b)
	}
	return out, nil
}

// UpdateBill replaces the mutable fields of an existing bill with those set
// on b. Updates authenticate with the bill's own resource token, so b must
// carry the token returned at creation.
func (c *Client) UpdateBill(ctx context.Context, b *bill.Bill, billID string) (*bill.Bill, error) {
	if b.Token() == "" {
		return nil, apierror.BillUpdate.Wrap(errors.New("bill carries no resource token"))
	}
	raw, err := c.transport.Update(ctx, "bills/"+billID, b.ToWire())
	if err != nil {
		return nil, apierror.BillUpdate.Wrap(err)
	}
	return parseBill(raw, apierror.BillUpdate)
}

// DeliverBill emails the bill to its recipient. billToken is the resource
// token returned when the bill was created.
func (c *Client) DeliverBill(ctx context.Context, billID, billToken string) (bool, error) {
	body := map[string]any{"token": billToken}

	raw, err := c.transport.Post(ctx, "bills/"+billID+"/deliveries", body, true)
	if err != nil {
		return false, apierror.BillDelivery.Wrap(err)
	}
	status, _ := raw.(string)
	return status == "Success", nil
}

func parseBill(raw any, class apierror.Class) (*bill.Bill, error) {
	doc, err := asObject(raw)
	if err != nil {
		return nil, class.Wrap(err)
	}
	b, err := bill.NewFromWire(doc)
	if err != nil {
		return nil, class.Wrap(err)
	}
	return b, nil
}
