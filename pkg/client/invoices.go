package client

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/apierror"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/config"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/facade"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/models/invoice"
)

// CreateInvoice submits inv on the merchant facade and returns the created
// invoice as the API echoed it back. A request GUID is generated when inv
// does not carry one.
func (c *Client) CreateInvoice(ctx context.Context, inv *invoice.Invoice) (*invoice.Invoice, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.InvoiceCreate.Wrap(err)
	}
	inv.SetToken(token)
	if inv.GUID() == "" {
		inv.SetGUID(c.newGUID())
	}

	raw, err := c.transport.Post(ctx, "invoices", inv.ToWire(), true)
	if err != nil {
		return nil, apierror.InvoiceCreate.Wrap(err)
	}
	doc, err := asObject(raw)
	if err != nil {
		return nil, apierror.InvoiceCreate.Wrap(err)
	}
	created, err := invoice.NewFromWire(doc)
	if err != nil {
		return nil, apierror.InvoiceCreate.Wrap(err)
	}
	zap.L().Debug("invoice created", zap.String("id", created.ID()))
	return created, nil
}

// GetInvoice fetches one invoice by its API id.
func (c *Client) GetInvoice(ctx context.Context, invoiceID string) (*invoice.Invoice, error) {
	return c.fetchInvoice(ctx, "invoices/"+invoiceID)
}

// GetInvoiceByGUID fetches one invoice by the request GUID it was created
// with.
func (c *Client) GetInvoiceByGUID(ctx context.Context, invoiceGUID string) (*invoice.Invoice, error) {
	return c.fetchInvoice(ctx, "invoices/guid/"+invoiceGUID)
}

func (c *Client) fetchInvoice(ctx context.Context, path string) (*invoice.Invoice, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.InvoiceQuery.Wrap(err)
	}
	raw, err := c.transport.Get(ctx, path, map[string]string{"token": token}, true)
	if err != nil {
		return nil, apierror.InvoiceQuery.Wrap(err)
	}
	doc, err := asObject(raw)
	if err != nil {
		return nil, apierror.InvoiceQuery.Wrap(err)
	}
	inv, err := invoice.NewFromWire(doc)
	if err != nil {
		return nil, apierror.InvoiceQuery.Wrap(err)
	}
	return inv, nil
}

// GetInvoices lists invoices matching params (dateStart, dateEnd, status,
// orderId, limit, offset — all optional).
func (c *Client) GetInvoices(ctx context.Context, params map[string]string) ([]*invoice.Invoice, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.InvoiceQuery.Wrap(err)
	}
	if params == nil {
		params = make(map[string]string)
	}
	params["token"] = token

	raw, err := c.transport.Get(ctx, "invoices", params, true)
	if err != nil {
		return nil, apierror.InvoiceQuery.Wrap(err)
	}
	list, err := asList(raw)
	if err != nil {
		return nil, apierror.InvoiceQuery.Wrap(err)
	}
	out := make([]*invoice.Invoice, 0, len(list))
	for _, el := range list {
		doc, err := asObject(el)
		if err != nil {
			return nil, apierror.InvoiceQuery.Wrap(err)
		}
		inv, err := invoice.NewFromWire(doc)
		if err != nil {
			return nil, apierror.InvoiceQuery.Wrap(err)
		}
		out = append(out, inv)
	}
	return out, nil
}

// UpdateInvoice applies updates (e.g. buyerSms) to an invoice and returns
// the updated resource.
func (c *Client) UpdateInvoice(ctx context.Context, invoiceID string, updates map[string]any) (*invoice.Invoice, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.InvoiceUpdate.Wrap(err)
	}
	body := map[string]any{"token": token}
	for k, v := range updates {
		body[k] = v
	}

	raw, err := c.transport.Update(ctx, "invoices/"+invoiceID, body)
	if err != nil {
		return nil, apierror.InvoiceUpdate.Wrap(err)
	}
	doc, err := asObject(raw)
	if err != nil {
		return nil, apierror.InvoiceUpdate.Wrap(err)
	}
	inv, err := invoice.NewFromWire(doc)
	if err != nil {
		return nil, apierror.InvoiceUpdate.Wrap(err)
	}
	return inv, nil
}

// CancelInvoice cancels an unpaid invoice. forceCancel also cancels
// invoices in states the API would otherwise refuse to touch.
func (c *Client) CancelInvoice(ctx context.Context, invoiceID string, forceCancel bool) (*invoice.Invoice, error) {
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.InvoiceCancel.Wrap(err)
	}
	params := map[string]string{"token": token}
	if forceCancel {
		params["forceCancel"] = "true"
	}

	raw, err := c.transport.Delete(ctx, "invoices/"+invoiceID, params)
	if err != nil {
		return nil, apierror.InvoiceCancel.Wrap(err)
	}
	doc, err := asObject(raw)
	if err != nil {
		return nil, apierror.InvoiceCancel.Wrap(err)
	}
	inv, err := invoice.NewFromWire(doc)
	if err != nil {
		return nil, apierror.InvoiceCancel.Wrap(err)
	}
	zap.L().Debug("invoice cancelled", zap.String("id", invoiceID))
	return inv, nil
}

// PayInvoice drives a sandbox invoice into the given status ("confirmed" or
// "complete"). Only the test environment supports it.
func (c *Client) PayInvoice(ctx context.Context, invoiceID, status string) (*invoice.Invoice, error) {
	if c.cfg.Environment != config.Test {
		return nil, apierror.InvoicePay.Wrap(errors.New("pay invoice is only available in the test environment"))
	}
	token, err := c.tokens.Token(facade.Merchant)
	if err != nil {
		return nil, apierror.InvoicePay.Wrap(err)
	}
	body := map[string]any{"token": token, "status": status}

	raw, err := c.transport.Update(ctx, "invoices/pay/"+invoiceID, body)
	if err != nil {
		return nil, apierror.InvoicePay.Wrap(err)
	}
	doc, err := asObject(raw)
	if err != nil {
		return nil, apierror.InvoicePay.Wrap(err)
	}
	inv, err := invoice.NewFromWire(doc)
	if err != nil {
		return nil, apierror.InvoicePay.Wrap(err)
	}
	return inv, nil
}
