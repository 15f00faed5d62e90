package client

import (
	"context"
	"strconv"

	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/apierror"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/facade"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/models/payout"
)

// SubmitPayoutRecipients invites a batch of payout recipients and returns
// them with API-assigned ids and statuses. A request GUID is generated when
// the batch does not carry one.
func (c *Client) SubmitPayoutRecipients(ctx context.Context, recipients *payout.Recipients) ([]*payout.Recipient, error) {
	token, err := c.tokens.Token(facade.Payout)
	if err != nil {
		return nil, apierror.RecipientCreate.Wrap(err)
	}
	recipients.SetToken(token)
	if recipients.GUID() == "" {
		recipients.SetGUID(c.newGUID())
	}

	raw, err := c.transport.Post(ctx, "recipients", recipients.ToWire(), true)
	if err != nil {
		return nil, apierror.RecipientCreate.Wrap(err)
	}
	return parseRecipientList(raw, apierror.RecipientCreate)
}

// GetPayoutRecipient fetches one payout recipient by its API id.
func (c *Client) GetPayoutRecipient(ctx context.Context, recipientID string) (*payout.Recipient, error) {
	token, err := c.tokens.Token(facade.Payout)
	if err != nil {
		return nil, apierror.RecipientQuery.Wrap(err)
	}
	raw, err := c.transport.Get(ctx, "recipients/"+recipientID, map[string]string{"token": token}, true)
	if err != nil {
		return nil, apierror.RecipientQuery.Wrap(err)
	}
	return parseRecipient(raw, apierror.RecipientQuery)
}

// GetPayoutRecipients lists payout recipients, optionally filtered by
// status ("invited", "active", …).
func (c *Client) GetPayoutRecipients(ctx context.Context, status string, limit, offset int) ([]*payout.Recipient, error) {
	token, err := c.tokens.Token(facade.Payout)
	if err != nil {
		return nil, apierror.RecipientQuery.Wrap(err)
	}
	params := map[string]string{"token": token}
	if status != "" {
		params["status"] = status
	}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}
	if offset > 0 {
		params["offset"] = strconv.Itoa(offset)
	}

	raw, err := c.transport.Get(ctx, "recipients", params, true)
	if err != nil {
		return nil, apierror.RecipientQuery.Wrap(err)
	}
	return parseRecipientList(raw, apierror.RecipientQuery)
}

// UpdatePayoutRecipient replaces the mutable fields of an existing
// recipient with those set on r.
func (c *Client) UpdatePayoutRecipient(ctx context.Context, recipientID string, r *payout.Recipient) (*payout.Recipient, error) {
	token, err := c.tokens.Token(facade.Payout)
	if err != nil {
		return nil, apierror.RecipientUpdate.Wrap(err)
	}
	r.SetToken(token)

	raw, err := c.transport.Update(ctx, "recipients/"+recipientID, r.ToWire())
	if err != nil {
		return nil, apierror.RecipientUpdate.Wrap(err)
	}
	return parseRecipient(raw, apierror.RecipientUpdate)
}

// DeletePayoutRecipient removes a recipient from the account.
func (c *Client) DeletePayoutRecipient(ctx context.Context, recipientID string) (bool, error) {
	token, err := c.tokens.Token(facade.Payout)
	if err != nil {
		return false, apierror.RecipientDelete.Wrap(err)
	}
	raw, err := c.transport.Delete(ctx, "recipients/"+recipientID, map[string]string{"token": token})
	if err != nil {
		return false, apierror.RecipientDelete.Wrap(err)
	}
	doc, err := asObject(raw)
	if err != nil {
		return false, apierror.RecipientDelete.Wrap(err)
	}
	status, _ := doc["status"].(string)
	return status == "success", nil
}

// RequestPayoutRecipientNotification asks the API to resend the recipient
// invitation.
func (c *Client) RequestPayoutRecipientNotification(ctx context.Context, recipientID string) (bool, error) {
	token, err := c.tokens.Token(facade.Payout)
	if err != nil {
		return false, apierror.RecipientNotification.Wrap(err)
	}
	body := map[string]any{"token": token}

	raw, err := c.transport.Post(ctx, "recipients/"+recipientID+"/notifications", body, true)
	if err != nil {
		return false, apierror.RecipientNotification.Wrap(err)
	}
	doc, err := asObject(raw)
	if err != nil {
		return false, apierror.RecipientNotification.Wrap(err)
	}
	status, _ := doc["status"].(string)
	return status == "success", nil
}

func parseRecipient(raw any, class apierror.Class) (*payout.Recipient, error) {
	doc, err := asObject(raw)
	if err != nil {
		return nil, class.Wrap(err)
	}
	r, err := payout.NewRecipientFromWire(doc)
	if err != nil {
		return nil, class.Wrap(err)
	}
	return r, nil
}

func parseRecipientList(raw any, class apierror.Class) ([]*payout.Recipient, error) {
	list, err := asList(raw)
	if err != nil {
		return nil, class.Wrap(err)
	}
	out := make([]*payout.Recipient, 0, len(list))
	for _, el := range list {
		doc, err := asObject(el)
		if err != nil {
			return nil, class.Wrap(err)
		}
		r, err := payout.NewRecipientFromWire(doc)
		if err != nil {
			return nil, class.Wrap(err)
		}
		out = append(out, r)
	}
	return out, nil
}
