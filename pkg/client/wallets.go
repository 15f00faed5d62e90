package client

import (
	"context"

	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/apierror"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/models/wallet"
)

// GetSupportedWallets lists the wallet applications buyers can pay invoices
// with. The endpoint is public and needs no token.
func (c *Client) GetSupportedWallets(ctx context.Context) ([]*wallet.Wallet, error) {
	raw, err := c.transport.Get(ctx, "supportedwallets", nil, false)
	if err != nil {
		return nil, apierror.WalletQuery.Wrap(err)
	}
	list, err := asList(raw)
	if err != nil {
		return nil, apierror.WalletQuery.Wrap(err)
	}
	out := make([]*wallet.Wallet, 0, len(list))
	for _, el := range list {
		doc, err := asObject(el)
		if err != nil {
			return nil, apierror.WalletQuery.Wrap(err)
		}
		w, err := wallet.NewFromWire(doc)
		if err != nil {
			return nil, apierror.WalletQuery.Wrap(err)
		}
		out = append(out, w)
	}
	return out, nil
}
