// Package client exposes the high-level SDK entry point. A Client composes
// facade/token resolution, the wire marshaller and an injected Transport
// into per-resource operations: build a request model, render it, call a
// verb, parse the response back into a model.
//
// The Transport is deliberately an interface. The SDK owns request and
// response semantics; how bytes move (HTTP client, signing, retries) is the
// caller's collaborator. See examples/http-transport for a minimal
// implementation.
package client

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/config"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/facade"
	"github.com/mwarzybok-sumoheavy/bitpay-sdk-go/pkg/guid"
)

// Transport moves one request to the API and returns the decoded JSON
// response. Paths are relative to the configured API base URL. The signed
// flag tells the implementation whether the request must carry an identity
// signature; Update and Delete are always signed.
type Transport interface {
	Get(ctx context.Context, path string, params map[string]string, signed bool) (any, error)
	Post(ctx context.Context, path string, body map[string]any, signed bool) (any, error)
	Update(ctx context.Context, path string, body map[string]any) (any, error)
	Delete(ctx context.Context, path string, params map[string]string) (any, error)
}

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// Client is the concrete SDK implementation.
type Client struct {
	transport Transport
	tokens    *facade.TokenContainer
	cfg       *config.Config
	newGUID   guid.Source
}

// New validates cfg, seeds the token container from it and returns a ready
// client bound to transport.
func New(cfg *config.Config, transport Transport) (*Client, error) {
	if transport == nil {
		return nil, errors.New("transport is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.Timeouts = cfg.Timeouts.WithDefaults()

	tokens := facade.NewTokenContainer()
	tokens.Put(facade.Merchant, cfg.MerchantToken)
	tokens.Put(facade.Payout, cfg.PayoutToken)
	tokens.Put(facade.POS, cfg.POSToken)

	return &Client{
		transport: transport,
		tokens:    tokens,
		cfg:       cfg,
		newGUID:   guid.New,
	}, nil
}

// Tokens exposes the resolved token container, mainly for diagnostics.
func (c *Client) Tokens() *facade.TokenContainer { return c.tokens }

// asObject narrows a decoded JSON response to an object.
func asObject(v any) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response shape %T, want object", v)
	}
	return obj, nil
}

// asList narrows a decoded JSON response to an array.
func asList(v any) ([]any, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response shape %T, want array", v)
	}
	return list, nil
}
