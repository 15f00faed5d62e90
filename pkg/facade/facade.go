// Package facade defines the permission scopes of the BitPay API and the
// token container that resolves a scope to its bearer credential. Every
// client operation names the facade it requires; resolution failures are
// reported before any network call is attempted.
package facade

import "fmt"

// Facade is a named permission scope controlling which credential authorizes
// a request.
type Facade string

const (
	// Merchant authorizes invoice, bill, ledger and settlement operations.
	Merchant Facade = "merchant"
	// Payout authorizes payout and payout recipient operations.
	Payout Facade = "payout"
	// POS is the point-of-sale facade, a reduced scope for invoice creation
	// and lookup from payment terminals.
	POS Facade = "pos"
)

// MissingTokenError reports a facade for which no credential is configured.
type MissingTokenError struct {
	Facade Facade
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("facade: no token configured for %q", e.Facade)
}

// TokenContainer maps facades to bearer credentials. Tokens are loaded once
// at client construction; lookups afterwards are read-only.
type TokenContainer struct {
	tokens map[Facade]string
}

// NewTokenContainer returns an empty container.
func NewTokenContainer() *TokenContainer {
	return &TokenContainer{tokens: make(map[Facade]string)}
}

// Put registers token for f, replacing any previous value. Empty tokens are
// ignored so configs can list all facades and fill only the granted ones.
func (t *TokenContainer) Put(f Facade, token string) {
	if token == "" {
		return
	}
	t.tokens[f] = token
}

// Token returns the credential for f, or a *MissingTokenError when none is
// configured.
func (t *TokenContainer) Token(f Facade) (string, error) {
	token, ok := t.tokens[f]
	if !ok {
		return "", &MissingTokenError{Facade: f}
	}
	return token, nil
}
