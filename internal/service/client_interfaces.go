// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rcorral/go-robinhood/models"
)

// AuthOptions selects the authentication path. When both fields are set the
// token path takes priority; when neither is set Authenticate fails
// synchronously with [ErrInvalidConfiguration].
type AuthOptions struct {
	// AuthToken, when non-empty, is adopted directly as the session token,
	// bypassing the login endpoint.
	AuthToken string
	// Credentials, when set, are used for the credential login path and are
	// retained in memory for transparent re-authentication.
	Credentials *models.Credentials
}

// ClientAuthService drives the authentication lifecycle. All of its
// operations are asynchronous: they return quickly and report progress and
// failure through the event bus. The only synchronous failures are the
// documented sentinel errors.
type ClientAuthService interface {
	// Authenticate starts the token or credential login path per opts.
	// Returns [ErrInvalidConfiguration] synchronously when opts carries
	// neither a token nor credentials; every other outcome (Authenticated,
	// MFARequested, Error) arrives on the bus.
	Authenticate(ctx context.Context, opts AuthOptions) error

	// LoginWithMFA repeats the credential login including the one-time code
	// requested via the MFARequested event. Returns [ErrMissingCredentials]
	// synchronously if no credential login preceded it; the outcome arrives
	// on the bus.
	LoginWithMFA(ctx context.Context, code string) error

	// AuthToken returns the current session token, or an empty string before
	// the first successful adoption and after logout.
	AuthToken() string

	// ExpireToken logs the session out and resets all session state.
	// Returns [ErrNoAuthToken] when the session holds no token. The logout
	// endpoint's failure is returned but the local session is reset
	// regardless, so the client never keeps a token it attempted to discard.
	ExpireToken(ctx context.Context) error
}

// ClientAccountService exposes the account endpoints.
type ClientAccountService interface {
	// Accounts lists the brokerage accounts of the authenticated user.
	Accounts(ctx context.Context) ([]models.Account, error)
}

// ClientMarketService exposes the read-only market data endpoints. Every call
// passes through the invalid-token recovery machinery.
type ClientMarketService interface {
	// Quote fetches quotes for one or more symbols. Symbols are upper-cased
	// and comma-joined into a single request.
	Quote(ctx context.Context, symbols ...string) ([]models.Quote, error)

	// Instrument fetches a single instrument by its identifier.
	Instrument(ctx context.Context, instrumentID string) (models.Instrument, error)

	// InstrumentBySymbol looks instruments up by ticker symbol.
	InstrumentBySymbol(ctx context.Context, symbol string) ([]models.Instrument, error)

	// Fundamentals fetches fundamental indicators for a symbol.
	Fundamentals(ctx context.Context, symbol string) (models.Fundamentals, error)

	// URL fetches an arbitrary API resource, relative path or absolute URL.
	// Escape hatch for HAL-style cross references in API payloads.
	URL(ctx context.Context, uri string) (json.RawMessage, error)
}

// OrderFilter narrows the order list endpoint.
type OrderFilter struct {
	// UpdatedSince, when non-zero, restricts the listing to orders updated
	// at or after the given instant.
	UpdatedSince time.Time
}

// ClientOrderService exposes the order endpoints. Every call passes through
// the invalid-token recovery machinery.
type ClientOrderService interface {
	// PlaceBuyOrder submits a buy order built from opts over the endpoint
	// defaults, charged to the bootstrapped account.
	PlaceBuyOrder(ctx context.Context, opts models.OrderOptions) (models.Order, error)

	// PlaceSellOrder submits a sell order built from opts over the endpoint
	// defaults, charged to the bootstrapped account.
	PlaceSellOrder(ctx context.Context, opts models.OrderOptions) (models.Order, error)

	// Orders lists orders, optionally filtered.
	Orders(ctx context.Context, filter OrderFilter) ([]models.Order, error)

	// Order fetches a single order by its identifier.
	Order(ctx context.Context, orderID string) (models.Order, error)

	// CancelOrder cancels the given order. Orders already in a terminal
	// state resolve to an empty result without any network call.
	CancelOrder(ctx context.Context, order models.Order) (json.RawMessage, error)
}

// ClientSessionJob is a background worker that periodically re-validates the
// session against the accounts endpoint so that an expired token is
// discovered (and recovered from) before the next user-initiated call.
type ClientSessionJob interface {
	// Start launches the background goroutine. It checks every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
