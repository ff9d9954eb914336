package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"github.com/rcorral/go-robinhood/internal/adapter"
	"github.com/rcorral/go-robinhood/internal/events"
	"github.com/rcorral/go-robinhood/internal/logger"
	"github.com/rcorral/go-robinhood/internal/session"
	"github.com/rcorral/go-robinhood/models"
)

type clientAuthService struct {
	adapter adapter.APIAdapter
	state   *session.State
	bus     *events.Bus
	logger  *logger.Logger

	mu          sync.Mutex
	credentials *models.Credentials
}

func NewClientAuthService(apiAdapter adapter.APIAdapter, state *session.State, bus *events.Bus, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: apiAdapter, state: state, bus: bus, logger: logger}
}

// Authenticate implements [ClientAuthService]. Option validation is the one
// synchronous failure; the selected path runs on its own goroutine and
// reports through the bus.
func (a *clientAuthService) Authenticate(ctx context.Context, opts AuthOptions) error {
	if opts.AuthToken == "" && opts.Credentials == nil {
		return ErrInvalidConfiguration
	}

	a.mu.Lock()
	a.credentials = opts.Credentials
	a.mu.Unlock()

	go func() {
		if opts.AuthToken != "" {
			a.adoptToken(ctx, opts.AuthToken)
			return
		}
		a.login(ctx, "")
	}()

	return nil
}

// LoginWithMFA implements [ClientAuthService].
func (a *clientAuthService) LoginWithMFA(ctx context.Context, code string) error {
	if a.storedCredentials() == nil {
		return ErrMissingCredentials
	}

	go a.login(ctx, code)
	return nil
}

// AuthToken implements [ClientAuthService].
func (a *clientAuthService) AuthToken() string {
	return a.state.Token()
}

// ExpireToken implements [ClientAuthService].
func (a *clientAuthService) ExpireToken(ctx context.Context) error {
	if a.state.Token() == "" {
		return ErrNoAuthToken
	}

	_, err := a.adapter.Post(ctx, endpointTokenLogout, nil)

	a.state.Clear()
	a.mu.Lock()
	a.credentials = nil
	a.mu.Unlock()

	a.logger.Info().Msg("session logged out")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return nil
}

// Reauthenticate re-runs the credential login path after the current token
// was rejected. The session is reset first; only credentials can recover from
// an invalid token, since the token itself is what proved invalid.
func (a *clientAuthService) Reauthenticate(ctx context.Context) {
	a.state.Clear()
	a.login(ctx, "")
}

// login performs one call to the token-auth endpoint. An empty mfaCode is the
// plain credential path; a non-empty one is the MFA completion path. The two
// paths differ only in the form body and in how failure is classified.
func (a *clientAuthService) login(ctx context.Context, mfaCode string) {
	creds := a.storedCredentials()
	form := url.Values{}
	if creds != nil {
		form.Set("username", creds.Username)
		form.Set("password", creds.Password)
	}
	if mfaCode != "" {
		form.Set("mfa_code", mfaCode)
	}

	body, err := a.adapter.Post(ctx, endpointTokenAuth, form)
	if err != nil {
		code := events.CodeAuthentication
		if mfaCode != "" {
			code = events.CodeAuthenticationMFA
		}
		a.emitError(code, err.Error())
		return
	}

	var res models.AuthResponse
	if err = json.Unmarshal(body, &res); err != nil {
		a.emitError(events.CodeUnhandled, "Authentication body response is invalid")
		return
	}

	switch {
	case res.Token != "":
		a.adoptToken(ctx, res.Token)
	case mfaCode != "":
		a.emitError(events.CodeUnhandled, "No token when authenticating using MFA")
	case res.MFARequired:
		a.logger.Info().Str("mfa_type", res.MFAType).Msg("mfa challenge requested")
		a.bus.Publish(events.Event{Type: events.MFARequested, MFAType: res.MFAType})
	default:
		a.emitError(events.CodeUnhandled, "Authentication body response is invalid")
	}
}

// adoptToken installs token as the current session token and bootstraps the
// account. On bootstrap failure the token stays set: a later call may still
// succeed once the account becomes fetchable, or will route through the
// invalid-token recovery if the real cause was token expiry.
func (a *clientAuthService) adoptToken(ctx context.Context, token string) {
	a.state.Clear()
	a.state.SetToken(token)

	body, err := a.adapter.Get(ctx, endpointAccounts, nil)
	if err != nil {
		a.emitError(events.CodeSettingAccount, err.Error())
		return
	}

	var res models.AccountsResponse
	if err = json.Unmarshal(body, &res); err != nil || len(res.Results) == 0 {
		a.emitError(events.CodeSettingAccount, "accounts response has no results")
		return
	}

	a.state.SetAccount(&res.Results[0])
	a.logger.Info().Str("account", res.Results[0].AccountNumber).Msg("session authenticated")
	a.bus.Publish(events.Event{Type: events.Authenticated})
}

func (a *clientAuthService) storedCredentials() *models.Credentials {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.credentials
}

func (a *clientAuthService) emitError(code events.Code, message string) {
	a.logger.Error().Str("code", string(code)).Msg(message)
	a.bus.Publish(events.Event{Type: events.Error, Code: code, Message: message})
}
