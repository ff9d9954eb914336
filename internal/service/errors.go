package service

import "errors"

var (
	// ErrInvalidConfiguration is the only synchronous authentication failure:
	// Authenticate was called without an auth token or credentials.
	ErrInvalidConfiguration = errors.New("invalid configuration: auth token or credentials required")

	// ErrNoAuthToken is returned by ExpireToken when there is no session to
	// log out of.
	ErrNoAuthToken = errors.New("no auth token in session")

	// ErrMissingCredentials is returned by LoginWithMFA when no credential
	// login preceded it in this session.
	ErrMissingCredentials = errors.New("no credentials stored for MFA login")

	// ErrUnableToAuthenticate is returned by a wrapped call whose recovery
	// episode did not complete within the recovery timeout. The same terminal
	// condition is announced on the critical event channel.
	ErrUnableToAuthenticate = errors.New("invalid token and unable to authenticate")

	// ErrNoAccount is returned by order placement when no account bootstrap
	// has succeeded for the current token.
	ErrNoAccount = errors.New("no account bootstrapped for session")

	// ErrEmptyResponse indicates a 2xx response whose body did not contain
	// the expected field.
	ErrEmptyResponse = errors.New("response body missing expected field")
)
