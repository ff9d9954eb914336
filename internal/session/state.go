// Package session holds the mutable client session: the auth token, the
// bootstrapped account, and the request header snapshot derived from them.
//
// The three values form a single unit. Every mutation goes through one of the
// State methods under one lock, so a reader always observes a fully-updated
// triple and never a token without its matching Authorization header.
package session

import (
	"sync"

	"github.com/rcorral/go-robinhood/models"
)

// Default header set attached to every API request. The Authorization header
// is added on top of these whenever a token is present.
var defaultHeaders = map[string]string{
	"Accept":                  "application/json",
	"Accept-Encoding":         "gzip, deflate",
	"Accept-Language":         "en;q=1, fr;q=0.9, de;q=0.8, ja;q=0.7, nl;q=0.6, it;q=0.5",
	"Content-Type":            "application/x-www-form-urlencoded; charset=utf-8",
	"X-Robinhood-API-Version": "1.152.0",
	"Connection":              "keep-alive",
	"User-Agent":              "Robinhood/823 (iPhone; iOS 7.1.2; Scale/2.00)",
}

// State is the session's shared mutable state. The zero value is not usable;
// construct with New.
type State struct {
	mu      sync.RWMutex
	token   string
	account *models.Account
	headers map[string]string
}

// New returns an unauthenticated State carrying only the default headers.
func New() *State {
	s := &State{}
	s.rebuildHeadersLocked()
	return s
}

// SetToken replaces the session token. The account is cleared (it belongs to
// the previous token) and the header snapshot is rebuilt in the same critical
// section, so no request constructed afterwards can see a stale triple.
func (s *State) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.account = nil
	s.rebuildHeadersLocked()
}

// SetAccount stores the bootstrapped account for the current token.
func (s *State) SetAccount(account *models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = account
}

// Clear resets the session back to the unauthenticated state: no token, no
// account, default headers only.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.account = nil
	s.rebuildHeadersLocked()
}

// Token returns the current auth token, or an empty string when the session
// is unauthenticated.
func (s *State) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Account returns the bootstrapped account, or nil if no account fetch has
// succeeded since the last token change.
func (s *State) Account() *models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account
}

// Headers returns a copy of the current request header snapshot.
func (s *State) Headers() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	headers := make(map[string]string, len(s.headers))
	for k, v := range s.headers {
		headers[k] = v
	}
	return headers
}

func (s *State) rebuildHeadersLocked() {
	headers := make(map[string]string, len(defaultHeaders)+1)
	for k, v := range defaultHeaders {
		headers[k] = v
	}
	if s.token != "" {
		headers["Authorization"] = "Token " + s.token
	}
	s.headers = headers
}
