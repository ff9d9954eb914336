package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rcorral/go-robinhood/internal/events"
	"github.com/rcorral/go-robinhood/internal/logger"
	"github.com/rcorral/go-robinhood/models"
)

// criticalMessage is announced on the critical channel when a recovery
// episode exceeds the recovery timeout.
const criticalMessage = "Invalid token and unable to authenticate"

// reauthenticator is the slice of the auth service the recovery machinery
// needs: reset the session and re-run the credential login.
type reauthenticator interface {
	Reauthenticate(ctx context.Context)
}

// authEpisode tracks one logical recovery timeline. Concurrent calls that
// each hit an invalid-token failure share the episode, so only one login is
// in flight and at most one critical escalation is announced for it.
type authEpisode struct {
	critical sync.Once
}

// recoveryService wraps every authenticated API call: it classifies failures,
// coalesces re-authentication, and replays the original call once the session
// has been re-established.
type recoveryService struct {
	bus     *events.Bus
	auth    reauthenticator
	timeout time.Duration
	logger  *logger.Logger

	mu      sync.Mutex
	episode *authEpisode
}

func newRecoveryService(bus *events.Bus, auth reauthenticator, timeout time.Duration, logger *logger.Logger) *recoveryService {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &recoveryService{bus: bus, auth: auth, timeout: timeout, logger: logger}
}

// Do executes call and, when it fails with an invalid-token condition,
// recovers once and replays it. Ordering within one call's lifecycle:
// original call, then recovery login, then the replayed call.
//
// Any other failure is returned to the caller unchanged. When recovery does
// not complete within the timeout, Do announces a single critical
// UNABLE_TO_AUTHENTICATE event for the episode and returns
// [ErrUnableToAuthenticate].
func (r *recoveryService) Do(ctx context.Context, call func(context.Context) ([]byte, error)) ([]byte, error) {
	body, err := call(ctx)
	if err == nil || !isInvalidTokenError(err) {
		return body, err
	}

	r.logger.Warn().Msg("invalid token detected, starting recovery")

	// Subscribe before kicking off the login so the transition cannot be
	// missed between the two steps.
	sub := r.bus.Subscribe(events.Authenticated)
	defer sub.Close()

	episode := r.beginEpisode(ctx)

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	select {
	case <-sub.C:
		r.endEpisode(episode)
		return call(ctx)
	case <-timer.C:
		r.endEpisode(episode)
		episode.critical.Do(func() {
			r.logger.Error().Msg("recovery timed out")
			r.bus.Publish(events.Event{
				Type:    events.Critical,
				Code:    events.CodeUnableToAuthenticate,
				Message: criticalMessage,
			})
		})
		return nil, ErrUnableToAuthenticate
	case <-ctx.Done():
		r.endEpisode(episode)
		return nil, ctx.Err()
	}
}

// beginEpisode joins the in-flight recovery episode, starting one (and the
// single coalesced login) if none exists. The login runs detached from the
// failing call's context: recovery serves every concurrent caller, not just
// the one that happened to trigger it.
func (r *recoveryService) beginEpisode(ctx context.Context) *authEpisode {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.episode != nil {
		return r.episode
	}

	episode := &authEpisode{}
	r.episode = episode
	go r.auth.Reauthenticate(context.WithoutCancel(ctx))
	return episode
}

func (r *recoveryService) endEpisode(episode *authEpisode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.episode == episode {
		r.episode = nil
	}
}

// isInvalidTokenError reports whether err is an API failure whose detail,
// reduced to its letters and lower-cased, reads "invalidtoken". Every other
// failure shape is not recoverable by re-authentication.
func isInvalidTokenError(err error) bool {
	var apiErr *models.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return normalizeDetail(apiErr.Detail) == "invalidtoken"
}

func normalizeDetail(detail string) string {
	var b strings.Builder
	for _, r := range detail {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}
