// SPDX-License-Identifier: Apache-2.0

// Package events implements the notification bus through which the session
// announces lifecycle transitions (authenticated, MFA requested, error,
// critical) to its callers. The bus is the only way callers observe login
// progress; there is no synchronous "wait for login" call anywhere in the
// client.
package events

import "sync"

// Type names a lifecycle signal.
type Type string

const (
	// Authenticated fires after a token has been adopted and the account
	// bootstrap has completed.
	Authenticated Type = "authenticated"
	// MFARequested fires when the credential login path discovers that a
	// multi-factor code is required. Event.MFAType carries the factor kind.
	MFARequested Type = "mfa_requested"
	// Error fires for ordinary, single-attempt failures of the auth
	// lifecycle. Event.Code and Event.Message describe the failure.
	Error Type = "error"
	// Critical fires for terminal, session-level failures that supervisory
	// code must treat as "the whole session is unrecoverable", as opposed to
	// Error's "one attempt failed".
	Critical Type = "critical"
)

// Code classifies Error and Critical events.
type Code string

const (
	CodeAuthentication       Code = "AUTHENTICATION"
	CodeAuthenticationMFA    Code = "AUTHENTICATION_MFA"
	CodeSettingAccount       Code = "SETTING_ACCOUNT"
	CodeUnhandled            Code = "UNHANDLED"
	CodeUnableToAuthenticate Code = "UNABLE_TO_AUTHENTICATE"
)

// Event is a single bus notification.
type Event struct {
	Type    Type
	Code    Code
	Message string
	MFAType string
}

// subscriptionBuffer is the channel capacity of each subscription. Publish
// never blocks: a subscriber that falls further behind than this loses
// events.
const subscriptionBuffer = 16

// Bus is a multi-listener fan-out of Events. The zero value is not usable;
// construct with NewBus. All methods are safe for concurrent use.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*Subscription
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]*Subscription)}
}

// Subscription is one listener's view of the bus. Events matching the
// subscribed types arrive on C until Close is called.
type Subscription struct {
	C chan Event

	bus   *Bus
	id    int
	types map[Type]struct{}
}

// Subscribe registers a listener for the given event types. With no types it
// receives every event. The caller must Close the subscription when done.
func (b *Bus) Subscribe(types ...Type) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &Subscription{
		C:   make(chan Event, subscriptionBuffer),
		bus: b,
		id:  b.nextID,
	}
	if len(types) > 0 {
		sub.types = make(map[Type]struct{}, len(types))
		for _, t := range types {
			sub.types[t] = struct{}{}
		}
	}

	b.subs[b.nextID] = sub
	b.nextID++
	return sub
}

// Publish delivers e to every matching subscription without blocking.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subs {
		if !sub.matches(e.Type) {
			continue
		}
		select {
		case sub.C <- e:
		default: // subscriber is not draining; drop rather than stall the session
		}
	}
}

// Close removes the subscription from the bus. Pending events already in C
// remain readable. Safe to call more than once.
func (s *Subscription) Close() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	delete(s.bus.subs, s.id)
}

func (s *Subscription) matches(t Type) bool {
	if s.types == nil {
		return true
	}
	_, ok := s.types[t]
	return ok
}
