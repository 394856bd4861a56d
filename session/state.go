// Package session holds the visitor identity attached to Experience API requests.
//
// A State is an immutable snapshot. A Holder publishes snapshots atomically, so
// concurrent requests always read a complete identity even while a response is
// updating it.
package session

import (
	"encoding/binary"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Cookie names the Experience API uses to hand identity back to the caller.
const (
	// UserCookie carries the server-assigned user id (dyid).
	UserCookie = "_dyid_server"
	// SessionCookie carries the session id.
	SessionCookie = "_dyjsession"
)

// State is the identity sent along with every identity-bearing request.
type State struct {
	SessionID string `yaml:"sessionId,omitempty" json:"sessionId,omitempty"`
	UserID    string `yaml:"userId,omitempty" json:"userId,omitempty"`
	// ConsentAccepted is nil when the visitor's consent is unknown.
	ConsentAccepted *bool `yaml:"consentAccepted,omitempty" json:"consentAccepted,omitempty"`
}

// HasIdentity reports whether both the session id and the user id are set.
func (s State) HasIdentity() bool {
	return s.SessionID != "" && s.UserID != ""
}

// WithConsent returns a copy of s with the consent flag set.
func (s State) WithConsent(accepted bool) State {
	s.ConsentAccepted = &accepted
	return s
}

// NewSessionID returns a new random session id.
func NewSessionID() string {
	return uuid.NewString()
}

// NewUserID returns a new random user id. User ids are decimal, like the ones the API assigns.
func NewUserID() string {
	id := uuid.New()
	return strconv.FormatUint(binary.BigEndian.Uint64(id[:8])>>1, 10)
}

// Update is an optional change to a State. Nil fields are left untouched.
type Update struct {
	SessionID *string
	UserID    *string
}

// IsZero reports whether the update changes nothing.
func (u Update) IsZero() bool {
	return u.SessionID == nil && u.UserID == nil
}

// On returns s with the update applied.
func (u Update) On(s State) State {
	if u.SessionID != nil {
		s.SessionID = *u.SessionID
	}
	if u.UserID != nil {
		s.UserID = *u.UserID
	}
	return s
}

// Holder owns the current identity of one client.
// It is safe for concurrent use.
type Holder struct {
	state atomic.Pointer[State]
}

// NewHolder returns a Holder publishing initial.
func NewHolder(initial State) *Holder {
	h := &Holder{}
	h.Set(initial)
	return h
}

// Load returns the current snapshot.
func (h *Holder) Load() State {
	if s := h.state.Load(); s != nil {
		return *s
	}
	return State{}
}

// Set replaces the current snapshot.
func (h *Holder) Set(s State) {
	h.state.Store(&s)
}

// Apply publishes a new snapshot with u applied and returns it.
func (h *Holder) Apply(u Update) State {
	return h.swap(u.On)
}

// SetConsent publishes a new snapshot with the consent flag set.
func (h *Holder) SetConsent(accepted bool) State {
	return h.swap(func(s State) State { return s.WithConsent(accepted) })
}

func (h *Holder) swap(fn func(State) State) State {
	for {
		old := h.state.Load()
		var cur State
		if old != nil {
			cur = *old
		}
		next := fn(cur)
		if h.state.CompareAndSwap(old, &next) {
			return next
		}
	}
}
