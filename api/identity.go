package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dyapi/dyctl/internal/maps"
	"github.com/dyapi/dyctl/session"
)

// IdentityPolicy decides what happens when an identity-bearing operation is called
// without a session id or user id.
type IdentityPolicy string

const (
	// IdentityStrict fails the call with a *PreconditionError before anything is sent.
	IdentityStrict IdentityPolicy = "strict"
	// IdentityLenient sends empty strings in place of the missing values.
	IdentityLenient IdentityPolicy = "lenient"
)

// ParseIdentityPolicy converts s into an IdentityPolicy. An empty string selects IdentityStrict.
func ParseIdentityPolicy(s string) (IdentityPolicy, error) {
	switch p := IdentityPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return IdentityStrict, nil
	case IdentityStrict, IdentityLenient:
		return p, nil
	default:
		return "", fmt.Errorf("unknown identity policy %q (supported: strict, lenient)", s)
	}
}

// Envelope is a request body as supplied by the caller.
// It never needs to carry session or user identity, the client adds it.
type Envelope map[string]any

// mergeIdentity returns a new body made of the caller's body and the identity in state.
//
// session.id, user.dyid and user.dyid_server always come from state. Every other field
// the caller sent is kept, user.sharedDevice and user.active_consent_accepted only get
// a value when the caller left them out.
func mergeIdentity(op Operation, body any, state session.State, policy IdentityPolicy) (map[string]any, error) {
	if policy != IdentityLenient {
		var missing []string
		if state.SessionID == "" {
			missing = append(missing, "session.id")
		}
		if state.UserID == "" {
			missing = append(missing, "user.dyid")
		}
		if len(missing) > 0 {
			return nil, &PreconditionError{Operation: op, Missing: missing}
		}
	}

	out, err := normalize(body)
	if err != nil {
		return nil, err
	}

	maps.Merge(out, map[string]any{
		"session": map[string]any{
			"id": state.SessionID,
		},
		"user": map[string]any{
			"dyid":        state.UserID,
			"dyid_server": state.UserID,
		},
	})

	userDefaults := map[string]any{"sharedDevice": false}
	if state.ConsentAccepted != nil {
		userDefaults["active_consent_accepted"] = *state.ConsentAccepted
	}
	maps.SetDefaults(out, map[string]any{"user": userDefaults})

	return out, nil
}

// normalize turns a caller body into a map the client owns.
// Maps made only of plain json values are deep copied. Anything else, including maps
// that nest an Envelope or a map[string]string, goes through a json round trip and
// must encode as an object.
func normalize(body any) (map[string]any, error) {
	switch b := body.(type) {
	case nil:
		return map[string]any{}, nil
	case Envelope:
		if plain(map[string]any(b)) {
			return maps.Clone(b), nil
		}
	case map[string]any:
		if plain(b) {
			return maps.Clone(b), nil
		}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("request body must be a json object: %w", err)
	}
	if out == nil {
		return map[string]any{}, nil
	}
	return out, nil
}

// plain reports whether v holds only the types maps.Clone and maps.Merge walk into.
func plain(v any) bool {
	switch t := v.(type) {
	case map[string]any:
		for _, child := range t {
			if !plain(child) {
				return false
			}
		}
		return true
	case []any:
		for _, child := range t {
			if !plain(child) {
				return false
			}
		}
		return true
	case nil, string, bool, json.Number,
		float32, float64, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}
