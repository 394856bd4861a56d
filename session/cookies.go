package session

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
)

// Cookie is an entry of the cookies array returned in Experience API response bodies.
type Cookie struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	MaxAge string `json:"maxAge,omitempty"`
}

// FromCookies inspects a JSON response body for identity cookies.
//
// Only the top-level "cookies" array is read. Entries named UserCookie and SessionCookie
// become the UserID and SessionID of the returned Update. This never fails: malformed
// bodies or entries are logged at debug level and skipped.
func FromCookies(body []byte) Update {
	var u Update
	if len(body) == 0 {
		return u
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		// arrays, scalars and invalid json carry no cookies
		pterm.Debug.Printfln("cookie sync: response body is not an object: %s", err)
		return u
	}

	raw, ok := doc["cookies"]
	if !ok {
		return u
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		pterm.Debug.Printfln("cookie sync: cookies is not an array: %s", err)
		return u
	}

	for i, entry := range entries {
		c, err := parseCookie(entry)
		if err != nil {
			pterm.Debug.Printfln("cookie sync: skipping cookie %d: %s", i, err)
			continue
		}
		value := c.Value
		switch c.Name {
		case UserCookie:
			u.UserID = &value
		case SessionCookie:
			u.SessionID = &value
		}
	}

	return u
}

// parseCookie decodes a single cookie entry. maxAge may be sent as a number or a string.
func parseCookie(raw json.RawMessage) (Cookie, error) {
	var entry struct {
		Name   *string         `json:"name"`
		Value  *string         `json:"value"`
		MaxAge json.RawMessage `json:"maxAge"`
	}
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Cookie{}, fmt.Errorf("invalid cookie entry: %w", err)
	}
	if entry.Name == nil || entry.Value == nil {
		return Cookie{}, fmt.Errorf("cookie entry is missing name or value")
	}
	if *entry.Value == "" {
		return Cookie{}, fmt.Errorf("cookie %s has an empty value", *entry.Name)
	}

	c := Cookie{Name: *entry.Name, Value: *entry.Value}
	if len(entry.MaxAge) > 0 {
		var s string
		if err := json.Unmarshal(entry.MaxAge, &s); err == nil {
			c.MaxAge = s
		} else {
			var n json.Number
			if err := json.Unmarshal(entry.MaxAge, &n); err == nil {
				c.MaxAge = n.String()
			}
		}
	}
	return c, nil
}
