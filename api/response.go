package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is a successful API response.
type Response struct {
	StatusCode int
	Header     http.Header
	// Body is the JSON document returned by the API, "null" when the response had no body.
	Body json.RawMessage
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if r == nil {
		return fmt.Errorf("no response to decode")
	}
	return json.Unmarshal(r.Body, v)
}

// Map returns the response body as a generic map. It is nil when the body was empty.
func (r *Response) Map() (map[string]any, error) {
	var m map[string]any
	if err := r.Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

// ID is an identifier the API sends either as a JSON string or a JSON number.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// ServeResponse is returned by ChooseVariations and Search.
type ServeResponse struct {
	*Response `json:"-"`

	Choices []Choice `json:"choices"`
}

// Choice is the decision made for one campaign.
type Choice struct {
	ID         ID          `json:"id"`
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	DecisionID ID          `json:"decisionId"`
	Groups     []string    `json:"groups,omitempty"`
	Variations []Variation `json:"variations"`
}

// Variation is a variation served for a choice.
type Variation struct {
	ID      ID      `json:"id"`
	Payload Payload `json:"payload"`
}

// Payload is the content of a variation. Data depends on Type and is left undecoded.
type Payload struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// CollectResponse is returned by the tracking operations.
type CollectResponse struct {
	*Response `json:"-"`

	Warnings []Warning `json:"warnings,omitempty"`
}

// Warning is a non-fatal problem reported for an accepted request.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FeedResponse is returned by the feed and user data update operations.
type FeedResponse struct {
	*Response `json:"-"`

	TransactionID ID `json:"transactionId,omitempty"`
}

// TransactionStatusResponse is returned by the feed transaction status operations.
type TransactionStatusResponse struct {
	*Response `json:"-"`

	Status string `json:"status,omitempty"`
}

// ProfileResponse is returned by ProfileAnywhere.
type ProfileResponse struct {
	*Response `json:"-"`
}
