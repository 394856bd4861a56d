// Package api is a client for the Experience API: campaign variation serving,
// event collection, product and branch feed updates, user data, and profile lookup.
//
// Identity-bearing operations get the client's current session and user identity
// merged into their bodies. See IdentityPolicy for what happens when it is missing.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/dyapi/dyctl/internal/build"
	dyhttp "github.com/dyapi/dyctl/internal/http"
	"github.com/dyapi/dyctl/internal/trace"
	"github.com/dyapi/dyctl/session"
	"github.com/pterm/pterm"
	"go.opentelemetry.io/otel/attribute"
)

// APIKeyHeader carries the API key on every request.
const APIKeyHeader = "dy-api-key"

// HTTPDoer interface for making HTTP requests
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the settings fixed for the lifetime of a Client.
type Config struct {
	APIKey string
	// Region defaults to RegionUS.
	Region Region
	// ExtraHeaders are sent with every request and win over the client's own headers.
	ExtraHeaders map[string]string
}

// Call carries the per-request input of an operation.
type Call struct {
	PathParams map[string]string
	Query      url.Values
	// Body is an Envelope, a map[string]any, or any value that encodes as a JSON object.
	Body any
}

// Client handles Experience API operations. It is safe for concurrent use.
type Client struct {
	http       *dyhttp.Client
	apiKey     string
	region     Region
	headers    map[string]string
	identity   *session.Holder
	store      session.Store
	policy     IdentityPolicy
	cookieSync bool

	// persistMu orders writes to store so it always ends on the latest snapshot.
	persistMu sync.Mutex
	// unsaved is set while generated identity has not reached the store yet.
	unsaved atomic.Bool
}

type options struct {
	state        session.State
	generate     bool
	generateUser bool
	consent      *bool
	store        session.Store
	policy       IdentityPolicy
	cookieSync   bool
}

// Option configures optional Client behavior.
type Option func(*options)

// WithSession sets the initial session id and user id.
func WithSession(sessionID, userID string) Option {
	return func(o *options) {
		o.state.SessionID = sessionID
		o.state.UserID = userID
	}
}

// WithGeneratedSession generates a session id when none was set or stored.
// A generated id is written to the store after the first successful
// identity-bearing request, not when the client is created.
func WithGeneratedSession() Option {
	return func(o *options) {
		o.generate = true
	}
}

// WithGeneratedUser generates a user id when none was set or stored. It is saved
// the same way as a generated session id. A user id handed back in the response
// cookies replaces it when cookie sync is on.
func WithGeneratedUser() Option {
	return func(o *options) {
		o.generateUser = true
	}
}

// WithConsent sets the initial visitor consent.
func WithConsent(accepted bool) Option {
	return func(o *options) {
		o.consent = &accepted
	}
}

// WithStore reads the identity from store when the client is created and
// writes every identity update back to it.
func WithStore(store session.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithIdentityPolicy sets how missing identity is handled. The default is IdentityStrict.
func WithIdentityPolicy(p IdentityPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithCookieSync turns updating the identity from response cookies on or off. It is on by default.
func WithCookieSync(enabled bool) Option {
	return func(o *options) {
		o.cookieSync = enabled
	}
}

// NewClient creates a new API client. A nil doer uses a default http client.
func NewClient(cfg Config, doer HTTPDoer, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	region, err := ParseRegion(string(cfg.Region))
	if err != nil {
		return nil, err
	}
	baseURL, err := region.BaseURL()
	if err != nil {
		return nil, err
	}

	o := options{policy: IdentityStrict, cookieSync: true}
	for _, opt := range opts {
		opt(&o)
	}
	if _, err := ParseIdentityPolicy(string(o.policy)); err != nil {
		return nil, err
	}

	if doer == nil {
		doer = dyhttp.DefaultClient
	}
	httpClient, err := dyhttp.NewClient(baseURL, doer)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	state, generated, err := initialState(o)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(cfg.ExtraHeaders))
	for k, v := range cfg.ExtraHeaders {
		headers[k] = v
	}

	c := &Client{
		http:       httpClient,
		apiKey:     cfg.APIKey,
		region:     region,
		headers:    headers,
		identity:   session.NewHolder(state),
		store:      o.store,
		policy:     o.policy,
		cookieSync: o.cookieSync,
	}
	c.unsaved.Store(generated)
	return c, nil
}

// initialState combines, in increasing priority, the stored identity, the explicit
// identity and generated ids. generated reports whether any id was generated.
func initialState(o options) (state session.State, generated bool, err error) {
	if o.store != nil {
		state, err = session.Load(o.store)
		if err != nil {
			return session.State{}, false, fmt.Errorf("failed to load identity: %w", err)
		}
	}
	if o.state.SessionID != "" {
		state.SessionID = o.state.SessionID
	}
	if o.state.UserID != "" {
		state.UserID = o.state.UserID
	}
	if o.generate && state.SessionID == "" {
		state.SessionID = session.NewSessionID()
		generated = true
	}
	if o.generateUser && state.UserID == "" {
		state.UserID = session.NewUserID()
		generated = true
	}
	if o.consent != nil {
		state = state.WithConsent(*o.consent)
	}
	return state, generated, nil
}

// Region returns the region the client sends requests to.
func (c *Client) Region() Region {
	return c.region
}

// BaseURL returns the URL every request path is resolved against.
func (c *Client) BaseURL() string {
	return c.http.BaseURL()
}

// Identity returns the current identity snapshot.
func (c *Client) Identity() session.State {
	return c.identity.Load()
}

// SetSessionAndUser replaces the session id and user id used by identity-bearing operations.
// The new identity is written to the store when one is configured.
func (c *Client) SetSessionAndUser(sessionID, userID string) {
	c.identity.Apply(session.Update{SessionID: &sessionID, UserID: &userID})
	c.unsaved.Store(false)
	c.persist()
}

// SetConsent sets whether the visitor accepted tracking.
func (c *Client) SetConsent(accepted bool) {
	c.identity.SetConsent(accepted)
}

// Do runs op with the given call input.
// Identity is merged into the body first, then the request is sent. Identity cookies in a
// successful response update the client identity when cookie sync is on. Generated
// identity is saved to the store after the first successful identity-bearing request.
func (c *Client) Do(ctx context.Context, op Operation, call Call) (*Response, error) {
	ep, ok := endpoints[op]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", op)
	}

	ctx, span := trace.NewSpan(ctx, "dy."+string(op),
		attribute.String("dy.operation", string(op)),
		attribute.String("http.request.method", ep.Method),
		attribute.String("http.route", ep.Path),
		attribute.String("dy.region", string(c.region)),
	)
	defer span.End()

	req, err := c.prepare(op, ep, call)
	if err != nil {
		return nil, trace.SpanError(span, err)
	}

	resp, err := c.send(ctx, op, req)
	if err != nil {
		return nil, trace.SpanError(span, err)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if ep.Identity && c.unsaved.CompareAndSwap(true, false) {
		c.persist()
	}
	if c.cookieSync {
		c.syncIdentity(resp.Body)
	}

	return resp, nil
}

// request is a fully prepared operation, ready to be sent.
type request struct {
	method string
	url    *url.URL
	body   map[string]any
}

func (c *Client) prepare(op Operation, ep Endpoint, call Call) (*request, error) {
	u, err := ep.resolve(op, call.PathParams, call.Query)
	if err != nil {
		return nil, err
	}

	req := &request{method: ep.Method, url: u}
	switch {
	case ep.Identity:
		req.body, err = mergeIdentity(op, call.Body, c.identity.Load(), c.policy)
	case ep.Body:
		req.body, err = normalize(call.Body)
	case call.Body != nil:
		err = fmt.Errorf("%s does not take a request body", op)
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

// send performs the HTTP round trip and classifies the response. It does not touch client state.
func (c *Client) send(ctx context.Context, op Operation, r *request) (*Response, error) {
	var body io.Reader
	if r.body != nil {
		jsonData, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, r.url.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(APIKeyHeader, c.apiKey)
	req.Header.Set("User-Agent", build.UserAgent())
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }() // Connection cleanup, error doesn't affect functionality

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &HTTPStatusError{Operation: op, StatusCode: resp.StatusCode, Body: raw}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		raw = []byte("null")
	} else if !json.Valid(raw) {
		return nil, fmt.Errorf("failed to decode response: %s returned invalid json", op)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       raw,
	}, nil
}

// syncIdentity applies identity cookies found in body. Failures are logged, never returned.
func (c *Client) syncIdentity(body []byte) {
	u := session.FromCookies(body)
	if u.IsZero() {
		return
	}
	c.identity.Apply(u)
	c.persist()
}

// persist writes the current snapshot to the store. The snapshot is read under
// persistMu, so the last write always carries the latest identity.
func (c *Client) persist() {
	if c.store == nil {
		return
	}
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	s := c.identity.Load()
	if err := session.Save(c.store, session.Update{SessionID: &s.SessionID, UserID: &s.UserID}); err != nil {
		pterm.Debug.Printfln("unable to persist identity: %s", err)
	}
}
