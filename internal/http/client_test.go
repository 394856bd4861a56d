package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dyapi/dyctl/internal/http/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{
			name:    "valid URL",
			baseURL: "https://dy-api.com",
			wantErr: false,
		},
		{
			name:    "invalid URL",
			baseURL: "://invalid-url",
			wantErr: true,
		},
		{
			name:    "relative URL",
			baseURL: "/v2",
			wantErr: true,
		},
		{
			name:    "URL with path",
			baseURL: "https://dy-api.eu/v2",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDoer := mock.NewMockHTTPDoer(ctrl)
			client, err := NewClient(tt.baseURL, mockDoer)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, client)
				assert.Equal(t, mockDoer, client.doer)
			}
		})
	}
}

func TestClient_BaseURL(t *testing.T) {
	client, err := NewClient("https://dy-api.com/v2", &http.Client{})
	require.NoError(t, err)
	assert.Equal(t, "https://dy-api.com/v2", client.BaseURL())
}

func TestClient_Do(t *testing.T) {
	tests := []struct {
		name        string
		basePath    string
		requestPath string
		expectPath  string
		expectQuery string
	}{
		{
			name:        "simple path",
			requestPath: "/serve/user/choose",
			expectPath:  "/serve/user/choose",
		},
		{
			name:        "base URL with path",
			basePath:    "/v2",
			requestPath: "/collect/user/pageview",
			expectPath:  "/v2/collect/user/pageview",
		},
		{
			name:        "base URL with trailing slash",
			basePath:    "/v2/",
			requestPath: "/feeds/branch/outage/bulk",
			expectPath:  "/v2/feeds/branch/outage/bulk",
		},
		{
			name:        "relative request path",
			basePath:    "/v2",
			requestPath: "userdata/events",
			expectPath:  "/v2/userdata/events",
		},
		{
			name:        "path with query params",
			basePath:    "/v2",
			requestPath: "/userprofile?cuid=abc&cuidType=email",
			expectPath:  "/v2/userprofile",
			expectQuery: "cuid=abc&cuidType=email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var capturedURL *url.URL
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				capturedURL = r.URL
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client, err := NewClient(server.URL+tt.basePath, &http.Client{})
			require.NoError(t, err)

			reqURL, err := url.Parse(tt.requestPath)
			require.NoError(t, err)

			req := &http.Request{
				Method: "GET",
				URL:    reqURL,
				Header: make(http.Header),
			}

			resp, err := client.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.NotNil(t, capturedURL)
			assert.Equal(t, tt.expectPath, capturedURL.Path)
			assert.Equal(t, tt.expectQuery, capturedURL.RawQuery)
		})
	}
}

func TestClient_Do_WithMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDoer := mock.NewMockHTTPDoer(ctrl)
	client, err := NewClient("https://dy-api.com/v2", mockDoer)
	require.NoError(t, err)

	expectedResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader("{}")),
	}

	mockDoer.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "https://dy-api.com/v2/feeds/feed%2F1/bulk", req.URL.String())
		assert.Equal(t, "POST", req.Method)
		return expectedResp, nil
	})

	reqURL := &url.URL{Path: "/feeds/feed/1/bulk", RawPath: "/feeds/feed%2F1/bulk"}
	req := &http.Request{
		Method: "POST",
		URL:    reqURL,
		Header: make(http.Header),
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, expectedResp, resp)
	// the caller's request is left as is
	assert.Equal(t, "/feeds/feed/1/bulk", req.URL.Path)
}

func TestClient_Do_PreservesHeaders(t *testing.T) {
	var capturedHeaders http.Header
	var capturedBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedHeaders = r.Header
		b, _ := io.ReadAll(r.Body)
		capturedBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, &http.Client{})
	require.NoError(t, err)

	reqURL, _ := url.Parse("/test")
	req := &http.Request{
		Method: "POST",
		URL:    reqURL,
		Header: make(http.Header),
		Body:   io.NopCloser(strings.NewReader(`{"a":1}`)),
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("dy-api-key", "k")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", capturedHeaders.Get("Content-Type"))
	assert.Equal(t, "k", capturedHeaders.Get("dy-api-key"))
	assert.Equal(t, `{"a":1}`, capturedBody)
}
