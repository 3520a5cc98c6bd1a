package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leonyu5566/sp500-ai-advisor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func helloPayload() domain.UpstreamPayload {
	return domain.UpstreamPayload{
		Contents: []domain.Content{
			{Role: "user", Parts: []domain.Part{{Text: "hello"}}},
		},
	}
}

func TestClientSendsPayload(t *testing.T) {
	var (
		gotPath        string
		gotKey         string
		gotContentType string
		gotBody        []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"candidates":[{"text":"hi"}]}`))
	}))
	defer server.Close()

	c := &Client{HTTPClient: server.Client(), Endpoint: server.URL}
	res, err := c.GenerateContent(context.Background(), "K", helloPayload())
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "K", gotKey)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"contents":[{"role":"user","parts":[{"text":"hello"}]}]}`, string(gotBody))
	assert.Equal(t, `{"candidates":[{"text":"hi"}]}`, string(res))
}

func TestClientModelAndTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := &Client{HTTPClient: server.Client(), Endpoint: server.URL + "/", Model: "gemini-1.5-pro"}
	_, err := c.GenerateContent(context.Background(), "K", helloPayload())
	require.NoError(t, err)
	assert.Equal(t, "/v1beta/models/gemini-1.5-pro:generateContent", gotPath)
}

func TestClientURLDefaults(t *testing.T) {
	c := &Client{}
	assert.Equal(
		t,
		"https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent?key=K",
		c.url("K"),
	)
	assert.Contains(t, c.url("a&b"), "key=a%26b")
}

func TestClientUpstreamError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, body: "rate limited"},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":{"code":400}}`},
		{name: "server error", status: http.StatusServiceUnavailable, body: ""},
		{name: "not modified", status: http.StatusNotModified, body: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := &Client{HTTPClient: server.Client(), Endpoint: server.URL}
			_, err := c.GenerateContent(context.Background(), "K", helloPayload())
			require.Error(t, err)

			var upstream domain.UpstreamError
			require.True(t, errors.As(err, &upstream))
			assert.Equal(t, tt.status, upstream.Status)
			assert.Equal(t, tt.body, upstream.Body)
			assert.Equal(t, Name, upstream.Name)
		})
	}
}

func TestClientTransportError(t *testing.T) {
	c := &Client{
		HTTPClient: &http.Client{
			Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
				return nil, errors.New("ECONNRESET")
			}),
		},
	}
	_, err := c.GenerateContent(context.Background(), "secret", helloPayload())
	require.Error(t, err)

	var transport domain.TransportError
	require.True(t, errors.As(err, &transport))
	assert.Equal(t, "ECONNRESET", err.Error())
	assert.NotContains(t, err.Error(), "secret")
}

func TestClientCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &Client{HTTPClient: server.Client(), Endpoint: server.URL}
	_, err := c.GenerateContent(ctx, "K", helloPayload())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.IsType(t, domain.TransportError{}, err)
}

func TestClientPassesBodyVerbatim(t *testing.T) {
	body := "{ \"candidates\" : [ ] }\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	c := &Client{HTTPClient: server.Client(), Endpoint: server.URL}
	res, err := c.GenerateContent(context.Background(), "K", helloPayload())
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(body), res)
}
