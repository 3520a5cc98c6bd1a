package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/leonyu5566/sp500-ai-advisor/pkg/domain"
)

const (
	// DefaultEndpoint is the public generative-language API host.
	DefaultEndpoint = "https://generativelanguage.googleapis.com"
	// DefaultModel is the model every prompt is sent to.
	DefaultModel = "gemini-2.0-flash"
	// Name identifies the API in upstream error messages.
	Name = "Gemini API"
)

// Client calls the generateContent method of a single model.
type Client struct {
	// HTTPClient is used for every call. The default is
	// http.DefaultClient which leaves timeouts to the transport.
	HTTPClient *http.Client
	// Endpoint is the scheme and host of the API. The default
	// is DefaultEndpoint.
	Endpoint string
	// Model is the model id. The default is DefaultModel.
	Model string
}

// GenerateContent posts the payload and returns the raw upstream
// document of any 2xx response.
func (c *Client) GenerateContent(ctx context.Context, credential string, payload domain.UpstreamPayload) (json.RawMessage, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(credential), bytes.NewReader(b))
	if err != nil {
		return nil, domain.TransportError{Err: withoutURL(err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, domain.TransportError{Err: withoutURL(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.TransportError{Err: err}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domain.UpstreamError{Name: Name, Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}

func (c *Client) url(credential string) string {
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	model := c.Model
	if model == "" {
		model = DefaultModel
	}
	return fmt.Sprintf(
		"%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimRight(endpoint, "/"),
		url.PathEscape(model),
		url.QueryEscape(credential),
	)
}

// withoutURL drops the *url.Error wrapper so that the request URL,
// and the credential in its query, is not repeated in messages.
func withoutURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}
