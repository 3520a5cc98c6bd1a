package relay

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/asecurityteam/runhttp"
	"github.com/leonyu5566/sp500-ai-advisor/pkg/domain"
	"github.com/leonyu5566/sp500-ai-advisor/pkg/gemini"
)

// APIConfig holds the upstream credential. It is a separate group so
// that the credential is read from GEMINI_API_KEY.
type APIConfig struct {
	Key string `description:"Credential for the generative-language API. Requests fail with a 500 while unset."`
}

// Name of the configuration group.
func (*APIConfig) Name() string {
	return "api"
}

// Config is the settings group for the upstream API.
type Config struct {
	API      *APIConfig
	Endpoint string `description:"Scheme and host of the generative-language API."`
	Model    string `description:"Model that receives every prompt."`
}

// Name of the configuration group.
func (*Config) Name() string {
	return "gemini"
}

// Component builds a PromptRelay from settings.
type Component struct {
	// Generator replaces the Gemini client when set. The mocked
	// build modes use this to answer without calling upstream.
	Generator domain.Generator
	// HTTPClient is given to the Gemini client. Nil means the
	// default client.
	HTTPClient *http.Client
	// FallbackCredential is used when GEMINI_API_KEY is unset.
	FallbackCredential string
	LogFn              domain.LogFn
	StatFn             domain.StatFn
}

// NewComponent populates the defaults.
func NewComponent() *Component {
	return &Component{
		LogFn:  runhttp.LoggerFromContext,
		StatFn: runhttp.StatFromContext,
	}
}

// Settings returns the default configuration.
func (*Component) Settings() *Config {
	return &Config{
		API:      &APIConfig{},
		Endpoint: gemini.DefaultEndpoint,
		Model:    gemini.DefaultModel,
	}
}

// New constructs a PromptRelay. A missing credential is not an error
// here; it is reported to callers on each request instead.
func (c *Component) New(_ context.Context, conf *Config) (*PromptRelay, error) {
	if _, err := url.ParseRequestURI(conf.Endpoint); err != nil {
		return nil, fmt.Errorf("invalid gemini endpoint %q: %w", conf.Endpoint, err)
	}
	generator := c.Generator
	if generator == nil {
		generator = &gemini.Client{
			HTTPClient: c.HTTPClient,
			Endpoint:   conf.Endpoint,
			Model:      conf.Model,
		}
	}
	credential := c.FallbackCredential
	if conf.API != nil && conf.API.Key != "" {
		credential = conf.API.Key
	}
	return &PromptRelay{
		Credential: credential,
		Generator:  generator,
		LogFn:      c.LogFn,
		StatFn:     c.StatFn,
	}, nil
}
