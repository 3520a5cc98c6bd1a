package promptrelay

import (
	"context"

	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
	"github.com/leonyu5566/sp500-ai-advisor/pkg/domain"
	"github.com/leonyu5566/sp500-ai-advisor/pkg/relay"
)

// settingsPrefix namespaces the runtime settings, as in
// RELAY_RUNTIME_HTTPSERVER_ADDRESS.
const settingsPrefix = "RELAY"

// NewRelay loads a PromptRelay from the GEMINI_* settings.
func NewRelay(ctx context.Context, s settings.Source, c *relay.Component) (*relay.PromptRelay, error) {
	r := new(relay.PromptRelay)
	err := settings.NewComponent(ctx, s, c, r)
	return r, err
}

// NewHTTP generates an HTTP runtime bound to the given relay.
func NewHTTP(ctx context.Context, s settings.Source, r domain.Relay) (*runhttp.Runtime, error) {
	conf := &RouterConfig{
		Relay: r,
	}
	router := NewRouter(conf)
	rtC := runhttp.NewComponent().WithHandler(router)
	rt := new(runhttp.Runtime)
	err := settings.NewComponent(
		ctx,
		&settings.PrefixSource{Source: s, Prefix: []string{settingsPrefix}},
		rtC,
		rt,
	)
	return rt, err
}

// NewLambda generates a native Lambda runtime bound to the given relay.
func NewLambda(ctx context.Context, s settings.Source, r domain.Relay) (*LambdaRuntime, error) {
	rt := new(LambdaRuntime)
	err := settings.NewComponent(
		ctx,
		&settings.PrefixSource{Source: s, Prefix: []string{settingsPrefix}},
		&LambdaComponent{Relay: r},
		rt,
	)
	return rt, err
}
