package promptrelay

import (
	"context"
	"fmt"
	"strings"

	"github.com/asecurityteam/settings/v2"
	"github.com/leonyu5566/sp500-ai-advisor/pkg/gemini"
	"github.com/leonyu5566/sp500-ai-advisor/pkg/relay"
)

const (
	// BuildModeHTTP runs an HTTP server exposing the relay route and
	// the Lambda Invoke API.
	BuildModeHTTP = "http"
	// BuildModeHTTPMock runs the HTTP server but answers prompts with
	// an echo instead of calling the upstream API.
	BuildModeHTTPMock = "http_mock"
	// BuildModeLambda runs the official lambda server using the lambda
	// SDK with the relay as an API Gateway proxy function.
	BuildModeLambda = "lambda"
	// BuildModeLambdaMock runs the official lambda server but answers
	// prompts with an echo.
	BuildModeLambdaMock = "lambda_mock"
)

// BuildMode determines the behavior of the Start method. The suggested
// way to set it is through build variables by adding
// `-ldflags "-X github.com/leonyu5566/sp500-ai-advisor/pkg.BuildMode=<value>"`
// to `go build` or `go run` commands. Alternatively, StartMode accepts the
// mode as a parameter.
var BuildMode = BuildModeHTTP

// Start runs the relay in the configured BuildMode.
func Start(ctx context.Context, s settings.Source) error {
	return StartMode(ctx, s, BuildMode)
}

// StartMode works just like Start but allows for explicit passing of the
// build mode.
func StartMode(ctx context.Context, s settings.Source, mode string) error {
	switch {
	case strings.EqualFold(mode, BuildModeHTTP):
		return StartHTTP(ctx, s, relay.NewComponent())
	case strings.EqualFold(mode, BuildModeHTTPMock):
		return StartHTTP(ctx, s, mockComponent())
	case strings.EqualFold(mode, BuildModeLambda):
		return StartLambda(ctx, s, relay.NewComponent())
	case strings.EqualFold(mode, BuildModeLambdaMock):
		return StartLambda(ctx, s, mockComponent())
	default:
		return fmt.Errorf("unknown build mode %s", mode)
	}
}

// mockCredential stands in for GEMINI_API_KEY in the mocked modes. The
// echo generator ignores it.
const mockCredential = "mock"

func mockComponent() *relay.Component {
	c := relay.NewComponent()
	c.Generator = gemini.Echo{}
	c.FallbackCredential = mockCredential
	return c
}

// StartHTTP runs the HTTP API.
func StartHTTP(ctx context.Context, s settings.Source, c *relay.Component) error {
	r, err := NewRelay(ctx, s, c)
	if err != nil {
		return err
	}
	rt, err := NewHTTP(ctx, s, r)
	if err != nil {
		return err
	}
	return rt.Run()
}

// StartLambda runs the relay under the Lambda SDK.
func StartLambda(ctx context.Context, s settings.Source, c *relay.Component) error {
	r, err := NewRelay(ctx, s, c)
	if err != nil {
		return err
	}
	rt, err := NewLambda(ctx, s, r)
	if err != nil {
		return err
	}
	return rt.Run()
}
