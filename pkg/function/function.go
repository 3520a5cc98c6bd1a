package function

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/leonyu5566/sp500-ai-advisor/pkg/domain"
)

// Name is the function name the relay is registered under.
const Name = "callGemini"

// New builds the Lambda handler for a relay.
func New(relay domain.Relay, logFn domain.LogFn) domain.Handler {
	gw := &APIGateway{Relay: relay}
	return &Logging{
		Handler: lambda.NewHandler(gw.Handle),
		LogFn:   logFn,
	}
}

// Functions is the static name to handler mapping served by the
// Invoke API.
func Functions(relay domain.Relay, logFn domain.LogFn) map[string]domain.Handler {
	return map[string]domain.Handler{
		Name: New(relay, logFn),
	}
}
