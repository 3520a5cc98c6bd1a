package domain

import (
	"context"

	"github.com/asecurityteam/runhttp"
	"github.com/aws/aws-lambda-go/lambda"
)

// Logger receives the relay's structured events. Under the HTTP runtime
// it is the request-scoped logevent logger that runhttp installs; under
// the Lambda runtime it is the per-invocation copy.
type Logger = runhttp.Logger

// LogFn finds the Logger for a request or invocation.
type LogFn = runhttp.LogFn

// Stat counts relay responses by status.
type Stat = runhttp.Stat

// StatFn finds the Stat client for a request. Outside a runhttp request
// it yields a no-op client.
type StatFn = runhttp.StatFn

// Handler is a raw-payload Lambda function, the form both the SDK and
// the local Invoke API execute.
type Handler = lambda.Handler

// URLParamFn reads a named path parameter, such as the function name of
// an Invoke API call, from a request context.
type URLParamFn func(ctx context.Context, name string) string
