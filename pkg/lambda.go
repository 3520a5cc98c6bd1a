package promptrelay

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/asecurityteam/logevent/v2"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/leonyu5566/sp500-ai-advisor/pkg/domain"
	"github.com/leonyu5566/sp500-ai-advisor/pkg/function"
)

var logLevels = []string{"DEBUG", "INFO", "WARN", "ERROR"}

// LambdaConfig configures the native Lambda runtime.
type LambdaConfig struct {
	LogLevel string `description:"Minimum level of emitted log lines. One of DEBUG, INFO, WARN, ERROR."`
}

// Name of the configuration group.
func (*LambdaConfig) Name() string {
	return "lambda"
}

// LambdaComponent builds a LambdaRuntime. Lambda has no runhttp
// middleware to install a logger so the runtime owns one.
type LambdaComponent struct {
	Relay domain.Relay
	// Output receives log lines. The default is os.Stdout which
	// Lambda forwards to CloudWatch.
	Output io.Writer
}

// Settings returns the default configuration.
func (*LambdaComponent) Settings() *LambdaConfig {
	return &LambdaConfig{LogLevel: "INFO"}
}

// New constructs a LambdaRuntime.
func (c *LambdaComponent) New(_ context.Context, conf *LambdaConfig) (*LambdaRuntime, error) {
	level, err := parseLevel(conf.LogLevel)
	if err != nil {
		return nil, err
	}
	output := c.Output
	if output == nil {
		output = os.Stdout
	}
	logger := logevent.New(logevent.Config{Level: level, Output: output})
	logFn := func(context.Context) domain.Logger { return logger }
	return &LambdaRuntime{Handler: function.New(c.Relay, logFn)}, nil
}

func parseLevel(level string) (string, error) {
	upper := strings.ToUpper(level)
	for _, l := range logLevels {
		if upper == l {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown log level %q", level)
}

// LambdaRuntime serves the relay through the Lambda SDK.
type LambdaRuntime struct {
	Handler domain.Handler
}

// Run hands control to the Lambda SDK. It only returns if the
// SDK does.
func (rt *LambdaRuntime) Run() error {
	lambda.Start(rt.Handler)
	return nil
}
