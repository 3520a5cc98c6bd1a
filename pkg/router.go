package promptrelay

import (
	"net/http"

	"github.com/asecurityteam/runhttp"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/leonyu5566/sp500-ai-advisor/pkg/domain"
	"github.com/leonyu5566/sp500-ai-advisor/pkg/function"
	v1 "github.com/leonyu5566/sp500-ai-advisor/pkg/handlers/v1"
)

// RouterConfig is used to alter the behavior of the default router
// and the HTTP endpoint handlers that it manages.
type RouterConfig struct {
	// HealthCheck defines the route on which the service will respond
	// with automatic 200s. This is here to integrate with systems that
	// poll for liveliness. The default value is /healthcheck
	HealthCheck string
	// RelayPath is the route browsers POST prompts to. The default
	// value is /api/callGemini
	RelayPath string

	// Relay handles every prompt. There is no default for this value.
	Relay domain.Relay
	// Functions is served through the Lambda Invoke API. The default
	// value registers Relay as a single API Gateway function.
	Functions map[string]domain.Handler

	// LogFn is used to extract the request logger from the request
	// context. The default value is logevent.FromContext.
	LogFn domain.LogFn
	// URLParamFn is used to extract URL parameters from the request.
	// The default value is chi.URLParamFromCtx to match the usage of chi
	// as a mux in the default case.
	URLParamFn domain.URLParamFn
}

func applyDefaults(conf *RouterConfig) *RouterConfig {
	if conf.HealthCheck == "" {
		conf.HealthCheck = "/healthcheck"
	}
	if conf.RelayPath == "" {
		conf.RelayPath = "/api/callGemini"
	}
	if conf.LogFn == nil {
		conf.LogFn = runhttp.LoggerFromContext
	}
	if conf.URLParamFn == nil {
		conf.URLParamFn = chi.URLParamFromCtx
	}
	if conf.Functions == nil {
		conf.Functions = function.Functions(conf.Relay, conf.LogFn)
	}
	return conf
}

// NewRouter generates a mux that already has the relay and AWS Lambda
// API routes bound. This version returns a mux from the chi project
// as a convenience for cases where custom middleware or additional
// routes need to be configured.
func NewRouter(conf *RouterConfig) *chi.Mux {
	conf = applyDefaults(conf)
	router := chi.NewMux()
	router.Use(middleware.Heartbeat(conf.HealthCheck))

	relayHandler := &v1.Relay{
		Relay: conf.Relay,
		LogFn: conf.LogFn,
	}
	invokeHandler := &v1.Invoke{
		Functions:  conf.Functions,
		LogFn:      conf.LogFn,
		URLParamFn: conf.URLParamFn,
	}

	router.Method(http.MethodPost, conf.RelayPath, relayHandler)
	router.Method(http.MethodOptions, conf.RelayPath, relayHandler)
	router.Method(http.MethodPost, "/2015-03-31/functions/{functionName}/invocations", invokeHandler)
	return router
}
