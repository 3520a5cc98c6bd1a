package relay

import (
	"errors"
	"net/http"

	"github.com/leonyu5566/sp500-ai-advisor/pkg/domain"
)

const (
	// UpstreamName is how the upstream API is named to callers.
	UpstreamName = "Google Gemini API"

	headerAllowOrigin  = "Access-Control-Allow-Origin"
	headerAllowMethods = "Access-Control-Allow-Methods"
	headerAllowHeaders = "Access-Control-Allow-Headers"
	headerContentType  = "Content-Type"

	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// errorRoute renders one member of the domain error set. Routes that
// report upstream trouble prefix the message with the upstream name and
// are readable cross-origin.
type errorRoute struct {
	name     string
	matches  func(error) bool
	status   int
	upstream bool
}

var errorRoutes = []errorRoute{
	{name: "configuration", matches: errorAs[domain.ConfigurationError], status: http.StatusInternalServerError},
	{name: "validation", matches: errorAs[domain.ValidationError], status: http.StatusBadRequest},
	{name: "upstream", matches: errorAs[domain.UpstreamError], status: http.StatusInternalServerError, upstream: true},
	{name: "transport", matches: errorAs[domain.TransportError], status: http.StatusInternalServerError, upstream: true},
	{name: "parse", matches: errorAs[domain.ParseError], status: http.StatusInternalServerError, upstream: true},
}

// unknownRoute handles errors outside the domain set the same way as a
// transport failure.
var unknownRoute = errorRoute{name: "unknown", status: http.StatusInternalServerError, upstream: true}

func errorAs[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

func routeFor(err error) errorRoute {
	for _, route := range errorRoutes {
		if route.matches(err) {
			return route
		}
	}
	return unknownRoute
}

// ResponseFromError converts any failure into the response a caller sees.
func ResponseFromError(err error) domain.OutboundResponse {
	route := routeFor(err)
	message := err.Error()
	headers := map[string]string{headerContentType: contentTypeText}
	if route.upstream {
		message = "Error calling " + UpstreamName + ": " + message
		headers[headerAllowOrigin] = "*"
	}
	return domain.OutboundResponse{
		Status:  route.status,
		Headers: headers,
		Body:    []byte(message),
	}
}

// Preflight answers a CORS pre-flight request.
func Preflight() domain.OutboundResponse {
	return domain.OutboundResponse{
		Status: http.StatusNoContent,
		Headers: map[string]string{
			headerAllowOrigin:  "*",
			headerAllowMethods: "POST, OPTIONS",
			headerAllowHeaders: "Content-Type",
		},
	}
}

// Success relays an upstream document unchanged.
func Success(body []byte) domain.OutboundResponse {
	return domain.OutboundResponse{
		Status: http.StatusOK,
		Headers: map[string]string{
			headerAllowOrigin: "*",
			headerContentType: contentTypeJSON,
		},
		Body: body,
	}
}
