package domain

import (
	"context"
	"encoding/json"
)

// InboundRequest is the hosting-neutral form of a call to the relay.
type InboundRequest struct {
	// Method is the HTTP verb of the original request.
	Method string
	// Body is the raw request document. The relay expects a JSON
	// object with a "prompt" string field.
	Body []byte
}

// OutboundResponse is the hosting-neutral result of a relay call.
// Adapters translate it into whatever the hosting runtime expects.
type OutboundResponse struct {
	Status  int
	Headers map[string]string
	Body    []byte
}

// Part is one fragment of a message sent upstream.
type Part struct {
	Text string `json:"text"`
}

// Content is a single message in an upstream conversation.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// UpstreamPayload is the request document of the generateContent API.
type UpstreamPayload struct {
	Contents []Content `json:"contents"`
}

//go:generate mockgen -destination ../relay/mock_generator_test.go -package relay github.com/leonyu5566/sp500-ai-advisor/pkg/domain Generator

// Generator sends a payload to the generative-language API.
type Generator interface {
	// GenerateContent issues one upstream call authorized by credential.
	// On success it returns the upstream document unmodified. Failures
	// must be one of UpstreamError, TransportError, or ParseError.
	GenerateContent(ctx context.Context, credential string, payload UpstreamPayload) (json.RawMessage, error)
}

// Relay renders one inbound request as a response. Implementations
// report every failure through the response rather than an error.
type Relay interface {
	Handle(ctx context.Context, req InboundRequest) OutboundResponse
}
