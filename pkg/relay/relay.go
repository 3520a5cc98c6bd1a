package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/leonyu5566/sp500-ai-advisor/pkg/domain"
)

const (
	// CredentialSetting is the environment name of the upstream credential.
	CredentialSetting = "GEMINI_API_KEY"
	promptField       = "prompt"
	responseStat      = "promptrelay.response"
)

type promptBody struct {
	Prompt string `json:"prompt"`
}

type upstreamFailure struct {
	Reason  string `logevent:"reason"`
	Message string `logevent:"message,default=upstream-call-failed"`
}

// PromptRelay forwards a single prompt to the generative-language API.
// It holds no state between calls other than its configuration.
type PromptRelay struct {
	// Credential authorizes upstream calls. An empty value is reported
	// to every caller as a ConfigurationError.
	Credential string
	Generator  domain.Generator
	LogFn      domain.LogFn
	StatFn     domain.StatFn
}

// Handle runs one request through the relay. It always produces a
// well-formed response; failures are rendered by ResponseFromError.
func (r *PromptRelay) Handle(ctx context.Context, req domain.InboundRequest) domain.OutboundResponse {
	resp := r.handle(ctx, req)
	r.StatFn(ctx).Count(responseStat, 1, fmt.Sprintf("status:%d", resp.Status))
	return resp
}

func (r *PromptRelay) handle(ctx context.Context, req domain.InboundRequest) domain.OutboundResponse {
	if req.Method == http.MethodOptions {
		return Preflight()
	}
	if r.Credential == "" {
		return ResponseFromError(domain.ConfigurationError{Setting: CredentialSetting})
	}
	prompt, err := promptFromBody(req.Body)
	if err != nil {
		return ResponseFromError(err)
	}
	result, err := r.generate(ctx, prompt)
	if err != nil {
		r.LogFn(ctx).Error(upstreamFailure{Reason: err.Error()})
		return ResponseFromError(err)
	}
	return Success(result)
}

func (r *PromptRelay) generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	result, err := r.Generator.GenerateContent(ctx, r.Credential, NewPayload(prompt))
	if err != nil {
		return nil, err
	}
	var doc json.RawMessage
	if err := json.Unmarshal(result, &doc); err != nil {
		return nil, domain.ParseError{Err: err}
	}
	return result, nil
}

// NewPayload wraps the prompt as a single user message.
func NewPayload(prompt string) domain.UpstreamPayload {
	return domain.UpstreamPayload{
		Contents: []domain.Content{
			{Role: "user", Parts: []domain.Part{{Text: prompt}}},
		},
	}
}

// promptFromBody treats an undecodable body the same as a missing field.
// Whitespace-only prompts are passed through.
func promptFromBody(b []byte) (string, error) {
	var body promptBody
	if err := json.Unmarshal(b, &body); err != nil {
		return "", domain.ValidationError{Field: promptField}
	}
	if body.Prompt == "" {
		return "", domain.ValidationError{Field: promptField}
	}
	return body.Prompt, nil
}
