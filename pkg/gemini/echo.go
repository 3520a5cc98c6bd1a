package gemini

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/leonyu5566/sp500-ai-advisor/pkg/domain"
)

// Candidate is one generated answer.
type Candidate struct {
	Content      domain.Content `json:"content"`
	FinishReason string         `json:"finishReason,omitempty"`
}

// GenerateContentResponse is the portion of the upstream response
// schema that the Echo generator produces.
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Echo is a Generator that never leaves the process. It answers every
// call with a single model candidate repeating the user text, which lets
// front-end work proceed without a credential being spent.
type Echo struct{}

// GenerateContent returns the user text as the model answer.
func (Echo) GenerateContent(_ context.Context, _ string, payload domain.UpstreamPayload) (json.RawMessage, error) {
	var texts []string
	for _, content := range payload.Contents {
		for _, part := range content.Parts {
			texts = append(texts, part.Text)
		}
	}
	return json.Marshal(GenerateContentResponse{
		Candidates: []Candidate{
			{
				Content: domain.Content{
					Role:  "model",
					Parts: []domain.Part{{Text: strings.Join(texts, "\n")}},
				},
				FinishReason: "STOP",
			},
		},
	})
}
