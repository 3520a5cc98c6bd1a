package function

import (
	"context"
	"encoding/base64"

	"github.com/aws/aws-lambda-go/events"
	"github.com/leonyu5566/sp500-ai-advisor/pkg/domain"
)

// APIGateway translates proxy integration events to and from the
// hosting-neutral relay types.
type APIGateway struct {
	Relay domain.Relay
}

// Handle never returns an error. Every outcome, including a body that
// fails base64 decoding, is a regular response.
func (a *APIGateway) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		body = nil
		if decoded, err := base64.StdEncoding.DecodeString(event.Body); err == nil {
			body = decoded
		}
	}
	resp := a.Relay.Handle(ctx, domain.InboundRequest{
		Method: event.HTTPMethod,
		Body:   body,
	})
	return events.APIGatewayProxyResponse{
		StatusCode: resp.Status,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}, nil
}
