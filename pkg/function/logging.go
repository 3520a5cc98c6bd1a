package function

import (
	"context"

	"github.com/asecurityteam/logevent/v2"
	"github.com/google/uuid"
	"github.com/leonyu5566/sp500-ai-advisor/pkg/domain"
)

const invocationField = "invocation_id"

// Logging gives every invocation of the wrapped Handler its own logger,
// copied from the one LogFn resolves and tagged with a fresh invocation id.
type Logging struct {
	domain.Handler
	LogFn domain.LogFn
}

// Invoke installs the invocation logger and calls the wrapped Handler.
func (l *Logging) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	logger := l.LogFn(ctx).Copy()
	logger.SetField(invocationField, uuid.NewString())
	return l.Handler.Invoke(logevent.NewContext(ctx, logger), payload)
}
