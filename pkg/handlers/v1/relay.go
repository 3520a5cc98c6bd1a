package v1

import (
	"io"
	"net/http"

	"github.com/leonyu5566/sp500-ai-advisor/pkg/domain"
)

type bodyReadFailure struct {
	Reason  string `logevent:"reason"`
	Message string `logevent:"message,default=request-body-read-failed"`
}

// Relay exposes a domain.Relay as a plain HTTP endpoint. Browsers call
// this route directly, so it answers the CORS pre-flight as well as POST.
type Relay struct {
	Relay domain.Relay
	LogFn domain.LogFn
}

func (h *Relay) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		// A truncated body is treated as a missing prompt.
		h.LogFn(r.Context()).Warn(bodyReadFailure{Reason: err.Error()})
		b = nil
	}
	resp := h.Relay.Handle(r.Context(), domain.InboundRequest{
		Method: r.Method,
		Body:   b,
	})
	for name, value := range resp.Headers {
		w.Header().Set(name, value)
	}
	w.WriteHeader(resp.Status)
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
}
