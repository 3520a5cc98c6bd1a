package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/leonyu5566/sp500-ai-advisor/pkg/domain"
)

const (
	invocationTypeHeader          = "X-Amz-Invocation-Type"
	invocationTypeRequestResponse = "RequestResponse"
	invocationTypeDryRun          = "DryRun"
	invocationVersionHeader       = "X-Amz-Executed-Version"
	invocationErrorHeader         = "X-Amz-Function-Error"
	invocationErrorTypeHandled    = "Handled"
	invocationErrorTypeUnhandled  = "Unhandled"
	latestVersion                 = "$LATEST"
)

// lambdaError is the error document the Lambda API returns
// in the body of a failed invocation.
type lambdaError struct {
	Message    string   `json:"errorMessage"`
	Type       string   `json:"errorType"`
	StackTrace []string `json:"stackTrace"`
}

type invocationFailure struct {
	Function string `logevent:"function"`
	Reason   string `logevent:"reason"`
	Message  string `logevent:"message,default=invocation-failed"`
}

// Invoke implements the API of the same name from the AWS Lambda API
// for a static set of in-process functions.
// https://docs.aws.amazon.com/lambda/latest/dg/API_Invoke.html
//
// Only the "RequestResponse" and "DryRun" invocation types are served.
// The relay has no use for asynchronous "Event" invocations so they are
// rejected like any other unknown type. The "Qualifier" parameter is
// ignored and the executed version is always reported as $LATEST.
type Invoke struct {
	Functions  map[string]domain.Handler
	LogFn      domain.LogFn
	URLParamFn domain.URLParamFn
}

func (h *Invoke) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fnName := h.URLParamFn(ctx, "functionName")
	fn, ok := h.Functions[fnName]
	if !ok {
		writeLambdaError(w, http.StatusNotFound, responseFromError(domain.NotFoundError{ID: fnName}))
		return
	}
	fnType := r.Header.Get(invocationTypeHeader)
	if fnType == "" {
		fnType = invocationTypeRequestResponse
	}
	payload, errRead := io.ReadAll(r.Body)
	if errRead != nil {
		writeLambdaError(w, http.StatusBadRequest, responseFromError(errRead))
		return
	}
	w.Header().Set(invocationVersionHeader, latestVersion)

	switch fnType {
	case invocationTypeDryRun:
		w.WriteHeader(http.StatusNoContent)
	case invocationTypeRequestResponse:
		out, errInvoke := fn.Invoke(ctx, payload)
		if errInvoke != nil {
			h.LogFn(ctx).Error(invocationFailure{Function: fnName, Reason: errInvoke.Error()})
			statusCode := statusFromError(errInvoke)
			errorType := invocationErrorTypeHandled
			if statusCode >= http.StatusInternalServerError {
				errorType = invocationErrorTypeUnhandled
			}
			w.Header().Set(invocationErrorHeader, errorType)
			writeLambdaError(w, statusCode, responseFromError(errInvoke))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(out)
	default:
		writeLambdaError(w, http.StatusBadRequest, lambdaError{
			Message:    fmt.Sprintf("InvocationType %s not valid", fnType),
			Type:       "InvalidParameterValueException",
			StackTrace: errResponseStackTrace,
		})
	}
}

// errResponseStackTrace fills the stackTrace attribute. Stack traces are
// not collected so every document shares the same empty slice.
var errResponseStackTrace = []string{}

func writeLambdaError(w http.ResponseWriter, status int, doc lambdaError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(doc)
}

func responseFromError(err error) lambdaError {
	errType := reflect.TypeOf(err)
	if errType.Kind() == reflect.Ptr {
		errType = errType.Elem()
	}
	return lambdaError{
		Message:    err.Error(),
		Type:       errType.Name(),
		StackTrace: errResponseStackTrace,
	}
}

// statusFromError reports payload decoding failures as client errors.
// The Lambda SDK surfaces a truncated payload as io.ErrUnexpectedEOF.
func statusFromError(err error) int {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, io.ErrUnexpectedEOF):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
