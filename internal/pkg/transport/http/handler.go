package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Bekaronn/jetly/internal/pkg/exception"
	"github.com/go-kit/kit/endpoint"
)

// DecodeFunc extracts a typed request from the incoming HTTP request.
type DecodeFunc func(ctx context.Context, r *http.Request) (interface{}, error)

// EncodeFunc writes the endpoint response to the client.
type EncodeFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// Binder lets a request DTO pull path/query variables and run its own
// validation after the body has been decoded.
type Binder interface {
	Bind(r *http.Request) error
}

// MakeHandlerFunc glues decode -> endpoint -> encode into an http.HandlerFunc.
func MakeHandlerFunc(ep endpoint.Endpoint, decode DecodeFunc, encode EncodeFunc) http.HandlerFunc {
	return func(respWriter http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		request, err := decode(ctx, req)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		response, err := ep(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		if err := encode(ctx, respWriter, response); err != nil {
			ErrorResponse(ctx, err, respWriter)
		}
	}
}

// DecodeRequest decodes the JSON body into T and then lets T bind itself
// against the request. A missing body is fine; Bind decides what is required.
func DecodeRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	request := new(T)

	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(request); err != nil &&
			!errors.Is(err, io.EOF) {
			return nil, exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("malformed request body: %s", err),
			}
		}
	}

	if binder, ok := any(request).(Binder); ok {
		if err := binder.Bind(r); err != nil {
			return nil, fmt.Errorf("bind request: %w", err)
		}
	}

	return request, nil
}
