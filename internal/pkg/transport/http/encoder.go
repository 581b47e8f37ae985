package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Bekaronn/jetly/internal/app/dto"
	"github.com/Bekaronn/jetly/internal/pkg/exception"
)

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

// CreatedResponseWithBody encodes the response with a 201 status.
func CreatedResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

func NoContentResponse(_ context.Context, w http.ResponseWriter, _ interface{}) error {
	w.WriteHeader(http.StatusNoContent)

	return nil
}

// PNGResponder is implemented by responses that render as an image instead
// of JSON, such as ticket display codes.
type PNGResponder interface {
	PNG() []byte
}

// ImagePNGResponse writes a raw PNG body.
func ImagePNGResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	img, ok := response.(PNGResponder)
	if !ok {
		return errors.New("response is not a PNG")
	}

	w.Header().Set("Content-Type", "image/png")

	if _, err := w.Write(img.PNG()); err != nil {
		return fmt.Errorf("write png body: %w", err)
	}

	return nil
}

// ErrorResponse encodes the error response to the client. Validation errors
// keep their structured per-passenger violations; sentinel application
// errors keep their status code; anything else is a 500.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var (
		appErr        exception.ApplicationError
		validationErr exception.ValidationError
		body          dto.ErrorResponse
		status        int
	)

	switch {
	case errors.As(err, &validationErr):
		status = validationErr.StatusCode
		body.Error = validationErr.Message
		body.ValidationErrors = validationErr.Violations
	case errors.As(err, &appErr):
		status = appErr.StatusCode
		body.Error = appErr.Message
	default:
		status = http.StatusInternalServerError
		body.Error = err.Error()

		slog.ErrorContext(ctx, body.Error, slog.Any("error", err))
	}

	respWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	respWriter.WriteHeader(status)

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(body)
}
