package service

import (
	"net/http"

	"github.com/Bekaronn/jetly/internal/pkg/exception"
)

var ErrFlowNotFound = exception.ApplicationError{
	Message:    "booking flow not found",
	StatusCode: http.StatusNotFound,
}

var ErrBookingNotFound = exception.ApplicationError{
	Message:    "booking not found",
	StatusCode: http.StatusNotFound,
}

var ErrSearchSuperseded = exception.ApplicationError{
	Message:    "search superseded by a newer submission",
	StatusCode: http.StatusConflict,
}
