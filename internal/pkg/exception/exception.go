package exception

import (
	"errors"
	"fmt"
)

// ApplicationError handles application level errors.
type ApplicationError struct {
	Message    string
	StatusCode int
	Cause      error
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.Cause == targetErr.Cause &&
		e.Message == targetErr.Message
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}

// FieldViolation describes one missing or malformed field of one passenger.
type FieldViolation struct {
	PassengerIndex int    `json:"passenger_index"`
	Field          string `json:"field"`
	Reason         string `json:"reason"`
}

// ValidationError carries the structured result of a failed passenger
// validation. Message always names the first incomplete passenger; the
// transport layer decides how to surface the violations.
type ValidationError struct {
	Message    string
	StatusCode int
	Violations []FieldViolation
}

func (e ValidationError) Error() string {
	return e.Message
}

func (e ValidationError) ErrorCode() int {
	return e.StatusCode
}
