package dto

import (
	"errors"

	"github.com/Bekaronn/jetly/internal/pkg/exception"
	"github.com/Bekaronn/jetly/internal/pkg/validation"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

var (
	Validate = validator.New()
	trans    ut.Translator
)

type ErrorResponse struct {
	Error            string                     `json:"error"`
	ValidationErrors []exception.FieldViolation `json:"validation_errors,omitempty"`
}

type Response struct {
	Message string `json:"message"`
}

func InitValidator() error {
	validate, translator, err := validation.New()
	if err != nil {
		return err
	}

	Validate = validate
	trans = translator

	return nil
}

func ValidateSingleError(req interface{}) error {
	if err := Validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return errors.New(ve[0].Translate(trans))
		}
		return err
	}
	return nil
}
