package passenger

import (
	"fmt"

	"github.com/Bekaronn/jetly/internal/pkg/exception"
	"github.com/Bekaronn/jetly/internal/pkg/validation"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// Result is the structured outcome of validating the full passenger set.
// Violations are ordered by passenger index, so the first entry belongs to
// the first incomplete passenger.
type Result struct {
	Violations []exception.FieldViolation
}

func (r Result) Valid() bool {
	return len(r.Violations) == 0
}

// First returns the blocking violation, the one that names the first
// incomplete passenger.
func (r Result) First() (exception.FieldViolation, bool) {
	if len(r.Violations) == 0 {
		return exception.FieldViolation{}, false
	}

	return r.Violations[0], true
}

// Validator checks passenger entries field by field, translating each
// failure into a human-readable reason.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func NewValidator() (*Validator, error) {
	validate, trans, err := validation.New()
	if err != nil {
		return nil, fmt.Errorf("init validator: %w", err)
	}

	return &Validator{validate: validate, trans: trans}, nil
}

// ValidateAll validates every entry atomically: nothing is committed, all
// passengers are checked and every violation is reported in index order.
func (v *Validator) ValidateAll(entries []Details) Result {
	var result Result

	for index, entry := range entries {
		err := v.validate.Struct(entry)
		if err == nil {
			continue
		}

		validationErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			result.Violations = append(result.Violations, exception.FieldViolation{
				PassengerIndex: index,
				Field:          "",
				Reason:         err.Error(),
			})

			continue
		}

		for _, fieldErr := range validationErrs {
			result.Violations = append(result.Violations, exception.FieldViolation{
				PassengerIndex: index,
				Field:          fieldErr.Field(),
				Reason:         fieldErr.Translate(v.trans),
			})
		}
	}

	return result
}
