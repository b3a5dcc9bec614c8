package validator

import (
	"fmt"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", fe.Field, fe.Message)
}

type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (ve ValidationError) Error() string {
	var errs []string
	for _, fe := range ve.Errors {
		errs = append(errs, fe.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(errs, ", "))
}

// Report keeps the first message reported for each field.
func (ve ValidationError) Report() Errors {
	errs := make(Errors, len(ve.Errors))
	for _, fe := range ve.Errors {
		if _, exists := errs[fe.Field]; !exists {
			errs[fe.Field] = fe.Message
		}
	}
	return errs
}

// Validator checks a tagged struct.
type Validator interface {
	Validate(s interface{}) error
}
