package validator

import (
	"errors"
	"fmt"
	validatorPlatform "formlab/internal/platform/validator"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type playgroundValidator struct {
	validate *validator.Validate
}

func NewPlaygroundAdapter() validatorPlatform.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	mustRegister(v, "numgte", numericBound(func(n, bound float64) bool { return n >= bound }))
	mustRegister(v, "numlte", numericBound(func(n, bound float64) bool { return n <= bound }))
	mustRegister(v, "maxbytes", maxBytes)

	return &playgroundValidator{
		validate: v,
	}
}

func (v *playgroundValidator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			outErrors := make([]validatorPlatform.FieldError, len(validationErrors))
			for i, fe := range validationErrors {
				outErrors[i] = validatorPlatform.FieldError{
					Field:   fe.Field(),
					Message: getValidationErrorMessage(fe),
				}
			}
			return validatorPlatform.ValidationError{Errors: outErrors}
		}
		return err
	}
	return nil
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// maxBytes bounds the UTF-8 size of a string field.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// numericBound compares a numeric string field against the tag parameter.
func numericBound(cmp func(n, bound float64) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		n, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
		if err != nil {
			return false
		}
		bound, err := strconv.ParseFloat(fl.Param(), 64)
		if err != nil {
			return false
		}
		return cmp(n, bound)
	}
}

func getValidationErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "This field must be a valid email address"
	case "url", "http_url":
		return "This field must be a valid URL"
	case "number", "numeric":
		return "This field must be a number"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("This field must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("This field must be at least %s", e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("This field must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("This field must be at most %s", e.Param())
	case "maxbytes":
		return fmt.Sprintf("This field must be at most %s bytes", e.Param())
	case "numgte":
		return fmt.Sprintf("This field must be at least %s", e.Param())
	case "numlte":
		return fmt.Sprintf("This field must be at most %s", e.Param())
	case "eqfield":
		return fmt.Sprintf("This field must match %s", strings.ToLower(e.Param()))
	case "containsany":
		return fmt.Sprintf("This field must contain one of '%s'", e.Param())
	default:
		return fmt.Sprintf("This field failed on the '%s' tag", e.Tag())
	}
}
