// Package validation checks form payloads against their schemas and reports
// failures per field, so handlers can return actionable 400 responses.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Anderson413366/anderson-cleaning-sub001/models"
)

var validate = newValidator()

var nonDigits = regexp.MustCompile(`\D`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Use the json tag name in error reports so clients see the field
	// names they actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Phone numbers arrive formatted ("(413) 555-1234") or bare; a valid
	// number has exactly 10 digits once formatting is stripped.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		digits := nonDigits.ReplaceAllString(fl.Field().String(), "")
		return len(digits) == 10
	})

	return v
}

// Check validates a sanitized form payload. It returns nil when the payload
// is valid, otherwise one error per failing field.
func Check(form any) models.FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-field errors (e.g. a nil payload) are still reported
		// against the whole payload rather than panicking.
		return models.FieldErrors{{Field: "payload", Message: "invalid payload"}}
	}

	errors := make(models.FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		errors = append(errors, models.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return errors
}

// messageFor translates a validator tag failure into client-facing copy
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Please enter a valid email address"
	case "phone":
		return "Please enter a valid 10-digit phone number"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "eq":
		if fe.Param() == "true" {
			return "You must agree to be contacted"
		}
		return fmt.Sprintf("%s has an invalid value", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
