package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// requestValidator checks request bodies by their `validate` tags. Field
// names in errors are the JSON names clients sent.
var requestValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation(tagAccountID, isAccountID); err != nil {
		panic(err)
	}
	return v
})

// ValidateRequest runs the tag rules on req.
func ValidateRequest(req any) error {
	return requestValidator().Struct(req)
}

// fieldMessage renders one failed rule. Params fill the %s verbs.
var fieldMessage = map[string]string{
	"required":   "This field is required",
	tagAccountID: "Invalid account id",
	"max":        "Must be at most %s characters",
	"gt":         "Must be greater than %s",
}

// FormatValidationError maps each failed field to a client-facing message,
// keeping Go struct names out of responses.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := fieldMessage[fe.Tag()]
		switch {
		case !ok:
			msg = "Invalid value"
		case strings.Contains(msg, "%s"):
			msg = fmt.Sprintf(msg, fe.Param())
		}
		out[fe.Field()] = msg
	}
	return out
}

const tagAccountID = "accountid"

// isAccountID accepts chat user ids: anything without whitespace or control
// characters. Emptiness is left to "required".
func isAccountID(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})
}
