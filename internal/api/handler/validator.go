package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
)

// enumerated is implemented by the closed string sets in domain.
type enumerated interface {
	IsValid() bool
	Values() []string
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Field errors are reported under their JSON names.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enumerated)
		return ok && e.IsValid()
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Failures come back as a
// *domain.ValidationError naming every offending field.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			out := &domain.ValidationError{Issues: make([]domain.FieldIssue, 0, len(ve))}
			for _, fe := range ve {
				out.Issues = append(out.Issues, domain.FieldIssue{Field: fe.Field(), Reason: fieldError(fe)})
			}
			return out
		}
		return err
	}
	return nil
}

// fieldError converts a single FieldError into a human-readable reason.
func fieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return domain.ReasonMissing
	case "enum":
		if e, ok := fe.Value().(enumerated); ok {
			return fmt.Sprintf("%s: expected one of %s", domain.ReasonNotInSet, strings.Join(e.Values(), ", "))
		}
		return domain.ReasonNotInSet
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}
