package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Errors maps a form field name to the message shown next to it.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

func engine() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
		_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			_, err := NormalizePhone(fl.Field().String())
			return err == nil
		})
		_ = validate.RegisterValidation("email_at", func(fl validator.FieldLevel) bool {
			return ValidEmail(fl.Field().String())
		})
		_ = validate.RegisterValidation("days", func(fl validator.FieldLevel) bool {
			_, err := ParseDays(fl.Field().String())
			return err == nil
		})
	})
	return validate
}

// check validates form and returns nil when every field passes.
func check(form any) Errors {
	err := engine().Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"": err.Error()}
	}
	errs := make(Errors, len(verrs))
	for _, verr := range verrs {
		if _, seen := errs[verr.Field()]; seen {
			continue
		}
		errs[verr.Field()] = message(verr)
	}
	return errs
}

func message(verr validator.FieldError) string {
	switch verr.Tag() {
	case "required", "required_if":
		return "This field is required."
	case "phone":
		return "Enter a phone number with 10 or 11 digits."
	case "email_at":
		return "Enter a valid email address."
	case "days":
		return "Enter days of the week separated by commas."
	case "oneof":
		return "Select a valid choice."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", verr.Param())
	}
	return "Enter a valid value."
}
