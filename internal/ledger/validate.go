package ledger

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	dniRe   = regexp.MustCompile(`^\d{7,9}$`)
	phoneRe = regexp.MustCompile(`^\+?\d{6,15}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	mustRegister(v, "dni", func(fl validator.FieldLevel) bool {
		return dniRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func (g Guest) validate() error {
	err := validate.Struct(g)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	inputErr := newInputError()

	for _, fe := range verrs {
		field := "guest." + strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			inputErr.addError(field, "value is required")
		case "email":
			inputErr.addError(field, "provide valid email")
		case "dni":
			inputErr.addError(field, "dni must be 7 to 9 digits")
		case "phone":
			inputErr.addError(field, "phone must be 6 to 15 digits with an optional leading +")
		default:
			inputErr.addError(field, "invalid value")
		}
	}

	return inputErr
}
