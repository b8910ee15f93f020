// Package validation holds the shared request validator.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"restaurant-pos/utils"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the project rules registered:
// phone_cc checks the country code and length of a phone number and hhmm
// checks an "HH:MM" duration.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("phone_cc", func(fl validator.FieldLevel) bool {
			return utils.ValidatePhoneNumber(fl.Field().String())
		})
		_ = validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return ValidDuration(fl.Field().String())
		})
	})
	return validate
}

// Message turns validator errors into one readable line.
func Message(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fe.Field()))
		case "phone_cc":
			parts = append(parts, fmt.Sprintf("%s must start with a valid country code (%s) followed by at least %d digits",
				fe.Field(), strings.Join(utils.ValidCountryCodes, ", "), utils.MinSubscriberDigits))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email", fe.Field()))
		case "hhmm":
			parts = append(parts, fmt.Sprintf("%s must be a duration like 06:30", fe.Field()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

// ValidDuration accepts hours and minutes written as "H:MM" or "HH:MM".
// Hours may exceed 23 since the value is a length of time.
func ValidDuration(s string) bool {
	hours, minutes, ok := strings.Cut(s, ":")
	if !ok || hours == "" || len(hours) > 3 || len(minutes) != 2 {
		return false
	}
	if _, err := strconv.ParseUint(hours, 10, 16); err != nil {
		return false
	}
	m, err := strconv.ParseUint(minutes, 10, 8)
	return err == nil && m < 60
}
