package validators

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"voltride-service/internal/domain/booking"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// indianMobileRegex matches a 10-digit Indian mobile number with a leading
// digit of 6-9, no country code.
var indianMobileRegex = regexp.MustCompile(`^[6-9]\d{9}$`)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func init() {
	validate = validator.New()

	validate.RegisterValidation("indian_mobile", validateIndianMobile)
	validate.RegisterValidation("slug", validateSlug)
	validate.RegisterValidation("time_slot", validateTimeSlot)
	validate.RegisterValidation("not_past_date", validateNotPastDate)
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// ValidateStruct validates a struct and returns field-level errors, or nil
// when the payload is valid. Validation is synchronous and pure.
func ValidateStruct(s interface{}) ValidationErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "payload", Message: "invalid payload"}}
	}

	var out ValidationErrors
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageFor(fe),
		})
	}
	return out
}

// IsValidIndianMobile validates a bare phone string outside struct context.
func IsValidIndianMobile(phone string) bool {
	return indianMobileRegex.MatchString(phone)
}

// ParseRideDate parses a booking date (YYYY-MM-DD) and rejects dates before
// today at day granularity.
func ParseRideDate(value string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected YYYY-MM-DD")
	}
	if dayBeforeToday(d) {
		return time.Time{}, fmt.Errorf("ride date cannot be in the past")
	}
	return d, nil
}

func dayBeforeToday(d time.Time) bool {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}

func validateIndianMobile(fl validator.FieldLevel) bool {
	return indianMobileRegex.MatchString(fl.Field().String())
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

func validateTimeSlot(fl validator.FieldLevel) bool {
	return booking.IsValidTimeSlot(fl.Field().String())
}

func validateNotPastDate(fl validator.FieldLevel) bool {
	d, err := time.Parse("2006-01-02", fl.Field().String())
	if err != nil {
		return false
	}
	return !dayBeforeToday(d)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "indian_mobile":
		return "must be a 10-digit Indian mobile number starting with 6-9"
	case "slug":
		return "must contain only lowercase letters, digits and hyphens"
	case "time_slot":
		return "must be one of the available time slots"
	case "not_past_date":
		return "date cannot be in the past"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
