package utils

import (
	"hospital-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	validate     *validator.Validate
	phone10Regex = regexp.MustCompile(constvars.RegexPhone10)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("phone_digits", validatePhoneDigits)
	validate.RegisterValidation("iso_date", validateISODate)
	validate.RegisterValidation("not_past_date", validateNotPastDate)
	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("non_blank", validateNonBlank)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneDigits(fl validator.FieldLevel) bool {
	return phone10Regex.MatchString(fl.Field().String())
}

// ParseAppointmentDate accepts a calendar date (YYYY-MM-DD, read as UTC
// midnight) or a full RFC3339 timestamp.
func ParseAppointmentDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if date, err := time.Parse(constvars.AppointmentDateLayout, value); err == nil {
		return date, nil
	}
	return time.Parse(time.RFC3339, value)
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := ParseAppointmentDate(fl.Field().String())
	return err == nil
}

// validateNotPastDate accepts any date on or after today, compared by
// calendar day. Strings are read with ParseAppointmentDate.
func validateNotPastDate(fl validator.FieldLevel) bool {
	var value time.Time
	switch field := fl.Field().Interface().(type) {
	case time.Time:
		value = field
	case string:
		parsed, err := ParseAppointmentDate(field)
		if err != nil {
			return false
		}
		value = parsed
	default:
		return false
	}
	now := time.Now()
	day := time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(today)
}

func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

func validateNonBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
