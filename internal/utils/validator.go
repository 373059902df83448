package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var initOnce sync.Once

// InitValidator registers the custom tags and JSON field naming on gin's validator engine
func InitValidator() {
	initOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("activityname", validateActivityName)
	})
}

// jsonFieldName reports fields by their JSON name
func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// validateActivityName rejects blank names
func validateActivityName(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// FieldErrors turns a binding error into {json_field: message}
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			fields[e.Field()] = fieldMessage(e)
		}
		return fields
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		fields[typeErr.Field] = fmt.Sprintf("A valid %s is required.", typeErr.Type.Kind())
		return fields
	}

	fields["non_field_errors"] = "Malformed JSON body."
	return fields
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", e.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", e.Param())
	case "activityname":
		return "This field may not be blank."
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", e.Param())
	default:
		return fmt.Sprintf("Failed on the %q rule.", e.Tag())
	}
}
