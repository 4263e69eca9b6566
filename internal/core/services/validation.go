package services

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/motodash/internal/core/domain"
)

// NewValidator returns a validator that reports JSON field names and knows the
// number, integer and notfuture tags used by the input structs.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = validate.RegisterValidation("number", func(fl validator.FieldLevel) bool {
		f, ok := floatOf(fl.Field())
		return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	_ = validate.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		f, ok := floatOf(fl.Field())
		return ok && f == math.Trunc(f)
	})
	_ = validate.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		f, ok := floatOf(fl.Field())
		return ok && f <= float64(time.Now().Year())
	})

	return validate
}

func floatOf(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	default:
		return 0, false
	}
}

// validateInput checks a create payload in full, or only the supplied fields
// of an update payload.
func validateInput(validate *validator.Validate, in interface{}, supplied []string) error {
	var err error
	if supplied == nil {
		err = validate.Struct(in)
	} else {
		err = validate.StructPartial(in, supplied...)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation error: %w", err)
	}

	verr := &domain.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), fieldMessage(fe))
	}
	return verr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "number":
		return "must be a number"
	case "integer":
		return "must be an integer"
	case "notfuture":
		return fmt.Sprintf("must not be after %d", time.Now().Year())
	case "min":
		if fe.Kind() == reflect.String {
			return "must not be empty"
		}
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "url|len=0":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}

// suppliedFields names the non-nil pointer fields of an input struct, ID
// excluded since ids never change.
func suppliedFields(in interface{}) []string {
	v := reflect.Indirect(reflect.ValueOf(in))
	t := v.Type()

	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)
		if field.Name == "ID" || value.Kind() != reflect.Ptr || value.IsNil() {
			continue
		}
		names = append(names, field.Name)
	}
	return names
}
