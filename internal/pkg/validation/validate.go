package validation

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/college/academics/internal/pkg/apperrors"
)

// MissingFieldsMessage is returned when only presence checks failed.
const MissingFieldsMessage = "All fields are required"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON (or form) name so messages match the request.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, ok := ParseDate(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("yesno", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "YES" || s == "NO"
	})

	return v
}

// Validate runs the struct-tag rules of obj and converts failures into a
// validation error naming every offending field.
func Validate(obj interface{}) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidationError(err.Error())
	}

	var missing, fields, messages []string
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		messages = append(messages, formatValidationError(fe))
	}

	if len(messages) == 0 {
		return apperrors.NewValidationError(MissingFieldsMessage, missing...)
	}
	if len(missing) > 0 {
		messages = append([]string{"missing " + strings.Join(missing, ", ")}, messages...)
	}
	return apperrors.NewValidationError(strings.Join(messages, "; "), fields...)
}

// Required is the named-input form of the presence check, used for query
// parameters and path values. A value is missing when it is nil, a nil
// pointer, an empty string or a zero number.
func Required(values map[string]interface{}) error {
	var missing []string
	for name, v := range values {
		if isFalsy(v) {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return apperrors.NewValidationError(strings.Join(missing, ", ")+" are required", missing...)
}

func isFalsy(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isFalsy(rv.Elem().Interface())
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Bool:
		return !rv.Bool()
	}
	return false
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "min", "gte":
		return e.Field() + " must be at least " + e.Param()
	case "max", "lte":
		return e.Field() + " must be at most " + e.Param()
	case "len":
		return e.Field() + " must have length " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "date":
		return e.Field() + " must be a valid date (YYYY-MM-DD)"
	case "yesno":
		return e.Field() + " must be YES or NO"
	case "numeric":
		return e.Field() + " must be numeric"
	case "gtfield", "gtefield":
		return e.Field() + " must not be less than " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
