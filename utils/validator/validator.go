package validatorx

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	cerr "github.com/muhammadheryan/kidswear/utils/errors"
)

var (
	v    *gpvalidator.Validate
	once sync.Once

	bdPhonePattern = regexp.MustCompile(`^\+880\d{9}$`)
)

// Init initializes the validator singleton (idempotent)
func Init() {
	once.Do(setup)
}

func setup() {
	v = gpvalidator.New()

	// report json names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("bdphone", func(fl gpvalidator.FieldLevel) bool {
		return bdPhonePattern.MatchString(fl.Field().String())
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	Init()
	return v.Struct(s)
}

// Validate runs ValidateStruct and converts failures into a validation
// CustomError listing every failing field.
func Validate(s interface{}) error {
	err := ValidateStruct(s)
	if err == nil {
		return nil
	}

	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return cerr.SetValidationError([]cerr.FieldError{{Field: "body", Rule: "invalid"}})
	}

	fields := make([]cerr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, cerr.FieldError{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.Tag(),
		})
	}
	return cerr.SetValidationError(fields)
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
