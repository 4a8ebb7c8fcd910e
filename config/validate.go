package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is wrapped by every error returned from Validate
var ErrInvalidConfig = errors.New("invalid magento configuration")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance reports fields by their environment variable name
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			if name := field.Tag.Get("envconfig"); name != "" {
				return name
			}
			return field.Name
		})
	})
	return validate
}

// Validate checks the settings needed for authenticated API calls.
// LoadMagento never calls it; callers opt in when they want to fail fast.
func (c MagentoConfig) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		problems = append(problems, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be an absolute URL", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %q check", fe.Field(), fe.Tag())
	}
}
