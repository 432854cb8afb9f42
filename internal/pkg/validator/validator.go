// Package validator wraps go-playground struct validation into the
// field -> failed-tag map that ErrorWithDetails expects.
package validator

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks v's `validate` tags and returns a map of field name
// to the tag that failed, or nil when v is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
