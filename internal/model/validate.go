package model

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct validates any struct carrying `validate` tags.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}
