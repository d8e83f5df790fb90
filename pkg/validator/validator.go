package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator plugs go-playground/validator into echo so generation
// requests are checked declaratively (model allow-list, summary length
// bounds, min<=max) before any pipeline work starts.
type CustomValidator struct {
	v *validator.Validate
}

// New creates the validator used for request binding
func New() *CustomValidator {
	v := validator.New()
	return &CustomValidator{v: v}
}

// Validate checks a bound request struct against its validate tags
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
