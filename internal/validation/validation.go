package validation

import (
	"encoding/json"
	"errors"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"
)

var ErrInvalidBody = errors.New("invalid JSON body")

// New returns the validator shared by all handlers.
func New() *validatorv10.Validate {
	return validatorv10.New()
}

// DecodeAndValidate binds the JSON body into out and runs struct validation.
// Handlers translate the returned error into their own 400 message.
func DecodeAndValidate(r *http.Request, out interface{}, v *validatorv10.Validate) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return ErrInvalidBody
	}
	if err := v.Struct(out); err != nil {
		return err
	}
	return nil
}
