package validator

import "github.com/taperlab/taper/internal/apperr"

type Validator interface {
	// Validate validates the fields of the struct and returns a map of errors.
	// returns nil if no errors are found
	Validate() map[string]string
}

func Validate(v Validator) *apperr.Error {
	if err := v.Validate(); err != nil {
		return apperr.Validation(err)
	}
	return nil
}
