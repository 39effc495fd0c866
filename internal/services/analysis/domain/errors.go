package domain

import (
	"errors"

	"clariflo/internal/core/normalize"
	perr "clariflo/internal/platform/errors"
)

// WrapInput translates normalizer bounds failures into user-facing validation
// errors with stable messages; anything else passes through untouched
func WrapInput(err error) error {
	switch {
	case errors.Is(err, normalize.ErrEmpty):
		return perr.Validationf("Empty text cannot be analyzed")
	case errors.Is(err, normalize.ErrTooShort):
		return perr.Validationf("Text too short for meaningful analysis (minimum %d characters)", normalize.MinLen)
	case errors.Is(err, normalize.ErrTooLong):
		return perr.Validationf("Text too long for analysis (maximum %d characters)", normalize.MaxLen)
	default:
		return err
	}
}

// ErrModelUnavailable reports that the classifier never initialized; a
// service-level failure, not a user input problem
func ErrModelUnavailable() error {
	return perr.Unavailablef("analysis model is not available")
}

// IsInput reports whether err is a user-facing validation failure
func IsInput(err error) bool { return perr.IsCode(err, perr.ErrorCodeValidation) }

// IsModelUnavailable reports whether err is the missing-model failure
func IsModelUnavailable(err error) bool { return perr.IsCode(err, perr.ErrorCodeUnavailable) }

// IsContract reports whether err marks malformed data between pipeline stages
func IsContract(err error) bool { return perr.IsCode(err, perr.ErrorCodeContract) }
