package generator

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	templateValidationCode = "TEMPLATE_VALIDATION_FAILED"
	templateNormalizeCode  = "TEMPLATE_NORMALIZE_FAILED"
)

// wrapValidationError converts a request validation failure into a wrapped
// error carrying the validation category and a stable text code. Already
// wrapped errors pass through untouched.
func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "template validation failed").
		WithTextCode(templateValidationCode)
}

func wrapNormalizeError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "input normalization failed").
		WithTextCode(templateNormalizeCode)
}
