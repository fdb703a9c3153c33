package service

import "errors"

var (
	ErrInvalidPremium      = errors.New("invalid premium")
	ErrInvalidInterestRate = errors.New("invalid interest rate")
	ErrYearsOutOfRange     = errors.New("years out of range")
	ErrComputation         = errors.New("valuation computation failed")
)

// IsValidationError reports whether err was caused by the request itself
// rather than by the estimator.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidPremium) ||
		errors.Is(err, ErrInvalidInterestRate) ||
		errors.Is(err, ErrYearsOutOfRange)
}
