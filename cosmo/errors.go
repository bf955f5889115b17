package cosmo

import "errors"

// Errors are wrapped with call context at the point of detection. Match
// them with errors.Is.
var (
	// ErrInvalidParameter is returned by New when a parameter would make
	// the derived constants non-finite.
	ErrInvalidParameter = errors.New("cosmo: invalid model parameter")

	// ErrDomain is returned when an argument lies outside the valid domain
	// of a call, e.g. a negative redshift.
	ErrDomain = errors.New("cosmo: argument outside valid domain")
)
