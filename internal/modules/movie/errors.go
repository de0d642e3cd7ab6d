package movie

import "errors"

var (
	ErrMovieNotFound  = errors.New("movie not found")
	ErrPolicyNotFound = errors.New("no download policy for tier")
	ErrQuotaExceeded  = errors.New("daily download quota exceeded")

	// ErrDuplicatePolicy is a wiring failure at startup, never a request error.
	ErrDuplicatePolicy = errors.New("tier claimed by more than one download policy")
)
