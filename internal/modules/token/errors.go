package token

import "errors"

var (
	// ErrAccountNotFound means the credential was validly signed but its
	// subject no longer resolves to an account.
	ErrAccountNotFound = errors.New("account not found")

	ErrTokenNotFound = errors.New("token pair not found")
)
